package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 使用 Glamour 渲染 markdown 文本
// RenderMarkdown renders markdown text using Glamour
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}

// categoryStyle 返回日程类别的配色 / categoryStyle maps an event category to its color
func categoryStyle(theme Theme, category string) string {
	switch category {
	case "class":
		return theme.ClassStyle.Render(category)
	case "meeting":
		return theme.MeetingStyle.Render(category)
	case "personal":
		return theme.PersonalStyle.Render(category)
	default:
		return theme.MutedStyle.Render(category)
	}
}
