package tui

import (
	"fmt"
	"strings"

	"mathdesk/internal/i18n"
	"mathdesk/internal/mathtool"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mathtoolTab int

const (
	tabPractice mathtoolTab = iota
	tabSolver
	tabWorksheet
	mathtoolTabCount
)

// mathtoolView 数学助手界面：练习、分步求解器和可打印习题卷
// mathtoolView is the math helper screen: practice problems, the
// step-by-step solver and a printable worksheet.
type mathtoolView struct {
	gen   *mathtool.Generator
	theme Theme
	keys  KeyMap
	loc   *i18n.I18n

	tab        mathtoolTab
	topic      int
	difficulty int

	practice    []mathtool.Problem
	worksheet   []mathtool.Problem
	sheetSize   int
	showAnswers bool

	input    textinput.Model
	solution *mathtool.Solution
}

func newMathtoolView(worksheetSize int, theme Theme, keys KeyMap, loc *i18n.I18n) mathtoolView {
	if worksheetSize <= 0 {
		worksheetSize = mathtool.DefaultQuizSize
	}
	if worksheetSize > mathtool.MaxQuizSize {
		worksheetSize = mathtool.MaxQuizSize
	}

	input := textinput.New()
	input.Placeholder = loc.T("mathtool.prompt")
	input.CharLimit = 128
	input.Focus()

	v := mathtoolView{
		gen:       mathtool.NewGenerator(),
		theme:     theme,
		keys:      keys,
		loc:       loc,
		sheetSize: worksheetSize,
		input:     input,
	}
	v.practice = v.gen.Practice(v.currentTopic(), v.currentDifficulty())
	return v
}

func (v mathtoolView) currentTopic() mathtool.Topic {
	return mathtool.Topics()[v.topic]
}

func (v mathtoolView) currentDifficulty() mathtool.Difficulty {
	return mathtool.Difficulties()[v.difficulty]
}

func (v mathtoolView) update(msg tea.Msg) (mathtoolView, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil, false
	}

	switch key.String() {
	case "esc":
		return v, nil, true
	case "tab":
		v.tab = (v.tab + 1) % mathtoolTabCount
		return v, nil, false
	}

	if v.tab == tabSolver {
		if key.String() == "enter" {
			sol := mathtool.Solve(v.input.Value())
			v.solution = &sol
			return v, nil, false
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(key)
		return v, cmd, false
	}

	switch key.String() {
	case "t":
		v.topic = cycle(v.topic, len(mathtool.Topics()), true)
		v.regenerate()
	case "d":
		v.difficulty = cycle(v.difficulty, len(mathtool.Difficulties()), true)
		v.regenerate()
	case "r":
		v.regenerate()
	case "s":
		v.showAnswers = !v.showAnswers
	}
	return v, nil, false
}

func (v *mathtoolView) regenerate() {
	if v.tab == tabWorksheet {
		v.worksheet = v.gen.Quiz(v.currentTopic(), v.currentDifficulty(), v.sheetSize)
	} else {
		v.practice = v.gen.Practice(v.currentTopic(), v.currentDifficulty())
	}
}

func (v mathtoolView) view(width, height int) string {
	var b strings.Builder

	b.WriteString(v.theme.TitleStyle.Render(" "+v.loc.T("mathtool.title")) + "\n")

	tabs := []string{
		v.loc.T("mathtool.tab.practice"),
		v.loc.T("mathtool.tab.solver"),
		v.loc.T("mathtool.tab.worksheet"),
	}
	var parts []string
	for i, name := range tabs {
		style := v.theme.InactiveTabStyle
		if mathtoolTab(i) == v.tab {
			style = v.theme.ActiveTabStyle
		}
		parts = append(parts, style.Render(name))
	}
	b.WriteString(strings.Join(parts, "") + "\n\n")

	switch v.tab {
	case tabSolver:
		b.WriteString(v.viewSolver(width))
	case tabWorksheet:
		b.WriteString(v.viewProblems(v.worksheet, width))
		b.WriteString("\n" + v.theme.MutedStyle.Render(" t topic · d difficulty · r new sheet · s answers · tab switch · esc back"))
	default:
		b.WriteString(v.viewProblems(v.practice, width))
		b.WriteString("\n" + v.theme.MutedStyle.Render(" t topic · d difficulty · r regenerate · s answers · tab switch · esc back"))
	}

	return b.String()
}

func (v mathtoolView) viewSolver(width int) string {
	var b strings.Builder

	b.WriteString("  " + v.input.View() + "\n")

	if v.solution != nil {
		var md strings.Builder
		md.WriteString("## " + v.loc.T("mathtool.solution") + "\n\n")
		md.WriteString("**" + v.solution.Answer + "**\n")
		if len(v.solution.Steps) > 0 {
			md.WriteString("\n### " + v.loc.T("mathtool.steps") + "\n\n")
			for i, step := range v.solution.Steps {
				md.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
			}
		}
		b.WriteString(RenderMarkdown(md.String(), width-4) + "\n")
	}

	b.WriteString("\n" + v.theme.MutedStyle.Render(" enter solve · tab switch · esc back"))
	return b.String()
}

func (v mathtoolView) viewProblems(problems []mathtool.Problem, width int) string {
	var b strings.Builder

	header := fmt.Sprintf("  %s: %s   %s: %s\n\n",
		v.loc.T("mathtool.topic"), v.loc.T("topic."+string(v.currentTopic())),
		v.loc.T("mathtool.difficulty"), v.loc.T("difficulty."+string(v.currentDifficulty())))
	b.WriteString(v.theme.MutedStyle.Render(header))

	if len(problems) == 0 {
		b.WriteString(v.theme.MutedStyle.Render("  r to generate\n"))
		return b.String()
	}

	var md strings.Builder
	for i, p := range problems {
		md.WriteString(fmt.Sprintf("%d. %s\n", i+1, p.Question))
		if v.showAnswers {
			md.WriteString(fmt.Sprintf("   **%s**\n", p.Answer))
			for _, step := range p.Steps {
				md.WriteString("   - " + step + "\n")
			}
		}
	}
	b.WriteString(RenderMarkdown(md.String(), width-4) + "\n")

	return b.String()
}
