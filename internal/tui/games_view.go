package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mathdesk/internal/games"
	"mathdesk/internal/i18n"

	tea "github.com/charmbracelet/bubbletea"
)

type gamesMode int

const (
	gamesPick gamesMode = iota
	gamesPlaying
	gamesFeedback
	gamesResults
)

// gameTickMsg 每秒计时消息 / gameTickMsg fires once per second while playing
type gameTickMsg time.Time

// advanceMsg 反馈展示结束，进入下一题 / advanceMsg ends the feedback pause
type advanceMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return gameTickMsg(t) })
}

func advanceCmd() tea.Cmd {
	return tea.Tick(800*time.Millisecond, func(time.Time) tea.Msg { return advanceMsg{} })
}

// gamesView 游戏界面：选卡、限时答题、反馈停顿和结算
// gamesView is the games screen: game cards, the timed round, the
// per-answer feedback pause and the results summary.
type gamesView struct {
	scores *games.Scores
	gen    *games.Generator
	theme  Theme
	keys   KeyMap
	loc    *i18n.I18n

	mode   gamesMode
	cursor int

	session   *games.Session
	question  games.Question
	optCursor int

	lastCorrect bool
	lastAnswer  float64
	newRecord   bool
}

func newGamesView(scores *games.Scores, theme Theme, keys KeyMap, loc *i18n.I18n) gamesView {
	return gamesView{
		scores: scores,
		gen:    games.NewGenerator(),
		theme:  theme,
		keys:   keys,
		loc:    loc,
	}
}

func (v gamesView) update(msg tea.Msg) (gamesView, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case gameTickMsg:
		if v.session != nil && (v.mode == gamesPlaying || v.mode == gamesFeedback) {
			v.session.Tick()
			return v, tickCmd(), false
		}
		return v, nil, false

	case advanceMsg:
		if v.mode != gamesFeedback {
			return v, nil, false
		}
		if v.session.Playing {
			v.question = v.gen.Question(v.session.Type)
			v.optCursor = 0
			v.mode = gamesPlaying
		} else {
			v.newRecord = v.scores.Record(v.session.Type, v.session.Score)
			v.mode = gamesResults
		}
		return v, nil, false

	case tea.KeyMsg:
		switch v.mode {
		case gamesPlaying:
			return v.updatePlaying(msg)
		case gamesResults:
			return v.updateResults(msg)
		case gamesFeedback:
			return v, nil, false
		}
		return v.updatePick(msg)
	}
	return v, nil, false
}

func (v gamesView) updatePick(key tea.KeyMsg) (gamesView, tea.Cmd, bool) {
	types := games.GameTypes()

	switch key.String() {
	case "esc":
		return v, nil, true
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(types)-1 {
			v.cursor++
		}
	case "enter":
		return v.startRound(types[v.cursor])
	}
	return v, nil, false
}

func (v gamesView) startRound(t games.GameType) (gamesView, tea.Cmd, bool) {
	v.session = games.NewSession(t)
	v.question = v.gen.Question(t)
	v.optCursor = 0
	v.newRecord = false
	v.mode = gamesPlaying
	return v, tickCmd(), false
}

func (v gamesView) updatePlaying(key tea.KeyMsg) (gamesView, tea.Cmd, bool) {
	switch key.String() {
	case "esc":
		// 中途退出放弃本局 / Leaving mid-round abandons it
		v.session = nil
		v.mode = gamesPick
		return v, nil, false
	case "up", "k":
		if v.optCursor > 0 {
			v.optCursor--
		}
	case "down", "j":
		if v.optCursor < len(v.question.Options)-1 {
			v.optCursor++
		}
	case "1", "2", "3", "4":
		idx := int(key.String()[0] - '1')
		if idx < len(v.question.Options) {
			return v.submit(idx)
		}
	case "enter":
		return v.submit(v.optCursor)
	}
	return v, nil, false
}

func (v gamesView) submit(idx int) (gamesView, tea.Cmd, bool) {
	v.lastAnswer = v.question.Answer
	v.lastCorrect = v.session.Submit(v.question.Options[idx], v.question.Answer)
	v.mode = gamesFeedback
	return v, advanceCmd(), false
}

func (v gamesView) updateResults(key tea.KeyMsg) (gamesView, tea.Cmd, bool) {
	switch key.String() {
	case "enter":
		return v.startRound(v.session.Type)
	case "esc":
		v.session = nil
		v.mode = gamesPick
	}
	return v, nil, false
}

func (v gamesView) view(width, height int) string {
	switch v.mode {
	case gamesPlaying, gamesFeedback:
		return v.viewRound()
	case gamesResults:
		return v.viewResults()
	}
	return v.viewPick()
}

func (v gamesView) gameTitle(t games.GameType) string {
	return v.loc.T("game." + string(t))
}

func (v gamesView) viewPick() string {
	var b strings.Builder

	b.WriteString(v.theme.TitleStyle.Render(" "+v.loc.T("games.title")) + "\n\n")

	for i, t := range games.GameTypes() {
		card := fmt.Sprintf("%s\n%s", v.gameTitle(t), v.loc.T("games.high_score", v.scores.Best(t)))
		style := v.theme.CardStyle
		if i == v.cursor {
			style = style.BorderForeground(v.theme.Primary)
		}
		b.WriteString(style.Render(card) + "\n")
	}

	b.WriteString("\n" + v.theme.MutedStyle.Render(" "+v.loc.T("keys.select")+" · "+v.loc.T("keys.back")))
	return b.String()
}

func (v gamesView) viewRound() string {
	var b strings.Builder

	b.WriteString(v.theme.TitleStyle.Render(" "+v.gameTitle(v.session.Type)) + "\n")
	qnum := v.session.Answered + 1
	if v.mode == gamesFeedback {
		qnum = v.session.Answered
	}
	status := fmt.Sprintf("  %s   %s   %s",
		v.loc.T("games.question", qnum, games.QuestionsPerRound),
		v.theme.ScoreStyle.Render(v.loc.T("games.score", v.session.Score)),
		v.loc.T("games.time", v.session.Elapsed))
	b.WriteString(status + "\n\n")

	b.WriteString("  " + v.theme.CardStyle.Render(v.question.Prompt+" = ?") + "\n\n")

	for i, opt := range v.question.Options {
		line := fmt.Sprintf("%d) %s", i+1, formatOption(opt))
		if i == v.optCursor && v.mode == gamesPlaying {
			b.WriteString(v.theme.SelectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if v.mode == gamesFeedback {
		b.WriteString("\n")
		if v.lastCorrect {
			b.WriteString("  " + v.theme.CorrectStyle.Render(v.loc.T("games.correct")) + "\n")
		} else {
			b.WriteString("  " + v.theme.WrongStyle.Render(v.loc.T("games.wrong", formatOption(v.lastAnswer))) + "\n")
		}
	}

	return b.String()
}

func (v gamesView) viewResults() string {
	var b strings.Builder

	b.WriteString(v.theme.TitleStyle.Render(" "+v.loc.T("games.results")) + "\n\n")
	b.WriteString("  " + v.theme.ScoreStyle.Render(v.loc.T("games.final_score", v.session.Score)) + "\n")
	b.WriteString("  " + v.loc.T("games.accuracy", v.session.Accuracy()) + "\n")
	b.WriteString("  " + v.loc.T("games.time", v.session.Elapsed) + "\n")
	if v.newRecord {
		b.WriteString("\n  " + v.theme.CorrectStyle.Render(v.loc.T("games.new_record")) + "\n")
	}
	b.WriteString("\n" + v.theme.MutedStyle.Render(" "+v.loc.T("games.play_again")))
	return b.String()
}

// formatOption 整数不带小数点，小数只保留必要位数
// formatOption renders integers bare and fractions with only the
// digits they need
func formatOption(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
