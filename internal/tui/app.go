package tui

import (
	"strings"

	"mathdesk/internal/games"
	"mathdesk/internal/i18n"
	"mathdesk/internal/library"
	"mathdesk/internal/planner"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen 当前激活的界面
// Screen identifies the active screen
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlanner
	ScreenLibrary
	ScreenMathTool
	ScreenGames
)

// Deps TUI 依赖的领域服务
// Deps carries the domain services the TUI renders
type Deps struct {
	Planner       *planner.Service
	Library       *library.Service
	Scores        *games.Scores
	WorksheetSize int
}

// App Bubble Tea 主 Model。单线程事件循环：所有状态变更都发生在 Update 里。
// App is the main Bubble Tea model. Single-threaded event loop: all state
// changes happen inside Update.
type App struct {
	// 布局 / Layout
	width  int
	height int

	// 导航 / Navigation
	screen     Screen
	menuCursor int

	// 各界面 / Screens
	planner  plannerView
	library  libraryView
	mathtool mathtoolView
	games    gamesView

	// 配置 / Config
	theme  Theme
	keys   KeyMap
	locale *i18n.I18n
}

// NewApp 创建 TUI 应用
// NewApp creates a new TUI application
func NewApp(deps Deps) App {
	theme := DarkTheme()
	keys := DefaultKeyMap()
	loc := i18n.Global()

	return App{
		screen:   ScreenMenu,
		planner:  newPlannerView(deps.Planner, theme, keys, loc),
		library:  newLibraryView(deps.Library, theme, keys, loc),
		mathtool: newMathtoolView(deps.WorksheetSize, theme, keys, loc),
		games:    newGamesView(deps.Scores, theme, keys, loc),
		theme:    theme,
		keys:     keys,
		locale:   loc,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.screen == ScreenMenu {
			return a.updateMenu(msg)
		}

	case gameTickMsg, advanceMsg:
		// 游戏计时与反馈延时只关心游戏界面 / Timer messages belong to the games screen
		var cmd tea.Cmd
		a.games, cmd, _ = a.games.update(msg)
		return a, cmd
	}

	if a.screen == ScreenMenu {
		return a, nil
	}

	var cmd tea.Cmd
	var leave bool
	switch a.screen {
	case ScreenPlanner:
		a.planner, cmd, leave = a.planner.update(msg)
	case ScreenLibrary:
		a.library, cmd, leave = a.library.update(msg)
	case ScreenMathTool:
		a.mathtool, cmd, leave = a.mathtool.update(msg)
	case ScreenGames:
		a.games, cmd, leave = a.games.update(msg)
	}
	if leave {
		a.screen = ScreenMenu
	}
	return a, cmd
}

func (a App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := a.menuEntries()

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case "down", "j":
		if a.menuCursor < len(entries)-1 {
			a.menuCursor++
		}
	case "enter":
		switch a.menuCursor {
		case 0:
			a.screen = ScreenPlanner
		case 1:
			a.screen = ScreenLibrary
		case 2:
			a.screen = ScreenMathTool
		case 3:
			a.screen = ScreenGames
		}
	}
	return a, nil
}

type menuEntry struct {
	title string
	desc  string
}

func (a App) menuEntries() []menuEntry {
	return []menuEntry{
		{a.locale.T("menu.planner"), a.locale.T("menu.desc.planner")},
		{a.locale.T("menu.library"), a.locale.T("menu.desc.library")},
		{a.locale.T("menu.mathtool"), a.locale.T("menu.desc.mathtool")},
		{a.locale.T("menu.games"), a.locale.T("menu.desc.games")},
	}
}

func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Initializing..."
	}

	switch a.screen {
	case ScreenPlanner:
		return a.planner.view(a.width, a.height)
	case ScreenLibrary:
		return a.library.view(a.width, a.height)
	case ScreenMathTool:
		return a.mathtool.view(a.width, a.height)
	case ScreenGames:
		return a.games.view(a.width, a.height)
	}
	return a.viewMenu()
}

func (a App) viewMenu() string {
	var b strings.Builder

	b.WriteString(a.theme.TitleStyle.Render(" "+a.locale.T("app.title")) + "\n\n")

	for i, entry := range a.menuEntries() {
		line := "  " + entry.title
		if i == a.menuCursor {
			line = a.theme.SelectedStyle.Render("▸ " + entry.title)
		}
		b.WriteString(line + "\n")
		b.WriteString(a.theme.MutedStyle.Render("    "+entry.desc) + "\n")
	}

	b.WriteString("\n" + a.theme.MutedStyle.Render(" "+a.locale.T("menu.hint")))

	return lipgloss.NewStyle().Width(a.width).Render(b.String())
}

// Run 启动 Bubble Tea TUI
// Run starts the Bubble Tea TUI application
func Run(deps Deps) error {
	app := NewApp(deps)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
