package tui

import (
	"fmt"
	"strings"

	"mathdesk/internal/i18n"
	"mathdesk/internal/library"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type libraryMode int

const (
	libraryBrowse libraryMode = iota
	libraryForm
	libraryDetail
	libraryNote
	libraryHighlight
	libraryConfirm
)

// 表单字段顺序 / Form field order
const (
	libraryFieldTitle = iota
	libraryFieldAuthor
	libraryFieldISBN
	libraryFieldTags
	libraryFieldCover
	libraryFieldCategory
	libraryFieldCount
)

// libraryView 图书馆界面：搜索过滤、详情、笔记与划线管理
// libraryView is the library screen: search and category filtering,
// record detail, note and highlight management.
type libraryView struct {
	svc   *library.Service
	theme Theme
	keys  KeyMap
	loc   *i18n.I18n
	mode  libraryMode

	search    textinput.Model
	searching bool
	category  int
	cursor    int

	// 表单状态 / Form state
	inputs       []textinput.Model
	focus        int
	formCategory int
	editID       string
	formErr      string

	// 详情状态 / Detail state
	detailID  string
	hlCursor  int
	entry     textinput.Model
	deleteID  string
	deleteTitle string
}

func newLibraryView(svc *library.Service, theme Theme, keys KeyMap, loc *i18n.I18n) libraryView {
	search := textinput.New()
	search.Placeholder = loc.T("library.search")
	search.CharLimit = 128

	return libraryView{
		svc:    svc,
		theme:  theme,
		keys:   keys,
		loc:    loc,
		search: search,
	}
}

// filters 返回当前过滤条件下的书列表，"All" 在类别列表首位
// filters applies the current query and category; "All" is first
func (v libraryView) categories() []string {
	return append([]string{library.CategoryAll}, library.Categories()...)
}

func (v libraryView) filtered() []library.Book {
	return v.svc.Filter(v.search.Value(), v.categories()[v.category])
}

func (v libraryView) update(msg tea.Msg) (libraryView, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil, false
	}

	switch v.mode {
	case libraryForm:
		return v.updateForm(key)
	case libraryDetail:
		return v.updateDetail(key)
	case libraryNote, libraryHighlight:
		return v.updateEntry(key)
	case libraryConfirm:
		return v.updateConfirm(key)
	}
	return v.updateBrowse(key)
}

func (v libraryView) updateBrowse(key tea.KeyMsg) (libraryView, tea.Cmd, bool) {
	if v.searching {
		switch key.String() {
		case "esc", "enter":
			v.searching = false
			v.search.Blur()
			return v, nil, false
		}
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(key)
		v.cursor = 0
		return v, cmd, false
	}

	books := v.filtered()

	switch key.String() {
	case "esc":
		return v, nil, true
	case "/":
		v.searching = true
		v.search.Focus()
	case "tab":
		v.category = cycle(v.category, len(v.categories()), true)
		v.cursor = 0
	case "shift+tab":
		v.category = cycle(v.category, len(v.categories()), false)
		v.cursor = 0
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(books)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(books) {
			v.mode = libraryDetail
			v.detailID = books[v.cursor].ID
			v.hlCursor = 0
		}
	case "n":
		v = v.openForm(library.Book{}, false)
	case "e":
		if v.cursor < len(books) {
			v = v.openForm(books[v.cursor], true)
		}
	case "d":
		if v.cursor < len(books) {
			v.mode = libraryConfirm
			v.deleteID = books[v.cursor].ID
			v.deleteTitle = books[v.cursor].Title
		}
	}
	return v, nil, false
}

func (v libraryView) updateConfirm(key tea.KeyMsg) (libraryView, tea.Cmd, bool) {
	switch key.String() {
	case "y":
		if err := v.svc.Delete(v.deleteID); err == nil {
			if n := len(v.filtered()); v.cursor >= n && v.cursor > 0 {
				v.cursor--
			}
		}
		v.mode = libraryBrowse
	case "n", "esc":
		v.mode = libraryBrowse
	}
	return v, nil, false
}

func (v libraryView) openForm(b library.Book, edit bool) libraryView {
	placeholders := []string{
		v.loc.T("library.form.title"),
		v.loc.T("library.form.author"),
		v.loc.T("library.form.isbn"),
		v.loc.T("library.form.tags"),
		v.loc.T("library.form.cover"),
	}
	v.inputs = make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 256
		v.inputs[i] = ti
	}

	v.formCategory = 0
	if edit {
		v.editID = b.ID
		v.inputs[libraryFieldTitle].SetValue(b.Title)
		v.inputs[libraryFieldAuthor].SetValue(b.Author)
		v.inputs[libraryFieldISBN].SetValue(b.ISBN)
		v.inputs[libraryFieldTags].SetValue(strings.Join(b.Tags, ", "))
		v.inputs[libraryFieldCover].SetValue(b.CoverURL)
		for i, c := range library.Categories() {
			if c == b.Category {
				v.formCategory = i
			}
		}
	} else {
		v.editID = ""
	}

	v.mode = libraryForm
	v.focus = 0
	v.formErr = ""
	v.inputs[0].Focus()
	return v
}

func (v libraryView) updateForm(key tea.KeyMsg) (libraryView, tea.Cmd, bool) {
	switch key.String() {
	case "esc":
		v.mode = libraryBrowse
		return v, nil, false
	case "tab", "down":
		v = v.setFormFocus((v.focus + 1) % libraryFieldCount)
		return v, nil, false
	case "shift+tab", "up":
		v = v.setFormFocus((v.focus + libraryFieldCount - 1) % libraryFieldCount)
		return v, nil, false
	case "enter":
		return v.submitForm()
	}

	if v.focus == libraryFieldCategory {
		if s := key.String(); s == "left" || s == "right" {
			v.formCategory = cycle(v.formCategory, len(library.Categories()), s == "right")
		}
		return v, nil, false
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(key)
	return v, cmd, false
}

func (v libraryView) setFormFocus(focus int) libraryView {
	if v.focus < len(v.inputs) {
		v.inputs[v.focus].Blur()
	}
	v.focus = focus
	if v.focus < len(v.inputs) {
		v.inputs[v.focus].Focus()
	}
	return v
}

func (v libraryView) submitForm() (libraryView, tea.Cmd, bool) {
	fields := library.Fields{
		Title:    strings.TrimSpace(v.inputs[libraryFieldTitle].Value()),
		Author:   strings.TrimSpace(v.inputs[libraryFieldAuthor].Value()),
		ISBN:     strings.TrimSpace(v.inputs[libraryFieldISBN].Value()),
		Category: library.Categories()[v.formCategory],
		Tags:     v.inputs[libraryFieldTags].Value(),
		CoverURL: strings.TrimSpace(v.inputs[libraryFieldCover].Value()),
	}

	var err error
	if v.editID != "" {
		_, err = v.svc.Update(v.editID, fields)
	} else {
		_, err = v.svc.Create(fields)
	}
	if err != nil {
		v.formErr = v.loc.T("error.save", err)
		return v, nil, false
	}

	v.mode = libraryBrowse
	return v, nil, false
}

func (v libraryView) updateDetail(key tea.KeyMsg) (libraryView, tea.Cmd, bool) {
	book, ok := v.svc.Get(v.detailID)
	if !ok {
		v.mode = libraryBrowse
		return v, nil, false
	}

	switch key.String() {
	case "esc":
		v.mode = libraryBrowse
	case "a":
		v = v.openEntry(libraryNote, v.loc.T("library.form.note"))
	case "g":
		v = v.openEntry(libraryHighlight, v.loc.T("library.form.highlight"))
	case "up", "k":
		if v.hlCursor > 0 {
			v.hlCursor--
		}
	case "down", "j":
		if v.hlCursor < len(book.Highlights)-1 {
			v.hlCursor++
		}
	case "r":
		if len(book.Highlights) > 0 {
			_ = v.svc.RemoveHighlight(v.detailID, v.hlCursor)
			if v.hlCursor > 0 {
				v.hlCursor--
			}
		}
	}
	return v, nil, false
}

func (v libraryView) openEntry(mode libraryMode, placeholder string) libraryView {
	v.entry = textinput.New()
	v.entry.Placeholder = placeholder
	v.entry.CharLimit = 1024
	v.entry.Focus()
	v.mode = mode
	return v
}

func (v libraryView) updateEntry(key tea.KeyMsg) (libraryView, tea.Cmd, bool) {
	switch key.String() {
	case "esc":
		v.mode = libraryDetail
		return v, nil, false
	case "enter":
		text := strings.TrimSpace(v.entry.Value())
		if text != "" {
			if v.mode == libraryNote {
				_ = v.svc.AddNote(v.detailID, text)
			} else {
				_ = v.svc.AddHighlight(v.detailID, text)
			}
		}
		v.mode = libraryDetail
		return v, nil, false
	}

	var cmd tea.Cmd
	v.entry, cmd = v.entry.Update(key)
	return v, cmd, false
}

func (v libraryView) view(width, height int) string {
	switch v.mode {
	case libraryForm:
		return v.viewForm()
	case libraryDetail:
		return v.viewDetail(width)
	case libraryNote, libraryHighlight:
		return v.viewDetail(width) + "\n\n  " + v.entry.View()
	case libraryConfirm:
		return v.theme.DangerStyle.Render(v.loc.T("library.confirm_delete", v.deleteTitle))
	}
	return v.viewBrowse()
}

func (v libraryView) viewBrowse() string {
	var b strings.Builder

	b.WriteString(v.theme.TitleStyle.Render(" "+v.loc.T("library.title")) + "\n")

	// 类别标签栏 / Category tab bar
	var tabs []string
	for i, c := range v.categories() {
		style := v.theme.InactiveTabStyle
		if i == v.category {
			style = v.theme.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(c))
	}
	b.WriteString(strings.Join(tabs, "") + "\n")

	b.WriteString("  " + v.search.View() + "\n\n")

	books := v.filtered()
	if len(books) == 0 {
		b.WriteString(v.theme.MutedStyle.Render("  "+v.loc.T("library.empty")) + "\n")
	}
	for i, book := range books {
		line := fmt.Sprintf("%s · %s", book.Title, book.Author)
		if len(book.Tags) > 0 {
			line += v.theme.MutedStyle.Render("  #" + strings.Join(book.Tags, " #"))
		}
		if i == v.cursor {
			b.WriteString(v.theme.SelectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	hints := []string{
		"/ search",
		"tab category",
		v.loc.T("keys.select"),
		v.loc.T("keys.new"),
		v.loc.T("keys.edit"),
		v.loc.T("keys.delete"),
		v.loc.T("keys.back"),
	}
	b.WriteString("\n" + v.theme.MutedStyle.Render(" "+strings.Join(hints, " · ")))

	return b.String()
}

func (v libraryView) viewForm() string {
	var b strings.Builder

	b.WriteString(v.theme.TitleStyle.Render(" "+v.loc.T("library.title")) + "\n\n")

	labels := []string{
		v.loc.T("library.form.title"),
		v.loc.T("library.form.author"),
		v.loc.T("library.form.isbn"),
		v.loc.T("library.form.tags"),
		v.loc.T("library.form.cover"),
	}
	for i, in := range v.inputs {
		b.WriteString(fmt.Sprintf("  %s: %s\n", labels[i], in.View()))
	}

	line := fmt.Sprintf("  %s: ◂ %s ▸", v.loc.T("library.form.category"), library.Categories()[v.formCategory])
	if v.focus == libraryFieldCategory {
		line = v.theme.SelectedStyle.Render(line)
	}
	b.WriteString(line + "\n")

	if v.formErr != "" {
		b.WriteString("\n" + v.theme.ErrorStyle.Render("  "+v.formErr) + "\n")
	}
	b.WriteString("\n" + v.theme.MutedStyle.Render("  tab next · enter save · esc cancel"))

	return b.String()
}

func (v libraryView) viewDetail(width int) string {
	book, ok := v.svc.Get(v.detailID)
	if !ok {
		return v.theme.MutedStyle.Render("  " + v.loc.T("library.empty"))
	}

	var b strings.Builder
	b.WriteString(v.theme.TitleStyle.Render(" "+book.Title) + "\n")
	b.WriteString(v.theme.MutedStyle.Render("  "+book.Author) + "\n")
	if book.ISBN != "" {
		b.WriteString(v.theme.MutedStyle.Render("  ISBN "+book.ISBN) + "\n")
	}
	b.WriteString("  " + v.theme.InactiveTabStyle.Render(book.Category))
	if len(book.Tags) > 0 {
		b.WriteString(v.theme.MutedStyle.Render("  #" + strings.Join(book.Tags, " #")))
	}
	b.WriteString("\n")
	b.WriteString(v.theme.MutedStyle.Render("  "+v.loc.T("library.added", book.AddedDate.Format("2006-01-02"))) + "\n")

	if book.Notes != "" {
		b.WriteString("\n" + v.theme.TitleStyle.Render(" "+v.loc.T("library.notes")) + "\n")
		b.WriteString(RenderMarkdown(book.Notes, width-4) + "\n")
	}

	if len(book.Highlights) > 0 {
		b.WriteString("\n" + v.theme.TitleStyle.Render(" "+v.loc.T("library.highlights")) + "\n")
		for i, h := range book.Highlights {
			if i == v.hlCursor {
				b.WriteString(v.theme.SelectedStyle.Render("▸ "+h) + "\n")
			} else {
				b.WriteString("  " + h + "\n")
			}
		}
	}

	b.WriteString("\n" + v.theme.MutedStyle.Render(" a note · g highlight · r remove highlight · esc back"))
	return b.String()
}
