package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"mathdesk/internal/i18n"
	"mathdesk/internal/planner"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type plannerMode int

const (
	plannerList plannerMode = iota
	plannerForm
	plannerConfirm
)

// 表单字段顺序 / Form field order
const (
	plannerFieldTitle = iota
	plannerFieldDate
	plannerFieldStart
	plannerFieldEnd
	plannerFieldNotes
	plannerFieldCategory
	plannerFieldRecurring
	plannerFieldReminder
	plannerFieldCount
)

// plannerView 日程界面：按天列出事件，支持表单编辑、空闲时间和导出
// plannerView is the schedule screen: per-day event list with form
// editing, free-time lookup and calendar export.
type plannerView struct {
	svc    *planner.Service
	theme  Theme
	keys   KeyMap
	loc    *i18n.I18n
	mode   plannerMode
	day    time.Time
	cursor int

	showFree bool
	status   string

	// 表单状态 / Form state
	inputs    []textinput.Model
	focus     int
	category  int
	recurring int
	reminder  bool
	editID    string
	formErr   string

	// 待删除事件 / Pending delete
	deleteID    string
	deleteTitle string
}

func newPlannerView(svc *planner.Service, theme Theme, keys KeyMap, loc *i18n.I18n) plannerView {
	return plannerView{
		svc:   svc,
		theme: theme,
		keys:  keys,
		loc:   loc,
		day:   time.Now(),
	}
}

func (v plannerView) update(msg tea.Msg) (plannerView, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil, false
	}

	switch v.mode {
	case plannerForm:
		return v.updateForm(key)
	case plannerConfirm:
		return v.updateConfirm(key)
	}
	return v.updateList(key)
}

func (v plannerView) updateList(key tea.KeyMsg) (plannerView, tea.Cmd, bool) {
	events := v.svc.EventsOn(v.day)

	switch key.String() {
	case "esc":
		return v, nil, true
	case "left", "h":
		v.day = v.day.AddDate(0, 0, -1)
		v.cursor = 0
		v.status = ""
	case "right", "l":
		v.day = v.day.AddDate(0, 0, 1)
		v.cursor = 0
		v.status = ""
	case "[":
		v.day = v.day.AddDate(0, -1, 0)
		v.cursor = 0
		v.status = ""
	case "]":
		v.day = v.day.AddDate(0, 1, 0)
		v.cursor = 0
		v.status = ""
	case "t":
		v.day = time.Now()
		v.cursor = 0
		v.status = ""
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(events)-1 {
			v.cursor++
		}
	case "f":
		v.showFree = !v.showFree
	case "n":
		v = v.openForm(planner.Event{}, false)
	case "e":
		if v.cursor < len(events) {
			v = v.openForm(events[v.cursor], true)
		}
	case "d":
		if v.cursor < len(events) {
			v.mode = plannerConfirm
			v.deleteID = events[v.cursor].ID
			v.deleteTitle = events[v.cursor].Title
		}
	case "x":
		v.status = v.exportCalendar()
	}
	return v, nil, false
}

func (v plannerView) updateConfirm(key tea.KeyMsg) (plannerView, tea.Cmd, bool) {
	switch key.String() {
	case "y":
		if err := v.svc.Delete(v.deleteID); err == nil {
			// 选中项可能已经是最后一个 / The cursor may point past the end now
			if n := len(v.svc.EventsOn(v.day)); v.cursor >= n && v.cursor > 0 {
				v.cursor--
			}
		}
		v.mode = plannerList
	case "n", "esc":
		v.mode = plannerList
	}
	return v, nil, false
}

func (v plannerView) openForm(ev planner.Event, edit bool) plannerView {
	labels := []string{
		v.loc.T("planner.form.title"),
		v.loc.T("planner.form.date"),
		v.loc.T("planner.form.start"),
		v.loc.T("planner.form.end"),
		v.loc.T("planner.form.notes"),
	}
	v.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 256
		v.inputs[i] = ti
	}

	if edit {
		v.editID = ev.ID
		v.inputs[plannerFieldTitle].SetValue(ev.Title)
		v.inputs[plannerFieldDate].SetValue(ev.Date.Format("2006-01-02"))
		v.inputs[plannerFieldStart].SetValue(ev.StartTime)
		v.inputs[plannerFieldEnd].SetValue(ev.EndTime)
		v.inputs[plannerFieldNotes].SetValue(ev.Notes)
		v.category = indexOfCategory(ev.Category)
		v.recurring = indexOfRecurrence(ev.Recurring)
		v.reminder = ev.Reminder
	} else {
		v.editID = ""
		v.inputs[plannerFieldDate].SetValue(v.day.Format("2006-01-02"))
		v.inputs[plannerFieldStart].SetValue("09:00")
		v.inputs[plannerFieldEnd].SetValue("10:00")
		v.category = 0
		v.recurring = 0
		v.reminder = false
	}

	v.mode = plannerForm
	v.focus = 0
	v.formErr = ""
	v.inputs[0].Focus()
	return v
}

func (v plannerView) updateForm(key tea.KeyMsg) (plannerView, tea.Cmd, bool) {
	switch key.String() {
	case "esc":
		v.mode = plannerList
		return v, nil, false
	case "tab", "down":
		v = v.setFormFocus((v.focus + 1) % plannerFieldCount)
		return v, nil, false
	case "shift+tab", "up":
		v = v.setFormFocus((v.focus + plannerFieldCount - 1) % plannerFieldCount)
		return v, nil, false
	case "enter":
		return v.submitForm()
	}

	// 选择型字段用左右键切换 / Choice fields cycle with left/right
	switch v.focus {
	case plannerFieldCategory:
		if s := key.String(); s == "left" || s == "right" {
			v.category = cycle(v.category, len(planner.Categories()), s == "right")
		}
		return v, nil, false
	case plannerFieldRecurring:
		if s := key.String(); s == "left" || s == "right" {
			v.recurring = cycle(v.recurring, len(planner.Recurrences()), s == "right")
		}
		return v, nil, false
	case plannerFieldReminder:
		if s := key.String(); s == " " || s == "left" || s == "right" {
			v.reminder = !v.reminder
		}
		return v, nil, false
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(key)
	return v, cmd, false
}

func (v plannerView) setFormFocus(focus int) plannerView {
	if v.focus < len(v.inputs) {
		v.inputs[v.focus].Blur()
	}
	v.focus = focus
	if v.focus < len(v.inputs) {
		v.inputs[v.focus].Focus()
	}
	return v
}

func (v plannerView) submitForm() (plannerView, tea.Cmd, bool) {
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(v.inputs[plannerFieldDate].Value()), time.Local)
	if err != nil {
		v.formErr = v.loc.T("error.save", err)
		return v, nil, false
	}

	fields := planner.Fields{
		Title:     strings.TrimSpace(v.inputs[plannerFieldTitle].Value()),
		Date:      date,
		StartTime: strings.TrimSpace(v.inputs[plannerFieldStart].Value()),
		EndTime:   strings.TrimSpace(v.inputs[plannerFieldEnd].Value()),
		Category:  planner.Categories()[v.category],
		Recurring: planner.Recurrences()[v.recurring],
		Reminder:  v.reminder,
		Notes:     v.inputs[plannerFieldNotes].Value(),
	}

	if v.editID != "" {
		_, err = v.svc.Update(v.editID, fields)
	} else {
		_, err = v.svc.Create(fields)
	}
	if err != nil {
		v.formErr = v.loc.T("error.save", err)
		return v, nil, false
	}

	v.day = date
	v.mode = plannerList
	v.status = v.loc.T("status.saved")
	return v, nil, false
}

func (v plannerView) exportCalendar() string {
	path := "schedule.ics"
	f, err := os.Create(path)
	if err != nil {
		return v.loc.T("error.save", err)
	}
	defer f.Close()
	if err := v.svc.ExportICS(f); err != nil {
		return v.loc.T("error.save", err)
	}
	return v.loc.T("planner.export_done", path)
}

func (v plannerView) view(width, height int) string {
	switch v.mode {
	case plannerForm:
		return v.viewForm(width)
	case plannerConfirm:
		return v.theme.DangerStyle.Render(v.loc.T("planner.confirm_delete", v.deleteTitle))
	}
	return v.viewList(width)
}

func (v plannerView) viewList(width int) string {
	var b strings.Builder

	b.WriteString(v.theme.TitleStyle.Render(" "+v.loc.T("planner.title")) + "\n")
	b.WriteString(v.theme.ActiveTabStyle.Render(v.day.Format("January 2006")) + "\n\n")
	b.WriteString(v.viewMonth())
	b.WriteString("\n" + v.theme.TitleStyle.Render(" "+v.day.Format("Mon 2006-01-02")) + "\n")

	events := v.svc.EventsOn(v.day)
	if len(events) == 0 {
		b.WriteString(v.theme.MutedStyle.Render("  "+v.loc.T("planner.no_events")) + "\n")
	}
	for i, ev := range events {
		line := fmt.Sprintf("%s-%s  %s  [%s]", ev.StartTime, ev.EndTime, ev.Title, categoryStyle(v.theme, string(ev.Category)))
		if ev.Reminder {
			line += " ⏰"
		}
		if i == v.cursor {
			b.WriteString(v.theme.SelectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
		if ev.Notes != "" && i == v.cursor {
			b.WriteString(v.theme.MutedStyle.Render("    "+ev.Notes) + "\n")
		}
	}

	if v.showFree {
		b.WriteString("\n" + v.theme.TitleStyle.Render(" "+v.loc.T("planner.free_slots")) + "\n")
		free := planner.FreeSlots(events)
		if len(free) == 0 {
			b.WriteString(v.theme.MutedStyle.Render("  "+v.loc.T("planner.no_free_slots")) + "\n")
		} else {
			b.WriteString("  " + v.theme.SuccessStyle.Render(strings.Join(free, "  ")) + "\n")
		}
	}

	if v.status != "" {
		b.WriteString("\n" + v.theme.SuccessStyle.Render(" "+v.status) + "\n")
	}

	hints := []string{
		"←/→ day",
		"[/] month",
		"t today",
		v.loc.T("keys.new"),
		v.loc.T("keys.edit"),
		v.loc.T("keys.delete"),
		v.loc.T("keys.free"),
		v.loc.T("keys.export"),
		v.loc.T("keys.back"),
	}
	b.WriteString("\n" + v.theme.MutedStyle.Render(" "+strings.Join(hints, " · ")))

	return b.String()
}

// viewMonth 渲染当前月份的日历网格，单元格显示事件标记
// viewMonth renders the month grid; busy days carry event markers and
// cells past two events collapse into a "+N" overflow marker.
func (v plannerView) viewMonth() string {
	first := time.Date(v.day.Year(), v.day.Month(), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	counts := make(map[int]int)
	for _, ev := range v.svc.Events() {
		if ev.Date.Year() == first.Year() && ev.Date.Month() == first.Month() {
			counts[ev.Date.Day()]++
		}
	}

	var b strings.Builder
	b.WriteString(v.theme.MutedStyle.Render("  Su     Mo     Tu     We     Th     Fr     Sa") + "\n")

	col := int(first.Weekday())
	b.WriteString(strings.Repeat("       ", col))
	for d := 1; d <= daysInMonth; d++ {
		cell := fmt.Sprintf("%2d %-4s", d, dayMarker(counts[d]))
		switch {
		case d == v.day.Day():
			cell = v.theme.SelectedStyle.Render(cell)
		case counts[d] > 0:
			cell = v.theme.PanelStyle.Render(cell)
		default:
			cell = v.theme.MutedStyle.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// dayMarker 每个事件一个圆点，超过两个折叠为 "+N"
// dayMarker shows one dot per event, collapsing past two into "+N".
func dayMarker(count int) string {
	switch {
	case count <= 0:
		return ""
	case count <= 2:
		return strings.Repeat("•", count)
	default:
		return fmt.Sprintf("••+%d", count-2)
	}
}

func (v plannerView) viewForm(width int) string {
	var b strings.Builder

	b.WriteString(v.theme.TitleStyle.Render(" "+v.loc.T("planner.title")) + "\n\n")

	labels := []string{
		v.loc.T("planner.form.title"),
		v.loc.T("planner.form.date"),
		v.loc.T("planner.form.start"),
		v.loc.T("planner.form.end"),
		v.loc.T("planner.form.notes"),
	}
	for i, in := range v.inputs {
		b.WriteString(fmt.Sprintf("  %s: %s\n", labels[i], in.View()))
	}

	b.WriteString(v.viewChoice(plannerFieldCategory, v.loc.T("planner.form.category"),
		v.loc.T("category."+string(planner.Categories()[v.category]))))
	b.WriteString(v.viewChoice(plannerFieldRecurring, v.loc.T("planner.form.recurring"),
		v.loc.T("recur."+string(planner.Recurrences()[v.recurring]))))

	reminder := "✗"
	if v.reminder {
		reminder = "✓"
	}
	b.WriteString(v.viewChoice(plannerFieldReminder, v.loc.T("planner.form.reminder"), reminder))

	if v.formErr != "" {
		b.WriteString("\n" + v.theme.ErrorStyle.Render("  "+v.formErr) + "\n")
	}
	b.WriteString("\n" + v.theme.MutedStyle.Render("  tab next · enter save · esc cancel"))

	return b.String()
}

func (v plannerView) viewChoice(field int, label, value string) string {
	line := fmt.Sprintf("  %s: ◂ %s ▸", label, value)
	if v.focus == field {
		return v.theme.SelectedStyle.Render(line) + "\n"
	}
	return line + "\n"
}

func indexOfCategory(c planner.Category) int {
	for i, cat := range planner.Categories() {
		if cat == c {
			return i
		}
	}
	return 0
}

func indexOfRecurrence(r planner.Recurrence) int {
	for i, rec := range planner.Recurrences() {
		if rec == r {
			return i
		}
	}
	return 0
}

func cycle(i, n int, forward bool) int {
	if forward {
		return (i + 1) % n
	}
	return (i + n - 1) % n
}
