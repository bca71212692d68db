package planner

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
)

// ExportICS 将全部事件导出为 iCalendar 数据，每条事件一个 VEVENT。
// 重复标记只作为分类属性携带，不展开为多个实例。
// ExportICS writes all events as iCalendar data, one VEVENT per event.
// The recurrence tag travels as a category property only; it is not
// expanded into instances.
func (s *Service) ExportICS(w io.Writer) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//mathdesk//schedule//EN")

	now := time.Now().UTC()
	for _, ev := range s.events {
		start, err := combineDayTime(ev.Date, ev.StartTime)
		if err != nil {
			return fmt.Errorf("event %s: %w", ev.ID, err)
		}
		end, err := combineDayTime(ev.Date, ev.EndTime)
		if err != nil {
			return fmt.Errorf("event %s: %w", ev.ID, err)
		}

		vev := cal.AddEvent(ev.ID)
		vev.SetDtStampTime(now)
		vev.SetStartAt(start)
		vev.SetEndAt(end)
		vev.SetSummary(ev.Title)
		if ev.Notes != "" {
			vev.SetDescription(ev.Notes)
		}
		vev.AddProperty(ical.ComponentProperty(ical.PropertyCategories), string(ev.Category))
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

// combineDayTime 把自然日与 "HH:MM" 合成本地时间
// combineDayTime combines a calendar day with an "HH:MM" label
func combineDayTime(day time.Time, hhmm string) (time.Time, error) {
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", hhmm, err)
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, day.Location()), nil
}
