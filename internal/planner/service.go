package planner

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"mathdesk/internal/collection"
	"mathdesk/internal/storage"
)

// Fields 表单提交的事件字段 / Fields carries event form input
type Fields struct {
	Title     string
	Date      time.Time
	StartTime string
	EndTime   string
	Category  Category
	Recurring Recurrence
	Reminder  bool
	Notes     string
}

// Service 持有内存中的事件集合并在每次变更后写回存储
// Service owns the in-memory event collection and writes it back to
// storage after every mutation.
type Service struct {
	repo   *collection.Repo[[]Event]
	events []Event
}

// NewService 创建计划服务并加载已保存的事件
// NewService creates the planner service and loads saved events
func NewService(store storage.Store) *Service {
	repo := collection.NewRepo[[]Event](store, storage.CollectionEvents)
	events, _ := repo.Load()
	return &Service{repo: repo, events: events}
}

// Events 返回全部事件 / Events returns all events
func (s *Service) Events() []Event {
	return s.events
}

// Create 校验必填字段，分配新标识并追加记录
// Create validates required fields, assigns a fresh identifier and
// appends the record.
func (s *Service) Create(f Fields) (Event, error) {
	if f.Title == "" {
		return Event{}, &collection.ValidationError{Field: "title"}
	}
	if f.Date.IsZero() {
		return Event{}, &collection.ValidationError{Field: "date"}
	}

	ev := Event{
		ID:        uuid.NewString(),
		Title:     f.Title,
		Date:      f.Date,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
		Category:  f.Category,
		Recurring: f.Recurring,
		Reminder:  f.Reminder,
		Notes:     f.Notes,
	}
	s.events = append(s.events, ev)
	s.persist()
	return ev, nil
}

// Update 原地替换已存在的记录，标识保持不变
// Update replaces an existing record in place; the identifier is stable
// across edits.
func (s *Service) Update(id string, f Fields) (Event, error) {
	if f.Title == "" {
		return Event{}, &collection.ValidationError{Field: "title"}
	}
	if f.Date.IsZero() {
		return Event{}, &collection.ValidationError{Field: "date"}
	}

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		s.events[i] = Event{
			ID:        id,
			Title:     f.Title,
			Date:      f.Date,
			StartTime: f.StartTime,
			EndTime:   f.EndTime,
			Category:  f.Category,
			Recurring: f.Recurring,
			Reminder:  f.Reminder,
			Notes:     f.Notes,
		}
		s.persist()
		return s.events[i], nil
	}
	return Event{}, fmt.Errorf("update event %s: %w", id, collection.ErrNotFound)
}

// Delete 删除记录 / Delete removes a record
func (s *Service) Delete(id string) error {
	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		s.events = append(s.events[:i], s.events[i+1:]...)
		s.persist()
		return nil
	}
	return fmt.Errorf("delete event %s: %w", id, collection.ErrNotFound)
}

// Get 按标识查找 / Get looks up an event by identifier
func (s *Service) Get(id string) (Event, bool) {
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}

// EventsOn 返回指定自然日的事件，按开始时间排序
// EventsOn returns the events of one calendar day sorted by start time
func (s *Service) EventsOn(day time.Time) []Event {
	var out []Event
	for _, ev := range s.events {
		if SameDay(ev.Date, day) {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (s *Service) persist() {
	// 写失败只记录，不打断用户操作 / A failed write is logged, never fatal
	if err := s.repo.Save(s.events); err != nil {
		fmt.Fprintf(os.Stderr, "mathdesk: %v\n", err)
	}
}
