package planner

import "time"

// Category 日程分类 / Category classifies an event
type Category string

const (
	CategoryClass    Category = "class"
	CategoryMeeting  Category = "meeting"
	CategoryPersonal Category = "personal"
)

// Categories 按表单顺序排列的分类 / Categories in form order
func Categories() []Category {
	return []Category{CategoryClass, CategoryMeeting, CategoryPersonal}
}

// Recurrence 重复标记，仅存储，不展开为多条记录
// Recurrence is a stored tag only; it is never expanded into occurrences
type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

// Recurrences 按表单顺序排列的重复标记 / Recurrences in form order
func Recurrences() []Recurrence {
	return []Recurrence{RecurNone, RecurDaily, RecurWeekly, RecurMonthly}
}

// Event 一条日程记录。StartTime/EndTime 为补零的 "HH:MM"，等宽补零保证
// 字典序比较即时间比较。
// Event is one schedule record. StartTime/EndTime are zero-padded
// "HH:MM" strings; equal-width padding makes lexicographic comparison a
// valid time comparison.
type Event struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Date      time.Time  `json:"date"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Category  Category   `json:"category"`
	Recurring Recurrence `json:"recurring,omitempty"`
	Reminder  bool       `json:"reminder,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// SameDay 判断两个时间是否落在同一自然日
// SameDay reports whether two times fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
