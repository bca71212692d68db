package planner

import "fmt"

// 空闲时段分析的固定参考时段：08:00 到 17:00 共 10 个整点
// Fixed reference slots for free-time analysis: 08:00 through 17:00
const (
	slotFirstHour = 8
	slotLastHour  = 18 // exclusive
)

// Slots 返回全部整点时段标签 / Slots returns every hourly slot label
func Slots() []string {
	out := make([]string, 0, slotLastHour-slotFirstHour)
	for hour := slotFirstHour; hour < slotLastHour; hour++ {
		out = append(out, fmt.Sprintf("%02d:00", hour))
	}
	return out
}

// FreeSlots 返回未被任一事件覆盖的时段标签，保持顺序。时段被占用的
// 条件是其标签落在某事件的 [start, end) 区间内；标签与事件时间都是补零
// 的 "HH:MM"，因此字典序比较成立。不做区间合并，也不做小时以下粒度。
// FreeSlots returns the ordered slot labels not covered by any event of
// the day. A slot is busy when its label falls within [start, end) of
// an event; both sides are zero-padded "HH:MM" so lexicographic
// comparison is valid. No overlap merging, no sub-hour granularity.
func FreeSlots(dayEvents []Event) []string {
	free := make([]string, 0, slotLastHour-slotFirstHour)
	for _, slot := range Slots() {
		busy := false
		for _, ev := range dayEvents {
			if slot >= ev.StartTime && slot < ev.EndTime {
				busy = true
				break
			}
		}
		if !busy {
			free = append(free, slot)
		}
	}
	return free
}
