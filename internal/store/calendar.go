package store

import "time"

// The agenda window shown around a focused day.
const (
	WindowDaysBefore = 15
	WindowDaysAfter  = 85
)

// CalendarWindow lays out the days from WindowDaysBefore days before focus
// up to WindowDaysAfter days after it. Days without items come back as
// placeholders. Nothing here is ever persisted.
func CalendarWindow(focus time.Time, items map[string][]AgendaItem) []CalendarDay {
	start := time.Date(focus.Year(), focus.Month(), focus.Day(), 0, 0, 0, 0, focus.Location())
	days := make([]CalendarDay, 0, WindowDaysBefore+WindowDaysAfter)
	for i := -WindowDaysBefore; i < WindowDaysAfter; i++ {
		key := start.AddDate(0, 0, i).Format(DayLayout)
		bucket := items[key]
		day := CalendarDay{Date: key, Placeholder: len(bucket) == 0}
		if len(bucket) > 0 {
			day.Items = append([]AgendaItem(nil), bucket...)
		}
		days = append(days, day)
	}
	return days
}
