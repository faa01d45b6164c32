package store

import (
	"maps"
	"slices"
	"time"
)

// CompletionTrend counts completed to-dos per UTC calendar day of their
// completion date. Days with no completions are omitted. The result does not
// depend on the order of todos.
func CompletionTrend(todos []Todo) Trend {
	counts := make(map[string]int)
	for _, td := range todos {
		if !td.Completed || td.CompletionDate == "" {
			continue
		}
		day, ok := completionDay(td.CompletionDate, time.UTC)
		if !ok {
			continue
		}
		counts[day]++
	}

	trend := Trend{
		Dates:  slices.Sorted(maps.Keys(counts)),
		Counts: make([]int, 0, len(counts)),
	}
	if trend.Dates == nil {
		trend.Dates = []string{}
	}
	for _, day := range trend.Dates {
		trend.Counts = append(trend.Counts, counts[day])
	}
	return trend
}

// CompletedOn counts the to-dos completed on day's calendar date, read in
// day's location.
func CompletedOn(todos []Todo, day time.Time) int {
	want := day.Format(DayLayout)
	n := 0
	for _, td := range todos {
		if !td.Completed || td.CompletionDate == "" {
			continue
		}
		if got, ok := completionDay(td.CompletionDate, day.Location()); ok && got == want {
			n++
		}
	}
	return n
}

// completionDay accepts RFC 3339 timestamps, read in loc, and failing that
// anything that starts with a YYYY-MM-DD date.
func completionDay(s string, loc *time.Location) (string, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc).Format(DayLayout), true
	}
	if len(s) >= len(DayLayout) {
		if _, err := time.Parse(DayLayout, s[:len(DayLayout)]); err == nil {
			return s[:len(DayLayout)], true
		}
	}
	return "", false
}

// Total is the number of completions in the trend.
func (t Trend) Total() int {
	total := 0
	for _, c := range t.Counts {
		total += c
	}
	return total
}

// Max is the largest daily count, or 0 for an empty trend.
func (t Trend) Max() int {
	m := 0
	for _, c := range t.Counts {
		m = max(m, c)
	}
	return m
}

// Last keeps only the n most recent days.
func (t Trend) Last(n int) Trend {
	if n <= 0 || len(t.Dates) <= n {
		return t
	}
	return Trend{
		Dates:  t.Dates[len(t.Dates)-n:],
		Counts: t.Counts[len(t.Counts)-n:],
	}
}
