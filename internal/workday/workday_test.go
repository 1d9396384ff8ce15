package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestNextWorkingDay(t *testing.T) {
	// 2026-01-05 — понедельник
	monday := date(2026, time.January, 5)

	cases := []struct {
		name     string
		today    time.Time
		expected time.Time
		label    string
	}{
		{"понедельник", monday, monday.AddDate(0, 0, 1), "Tomorrow"},
		{"вторник", monday.AddDate(0, 0, 1), monday.AddDate(0, 0, 2), "Tomorrow"},
		{"среда", monday.AddDate(0, 0, 2), monday.AddDate(0, 0, 3), "Tomorrow"},
		{"четверг", monday.AddDate(0, 0, 3), monday.AddDate(0, 0, 4), "Tomorrow"},
		{"пятница", monday.AddDate(0, 0, 4), monday.AddDate(0, 0, 7), "Monday"},
		{"суббота", monday.AddDate(0, 0, 5), monday.AddDate(0, 0, 7), "Monday"},
		{"воскресенье", monday.AddDate(0, 0, 6), monday.AddDate(0, 0, 7), "Monday"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextWorkingDay(tc.today)
			assert.Equal(t, tc.expected.Format(DateLayout), got.Format(DateLayout))
			assert.Equal(t, time.Monday, got.Weekday(), "следующий рабочий день не может быть выходным")
			assert.Equal(t, tc.label, NextWorkingDayName(tc.today))
		})
	}
}

func TestNextWorkingDaySkipsWeekend(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		today := date(2026, time.January, 5).AddDate(0, 0, offset)
		next := NextWorkingDay(today)
		assert.False(t, IsWeekend(next), "для %s получен выходной %s", today.Weekday(), next.Weekday())
	}
}

func TestWeekdayHelpers(t *testing.T) {
	assert.True(t, IsMonday(date(2026, time.January, 5)))
	assert.False(t, IsMonday(date(2026, time.January, 6)))

	assert.True(t, IsFriday(date(2026, time.January, 9)))
	assert.False(t, IsFriday(date(2026, time.January, 8)))

	assert.True(t, IsWeekend(date(2026, time.January, 10)))
	assert.True(t, IsWeekend(date(2026, time.January, 11)))
	assert.False(t, IsWeekend(date(2026, time.January, 12)))
}

func TestDateStringHelpers(t *testing.T) {
	assert.True(t, IsWeekendDate("2026-01-10"))
	assert.False(t, IsWeekendDate("2026-01-12"))
	assert.False(t, IsWeekendDate("не-дата"))

	assert.True(t, IsMondayDate("2026-01-12"))
	assert.False(t, IsMondayDate("2026-01-13"))
	assert.False(t, IsMondayDate(""))
}
