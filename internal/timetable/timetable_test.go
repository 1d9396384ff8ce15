package timetable

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tv_reminders/internal/config"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.January, 7, hour, minute, 0, 0, time.UTC)
}

func TestCurrentPeriod(t *testing.T) {
	assert.Equal(t, "Registration", CurrentPeriod(at(8, 30)))
	assert.Equal(t, "Period 1", CurrentPeriod(at(8, 45))) // начало включительно
	assert.Equal(t, "Period 1", CurrentPeriod(at(9, 44)))
	assert.Equal(t, "Period 2", CurrentPeriod(at(9, 45))) // конец исключительно
	assert.Equal(t, "Break", CurrentPeriod(at(10, 50)))
	assert.Equal(t, "Lunch", CurrentPeriod(at(13, 20)))
	assert.Equal(t, "Period 5", CurrentPeriod(at(14, 0)))
	assert.Equal(t, "Outside school hours", CurrentPeriod(at(7, 0)))
	assert.Equal(t, "Outside school hours", CurrentPeriod(at(15, 30)))
}

func TestNextPeriod(t *testing.T) {
	name, start := NextPeriod(at(7, 0))
	assert.Equal(t, "Registration", name)
	assert.Equal(t, "08:30", start)

	name, start = NextPeriod(at(9, 0))
	assert.Equal(t, "Period 2", name)
	assert.Equal(t, "09:45", start)

	name, start = NextPeriod(at(15, 30))
	assert.Equal(t, "", name)
	assert.Equal(t, "", start)
}

func TestNormalizeWeekType(t *testing.T) {
	assert.Equal(t, "Week A", NormalizeWeekType("A"))
	assert.Equal(t, "Week B", NormalizeWeekType("B"))
	assert.Equal(t, "Week A", NormalizeWeekType("Week A"))
	assert.Equal(t, "", NormalizeWeekType(""))
}

func TestBuildSnapshotFromService(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"week_type": "A"}`))
	}))
	defer ts.Close()

	config.Cfg.ScheduleAPIURL = ts.URL
	config.Cfg.HTTPTimeout = 5

	snap := BuildSnapshot(at(9, 0))
	assert.True(t, snap.Available)
	assert.Equal(t, "Week A", snap.WeekType)
	assert.Equal(t, "Period 1", snap.CurrentPeriod)
	assert.Equal(t, "Period 2", snap.NextPeriod)
	assert.Equal(t, "09:45", snap.NextPeriodTime)
	assert.False(t, snap.IsFriday)
	assert.False(t, snap.IsWeekend)
}

func TestBuildSnapshotServiceDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	config.Cfg.ScheduleAPIURL = ts.URL
	config.Cfg.HTTPTimeout = 5

	// Недоступный сервис даёт нейтральную метку и флаг недоступности.
	snap := BuildSnapshot(time.Date(2026, time.January, 9, 9, 0, 0, 0, time.UTC))
	assert.False(t, snap.Available)
	assert.Equal(t, "Week B", snap.WeekType)
	assert.True(t, snap.IsFriday)
}

func TestBuildSnapshotMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	config.Cfg.ScheduleAPIURL = ts.URL
	config.Cfg.HTTPTimeout = 5

	snap := BuildSnapshot(at(9, 0))
	assert.False(t, snap.Available)
	assert.Equal(t, "Week B", snap.WeekType)
}
