package timetable

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"tv_reminders/internal/config"
	"tv_reminders/internal/logger"
	"tv_reminders/internal/storage"
	"tv_reminders/internal/workday"

	"go.uber.org/zap"
)

// Period — один интервал учебного дня со строгими границами HH:MM.
type Period struct {
	Name  string
	Start string
	End   string
}

// Статическое расписание учебного дня. Одинаково для всех будних дней.
var periods = []Period{
	{Name: "Registration", Start: "08:30", End: "08:45"},
	{Name: "Period 1", Start: "08:45", End: "09:45"},
	{Name: "Period 2", Start: "09:45", End: "10:45"},
	{Name: "Break", Start: "10:45", End: "11:05"},
	{Name: "Period 3", Start: "11:05", End: "12:05"},
	{Name: "Period 4", Start: "12:05", End: "13:05"},
	{Name: "Lunch", Start: "13:05", End: "13:50"},
	{Name: "Period 5", Start: "13:50", End: "14:50"},
}

const outsideHours = "Outside school hours"

// Snapshot — сведения о текущем моменте учебной недели для экрана.
type Snapshot struct {
	CurrentPeriod  string `json:"current_period"`
	NextPeriod     string `json:"next_period"`
	NextPeriodTime string `json:"next_period_time"`
	WeekType       string `json:"week_type"`
	IsFriday       bool   `json:"is_friday"`
	IsWeekend      bool   `json:"is_weekend"`
	Available      bool   `json:"schedule_available"`
}

// minutesOfDay переводит момент времени в минуты от полуночи.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// parseHHMM разбирает границу периода. Таблица статическая, ошибок не бывает.
func parseHHMM(s string) int {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0
	}
	return minutesOfDay(t)
}

// CurrentPeriod возвращает название периода, содержащего момент now
// (включая начало, исключая конец), либо "Outside school hours".
func CurrentPeriod(now time.Time) string {
	m := minutesOfDay(now)
	for _, p := range periods {
		if m >= parseHHMM(p.Start) && m < parseHHMM(p.End) {
			return p.Name
		}
	}
	return outsideHours
}

// NextPeriod возвращает название и время начала ближайшего периода после now.
// После конца учебного дня возвращаются пустые значения.
func NextPeriod(now time.Time) (name, startsAt string) {
	m := minutesOfDay(now)
	for _, p := range periods {
		if parseHHMM(p.Start) > m {
			return p.Name, p.Start
		}
	}
	return "", ""
}

type weekResponse struct {
	WeekType string `json:"week_type"`
}

// NormalizeWeekType приводит метку недели к виду "Week A"/"Week B".
// Голые "A"/"B" дополняются префиксом, уже полные метки не меняются.
func NormalizeWeekType(raw string) string {
	switch raw {
	case "A", "B":
		return "Week " + raw
	default:
		return raw
	}
}

var ctx = context.Background()

const weekTypeCacheKey = "week_type"

// FetchWeekType запрашивает метку недели у внешнего сервиса расписания.
// Результат кэшируется в Redis на час. Любая ошибка даёт ok=false — снимок
// помечается как недоступный, вызывающая сторона подставляет нейтральную метку.
func FetchWeekType() (weekType string, ok bool) {
	if storage.RedisClient != nil {
		if cached, err := storage.RedisClient.Get(ctx, weekTypeCacheKey).Result(); err == nil && cached != "" {
			return cached, true
		}
	}

	client := &http.Client{Timeout: time.Duration(config.Cfg.HTTPTimeout) * time.Second}

	resp, err := client.Get(config.Cfg.ScheduleAPIURL)
	if err != nil {
		logger.L.Error("Ошибка запроса к сервису расписания", zap.Error(err))
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.L.Error("Сервис расписания вернул ошибку", zap.Int("status", resp.StatusCode))
		return "", false
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		logger.L.Error("Ошибка чтения ответа сервиса расписания", zap.Error(err))
		return "", false
	}

	var parsed weekResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logger.L.Error("Ошибка декодирования ответа сервиса расписания", zap.Error(err))
		return "", false
	}
	if parsed.WeekType == "" {
		logger.L.Warn("Сервис расписания не вернул метку недели")
		return "", false
	}

	weekType = NormalizeWeekType(parsed.WeekType)

	if storage.RedisClient != nil {
		storage.RedisClient.Set(ctx, weekTypeCacheKey, weekType, time.Hour)
	}

	return weekType, true
}

// BuildSnapshot собирает снимок расписания на момент now. Периоды берутся из
// локальной таблицы, метка недели — из внешнего сервиса; при его недоступности
// подставляется нейтральная "Week B", а снимок помечается как недоступный.
func BuildSnapshot(now time.Time) Snapshot {
	weekType, ok := FetchWeekType()
	if !ok {
		weekType = "Week B"
	}

	nextName, nextStart := NextPeriod(now)

	return Snapshot{
		CurrentPeriod:  CurrentPeriod(now),
		NextPeriod:     nextName,
		NextPeriodTime: nextStart,
		WeekType:       weekType,
		IsFriday:       workday.IsFriday(now),
		IsWeekend:      workday.IsWeekend(now),
		Available:      ok,
	}
}
