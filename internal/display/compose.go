package display

import (
	"time"

	"tv_reminders/internal/loans"
	"tv_reminders/internal/logger"
	"tv_reminders/internal/storage"
	"tv_reminders/internal/timetable"
	"tv_reminders/internal/workday"

	"go.uber.org/zap"
)

// TimeInfo — подписи даты и времени в шапке экрана.
type TimeInfo struct {
	DisplayDate string `json:"display_date"`
	CurrentTime string `json:"current_time"`
}

// ViewModel — всё, что нужно шаблону экрана телевизора.
type ViewModel struct {
	TimeInfo    TimeInfo           `json:"time_info"`
	Pagination  Pagination         `json:"pagination_info"`
	NextDayName string             `json:"next_day_name"`
	LoansCount  int                `json:"loans_count"`
	Schedule    timetable.Snapshot `json:"schedule"`
}

// fetchFormattedReminders читает напоминания на дату и приводит их к Item.
// Ошибка базы логируется и даёт пустой список: экран обязан отрисоваться.
func fetchFormattedReminders(date string) []Item {
	rows, err := storage.GetRemindersForDate(date)
	if err != nil {
		logger.L.Error("Ошибка чтения напоминаний", zap.String("date", date), zap.Error(err))
		return []Item{}
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, FormatReminder(r))
	}
	return items
}

// Compose собирает модель экрана: напоминания на сегодня и следующий рабочий
// день, активные выдачи (после напоминаний), пагинация и снимок расписания.
func Compose(now time.Time, capacity int) ViewModel {
	todayStr := now.Format(workday.DateLayout)
	nextDayStr := workday.NextWorkingDay(now).Format(workday.DateLayout)

	todayReminders := fetchFormattedReminders(todayStr)
	tomorrowReminders := fetchFormattedReminders(nextDayStr)

	activeLoans := loans.FetchActiveLoans()
	loanItems := FormatLoansForDisplay(activeLoans, now)

	// Выдачи всегда идут после сегодняшних напоминаний.
	todayItems := append(todayReminders, loanItems...)

	return ViewModel{
		TimeInfo: TimeInfo{
			DisplayDate: now.Format("Monday, January 02, 2006"),
			CurrentTime: now.Format("03:04 PM"),
		},
		Pagination:  Paginate(todayItems, tomorrowReminders, capacity),
		NextDayName: workday.NextWorkingDayName(now),
		LoansCount:  len(activeLoans),
		Schedule:    timetable.BuildSnapshot(now),
	}
}
