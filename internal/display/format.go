package display

import (
	"fmt"
	"sort"
	"time"

	"tv_reminders/internal/loans"
	"tv_reminders/internal/models"
	"tv_reminders/internal/workday"
)

// Сентинел времени для напоминаний "на весь день": сортирует их в конец,
// строки HH:MM:SS сравниваются лексикографически.
const allDaySentinel = "23:59:59"

// parseTimeSafely разбирает время сначала как HH:MM:SS, затем как HH:MM.
func parseTimeSafely(raw string) (time.Time, bool) {
	if t, err := time.Parse("15:04:05", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("15:04", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatTimeForDisplay превращает время напоминания в 12-часовую подпись,
// например "02:00 PM". Отсутствующее или нечитаемое время — "All Day".
func FormatTimeForDisplay(raw *string) string {
	if raw == nil {
		return "All Day"
	}
	t, ok := parseTimeSafely(*raw)
	if !ok {
		return "All Day"
	}
	return t.Format("03:04 PM")
}

// FormatReminder приводит строку таблицы к форме Item.
func FormatReminder(r models.Reminder) Item {
	return Item{
		ID:          fmt.Sprintf("%d", r.ID),
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Time:        r.Time,
		TimeDisplay: FormatTimeForDisplay(r.Time),
		Date:        r.Date,
		IsLoan:      false,
	}
}

// FormatLoansForDisplay превращает строки выдач в элементы сегодняшнего дня.
// Заголовок — исходная строка целиком, порядок входного списка сохраняется.
func FormatLoansForDisplay(activeLoans []string, today time.Time) []Item {
	items := make([]Item, 0, len(activeLoans))
	for i, raw := range activeLoans {
		parsed := loans.ParseLoanString(raw)
		items = append(items, Item{
			ID:          fmt.Sprintf("loan_%d", i),
			Title:       raw,
			TimeDisplay: "LOAN",
			Date:        today.Format(workday.DateLayout),
			DateDisplay: "Today",
			IsLoan:      true,
			Student:     parsed.Student,
			ItemName:    parsed.Item,
			Days:        parsed.Days,
			Original:    raw,
		})
	}
	return items
}

// sortKey — ключ сортировки (дата, время-или-сентинел).
func sortKey(it Item) string {
	t := allDaySentinel
	if it.Time != nil {
		t = *it.Time
	}
	return it.Date + " " + t
}

// OrganizeReminders делит все напоминания на актуальные и прошедшие
// относительно сегодняшнего дня и навешивает подписи для страницы управления.
// Актуальные — по возрастанию (дата, время), прошедшие — по убыванию.
func OrganizeReminders(all []models.Reminder, today time.Time) (current, old []Item) {
	current = []Item{}
	old = []Item{}

	todayStr := today.Format(workday.DateLayout)
	todayIsFriday := workday.IsFriday(today)

	for _, r := range all {
		item := FormatReminder(r)

		if d, err := time.Parse(workday.DateLayout, r.Date); err == nil {
			item.DateDisplay = d.Format("Mon, Jan 02")
		} else {
			item.DateDisplay = r.Date
		}
		item.IsWeekend = workday.IsWeekendDate(r.Date)
		item.IsMondayNextWorkingDay = workday.IsMondayDate(r.Date) && todayIsFriday

		// Дата сравнивается как строка: формат YYYY-MM-DD упорядочен лексикографически.
		if r.Date >= todayStr {
			current = append(current, item)
		} else {
			old = append(old, item)
		}
	}

	sort.SliceStable(current, func(i, j int) bool {
		return sortKey(current[i]) < sortKey(current[j])
	})
	sort.SliceStable(old, func(i, j int) bool {
		return sortKey(old[i]) > sortKey(old[j])
	})

	return current, old
}
