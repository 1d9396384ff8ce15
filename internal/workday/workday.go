package workday

import "time"

// DateLayout — формат дат, в котором напоминания хранятся в базе.
const DateLayout = "2006-01-02"

// NextWorkingDay возвращает следующий рабочий день (понедельник–пятница).
// В пятницу возвращается понедельник (+3 дня), в остальные будни — завтра.
// Суббота и воскресенье схлопываются в ближайший понедельник (+2 и +1).
func NextWorkingDay(today time.Time) time.Time {
	switch today.Weekday() {
	case time.Friday:
		return today.AddDate(0, 0, 3)
	case time.Saturday:
		return today.AddDate(0, 0, 2)
	default:
		return today.AddDate(0, 0, 1)
	}
}

// NextWorkingDayName возвращает подпись следующего рабочего дня для отображения.
func NextWorkingDayName(today time.Time) string {
	switch today.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return "Monday"
	default:
		return "Tomorrow"
	}
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func IsMonday(t time.Time) bool {
	return t.Weekday() == time.Monday
}

func IsFriday(t time.Time) bool {
	return t.Weekday() == time.Friday
}

// IsWeekendDate проверяет, выпадает ли дата в формате YYYY-MM-DD на выходные.
// Некорректная строка даты выходным днём не считается.
func IsWeekendDate(date string) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return IsWeekend(t)
}

// IsMondayDate проверяет, выпадает ли дата в формате YYYY-MM-DD на понедельник.
func IsMondayDate(date string) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return IsMonday(t)
}
