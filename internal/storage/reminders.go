package storage

import (
	"tv_reminders/internal/models"
)

// Напоминания без времени сортируются последними: NULL заменяется
// сентинелом '23:59:59', строки времени сравниваются лексикографически.
const timeOrderClause = "CASE WHEN time IS NULL THEN '23:59:59' ELSE time END"

// GetRemindersForDate возвращает напоминания на дату, упорядоченные по времени.
func GetRemindersForDate(date string) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := DB.
		Where("date = ?", date).
		Order(timeOrderClause).
		Find(&reminders).Error
	return reminders, err
}

// GetAllReminders возвращает все напоминания без гарантии порядка.
func GetAllReminders() ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := DB.Find(&reminders).Error
	return reminders, err
}
