package models

import (
	"gorm.io/gorm"
)

type Reminder struct {
	gorm.Model
	Date        string  `gorm:"index;not null"` // Дата в формате YYYY-MM-DD
	Time        *string // Время HH:MM:SS, nil — напоминание на весь день
	Title       string  `gorm:"not null"`
	Description *string
	Location    *string
}
