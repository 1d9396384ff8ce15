package main

import (
	"fmt"
	"log"
	"time"

	"tv_reminders/internal/config"
	"tv_reminders/internal/models"
	"tv_reminders/internal/storage"
	"tv_reminders/internal/workday"
)

func ptr(s string) *string { return &s }

// sample описывает одну тестовую запись; offset — смещение даты от сегодня в днях.
type sample struct {
	offset      int
	time        *string
	title       string
	description *string
	location    *string
}

// Тестовые данные на две с лишним недели: сегодня, завтра, эта и следующая неделя.
var samples = []sample{
	{0, ptr("09:00:00"), "Server Maintenance", ptr("Critical server updates"), ptr("Server Room")},
	{0, ptr("14:00:00"), "Team Meeting", ptr("Weekly progress review"), ptr("Conference Room")},

	{1, ptr("10:00:00"), "Network Check", ptr("Weekly network review"), ptr("Network Room")},
	{1, ptr("15:00:00"), "Training Session", ptr("Security awareness training"), ptr("Training Room")},

	{2, ptr("11:00:00"), "Backup Verification", ptr("Check all system backups"), ptr("Server Room")},
	{3, ptr("13:00:00"), "Equipment Check", ptr("Monthly hardware inspection"), ptr("IT Storage")},

	{7, ptr("09:30:00"), "Budget Meeting", ptr("Monthly budget review"), ptr("Executive Room")},
	{8, ptr("14:00:00"), "System Update", ptr("Deploy software patches"), ptr("All Systems")},
	{9, ptr("16:00:00"), "Vendor Call", ptr("Quarterly vendor review"), ptr("Conference Room")},

	{14, ptr("10:00:00"), "Annual Review", ptr("IT annual assessment"), ptr("IT Department")},
}

func main() {
	fmt.Println("Настройка базы данных ТВ-доски напоминаний")
	fmt.Println("==================================================")

	if err := config.Load(); err != nil {
		log.Fatal("Ошибка получения конфигурации... ", err.Error())
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.Reminder{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	today := time.Now()
	for _, s := range samples {
		reminder := models.Reminder{
			Date:        today.AddDate(0, 0, s.offset).Format(workday.DateLayout),
			Time:        s.time,
			Title:       s.title,
			Description: s.description,
			Location:    s.location,
		}
		if err := storage.DB.Create(&reminder).Error; err != nil {
			log.Println("Ошибка создания тестового напоминания:", err)
		}
	}

	var total int64
	storage.DB.Model(&models.Reminder{}).Count(&total)
	fmt.Printf("Тестовые напоминания добавлены, всего в базе: %d\n", total)

	reminders, err := storage.GetRemindersForDate(today.Format(workday.DateLayout))
	if err == nil {
		fmt.Println("Напоминания на сегодня:")
		for i, r := range reminders {
			timeDisplay := "All Day"
			if r.Time != nil {
				timeDisplay = (*r.Time)[:5]
			}
			fmt.Printf("%d. %8s | %s\n", i+1, timeDisplay, r.Title)
		}
	}

	fmt.Println("==================================================")
	fmt.Println("НАСТРОЙКА ЗАВЕРШЕНА!")
	fmt.Println("Управление: http://localhost:" + config.Cfg.ServerPort + "/manage")
	fmt.Println("Экран ТВ:   http://localhost:" + config.Cfg.ServerPort + "/display")
}
