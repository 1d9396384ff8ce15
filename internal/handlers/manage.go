package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"tv_reminders/internal/display"
	"tv_reminders/internal/loans"
	"tv_reminders/internal/models"
	"tv_reminders/internal/storage"
	"tv_reminders/internal/workday"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash-сообщения живут в cookie-сессии между POST-redirect-GET.
func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	_ = session.Save()
}

func takeFlashes(c *gin.Context, category string) []string {
	session := sessions.Default(c)
	raw := session.Flashes(category)
	_ = session.Save()

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// ManageRemindersHandler отображает страницу управления
// @Summary		Страница управления напоминаниями
// @Description	Показывает актуальные и прошедшие напоминания и список активных выдач
// @Tags			manage
// @Produce		html
// @Success		200	{string}	string	"HTML страницы управления"
// @Router			/manage [get]
func ManageRemindersHandler(c *gin.Context) {
	now := time.Now()

	errorMessages := takeFlashes(c, "error")
	successMessages := takeFlashes(c, "success")

	all, err := storage.GetAllReminders()
	if err != nil {
		errorMessages = append(errorMessages, "Database connection failed!")
		all = []models.Reminder{}
	}
	current, old := display.OrganizeReminders(all, now)

	activeLoansRaw := loans.FetchActiveLoans()
	activeLoans := make([]loans.Loan, 0, len(activeLoansRaw))
	for _, raw := range activeLoansRaw {
		activeLoans = append(activeLoans, loans.ParseLoanString(raw))
	}

	c.HTML(http.StatusOK, "manage.html", gin.H{
		"current_reminders": current,
		"old_reminders":     old,
		"is_friday":         workday.IsFriday(now),
		"active_loans":      activeLoans,
		"loans_count":       len(activeLoansRaw),
		"errors":            errorMessages,
		"successes":         successMessages,
	})
}

// SaveReminderHandler обрабатывает форму добавления/редактирования
// @Summary		Сохранение напоминания
// @Description	Создаёт или обновляет напоминание в зависимости от поля action (add или edit)
// @Tags			manage
// @Accept			x-www-form-urlencoded
// @Param			action		formData	string	false	"add или edit"
// @Param			reminder_id	formData	string	false	"ID напоминания (для edit)"
// @Param			date		formData	string	true	"Дата YYYY-MM-DD"
// @Param			time		formData	string	false	"Время HH:MM"
// @Param			title		formData	string	true	"Заголовок"
// @Param			description	formData	string	false	"Описание"
// @Param			location	formData	string	false	"Место"
// @Success		302
// @Router			/manage [post]
func SaveReminderHandler(c *gin.Context) {
	action := c.DefaultPostForm("action", "add")
	reminderID := c.PostForm("reminder_id")
	date := c.PostForm("date")
	timeStr := c.PostForm("time")
	title := c.PostForm("title")
	description := c.PostForm("description")
	location := c.PostForm("location")

	if date == "" {
		addFlash(c, "error", "Date is required!")
		c.Redirect(http.StatusFound, "/manage")
		return
	}

	if strings.TrimSpace(title) == "" {
		addFlash(c, "error", "Title is required!")
		c.Redirect(http.StatusFound, "/manage")
		return
	}

	reminderDate, err := time.Parse(workday.DateLayout, date)
	if err != nil {
		addFlash(c, "error", "Invalid date format!")
		c.Redirect(http.StatusFound, "/manage")
		return
	}

	if workday.IsWeekend(reminderDate) {
		addFlash(c, "error", "Cannot schedule reminders on weekends! Please choose a weekday.")
		c.Redirect(http.StatusFound, "/manage")
		return
	}

	today := time.Now().Format(workday.DateLayout)
	if date < today {
		addFlash(c, "error", "Cannot schedule reminders in the past!")
		c.Redirect(http.StatusFound, "/manage")
		return
	}

	// Форма присылает HH:MM, в базе время хранится как HH:MM:SS.
	var timePtr *string
	if timeStr != "" {
		t, err := time.Parse("15:04", timeStr)
		if err != nil {
			addFlash(c, "error", "Invalid time format!")
			c.Redirect(http.StatusFound, "/manage")
			return
		}
		normalized := t.Format("15:04:05")
		timePtr = &normalized
	}

	var descriptionPtr, locationPtr *string
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		descriptionPtr = &trimmed
	}
	if trimmed := strings.TrimSpace(location); trimmed != "" {
		locationPtr = &trimmed
	}
	title = strings.TrimSpace(title)

	if action == "edit" && reminderID != "" {
		id, err := strconv.Atoi(reminderID)
		if err != nil {
			addFlash(c, "error", "Reminder not found!")
			c.Redirect(http.StatusFound, "/manage")
			return
		}

		// Updates с map: пустые опциональные поля должны обнуляться в базе.
		result := storage.DB.Model(&models.Reminder{}).Where("id = ?", id).Updates(map[string]interface{}{
			"date":        date,
			"time":        timePtr,
			"title":       title,
			"description": descriptionPtr,
			"location":    locationPtr,
		})
		if result.Error != nil {
			addFlash(c, "error", "Database error: "+result.Error.Error())
		} else if result.RowsAffected > 0 {
			addFlash(c, "success", "Reminder updated successfully!")
		} else {
			addFlash(c, "error", "Reminder not found!")
		}
	} else {
		reminder := models.Reminder{
			Date:        date,
			Time:        timePtr,
			Title:       title,
			Description: descriptionPtr,
			Location:    locationPtr,
		}
		if err := storage.DB.Create(&reminder).Error; err != nil {
			addFlash(c, "error", "Database error: "+err.Error())
		} else {
			addFlash(c, "success", "Reminder added successfully!")
		}
	}

	c.Redirect(http.StatusFound, "/manage")
}
