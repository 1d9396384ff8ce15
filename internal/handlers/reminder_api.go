package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tv_reminders/internal/models"
	"tv_reminders/internal/response"
	"tv_reminders/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetReminderHandler возвращает напоминание по ID для формы редактирования
// @Summary		Получение напоминания
// @Description	Возвращает напоминание в JSON; время приводится к HH:MM для HTML-поля ввода
// @Tags			manage
// @Produce		json
// @Param			id	path		string	true	"ID напоминания"
// @Success		200	{object}	response.ReminderResponse	"Напоминание"
// @Failure		400	{object}	response.ErrorResponse	"Неверный идентификатор (INVALID_REMINDER_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Напоминание не найдено (REMINDER_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/get_reminder/{id} [get]
func GetReminderHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_REMINDER_ID",
			Message: "Invalid reminder id",
		})
		return
	}

	var reminder models.Reminder
	if err := storage.DB.First(&reminder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "REMINDER_NOT_FOUND",
				Message: "Reminder not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Database connection failed",
			Details: err.Error(),
		})
		return
	}

	// HTML-поле ввода времени ждёт HH:MM, в базе хранится HH:MM:SS.
	timeValue := reminder.Time
	if reminder.Time != nil {
		if t, err := time.Parse("15:04:05", *reminder.Time); err == nil {
			short := t.Format("15:04")
			timeValue = &short
		}
	}

	c.JSON(http.StatusOK, response.ReminderResponse{
		ID:          reminder.ID,
		Date:        reminder.Date,
		Time:        timeValue,
		Title:       reminder.Title,
		Description: reminder.Description,
		Location:    reminder.Location,
		CreatedAt:   reminder.CreatedAt.Format(time.RFC3339),
	})
}

// DeleteReminderHandler удаляет напоминание
// @Summary		Удаление напоминания
// @Description	Удаляет напоминание по ID и возвращает на страницу управления
// @Tags			manage
// @Param			id	path	string	true	"ID напоминания"
// @Success		302
// @Router			/delete/{id} [get]
func DeleteReminderHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		addFlash(c, "error", "Reminder not found!")
		c.Redirect(http.StatusFound, "/manage")
		return
	}

	result := storage.DB.Delete(&models.Reminder{}, id)
	if result.Error != nil {
		addFlash(c, "error", "Database error: "+result.Error.Error())
	} else if result.RowsAffected > 0 {
		addFlash(c, "success", "Reminder deleted successfully!")
	} else {
		addFlash(c, "error", "Reminder not found!")
	}

	c.Redirect(http.StatusFound, "/manage")
}
