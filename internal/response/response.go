package response

// SuccessResponse представляет успешный ответ API
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// ErrorResponse представляет ответ с ошибкой API
type ErrorResponse struct {
	// Код ошибки для программной обработки
	// example: REMINDER_NOT_FOUND
	Code string `json:"code"`

	// Человекочитаемое сообщение об ошибке
	// example: Reminder not found
	Message string `json:"message"`

	// Дополнительные детали об ошибке (опционально)
	Details string `json:"details,omitempty"`
}

// ReminderResponse представляет напоминание в JSON-ответе API
type ReminderResponse struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	CreatedAt   string  `json:"created_at"`
}
