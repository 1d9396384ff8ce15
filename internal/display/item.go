package display

// Item — единая форма элемента для отображения на экране.
// Объединяет напоминания и выдачи оборудования; создаётся заново на каждый
// запрос и после рендера не изменяется.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Time        *string `json:"time"`
	TimeDisplay string  `json:"time_display"`
	Date        string  `json:"date"`
	DateDisplay string  `json:"date_display"`
	IsLoan      bool    `json:"is_loan"`

	// Поля только для выдач
	Student  string `json:"student,omitempty"`
	ItemName string `json:"item,omitempty"`
	Days     string `json:"days,omitempty"`
	Original string `json:"original,omitempty"`

	// Флаги только для напоминаний (страница управления)
	IsWeekend              bool `json:"is_weekend,omitempty"`
	IsMondayNextWorkingDay bool `json:"is_monday_next_working_day,omitempty"`
}
