package display

// DefaultScreenCapacity — ёмкость экрана по умолчанию, если она не задана конфигурацией.
const DefaultScreenCapacity = 7

// Screen — одна страница циклического показа на телевизоре.
type Screen struct {
	TodayReminders    []Item `json:"today_reminders"`
	TomorrowReminders []Item `json:"tomorrow_reminders"`
}

// Pagination — результат разбиения элементов по экранам.
type Pagination struct {
	NeedsPagination bool     `json:"needs_pagination"`
	TotalScreens    int      `json:"total_screens"`
	Screens         []Screen `json:"screens"`
}

// Paginate разбивает элементы сегодняшнего и следующего рабочего дня на
// экраны фиксированной ёмкости. Каждый экран сначала заполняется из начала
// сегодняшней очереди, остаток ёмкости — из завтрашней. Каждый элемент
// попадает ровно на один экран, относительный порядок сохраняется.
func Paginate(todayItems, tomorrowItems []Item, capacity int) Pagination {
	if capacity <= 0 {
		capacity = DefaultScreenCapacity
	}

	if len(todayItems)+len(tomorrowItems) <= capacity {
		return Pagination{
			NeedsPagination: false,
			TotalScreens:    1,
			Screens: []Screen{{
				TodayReminders:    todayItems,
				TomorrowReminders: tomorrowItems,
			}},
		}
	}

	screens := []Screen{}
	remainingToday := todayItems
	remainingTomorrow := tomorrowItems

	for len(remainingToday) > 0 || len(remainingTomorrow) > 0 {
		screenToday := []Item{}
		screenTomorrow := []Item{}
		count := 0

		for len(remainingToday) > 0 && count < capacity {
			screenToday = append(screenToday, remainingToday[0])
			remainingToday = remainingToday[1:]
			count++
		}

		for len(remainingTomorrow) > 0 && count < capacity {
			screenTomorrow = append(screenTomorrow, remainingTomorrow[0])
			remainingTomorrow = remainingTomorrow[1:]
			count++
		}

		screens = append(screens, Screen{
			TodayReminders:    screenToday,
			TomorrowReminders: screenTomorrow,
		})
	}

	return Pagination{
		NeedsPagination: true,
		TotalScreens:    len(screens),
		Screens:         screens,
	}
}
