package handlers

import (
	"net/http"
	"time"

	"tv_reminders/internal/config"
	"tv_reminders/internal/display"

	"github.com/gin-gonic/gin"
)

// RootHandler перенаправляет корень на страницу управления
// @Summary		Корневой маршрут
// @Description	Перенаправляет на страницу управления напоминаниями
// @Tags			display
// @Success		302
// @Router			/ [get]
func RootHandler(c *gin.Context) {
	c.Redirect(http.StatusFound, "/manage")
}

// TVDisplayHandler отображает экран телевизора
// @Summary		Экран телевизора
// @Description	Собирает напоминания на сегодня и следующий рабочий день, активные выдачи и расписание, разбивает на экраны
// @Tags			display
// @Produce		html
// @Success		200	{string}	string	"HTML экрана"
// @Router			/display [get]
func TVDisplayHandler(c *gin.Context) {
	vm := display.Compose(time.Now(), config.Cfg.ScreenCapacity)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"time_info":       vm.TimeInfo,
		"pagination_info": vm.Pagination,
		"next_day_name":   vm.NextDayName,
		"loans_count":     vm.LoansCount,
		"schedule":        vm.Schedule,
	})
}
