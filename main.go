package main

import (
	"log"

	_ "tv_reminders/docs"
	"tv_reminders/internal/config"
	"tv_reminders/internal/handlers"
	"tv_reminders/internal/logger"
	"tv_reminders/internal/models"
	"tv_reminders/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title	ТВ-доска напоминаний и выдач оборудования
func main() {
	if err := config.Load(); err != nil {
		log.Fatal("Ошибка получения конфигурации... ", err.Error())
	}

	logger.Init()

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.Reminder{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(config.Cfg.SessionSecret))
	r.Use(sessions.Sessions("tv_reminders_session", store))

	r.LoadHTMLGlob("templates/*")

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", handlers.RootHandler)
	r.GET("/display", handlers.TVDisplayHandler)

	manage := r.Group("/manage")
	{
		manage.GET("", handlers.ManageRemindersHandler)
		manage.POST("", handlers.SaveReminderHandler)
	}

	r.GET("/get_reminder/:id", handlers.GetReminderHandler)
	r.GET("/delete/:id", handlers.DeleteReminderHandler)

	if err := r.Run(":" + config.Cfg.ServerPort); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
