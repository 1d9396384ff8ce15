package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

// Config содержит всю конфигурацию процесса. Заполняется один раз при старте.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`

	// PostgreSQL
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"tv_reminders"`

	// Redis (кэш для недельного расписания)
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Внешние сервисы
	LoansAPIURL    string `env:"LOANS_API_URL" envDefault:"http://172.19.28.7:5006/api/active_loans"`
	ScheduleAPIURL string `env:"SCHEDULE_API_URL" envDefault:"http://172.19.28.7:5007/api/week"`
	HTTPTimeout    int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"5"` // Таймаут запросов к внешним API, сек

	// Отображение
	ScreenCapacity int `env:"SCREEN_CAPACITY" envDefault:"7"` // Максимум элементов на одном экране ТВ

	SessionSecret string `env:"SESSION_SECRET" envDefault:"change-this-in-production"`
}

// Load загружает .env (если не отключено через ENV_CHEK) и разбирает переменные окружения.
func Load() error {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		_ = godotenv.Load()
	}

	if err := env.Parse(&Cfg); err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}
	return nil
}
