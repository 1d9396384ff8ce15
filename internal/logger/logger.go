package logger

import (
	"log"

	"go.uber.org/zap"
)

var L *zap.Logger

// Init инициализирует глобальный логгер. Вызывается один раз из main.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Ошибка инициализации логгера: ", err.Error())
	}
	L = l
}

func init() {
	// До вызова Init (например в unit-тестах) работает no-op логгер.
	L = zap.NewNop()
}
