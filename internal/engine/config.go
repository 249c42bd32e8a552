package engine

import (
	"time"

	"delve-server/pkg/dungeon"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни прохождения.
	Seed int64

	// Gen - настройки генератора уровней.
	Gen dungeon.Params
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed: time.Now().UnixNano(),
		Gen:  dungeon.DefaultParams(),
	}
}
