package handlers

import (
	"encoding/json"

	"delve-server/internal/domain"
)

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Map   *domain.GameMap
	Actor *domain.Entity // Тот, кто выполняет команду (Игрок)
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, DEATH, ERROR)

	// EndsTurn true, если действие потратило ход: после него
	// двигаются враги.
	EndsTurn bool

	// Event - имя события уровня движка (DESCEND, ESCAPE),
	// которое хендлер сам обработать не может.
	Event string
}

// События, которые обрабатывает движок, а не хендлер.
const (
	EventDescend = "DESCEND"
	EventEscape  = "ESCAPE"
)

// HandlerFunc - это контракт для любой команды (MOVE, WAIT, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
