package actions

import (
	"delve-server/internal/engine/handlers"
)

// HandleDescend - спуск по лестнице. Сам переход уровня выполняет движок:
// хендлер только проверяет, что игрок стоит на лестнице.
func HandleDescend(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor.Pos != ctx.Map.Downstairs {
		return handlers.Result{
			Msg:     "Здесь нет лестницы вниз.",
			MsgType: "ERROR",
		}, nil
	}

	return handlers.Result{Event: handlers.EventDescend}, nil
}
