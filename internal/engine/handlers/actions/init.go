package actions

import "delve-server/internal/engine/handlers"

// HandleInit не меняет мир: клиент просто запрашивает первый снимок.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать в подземелье. Удачи!",
		MsgType: "INFO",
	}, nil
}
