package actions

import "delve-server/internal/engine/handlers"

// HandleEscape - выход из игры. Работает в любом режиме, в том числе
// после гибели героя.
func HandleEscape(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Вы покидаете подземелье.",
		MsgType: "INFO",
		Event:   handlers.EventEscape,
	}, nil
}
