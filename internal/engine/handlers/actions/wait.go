package actions

import "delve-server/internal/engine/handlers"

// HandleWait - игрок пропускает ход, мир при этом живет.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:      "Вы пропускаете ход.",
		MsgType:  "INFO",
		EndsTurn: true,
	}, nil
}
