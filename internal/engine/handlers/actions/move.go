package actions

import (
	"delve-server/internal/engine/handlers"
	"delve-server/internal/systems"
	"delve-server/pkg/api"
)

// HandleMove - шаг игрока. Шаг в клетку живого существа превращается
// в атаку ближнего боя; шаг в стену молча не происходит и ход не тратит.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res := systems.CalculateMove(ctx.Actor, p.Dx, p.Dy, ctx.Map)

	if res.BlockedBy != nil {
		out := systems.ApplyAttack(ctx.Actor, res.BlockedBy)
		return handlers.Result{
			Msg:      out.Msg,
			MsgType:  "COMBAT",
			EndsTurn: true,
		}, nil
	}

	if res.HasMoved {
		systems.ApplyMove(ctx.Actor, res, ctx.Map)
		return handlers.Result{EndsTurn: true}, nil
	}

	// Стена. Ход не потрачен.
	return handlers.EmptyResult(), nil
}
