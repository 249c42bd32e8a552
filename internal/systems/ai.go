package systems

import (
	"delve-server/internal/domain"
	"math"
)

// NPCDecision - что монстр решил сделать в свой ход.
type NPCDecision struct {
	Action domain.ActionType
	Dx, Dy int // Для ActionMove
}

// ComputeNPCAction решает, что делать NPC в его ход.
// Монстр бездействует, пока не видит игрока; в соседней клетке бьет
// (шаг в клетку игрока превращается в атаку), иначе идет навстречу.
// К останкам монстры продолжают стягиваться, но атаковать их нечем.
func ComputeNPCAction(npc *domain.Entity, player *domain.Entity, m *domain.GameMap) NPCDecision {
	if npc.AI == nil || !npc.IsAlive() || !npc.AI.Hostile {
		return NPCDecision{Action: domain.ActionWait}
	}
	if player == nil {
		return NPCDecision{Action: domain.ActionWait}
	}

	// Если не видим цель, не делаем ничего.
	if !HasLineOfSight(m, npc.Pos, player.Pos) {
		return NPCDecision{Action: domain.ActionWait}
	}

	// Если в радиусе атаки (включая диагонали) - шаг прямо в клетку цели
	if npc.Pos.IsAdjacent(player.Pos) {
		if !player.IsAlive() {
			return NPCDecision{Action: domain.ActionWait}
		}
		dx, dy := npc.Pos.DirectionTo(player.Pos)
		return NPCDecision{Action: domain.ActionMove, Dx: dx, Dy: dy}
	}

	moveDx, moveDy := calculateSmartMove(npc, player, m)
	if moveDx == 0 && moveDy == 0 {
		return NPCDecision{Action: domain.ActionWait}
	}

	return NPCDecision{Action: domain.ActionMove, Dx: moveDx, Dy: moveDy}
}

// Внутренние утилиты (приватные для пакета systems)

func calculateSmartMove(npc, target *domain.Entity, m *domain.GameMap) (int, int) {
	dxRaw := target.Pos.X - npc.Pos.X
	dyRaw := target.Pos.Y - npc.Pos.Y

	stepX, stepY := npc.Pos.DirectionTo(target.Pos)

	// Попытка 1: Идеальный путь
	if checkMove(npc, stepX, stepY, m) {
		return stepX, stepY
	}

	// Попытка 2: Smart Sliding (выбор приоритетной оси)
	tryXFirst := math.Abs(float64(dxRaw)) > math.Abs(float64(dyRaw))

	if tryXFirst {
		if stepX != 0 && checkMove(npc, stepX, 0, m) {
			return stepX, 0
		}
		if stepY != 0 && checkMove(npc, 0, stepY, m) {
			return 0, stepY
		}
	} else {
		if stepY != 0 && checkMove(npc, 0, stepY, m) {
			return 0, stepY
		}
		if stepX != 0 && checkMove(npc, stepX, 0, m) {
			return stepX, 0
		}
	}

	return 0, 0 // Тупик
}

func checkMove(e *domain.Entity, dx, dy int, m *domain.GameMap) bool {
	res := CalculateMove(e, dx, dy, m)
	return res.HasMoved
}
