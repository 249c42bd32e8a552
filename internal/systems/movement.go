package systems

import (
	"delve-server/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewX, NewY int
	HasMoved   bool
	BlockedBy  *domain.Entity // Если врезались в кого-то (для атаки)
	IsWall     bool           // Если уперлись в стену или край карты
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
//
// Выход за границы и непроходимый тайл - не ошибки, а обычный исход
// хода: вызывающий просто не двигает актора.
func CalculateMove(e *domain.Entity, dx, dy int, m *domain.GameMap) MovementResult {
	targetPos := e.Pos.Shift(dx, dy)

	res := MovementResult{NewX: targetPos.X, NewY: targetPos.Y}

	// 1. Проверка границ
	if !m.InBounds(targetPos.X, targetPos.Y) {
		res.IsWall = true
		return res
	}

	// 2. Проверка проходимости тайла
	if !m.Walkable(targetPos.X, targetPos.Y) {
		res.IsWall = true
		return res
	}

	// 3. Проверка сущностей.
	// Блокируют только живые тела: предметы и трупы проходимы.
	if other := m.BlockingEntityAt(targetPos.X, targetPos.Y); other != nil && other.ID != e.ID {
		res.BlockedBy = other
		return res
	}

	res.HasMoved = true
	return res
}

// ApplyMove переносит актора в новую клетку, обновляя пространственный индекс.
func ApplyMove(e *domain.Entity, res MovementResult, m *domain.GameMap) {
	if !res.HasMoved {
		return
	}
	// Ошибка невозможна: CalculateMove уже проверил границы
	_ = m.UpdateEntityPos(e, res.NewX, res.NewY)
}
