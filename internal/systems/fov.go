package systems

import (
	"delve-server/internal/domain"
	"delve-server/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// UpdateFOV пересчитывает поле зрения от точки обзора.
//
// Маска Visible заменяется целиком (не сливается с прошлым состоянием),
// после чего Explored поглощает ее: explored |= visible. Прошлые значения
// Visible нигде больше не нужны.
func UpdateFOV(m *domain.GameMap, pos domain.Position, radius int) {
	visible := ComputeVisibleTiles(m, pos, radius)

	for i := range m.Visible {
		m.Visible[i] = false
	}
	for idx := range visible {
		m.Visible[idx] = true
		m.Explored[idx] = true
	}
}

// ComputeVisibleTiles возвращает мапу индексов {index: true}, которые видны.
func ComputeVisibleTiles(m *domain.GameMap, pos domain.Position, radius int) map[int]bool {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": pos,
		"radius":       radius,
	})

	visibleMap := make(map[int]bool)
	if radius <= 0 {
		fovLogger.Warn("FOV calculation skipped for blind observer (radius <= 0)")
		return visibleMap // Слепой
	}

	// 1. Центр всегда виден
	visibleMap[m.GetIndex(pos.X, pos.Y)] = true

	// 2. Запускаем рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(m, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visibleMap)
	}

	fovLogger.WithField("visible_tiles", len(visibleMap)).Debug("FOV calculation complete")

	return visibleMap
}

func castLight(m *domain.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visibleMap map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			// Проверка границ и радиуса
			if m.InBounds(X, Y) {
				if float64(dx*dx+dy*dy) < radiusSq {
					visibleMap[m.GetIndex(X, Y)] = true
				}
			}

			// Логика теней
			if blocked {
				// Мы идем вдоль стены...
				if isBlocking(m, X, Y) {
					newStart = rSlope
					continue
				} else {
					// Стена кончилась, началась пустота
					blocked = false
					start = newStart
				}
			} else {
				// Мы шли по пустоте и наткнулись на стену
				if isBlocking(m, X, Y) && j < radius {
					blocked = true
					// Рекурсивно запускаем сканирование следующего ряда
					castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visibleMap)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// isBlocking проверяет, блокирует ли клетка взгляд
func isBlocking(m *domain.GameMap, x, y int) bool {
	// Выход за границы считается блокирующим
	return !m.Transparent(x, y)
}
