package dungeon

import "delve-server/internal/domain"

// RectangularRoom - прямоугольная комната, заданная углами [X1,X2] x [Y1,Y2].
// Внешний периметр остается стеной, полом становится только Inner.
type RectangularRoom struct {
	X1, Y1, X2, Y2 int
}

// NewRoom создает комнату по верхнему левому углу и размерам.
func NewRoom(x, y, w, h int) RectangularRoom {
	return RectangularRoom{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center возвращает центр комнаты (целочисленный).
func (r RectangularRoom) Center() domain.Position {
	return domain.Position{
		X: (r.X1 + r.X2) / 2,
		Y: (r.Y1 + r.Y2) / 2,
	}
}

// Inner - внутренняя (проходимая) область комнаты: обе границы исключены,
// чтобы между вплотную стоящими комнатами всегда оставалась стена.
func (r RectangularRoom) Inner() (x1, y1, x2, y2 int) {
	return r.X1 + 1, r.Y1 + 1, r.X2 - 1, r.Y2 - 1
}

// Intersects проверяет пересечение с другой комнатой ВКЛЮЧИТЕЛЬНО:
// комнаты с общей границей тоже считаются пересекающимися.
func (r RectangularRoom) Intersects(other RectangularRoom) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains сообщает, лежит ли точка внутри проходимой области комнаты.
func (r RectangularRoom) Contains(p domain.Position) bool {
	x1, y1, x2, y2 := r.Inner()
	return p.X >= x1 && p.X <= x2 && p.Y >= y1 && p.Y <= y2
}
