package dungeon

import (
	"context"
	"math/rand"

	"delve-server/internal/domain"
	"delve-server/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Generate создает новый уровень подземелья и ставит игрока в центр
// первой комнаты. Карта принадлежит вызывающему; rng прокидывается
// насквозь, так что один сид всегда дает один и тот же уровень.
//
// Комнаты размещаются за MaxRooms ПОПЫТОК: неудачная попытка (пересечение
// с уже принятой комнатой) просто отбрасывается без повтора, поэтому
// итоговых комнат обычно меньше лимита.
func Generate(ctx context.Context, p Params, floor int, player *domain.Entity, rng *rand.Rand) (*domain.GameMap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	_, span := otel.Tracer("delve-server/dungeon").Start(ctx, "dungeon.generate",
		trace.WithAttributes(
			attribute.Int("dungeon.floor", floor),
			attribute.Int("dungeon.max_rooms", p.MaxRooms),
		))
	defer span.End()

	m := domain.NewGameMap(p.Width, p.Height, floor)
	rooms := placeRooms(m, p, player, rng)

	m.AddEntity(player)

	for _, room := range rooms {
		populateRoom(room, m, p, floor, rng)
	}

	// Лестница вниз - в центре последней принятой комнаты
	last := rooms[len(rooms)-1].Center()
	m.SetTile(last.X, last.Y, domain.TileStairsDown)
	m.Downstairs = last

	span.SetAttributes(attribute.Int("dungeon.rooms", len(rooms)))
	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"floor":     floor,
		"rooms":     len(rooms),
		"size":      []int{p.Width, p.Height},
	}).Info("Level generated")

	return m, nil
}

// --- Вспомогательные функции ---

// placeRooms вырезает комнаты за MaxRooms попыток и соединяет их
// коридорами. Игрок ставится в центр первой принятой комнаты.
// Возвращает принятые комнаты в порядке размещения.
func placeRooms(m *domain.GameMap, p Params, player *domain.Entity, rng *rand.Rand) []RectangularRoom {
	var rooms []RectangularRoom

	for i := 0; i < p.MaxRooms; i++ {
		w := randRange(rng, p.RoomMinSize, p.RoomMaxSize)
		h := randRange(rng, p.RoomMinSize, p.RoomMaxSize)
		x := rng.Intn(p.Width - w - 1)
		y := rng.Intn(p.Height - h - 1)

		newRoom := NewRoom(x, y, w, h)

		if intersectsAny(newRoom, rooms) {
			continue
		}

		carveRoom(m, newRoom)

		if len(rooms) == 0 {
			player.Pos = newRoom.Center()
		} else {
			carveTunnel(m, rooms[len(rooms)-1].Center(), newRoom.Center(), rng)
		}

		rooms = append(rooms, newRoom)
	}

	return rooms
}

func intersectsAny(room RectangularRoom, rooms []RectangularRoom) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

func carveRoom(m *domain.GameMap, room RectangularRoom) {
	x1, y1, x2, y2 := room.Inner()
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			m.SetTile(x, y, domain.TileFloor)
		}
	}
}

// carveTunnel прорубает Г-образный коридор между двумя точками.
// Монетка решает, где будет угол: сначала по горизонтали или по вертикали.
func carveTunnel(m *domain.GameMap, from, to domain.Position, rng *rand.Rand) {
	var corner domain.Position
	if rng.Intn(2) == 0 {
		corner = domain.Position{X: to.X, Y: from.Y}
	} else {
		corner = domain.Position{X: from.X, Y: to.Y}
	}

	carveSegment(m, from, corner)
	carveSegment(m, corner, to)
}

// carveSegment прокладывает пол по прямой между осевыми точками.
func carveSegment(m *domain.GameMap, from, to domain.Position) {
	dx, dy := from.DirectionTo(to)
	x, y := from.X, from.Y
	for {
		m.SetTile(x, y, domain.TileFloor)
		if x == to.X && y == to.Y {
			break
		}
		x += dx
		y += dy
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
