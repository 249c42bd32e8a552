package dungeon

import (
	"delve-server/internal/domain"
	"testing"
)

func TestRoomCenter(t *testing.T) {
	room := NewRoom(10, 10, 6, 6)
	c := room.Center()
	if c.X != 13 || c.Y != 13 {
		t.Errorf("Expected center (13,13), got (%d,%d)", c.X, c.Y)
	}
}

func TestRoomInnerExcludesWalls(t *testing.T) {
	room := NewRoom(0, 0, 5, 4)
	x1, y1, x2, y2 := room.Inner()
	if x1 != 1 || y1 != 1 || x2 != 4 || y2 != 3 {
		t.Errorf("Expected inner (1,1)-(4,3), got (%d,%d)-(%d,%d)", x1, y1, x2, y2)
	}
}

func TestRoomIntersects(t *testing.T) {
	base := NewRoom(10, 10, 6, 6)

	cases := []struct {
		name  string
		other RectangularRoom
		want  bool
	}{
		{"далеко", NewRoom(30, 30, 5, 5), false},
		{"перекрытие", NewRoom(13, 13, 6, 6), true},
		{"общая граница", NewRoom(16, 10, 6, 6), true},
		{"в одной клетке", NewRoom(17, 10, 6, 6), false},
		{"внутри", NewRoom(11, 11, 3, 3), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects = %t, want %t", got, tc.want)
			}
			// Пересечение симметрично
			if got := tc.other.Intersects(base); got != tc.want {
				t.Errorf("Reverse Intersects = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestRoomContains(t *testing.T) {
	room := NewRoom(5, 5, 6, 6)
	if !room.Contains(room.Center()) {
		t.Error("Center must lie inside the room")
	}
	if room.Contains(domain.Position{X: 5, Y: 5}) {
		t.Error("Corner wall cell is not part of the floor")
	}
}
