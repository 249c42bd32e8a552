package systems

import (
	"delve-server/internal/domain"
	"testing"
)

func TestUpdateFOV_CenterAlwaysVisible(t *testing.T) {
	m := makeFloorMap(20, 20)
	pos := domain.Position{X: 10, Y: 10}

	UpdateFOV(m, pos, 8)

	if !m.Visible[m.GetIndex(10, 10)] {
		t.Error("Viewpoint cell must be visible")
	}
	if !m.Explored[m.GetIndex(10, 10)] {
		t.Error("Viewpoint cell must be explored")
	}
}

func TestUpdateFOV_WallsBlockSight(t *testing.T) {
	m := makeFloorMap(20, 20)
	// Vertical wall at x=12 splits the room
	for y := 0; y < 20; y++ {
		m.SetTile(12, y, domain.TileWall)
	}

	UpdateFOV(m, domain.Position{X: 10, Y: 10}, 8)

	// The wall cell itself is visible...
	if !m.Visible[m.GetIndex(12, 10)] {
		t.Error("Opaque wall in line of sight should itself be visible")
	}
	// ...but everything strictly behind it is not
	if m.Visible[m.GetIndex(14, 10)] {
		t.Error("Cell behind the wall must be hidden")
	}
}

func TestUpdateFOV_RadiusLimit(t *testing.T) {
	m := makeFloorMap(40, 40)

	UpdateFOV(m, domain.Position{X: 20, Y: 20}, 8)

	if m.Visible[m.GetIndex(30, 20)] {
		t.Error("Cell outside the radius must not be visible")
	}
	if !m.Visible[m.GetIndex(25, 20)] {
		t.Error("Open cell inside the radius must be visible")
	}
}

func TestUpdateFOV_VisibleReplacedExploredAccumulates(t *testing.T) {
	m := makeFloorMap(40, 10)

	UpdateFOV(m, domain.Position{X: 5, Y: 5}, 4)
	if !m.Visible[m.GetIndex(5, 5)] {
		t.Fatal("first viewpoint should be visible")
	}

	// Snapshot explored, then look from the far side of the map
	exploredBefore := make([]bool, len(m.Explored))
	copy(exploredBefore, m.Explored)

	UpdateFOV(m, domain.Position{X: 35, Y: 5}, 4)

	// Visible is replaced: the old viewpoint is out of range now
	if m.Visible[m.GetIndex(5, 5)] {
		t.Error("Visible mask must be rebuilt, not merged")
	}

	// Explored is monotone: everything explored before stays explored
	for i, was := range exploredBefore {
		if was && !m.Explored[i] {
			t.Fatalf("Explored mask shrank at index %d", i)
		}
	}
	if !m.Explored[m.GetIndex(5, 5)] {
		t.Error("Previously seen cell must remain explored")
	}
}

func TestUpdateFOV_OpenFieldSymmetry(t *testing.T) {
	m := makeFloorMap(20, 20)

	a := domain.Position{X: 6, Y: 9}
	b := domain.Position{X: 12, Y: 11}

	visFromA := ComputeVisibleTiles(m, a, 12)
	visFromB := ComputeVisibleTiles(m, b, 12)

	if !visFromA[m.GetIndex(b.X, b.Y)] || !visFromB[m.GetIndex(a.X, a.Y)] {
		t.Error("On open ground two cells within range must see each other")
	}
}

func TestComputeVisibleTiles_BlindObserver(t *testing.T) {
	m := makeFloorMap(10, 10)

	visible := ComputeVisibleTiles(m, domain.Position{X: 5, Y: 5}, 0)
	if len(visible) != 0 {
		t.Errorf("Blind observer should see nothing, got %d cells", len(visible))
	}
}
