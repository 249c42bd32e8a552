package domain

import "testing"

func TestGameMap_AddRemoveEntity(t *testing.T) {
	m := NewGameMap(10, 10, 1)

	e := &Entity{
		ID:  "e1",
		Pos: Position{X: 5, Y: 5},
	}

	// Test Add
	m.AddEntity(e)

	if len(m.SpatialHash) == 0 {
		t.Error("SpatialHash should not be empty after adding entity")
	}

	retrieved := m.GetEntity("e1")
	if retrieved == nil {
		t.Fatal("GetEntity returned nil")
	}
	if retrieved != e {
		t.Errorf("GetEntity returned wrong entity: got %v want %v", retrieved, e)
	}

	// Test Remove
	m.RemoveEntity(e)

	if m.GetEntity("e1") != nil {
		t.Error("Entity should be nil after removal")
	}
	if len(m.GetEntitiesAt(5, 5)) != 0 {
		t.Error("Spatial index should be empty after removal")
	}
	if len(m.Entities) != 0 {
		t.Error("Owning list should be empty after removal")
	}
}

func TestGameMap_UpdateEntityPos(t *testing.T) {
	m := NewGameMap(10, 10, 1)
	e := &Entity{ID: "e1", Pos: Position{X: 2, Y: 3}}
	m.AddEntity(e)

	if err := m.UpdateEntityPos(e, 4, 4); err != nil {
		t.Fatalf("UpdateEntityPos error: %v", err)
	}
	if e.Pos.X != 4 || e.Pos.Y != 4 {
		t.Errorf("entity pos = (%d,%d), want (4,4)", e.Pos.X, e.Pos.Y)
	}
	if len(m.GetEntitiesAt(2, 3)) != 0 {
		t.Error("old cell should be empty")
	}
	if len(m.GetEntitiesAt(4, 4)) != 1 {
		t.Error("new cell should hold the entity")
	}

	// Out of bounds is an error and a no-op
	if err := m.UpdateEntityPos(e, -1, 0); err == nil {
		t.Error("expected out of bounds error")
	}
	if e.Pos.X != 4 || e.Pos.Y != 4 {
		t.Error("failed update must not move the entity")
	}
}

func TestGameMap_BlockingEntityAt(t *testing.T) {
	m := NewGameMap(10, 10, 1)

	corpse := &Entity{ID: "c1", Pos: Position{X: 1, Y: 1}, BlocksMovement: false}
	actor := &Entity{ID: "a1", Pos: Position{X: 1, Y: 1}, BlocksMovement: true}
	m.AddEntity(corpse)
	m.AddEntity(actor)

	if got := m.BlockingEntityAt(1, 1); got != actor {
		t.Errorf("BlockingEntityAt = %v, want the blocking actor", got)
	}
	if got := m.BlockingEntityAt(2, 2); got != nil {
		t.Errorf("empty cell should have no blocker, got %v", got)
	}
}

func TestGameMap_TileAtOutOfBounds(t *testing.T) {
	m := NewGameMap(5, 5, 1)

	if m.TileAt(-1, 0) != TileWall {
		t.Error("out of bounds tile should read as wall")
	}
	if m.Walkable(5, 0) {
		t.Error("out of bounds should not be walkable")
	}
	if m.Transparent(0, 99) {
		t.Error("out of bounds should not be transparent")
	}
}
