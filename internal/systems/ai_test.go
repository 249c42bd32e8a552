package systems

import (
	"delve-server/internal/domain"
	"testing"
)

func makeHostile(id string, x, y int) *domain.Entity {
	return &domain.Entity{
		ID:             id,
		Type:           domain.EntityTypeEnemy,
		Name:           "Orc",
		Pos:            domain.Position{X: x, Y: y},
		BlocksMovement: true,
		Fighter:        domain.NewFighter(10, 0, 3),
		AI:             &domain.AIComponent{Hostile: true},
	}
}

func makePlayerAt(x, y int) *domain.Entity {
	return &domain.Entity{
		ID:             "player",
		Type:           domain.EntityTypePlayer,
		Name:           "Hero",
		Pos:            domain.Position{X: x, Y: y},
		BlocksMovement: true,
		Fighter:        domain.NewFighter(30, 2, 5),
	}
}

func TestComputeNPCAction_WaitsWithoutLineOfSight(t *testing.T) {
	m := makeFloorMap(20, 10)
	// Стена между монстром и игроком
	for y := 0; y < 10; y++ {
		m.SetTile(10, y, domain.TileWall)
	}

	npc := makeHostile("orc-1", 5, 5)
	player := makePlayerAt(15, 5)
	m.AddEntity(npc)
	m.AddEntity(player)

	decision := ComputeNPCAction(npc, player, m)
	if decision.Action != domain.ActionWait {
		t.Errorf("Expected wait without line of sight, got %v", decision.Action)
	}
}

func TestComputeNPCAction_BumpsAdjacentPlayer(t *testing.T) {
	m := makeFloorMap(10, 10)
	npc := makeHostile("orc-1", 5, 5)
	player := makePlayerAt(6, 6)
	m.AddEntity(npc)
	m.AddEntity(player)

	decision := ComputeNPCAction(npc, player, m)
	if decision.Action != domain.ActionMove {
		t.Fatalf("Expected move into the player's cell, got %v", decision.Action)
	}
	if decision.Dx != 1 || decision.Dy != 1 {
		t.Errorf("Expected step (1,1) into the player, got (%d,%d)", decision.Dx, decision.Dy)
	}
}

func TestComputeNPCAction_ChasesVisiblePlayer(t *testing.T) {
	m := makeFloorMap(20, 10)
	npc := makeHostile("orc-1", 3, 5)
	player := makePlayerAt(9, 5)
	m.AddEntity(npc)
	m.AddEntity(player)

	decision := ComputeNPCAction(npc, player, m)
	if decision.Action != domain.ActionMove {
		t.Fatalf("Expected chase, got %v", decision.Action)
	}
	if decision.Dx != 1 || decision.Dy != 0 {
		t.Errorf("Expected step (1,0), got (%d,%d)", decision.Dx, decision.Dy)
	}
}

func TestComputeNPCAction_SlidesAroundBlockedIdealStep(t *testing.T) {
	m := makeFloorMap(20, 10)
	npc := makeHostile("orc-1", 3, 5)
	player := makePlayerAt(9, 7)
	// Идеальный диагональный шаг и горизонтальный обход заняты сородичами
	m.AddEntity(makeHostile("orc-2", 4, 6))
	m.AddEntity(makeHostile("orc-3", 4, 5))
	m.AddEntity(npc)
	m.AddEntity(player)

	decision := ComputeNPCAction(npc, player, m)
	if decision.Action != domain.ActionMove {
		t.Fatalf("Expected sliding move, got %v", decision.Action)
	}
	if decision.Dx != 0 || decision.Dy != 1 {
		t.Errorf("Expected vertical detour (0,1), got (%d,%d)", decision.Dx, decision.Dy)
	}
}

func TestComputeNPCAction_DeadActorsAndDeadTargets(t *testing.T) {
	m := makeFloorMap(10, 10)
	npc := makeHostile("orc-1", 2, 2)
	player := makePlayerAt(5, 5)
	m.AddEntity(npc)
	m.AddEntity(player)

	// Мертвый монстр бездействует
	npc.Fighter.SetHP(0)
	if d := ComputeNPCAction(npc, player, m); d.Action != domain.ActionWait {
		t.Errorf("Dead NPC must wait, got %v", d.Action)
	}
	npc.Fighter.SetHP(10)

	// К останкам монстр продолжает идти...
	player.Fighter.SetHP(0)
	d := ComputeNPCAction(npc, player, m)
	if d.Action != domain.ActionMove || d.Dx != 1 || d.Dy != 1 {
		t.Errorf("NPC must keep closing on the remains, got %+v", d)
	}

	// ...но вплотную бить уже нечего
	near := makeHostile("orc-2", 4, 4)
	m.AddEntity(near)
	if d := ComputeNPCAction(near, player, m); d.Action != domain.ActionWait {
		t.Errorf("Adjacent NPC has nothing to attack, got %v", d.Action)
	}
}

func TestComputeNPCAction_PeacefulAI(t *testing.T) {
	m := makeFloorMap(10, 10)
	npc := makeHostile("orc-1", 4, 4)
	npc.AI.Hostile = false
	player := makePlayerAt(5, 5)
	m.AddEntity(npc)
	m.AddEntity(player)

	if d := ComputeNPCAction(npc, player, m); d.Action != domain.ActionWait {
		t.Errorf("Peaceful NPC must wait, got %v", d.Action)
	}
}
