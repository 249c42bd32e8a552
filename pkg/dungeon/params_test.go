package dungeon

import (
	"context"
	"math/rand"
	"testing"
)

func TestParamsValidate_RejectsNegativeScheduleCap(t *testing.T) {
	p := DefaultParams()
	p.MonsterSchedule = []FloorCap{{1, -1}}

	if err := p.Validate(); err == nil {
		t.Error("Expected error for a negative monster cap")
	}

	// Плохой конфиг обязан вернуть ошибку, а не уронить генерацию
	rng := rand.New(rand.NewSource(1))
	player := CreatePlayer("player", rng)
	if _, err := Generate(context.Background(), p, 1, player, rng); err == nil {
		t.Error("Expected Generate to reject the broken schedule")
	}

	p = DefaultParams()
	p.ItemSchedule = []FloorCap{{1, 0}, {4, -2}}
	if err := p.Validate(); err == nil {
		t.Error("Expected error for a negative item cap")
	}
}

func TestParamsValidate_RejectsUnorderedSchedule(t *testing.T) {
	p := DefaultParams()
	p.MonsterSchedule = []FloorCap{{4, 3}, {1, 2}}

	if err := p.Validate(); err == nil {
		t.Error("Expected error for descending floor thresholds")
	}

	p = DefaultParams()
	p.ItemSchedule = []FloorCap{{2, 1}, {2, 2}}
	if err := p.Validate(); err == nil {
		t.Error("Expected error for duplicated floor thresholds")
	}
}

func TestParamsValidate_RejectsNegativeFlatCaps(t *testing.T) {
	p := DefaultParams()
	p.MaxMonstersPerRoom = -1
	if err := p.Validate(); err == nil {
		t.Error("Expected error for a negative monster limit")
	}

	p = DefaultParams()
	p.MaxItemsPerRoom = -3
	if err := p.Validate(); err == nil {
		t.Error("Expected error for a negative item limit")
	}
}

func TestParams_FlatCapsWithoutSchedule(t *testing.T) {
	p := DefaultParams()
	p.MonsterSchedule = nil
	p.ItemSchedule = nil
	p.MaxMonstersPerRoom = 3
	p.MaxItemsPerRoom = 2

	for _, floor := range []int{1, 5, 9} {
		if got := p.MonsterCap(floor); got != 3 {
			t.Errorf("Floor %d: expected flat monster cap 3, got %d", floor, got)
		}
		if got := p.ItemCap(floor); got != 2 {
			t.Errorf("Floor %d: expected flat item cap 2, got %d", floor, got)
		}
	}

	// Без расписаний уровень генерируется как обычно
	genLevel(t, p, 1, 42)
}

func TestParams_ScheduleOverridesFlatCap(t *testing.T) {
	p := DefaultParams()
	p.MaxMonstersPerRoom = 99

	if got := p.MonsterCap(5); got != 3 {
		t.Errorf("Expected schedule cap 3 on floor 5, got %d", got)
	}
	if got := p.ItemCap(5); got != 2 {
		t.Errorf("Expected schedule cap 2 on floor 5, got %d", got)
	}
}
