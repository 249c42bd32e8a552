package domain

import "testing"

func TestFighter_SetHPClampsBothEnds(t *testing.T) {
	f := NewFighter(30, 2, 5)

	// Below zero clamps to 0
	applied, died := f.SetHP(-10)
	if applied != 0 {
		t.Errorf("SetHP(-10) applied = %d, want 0", applied)
	}
	if !died {
		t.Error("SetHP(-10) from full health should report died=true")
	}

	// Above max clamps to MaxHP
	applied, died = f.SetHP(999)
	if applied != 30 {
		t.Errorf("SetHP(999) applied = %d, want 30", applied)
	}
	if died {
		t.Error("healing above max must not report death")
	}
}

func TestFighter_DeathFiresOnce(t *testing.T) {
	f := NewFighter(10, 0, 0)

	_, died := f.SetHP(0)
	if !died {
		t.Fatal("first lethal write should report died=true")
	}

	// Repeated lethal writes to an already-dead fighter are inert
	_, died = f.SetHP(0)
	if died {
		t.Error("second lethal write should report died=false")
	}
	_, died = f.SetHP(-5)
	if died {
		t.Error("negative write to a dead fighter should report died=false")
	}
}

func TestFighter_DamageAndHeal(t *testing.T) {
	f := NewFighter(20, 1, 4)

	if applied, died := f.Damage(5); applied != 15 || died {
		t.Errorf("Damage(5) = (%d, %t), want (15, false)", applied, died)
	}

	if healed := f.Heal(3); healed != 3 {
		t.Errorf("Heal(3) = %d, want 3", healed)
	}
	if f.HP() != 18 {
		t.Errorf("HP after heal = %d, want 18", f.HP())
	}

	// Overheal clamps
	if healed := f.Heal(100); healed != 2 {
		t.Errorf("overheal returned %d, want 2", healed)
	}

	// Corpses cannot be healed
	f.SetHP(0)
	if healed := f.Heal(10); healed != 0 {
		t.Errorf("healing a corpse returned %d, want 0", healed)
	}
	if f.HP() != 0 {
		t.Errorf("corpse HP = %d, want 0", f.HP())
	}
}

func TestFighter_JSONRoundTrip(t *testing.T) {
	f := NewFighter(16, 1, 4)
	f.Damage(6)

	data, err := f.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}

	var restored FighterComponent
	if err := restored.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON error: %v", err)
	}
	if restored.HP() != 10 || restored.MaxHP != 16 || restored.Defense != 1 || restored.Power != 4 {
		t.Errorf("round-trip mismatch: hp=%d max=%d def=%d pow=%d",
			restored.HP(), restored.MaxHP, restored.Defense, restored.Power)
	}
}
