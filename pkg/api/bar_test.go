package api

import "testing"

func TestNewBar(t *testing.T) {
	bar, err := NewBar(15, 30, 20)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if bar.Filled != 10 {
		t.Errorf("Expected 10 filled cells for half health, got %d", bar.Filled)
	}
}

func TestNewBar_RejectsZeroMaximum(t *testing.T) {
	if _, err := NewBar(5, 0, 20); err == nil {
		t.Error("Expected error for zero maximum")
	}
	if _, err := NewBar(5, -3, 20); err == nil {
		t.Error("Expected error for negative maximum")
	}
}

func TestNewBar_ClampsValue(t *testing.T) {
	bar, err := NewBar(-5, 30, 20)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if bar.Value != 0 || bar.Filled != 0 {
		t.Errorf("Expected empty bar for negative value, got value=%d filled=%d", bar.Value, bar.Filled)
	}

	bar, _ = NewBar(99, 30, 20)
	if bar.Value != 30 || bar.Filled != 20 {
		t.Errorf("Expected full bar for overshoot, got value=%d filled=%d", bar.Value, bar.Filled)
	}
}

func TestNewBar_NeverEmptyWhileAlive(t *testing.T) {
	bar, err := NewBar(1, 1000, 20)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if bar.Filled < 1 {
		t.Error("Bar must show at least one cell while value is positive")
	}
}

func TestDirectionPayloadValidate(t *testing.T) {
	cases := []struct {
		dx, dy int
		ok     bool
	}{
		{1, 0, true},
		{-1, 1, true},
		{0, 0, false},
		{2, 0, false},
		{0, -2, false},
	}

	for _, tc := range cases {
		err := DirectionPayload{Dx: tc.dx, Dy: tc.dy}.Validate()
		if (err == nil) != tc.ok {
			t.Errorf("Validate(%d,%d): got err=%v, want ok=%t", tc.dx, tc.dy, err, tc.ok)
		}
	}
}
