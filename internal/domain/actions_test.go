package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Move", ActionMove},
		{"WAIT", ActionWait},
		{"DESCEND", ActionDescend},
		{"ESCAPE", ActionEscape},
		{"UNKNOWN_ACTION", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionMove, "MOVE"},
		{ActionDescend, "DESCEND"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestRenderOrder_CorpseDrawsUnderActor(t *testing.T) {
	if RenderOrderCorpse >= RenderOrderActor {
		t.Error("corpse layer must sort below actor layer")
	}
	if RenderOrderItem >= RenderOrderActor {
		t.Error("item layer must sort below actor layer")
	}
}
