package input

import "testing"

func TestMapToIntent(t *testing.T) {
	cases := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"south", ActionMoveSouth},
		{"h", ActionMoveWest},
		{"l", ActionMoveEast},
		{"search", ActionSearch},
		{"f", ActionSearch},
		{">", ActionUseStairs},
		{"stairs", ActionUseStairs},
		{"q", ActionQuit},
		{"escape", ActionQuit},
		{"", ActionNone},
		{"xyzzy", ActionNone},
	}
	for _, c := range cases {
		intent := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: c.code}))
		if intent.Action != c.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", c.code, ActionName(intent.Action), ActionName(c.want))
		}
	}
}

func TestGetBindingsByAction_StableAndComplete(t *testing.T) {
	byAction := GetBindingsByAction()
	for _, act := range []Action{ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast, ActionSearch, ActionUseStairs, ActionQuit} {
		codes := byAction[act]
		if len(codes) == 0 {
			t.Errorf("action %s has no bindings", ActionName(act))
		}
		for i := 1; i < len(codes); i++ {
			if codes[i-1] > codes[i] {
				t.Errorf("bindings for %s not sorted: %v", ActionName(act), codes)
				break
			}
		}
	}
}
