package shell

import "testing"

func TestCodeToKey(t *testing.T) {
	tests := []struct {
		code Code
		mods Modifiers
		want string
	}{
		{CodeKeyA, 0, "a"},
		{CodeKeyA, ModShift, "A"},
		{CodeDigit7, 0, "7"},
		{CodeSpace, 0, " "},
		{CodeEnter, 0, "Enter"},
		{CodeNumpadEnter, 0, "Enter"},
		{CodeArrowLeft, 0, "ArrowLeft"},
		{CodeShiftLeft, 0, "Shift"},
		{CodeEscape, ModCtrl, "Escape"},
		{CodeUnidentified, 0, "Unidentified"},
	}
	for _, tt := range tests {
		if got := CodeToKey(tt.code, tt.mods); got != tt.want {
			t.Errorf("CodeToKey(%v, %v) = %q, want %q", tt.code, tt.mods, got, tt.want)
		}
	}
}

func TestCodeLocation(t *testing.T) {
	tests := []struct {
		code Code
		want Location
	}{
		{CodeKeyA, LocationStandard},
		{CodeEnter, LocationStandard},
		{CodeShiftLeft, LocationLeft},
		{CodeControlRight, LocationRight},
		{CodeNumpad5, LocationNumpad},
		{CodeNumpadEnter, LocationNumpad},
		{CodeNumLock, LocationNumpad},
	}
	for _, tt := range tests {
		if got := codeLocation(tt.code); got != tt.want {
			t.Errorf("codeLocation(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestEveryCodeHasStandardBehavior(t *testing.T) {
	// All named codes resolve to a non-empty key value.
	for code := Code(1); code < codeCount; code++ {
		if key := CodeToKey(code, 0); key == "" {
			t.Errorf("code %d maps to an empty key", code)
		}
	}
}

func TestMouseButtons(t *testing.T) {
	var set MouseButtons
	set = set.Insert(MouseButtonLeft)
	set = set.Insert(MouseButtonRight)

	if !set.Contains(MouseButtonLeft) || !set.Contains(MouseButtonRight) {
		t.Error("inserted buttons missing")
	}
	set = set.Remove(MouseButtonLeft)
	if set.Contains(MouseButtonLeft) {
		t.Error("removed button still present")
	}
	if set.Contains(MouseButtonMiddle) {
		t.Error("unexpected button present")
	}
}
