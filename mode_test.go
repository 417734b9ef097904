package paint

import "testing"

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode   Mode
		expect string
	}{
		{ModeSelect, "select"},
		{ModeTriangle, "triangle"},
		{ModeEllipse, "circle"},
		{ModeRect, "rectangle"},
		{ModePolygon, "polygon"},
		{Mode(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expect {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expect)
		}
	}
}

func TestMode_IsDrawing(t *testing.T) {
	if ModeSelect.IsDrawing() {
		t.Error("select mode reports drawing")
	}
	for _, m := range []Mode{ModeTriangle, ModeEllipse, ModeRect, ModePolygon} {
		if !m.IsDrawing() {
			t.Errorf("%v does not report drawing", m)
		}
	}
}

func TestMode_IsPrimitive(t *testing.T) {
	for _, m := range []Mode{ModeTriangle, ModeEllipse, ModeRect} {
		if !m.isPrimitive() {
			t.Errorf("%v is not primitive", m)
		}
	}
	if ModeSelect.isPrimitive() || ModePolygon.isPrimitive() {
		t.Error("non-drag mode reports primitive")
	}
}
