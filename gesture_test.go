package paint

import "testing"

func TestGesture_PrimitiveLifecycle(t *testing.T) {
	g := NewGesture()
	if g.IsEditing() {
		t.Fatal("new gesture reports editing")
	}

	g.BeginPrimitive(Pt(10, 10))
	if g.State() != GesturePrimitive || !g.IsEditing() {
		t.Fatalf("state = %v after BeginPrimitive", g.State())
	}

	// Before any movement there is no preview geometry.
	if s := g.PreviewShape(ModeRect, White, false); s != nil {
		t.Error("preview exists before first pointer move")
	}

	g.UpdatePointer(Pt(20, 15))
	g.UpdatePointer(Pt(30, 25))
	if got := g.CurrentVertices(); len(got) != 4 || got[2] != 30 || got[3] != 25 {
		t.Errorf("drag vertices = %v, want endpoint (30, 25)", got)
	}

	verts := g.FinishPrimitive(Pt(40, 40))
	want := []float64{10, 10, 40, 40}
	if len(verts) != 4 {
		t.Fatalf("finish vertices = %v", verts)
	}
	for i := range want {
		if verts[i] != want[i] {
			t.Errorf("verts[%d] = %v, want %v", i, verts[i], want[i])
		}
	}
	if g.IsEditing() {
		t.Error("gesture still editing after finish")
	}
}

func TestGesture_FinishWithoutBegin(t *testing.T) {
	g := NewGesture()
	if got := g.FinishPrimitive(Pt(1, 1)); got != nil {
		t.Errorf("FinishPrimitive on idle gesture = %v, want nil", got)
	}
}

func TestGesture_PolygonFinalize(t *testing.T) {
	g := NewGesture()

	// Three confirming clicks, then a constrain-click that finalizes
	// without adding a fourth vertex.
	g.AddPolygonVertex(Pt(0, 0), false)
	g.AddPolygonVertex(Pt(10, 0), false)
	if done := g.AddPolygonVertex(Pt(5, 8), false); done {
		t.Fatal("third click finalized early")
	}
	if g.State() != GesturePolygon {
		t.Fatalf("state = %v, want polygon", g.State())
	}

	if done := g.AddPolygonVertex(Pt(99, 99), true); !done {
		t.Fatal("constrain-click did not finalize")
	}
	if g.IsEditing() {
		t.Error("gesture still editing after finalize")
	}

	final := g.FinalVertices()
	want := []float64{0, 0, 10, 0, 5, 8}
	if len(final) != len(want) {
		t.Fatalf("final vertices = %v, want 3 points", final)
	}
	for i := range want {
		if final[i] != want[i] {
			t.Errorf("final[%d] = %v, want %v", i, final[i], want[i])
		}
	}
}

func TestGesture_PolygonConstrainTooEarly(t *testing.T) {
	g := NewGesture()

	// With fewer than three confirmed vertices the modifier is ignored
	// and the click confirms a vertex instead.
	g.AddPolygonVertex(Pt(0, 0), false)
	if done := g.AddPolygonVertex(Pt(10, 0), true); done {
		t.Fatal("finalized with two vertices")
	}
	if got := g.CurrentVertices(); len(got) != 4 {
		t.Errorf("vertices = %v, want 2 confirmed points", got)
	}
	if g.State() != GesturePolygon {
		t.Errorf("state = %v, want polygon", g.State())
	}
}

func TestGesture_PolygonPreviewStripped(t *testing.T) {
	g := NewGesture()
	g.AddPolygonVertex(Pt(0, 0), false)
	g.AddPolygonVertex(Pt(10, 0), false)

	// Cursor movement appends a trailing preview vertex; each move
	// replaces the previous one.
	g.UpdatePointer(Pt(5, 5))
	g.UpdatePointer(Pt(6, 6))
	if got := g.CurrentVertices(); len(got) != 6 || got[4] != 6 || got[5] != 6 {
		t.Errorf("vertices with preview = %v", got)
	}

	// The next click confirms at the click point, not the preview point.
	g.AddPolygonVertex(Pt(7, 7), false)
	got := g.CurrentVertices()
	if len(got) != 6 || got[4] != 7 || got[5] != 7 {
		t.Errorf("vertices after click = %v, want third point (7, 7)", got)
	}

	// A constrain-click after more movement finalizes with confirmed
	// vertices only; the preview never leaks into the result.
	g.UpdatePointer(Pt(50, 50))
	if done := g.AddPolygonVertex(Pt(50, 50), true); !done {
		t.Fatal("constrain-click did not finalize")
	}
	if final := g.FinalVertices(); len(final) != 6 {
		t.Errorf("final vertices = %v, want 3 confirmed points", final)
	}
}

func TestGesture_PreviewShape(t *testing.T) {
	g := NewGesture()
	g.BeginPrimitive(Pt(0, 0))
	g.UpdatePointer(Pt(10, 10))

	s := g.PreviewShape(ModeRect, Red, false)
	if s == nil {
		t.Fatal("no preview after drag")
	}
	if s.Kind() != KindRect {
		t.Errorf("preview kind = %v, want rect", s.Kind())
	}
	if s.Color() != Red {
		t.Errorf("preview color = %v, want red", s.Color())
	}

	// Polygon preview appears once two points exist (one confirmed plus
	// the cursor).
	g.Clear()
	g.AddPolygonVertex(Pt(0, 0), false)
	if s := g.PreviewShape(ModePolygon, Red, false); s != nil {
		t.Error("polygon preview with a single point")
	}
	g.UpdatePointer(Pt(5, 5))
	if s := g.PreviewShape(ModePolygon, Red, false); s == nil {
		t.Error("no polygon preview with cursor point")
	}
}

func TestGesture_Clear(t *testing.T) {
	g := NewGesture()
	g.AddPolygonVertex(Pt(0, 0), false)
	g.UpdatePointer(Pt(5, 5))

	g.Clear()
	if g.IsEditing() {
		t.Error("still editing after Clear")
	}
	if got := g.CurrentVertices(); len(got) != 0 {
		t.Errorf("vertices = %v after Clear", got)
	}
	if got := g.FinalVertices(); len(got) != 0 {
		t.Errorf("final vertices = %v after Clear", got)
	}
}

func TestCreateShape(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		verts   []float64
		kind    Kind
		wantNil bool
	}{
		{"rect", ModeRect, []float64{0, 0, 10, 10}, KindRect, false},
		{"triangle", ModeTriangle, []float64{0, 0, 10, 10}, KindTriangle, false},
		{"ellipse", ModeEllipse, []float64{0, 0, 10, 10}, KindEllipse, false},
		{"polygon", ModePolygon, []float64{0, 0, 10, 0, 5, 8}, KindPolygon, false},
		{"primitive too short", ModeRect, []float64{0, 0}, 0, true},
		{"select mode", ModeSelect, []float64{0, 0, 10, 10}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CreateShape(tt.mode, tt.verts, White, false)
			if tt.wantNil {
				if s != nil {
					t.Errorf("CreateShape = %v, want nil", s)
				}
				return
			}
			if s == nil {
				t.Fatal("CreateShape = nil")
			}
			if s.Kind() != tt.kind {
				t.Errorf("kind = %v, want %v", s.Kind(), tt.kind)
			}
		})
	}
}
