package paint

import (
	"math"
	"testing"
)

// twoRectDoc builds a document with two disjoint rectangles for
// selection tests: A spans (0,0)-(10,10), B spans (20,20)-(30,30).
func twoRectDoc(t *testing.T) (*Document, ShapeID, ShapeID) {
	t.Helper()
	d := NewDocument()
	a := d.Add(NewRect(Pt(0, 0), Pt(10, 10), Red, false))
	b := d.Add(NewRect(Pt(20, 20), Pt(30, 30), Blue, false))
	return d, a, b
}

func TestSelection_SingleClick(t *testing.T) {
	d, a, b := twoRectDoc(t)
	sel := NewSelection(d)

	sel.HandleClick(Pt(5, 5), false)
	if !sel.Contains(a) || sel.Count() != 1 {
		t.Fatalf("after click on A: contains=%v count=%d", sel.Contains(a), sel.Count())
	}
	if d.ByID(a).Thickness() != ThicknessSelected {
		t.Error("selected shape thickness not raised")
	}

	// Clicking B without the modifier swaps the selection.
	sel.HandleClick(Pt(25, 25), false)
	if sel.Contains(a) {
		t.Error("A still selected after exclusive click on B")
	}
	if !sel.Contains(b) || sel.Count() != 1 {
		t.Errorf("B not sole selection: count=%d", sel.Count())
	}
	if d.ByID(a).Thickness() != ThicknessNormal {
		t.Error("deselected shape thickness not reset")
	}
	if d.ByID(b).Thickness() != ThicknessSelected {
		t.Error("newly selected shape thickness not raised")
	}
}

func TestSelection_MultiClick(t *testing.T) {
	d, a, b := twoRectDoc(t)
	sel := NewSelection(d)

	sel.HandleClick(Pt(5, 5), false)
	sel.HandleClick(Pt(25, 25), true)
	if !sel.Contains(a) || !sel.Contains(b) || sel.Count() != 2 {
		t.Fatalf("multi-select failed: count=%d", sel.Count())
	}

	// Clicking an already-selected shape with the modifier adds no
	// duplicate.
	sel.HandleClick(Pt(25, 25), true)
	if sel.Count() != 2 {
		t.Errorf("count = %d after duplicate multi-click, want 2", sel.Count())
	}
}

func TestSelection_ClickOnSelectedKeepsGroup(t *testing.T) {
	d, a, b := twoRectDoc(t)
	sel := NewSelection(d)

	sel.HandleClick(Pt(5, 5), false)
	sel.HandleClick(Pt(25, 25), true)

	// A plain click on a shape already in the group keeps the group.
	sel.HandleClick(Pt(5, 5), false)
	if !sel.Contains(a) || !sel.Contains(b) {
		t.Errorf("group broken by plain click on member: count=%d", sel.Count())
	}
}

func TestSelection_MissClears(t *testing.T) {
	d, a, _ := twoRectDoc(t)
	sel := NewSelection(d)

	sel.HandleClick(Pt(5, 5), false)
	sel.HandleClick(Pt(100, 100), false)
	if !sel.IsEmpty() {
		t.Errorf("selection not cleared by miss: count=%d", sel.Count())
	}
	if d.ByID(a).Thickness() != ThicknessNormal {
		t.Error("thickness not reset on clear")
	}
}

func TestSelection_DeletedShapesPrune(t *testing.T) {
	d, a, b := twoRectDoc(t)
	sel := NewSelection(d)

	sel.HandleClick(Pt(5, 5), false)
	sel.HandleClick(Pt(25, 25), true)

	d.Remove(a)
	if sel.Count() != 1 {
		t.Errorf("count = %d after document removal, want 1", sel.Count())
	}
	if got := sel.IDs(); len(got) != 1 || got[0] != b {
		t.Errorf("IDs = %v, want [%v]", got, b)
	}
}

func TestSelection_MoveSelected(t *testing.T) {
	d, a, b := twoRectDoc(t)
	sel := NewSelection(d)
	sel.HandleClick(Pt(5, 5), false)

	sel.MoveSelected(V2(100, 0))
	if got := d.ByID(a).Center(); !got.Approx(Pt(105, 5), 1e-9) {
		t.Errorf("A center = %v, want (105, 5)", got)
	}
	// Unselected shapes stay put.
	if got := d.ByID(b).Center(); !got.Approx(Pt(25, 25), 1e-9) {
		t.Errorf("B center = %v, want (25, 25)", got)
	}
}

func TestSelection_RotateSelected(t *testing.T) {
	d, a, _ := twoRectDoc(t)
	sel := NewSelection(d)
	sel.HandleClick(Pt(5, 5), false)

	sel.RotateSelected(30)
	sel.RotateSelected(30)
	if got := d.ByID(a).Rotation(); math.Abs(got-60) > 1e-9 {
		t.Errorf("rotation = %v, want 60", got)
	}
	if got := sel.Rotations(); len(got) != 1 || math.Abs(got[0]-60) > 1e-9 {
		t.Errorf("Rotations() = %v, want [60]", got)
	}

	// Deltas accumulate with normalization.
	sel.RotateSelected(150)
	if got := d.ByID(a).Rotation(); math.Abs(got+150) > 1e-9 {
		t.Errorf("rotation = %v, want -150", got)
	}

	sel.ResetRotationSelected()
	if got := d.ByID(a).Rotation(); got != 0 {
		t.Errorf("rotation = %v after reset, want 0", got)
	}
}

func TestSelection_SetColorScale(t *testing.T) {
	d, a, b := twoRectDoc(t)
	sel := NewSelection(d)
	sel.HandleClick(Pt(5, 5), false)

	sel.SetColorSelected(Green)
	if d.ByID(a).Color() != Green {
		t.Error("selected shape not recolored")
	}
	if d.ByID(b).Color() != Blue {
		t.Error("unselected shape recolored")
	}

	sel.ScaleSelected(2, 2)
	if got := d.ByID(a).Area(); math.Abs(got-400) > 1e-9 {
		t.Errorf("area = %v after scale, want 400", got)
	}
}
