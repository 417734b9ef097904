package paint

import "testing"

func TestDocument_AddRemove(t *testing.T) {
	d := NewDocument()
	if d.Len() != 0 {
		t.Fatalf("new document has %d shapes", d.Len())
	}

	a := d.Add(NewRect(Pt(0, 0), Pt(1, 1), White, false))
	b := d.Add(NewRect(Pt(2, 2), Pt(3, 3), White, false))
	if a == NoShape || b == NoShape || a == b {
		t.Fatalf("bad IDs: %v, %v", a, b)
	}
	if d.Len() != 2 {
		t.Fatalf("len = %d, want 2", d.Len())
	}

	if !d.Remove(a) {
		t.Error("Remove(a) = false")
	}
	if d.Remove(a) {
		t.Error("second Remove(a) = true")
	}
	if d.ByID(a) != nil {
		t.Error("removed shape still resolves")
	}
	if d.ByID(b) == nil {
		t.Error("surviving shape no longer resolves")
	}
}

func TestDocument_NilAdd(t *testing.T) {
	d := NewDocument()
	if got := d.Add(nil); got != NoShape {
		t.Errorf("Add(nil) = %v, want NoShape", got)
	}
	if d.Len() != 0 {
		t.Errorf("len = %d after nil add", d.Len())
	}
}

func TestDocument_IDsNeverReused(t *testing.T) {
	d := NewDocument()
	a := d.Add(NewRect(Pt(0, 0), Pt(1, 1), White, false))
	d.Remove(a)
	b := d.Add(NewRect(Pt(0, 0), Pt(1, 1), White, false))
	if b == a {
		t.Errorf("ID %v reused after removal", a)
	}
}

func TestDocument_Order(t *testing.T) {
	d := NewDocument()
	ids := []ShapeID{
		d.Add(NewRect(Pt(0, 0), Pt(1, 1), Red, false)),
		d.Add(NewRect(Pt(0, 0), Pt(1, 1), Green, false)),
		d.Add(NewRect(Pt(0, 0), Pt(1, 1), Blue, false)),
	}

	gotIDs := d.IDs()
	for i, id := range ids {
		if gotIDs[i] != id {
			t.Errorf("IDs[%d] = %v, want %v", i, gotIDs[i], id)
		}
	}

	shapes := d.Shapes()
	wantColors := []RGBA{Red, Green, Blue}
	for i, s := range shapes {
		if s.Color() != wantColors[i] {
			t.Errorf("Shapes[%d] color = %v, want %v", i, s.Color(), wantColors[i])
		}
	}
}

func TestDocument_HitTestTopmost(t *testing.T) {
	d := NewDocument()
	bottom := d.Add(NewRect(Pt(0, 0), Pt(10, 10), Red, false))
	top := d.Add(NewRect(Pt(5, 5), Pt(15, 15), Blue, false))

	// Overlap region: the later shape wins.
	if got := d.HitTest(Pt(7, 7)); got != top {
		t.Errorf("HitTest(overlap) = %v, want top %v", got, top)
	}
	// Only the bottom shape covers this point.
	if got := d.HitTest(Pt(2, 2)); got != bottom {
		t.Errorf("HitTest(bottom only) = %v, want %v", got, bottom)
	}
	// Nothing covers this point.
	if got := d.HitTest(Pt(50, 50)); got != NoShape {
		t.Errorf("HitTest(miss) = %v, want NoShape", got)
	}
}

func TestDocument_HitTestSkipsLines(t *testing.T) {
	d := NewDocument()
	under := d.Add(NewRect(Pt(0, 0), Pt(10, 10), Red, false))
	d.Add(NewLine(Pt(0, 5), Pt(10, 5), White))

	// The line crosses the click point but is never hit-testable.
	if got := d.HitTest(Pt(5, 5)); got != under {
		t.Errorf("HitTest = %v, want rect %v under the line", got, under)
	}
}
