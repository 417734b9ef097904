package paint

// Selection tracks which document shapes are selected. It stores IDs
// rather than shape references, so deleting a shape from the document
// cannot leave a dangling entry; stale IDs are dropped on access.
//
// Selected shapes carry ThicknessSelected as visual feedback; the
// thickness resets to normal when the shape leaves the selection.
type Selection struct {
	doc *Document
	ids []ShapeID
}

// NewSelection creates an empty selection over the given document.
func NewSelection(doc *Document) *Selection {
	return &Selection{doc: doc}
}

// HandleClick applies the selection rules for a click at a world-space
// point:
//
//   - hit + multi modifier: add the shape to the selection (no duplicates)
//   - hit, no modifier: make the shape the sole selection, unless it
//     already is one of the selected shapes
//   - miss: clear the selection
//
// The clicked shape's thickness is raised; deselected shapes reset.
func (s *Selection) HandleClick(p Point, multi bool) {
	id := s.doc.HitTest(p)
	if id == NoShape {
		s.Clear()
		Logger().Info("selection cleared by click")
		return
	}

	shape := s.doc.ByID(id)
	shape.SetThickness(ThicknessSelected)

	if multi {
		if !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	} else if !s.Contains(id) {
		s.resetThickness()
		s.ids = []ShapeID{id}
	}
	Logger().Info("shape selected", "kind", shape.Kind().String(), "count", len(s.ids))
}

// Contains reports whether the ID is currently selected.
func (s *Selection) Contains(id ShapeID) bool {
	for _, sel := range s.ids {
		if sel == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selected IDs in selection order, skipping
// any that no longer resolve in the document.
func (s *Selection) IDs() []ShapeID {
	s.prune()
	out := make([]ShapeID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Shapes returns the selected shapes. The slice is a fresh copy; callers
// must not use it to mutate the selection itself.
func (s *Selection) Shapes() []Shape {
	s.prune()
	out := make([]Shape, 0, len(s.ids))
	for _, id := range s.ids {
		if shape := s.doc.ByID(id); shape != nil {
			out = append(out, shape)
		}
	}
	return out
}

// Count returns the number of selected shapes.
func (s *Selection) Count() int {
	s.prune()
	return len(s.ids)
}

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool { return s.Count() == 0 }

// Clear resets thickness on all selected shapes and empties the
// selection.
func (s *Selection) Clear() {
	s.resetThickness()
	s.ids = s.ids[:0]
}

// Drop removes a single ID from the selection without touching the
// shape. Used when the shape is deleted from the document.
func (s *Selection) Drop(id ShapeID) {
	for i, sel := range s.ids {
		if sel == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// MoveSelected translates every selected shape by a world-space delta.
func (s *Selection) MoveSelected(delta Vec2) {
	for _, shape := range s.Shapes() {
		shape.Move(delta)
	}
}

// RotateSelected adds a rotation delta (degrees) to every selected
// shape; each result is normalized per shape.
func (s *Selection) RotateSelected(deltaDegrees float64) {
	shapes := s.Shapes()
	for _, shape := range shapes {
		shape.SetRotation(shape.Rotation() + deltaDegrees)
	}
	if len(shapes) > 0 {
		Logger().Info("rotated selection", "count", len(shapes), "delta", deltaDegrees)
	}
}

// ResetRotationSelected zeroes the rotation of every selected shape.
func (s *Selection) ResetRotationSelected() {
	for _, shape := range s.Shapes() {
		shape.SetRotation(0)
	}
}

// SetColorSelected recolors every selected shape.
func (s *Selection) SetColorSelected(c RGBA) {
	for _, shape := range s.Shapes() {
		shape.SetColor(c)
	}
}

// ScaleSelected scales every selected shape about its own center.
func (s *Selection) ScaleSelected(sx, sy float64) {
	for _, shape := range s.Shapes() {
		shape.Scale(sx, sy)
	}
}

// Rotations returns the rotation angle of each selected shape, in
// selection order. Drives the sidebar rotation display.
func (s *Selection) Rotations() []float64 {
	shapes := s.Shapes()
	out := make([]float64, len(shapes))
	for i, shape := range shapes {
		out[i] = shape.Rotation()
	}
	return out
}

// resetThickness resets thickness on the currently selected shapes.
func (s *Selection) resetThickness() {
	for _, id := range s.ids {
		if shape := s.doc.ByID(id); shape != nil {
			shape.SetThickness(ThicknessNormal)
		}
	}
}

// prune drops IDs that no longer resolve in the document.
func (s *Selection) prune() {
	kept := s.ids[:0]
	for _, id := range s.ids {
		if s.doc.ByID(id) != nil {
			kept = append(kept, id)
		}
	}
	s.ids = kept
}
