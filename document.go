package paint

// ShapeID is a stable identifier for a shape within a Document. IDs are
// never reused, so a stale ID simply stops resolving instead of aliasing
// a newer shape.
type ShapeID uint64

// NoShape is the zero ShapeID; it never resolves.
const NoShape ShapeID = 0

// Document is the owning, append-ordered collection of finished shapes.
// Insertion order is z-order: later shapes draw on top. Selection and
// other collaborators refer to shapes by ID, so removing a shape cannot
// leave a dangling reference.
type Document struct {
	entries []docEntry
	nextID  ShapeID
}

type docEntry struct {
	id    ShapeID
	shape Shape
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{nextID: 1}
}

// Add appends a shape and returns its ID. Nil shapes are rejected with
// NoShape.
func (d *Document) Add(s Shape) ShapeID {
	if s == nil {
		return NoShape
	}
	id := d.nextID
	d.nextID++
	d.entries = append(d.entries, docEntry{id: id, shape: s})
	Logger().Debug("shape added", "kind", s.Kind().String(), "total", len(d.entries))
	return id
}

// Remove deletes the shape with the given ID. It reports whether a shape
// was removed.
func (d *Document) Remove(id ShapeID) bool {
	for i, e := range d.entries {
		if e.id == id {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ByID returns the shape with the given ID, or nil.
func (d *Document) ByID(id ShapeID) Shape {
	for _, e := range d.entries {
		if e.id == id {
			return e.shape
		}
	}
	return nil
}

// Len returns the number of shapes in the document.
func (d *Document) Len() int { return len(d.entries) }

// Shapes returns the shapes in insertion (z) order. The slice is a fresh
// copy; the shapes themselves are shared.
func (d *Document) Shapes() []Shape {
	out := make([]Shape, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.shape
	}
	return out
}

// IDs returns the shape IDs in insertion order.
func (d *Document) IDs() []ShapeID {
	out := make([]ShapeID, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.id
	}
	return out
}

// HitTest returns the topmost shape containing the point, scanning in
// reverse insertion order since later shapes occlude earlier ones.
// Returns NoShape when nothing matches.
func (d *Document) HitTest(p Point) ShapeID {
	for i := len(d.entries) - 1; i >= 0; i-- {
		if d.entries[i].shape.ContainsPoint(p) {
			return d.entries[i].id
		}
	}
	return NoShape
}
