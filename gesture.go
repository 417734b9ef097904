package paint

// GestureState identifies where the shape-creation state machine is.
type GestureState int

const (
	// GestureIdle means no shape is being built.
	GestureIdle GestureState = iota

	// GesturePrimitive means a press-drag-release primitive (rectangle,
	// triangle, ellipse) is in progress.
	GesturePrimitive

	// GesturePolygon means a multi-click polygon is being assembled.
	GesturePolygon
)

// Gesture is the shape-creation state machine. It accumulates pending
// vertices while a gesture is in progress and hands finished vertex
// lists back to the caller; it never touches the document itself.
//
// Preview geometry is ephemeral: during a drag or between polygon
// clicks, PreviewShape builds a throwaway shape from the pending
// vertices plus the cursor, which the renderer draws and discards. The
// trailing cursor point is tracked with an explicit flag rather than by
// inspecting the parity of the vertex slice.
type Gesture struct {
	state      GestureState
	verts      []float64
	hasPreview bool
	finalVerts []float64
}

// NewGesture creates an idle gesture machine.
func NewGesture() *Gesture {
	return &Gesture{}
}

// State returns the current gesture state.
func (g *Gesture) State() GestureState { return g.state }

// IsEditing reports whether any gesture is in progress.
func (g *Gesture) IsEditing() bool { return g.state != GestureIdle }

// BeginPrimitive starts a press-drag-release gesture at the press point.
func (g *Gesture) BeginPrimitive(p Point) {
	g.state = GesturePrimitive
	g.verts = []float64{p.X, p.Y}
	g.hasPreview = false
}

// FinishPrimitive completes a primitive gesture at the release point and
// returns the [startX, startY, endX, endY] vertex list for construction.
// Returns nil if no primitive gesture was in progress.
func (g *Gesture) FinishPrimitive(release Point) []float64 {
	if g.state != GesturePrimitive || len(g.verts) < 2 {
		g.Clear()
		return nil
	}
	out := []float64{g.verts[0], g.verts[1], release.X, release.Y}
	g.Clear()
	Logger().Info("primitive gesture finished")
	return out
}

// AddPolygonVertex records a polygon click. The first click enters the
// polygon gesture; later clicks append confirmed vertices. A click with
// the constrain modifier held finalizes the polygon with the vertices
// confirmed so far, once at least three exist — with fewer, the modifier
// is ignored and the click confirms a vertex as usual. Returns true when
// the polygon was finalized; the finished vertices are then available
// from FinalVertices.
func (g *Gesture) AddPolygonVertex(p Point, constrain bool) bool {
	g.stripPreview()

	if constrain && len(g.verts) >= 6 {
		g.finalVerts = g.verts
		g.verts = nil
		g.state = GestureIdle
		Logger().Info("polygon finalized", "vertices", len(g.finalVerts)/2)
		return true
	}

	g.state = GesturePolygon
	g.verts = append(g.verts, p.X, p.Y)
	Logger().Info("polygon vertex added", "x", p.X, "y", p.Y, "count", len(g.verts)/2)
	return false
}

// UpdatePointer tracks cursor movement during a gesture. For primitives
// the drag endpoint follows the cursor; for polygons a trailing preview
// vertex shows the in-progress edge. Idle gestures ignore movement.
func (g *Gesture) UpdatePointer(p Point) {
	switch g.state {
	case GesturePrimitive:
		if len(g.verts) == 2 {
			g.verts = append(g.verts, p.X, p.Y)
		} else if len(g.verts) >= 4 {
			g.verts[2] = p.X
			g.verts[3] = p.Y
		}
	case GesturePolygon:
		g.stripPreview()
		g.verts = append(g.verts, p.X, p.Y)
		g.hasPreview = true
	}
}

// CurrentVertices returns a copy of the pending vertices, including any
// trailing preview vertex.
func (g *Gesture) CurrentVertices() []float64 {
	out := make([]float64, len(g.verts))
	copy(out, g.verts)
	return out
}

// FinalVertices returns a copy of the last finalized polygon's vertices.
func (g *Gesture) FinalVertices() []float64 {
	out := make([]float64, len(g.finalVerts))
	copy(out, g.finalVerts)
	return out
}

// PreviewShape builds the ephemeral shape shown while the gesture is in
// progress, or nil if there is not yet enough geometry. The result is
// replaced on every pointer move and must never be added to a document.
func (g *Gesture) PreviewShape(mode Mode, color RGBA, constrain bool) Shape {
	switch g.state {
	case GesturePrimitive:
		if len(g.verts) < 4 {
			return nil
		}
		return CreateShape(mode, g.verts, color, constrain)
	case GesturePolygon:
		if len(g.verts) < 4 {
			return nil
		}
		return CreateShape(ModePolygon, g.verts, color, false)
	default:
		return nil
	}
}

// Clear discards all pending gesture state without producing a shape.
// Called on cancel and on mode switches so no partial geometry leaks
// into the document.
func (g *Gesture) Clear() {
	g.state = GestureIdle
	g.verts = nil
	g.finalVerts = nil
	g.hasPreview = false
}

// stripPreview removes the trailing cursor vertex if present.
func (g *Gesture) stripPreview() {
	if g.hasPreview && len(g.verts) >= 2 {
		g.verts = g.verts[:len(g.verts)-2]
	}
	g.hasPreview = false
}

// CreateShape dispatches to the matching shape constructor for the
// mode. Primitive modes expect [startX, startY, endX, endY]; polygon
// mode takes the whole vertex list. An unknown or non-drawing mode is a
// logged no-op returning nil, never a panic: the editor must stay
// interactive after bad input.
func CreateShape(mode Mode, verts []float64, color RGBA, constrain bool) Shape {
	switch mode {
	case ModeRect, ModeTriangle, ModeEllipse:
		if len(verts) < 4 {
			Logger().Warn("not enough vertices for primitive", "mode", mode.String())
			return nil
		}
		start := Pt(verts[0], verts[1])
		end := Pt(verts[2], verts[3])
		switch mode {
		case ModeRect:
			return NewRect(start, end, color, constrain)
		case ModeTriangle:
			return NewTriangle(start, end, color, constrain)
		default:
			return NewEllipse(start, end, color, constrain)
		}
	case ModePolygon:
		return NewPolygon(verts, color)
	default:
		Logger().Warn("invalid shape mode", "mode", mode.String())
		return nil
	}
}
