package paint

// Editor bundles the document, camera, selection, gesture machine and
// input pipeline into one editing session. It owns the shared mode and
// draw-color state the tools read, and enforces the mode-switch side
// effects: switching modes always discards the in-progress gesture and
// the selection so no transient state leaks across tools.
type Editor struct {
	doc     *Document
	sel     *Selection
	cam     *Camera
	gesture *Gesture
	input   *InputManager

	mode    Mode
	color   RGBA
	preview Shape
}

// EditorOption configures an Editor during creation, following the
// functional-options convention.
type EditorOption func(*Editor)

// WithMode sets the initial drawing mode.
func WithMode(m Mode) EditorOption {
	return func(e *Editor) { e.mode = m }
}

// WithDrawColor sets the initial draw color.
func WithDrawColor(c RGBA) EditorOption {
	return func(e *Editor) { e.color = c }
}

// NewEditor creates an editing session for the given initial window
// size. The session starts in select mode drawing white shapes.
func NewEditor(width, height int, opts ...EditorOption) *Editor {
	e := &Editor{
		doc:   NewDocument(),
		cam:   NewCamera(width, height),
		mode:  ModeSelect,
		color: White,
	}
	e.sel = NewSelection(e.doc)
	e.gesture = NewGesture()
	e.input = newInputManager(e)

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns the shape collection.
func (e *Editor) Document() *Document { return e.doc }

// Selection returns the selection state.
func (e *Editor) Selection() *Selection { return e.sel }

// Camera returns the view camera.
func (e *Editor) Camera() *Camera { return e.cam }

// Gesture returns the shape-creation state machine.
func (e *Editor) Gesture() *Gesture { return e.gesture }

// Input returns the input pipeline events are fed into.
func (e *Editor) Input() *InputManager { return e.input }

// Mode returns the active drawing mode.
func (e *Editor) Mode() Mode { return e.mode }

// SetMode switches the active drawing mode. Any in-progress gesture and
// the current selection are cleared; no partial shape reaches the
// document.
func (e *Editor) SetMode(m Mode) {
	e.mode = m
	e.gesture.Clear()
	e.sel.Clear()
	e.preview = nil
	Logger().Info("mode changed", "mode", m.String())
}

// DrawColor returns the color new shapes are created with.
func (e *Editor) DrawColor() RGBA { return e.color }

// SetDrawColor changes the color new shapes are created with.
func (e *Editor) SetDrawColor(c RGBA) { e.color = c }

// Preview returns the ephemeral in-progress shape, or nil when no
// gesture is active. The preview is replaced on every pointer move and
// is never part of the document.
func (e *Editor) Preview() Shape {
	if !e.gesture.IsEditing() {
		return nil
	}
	return e.preview
}

// AddShape constructs a shape for the current mode from a flattened
// vertex list and appends it to the document. Returns the new shape's
// ID, or NoShape if construction failed.
func (e *Editor) AddShape(verts []float64, constrain bool) ShapeID {
	s := CreateShape(e.mode, verts, e.color, constrain)
	if s == nil {
		return NoShape
	}
	return e.doc.Add(s)
}

// DeleteSelected removes every selected shape from the document and
// clears the selection. Removal and deselection happen together, so no
// selection entry can outlive its shape.
func (e *Editor) DeleteSelected() {
	ids := e.sel.IDs()
	for _, id := range ids {
		e.doc.Remove(id)
		e.sel.Drop(id)
	}
	e.sel.Clear()
	if len(ids) > 0 {
		Logger().Info("deleted selection", "count", len(ids))
	}
}

// setPreview stores the current ephemeral shape.
func (e *Editor) setPreview(s Shape) { e.preview = s }

// clearPreview drops the ephemeral shape.
func (e *Editor) clearPreview() { e.preview = nil }
