package paint

// Button identifies a pointer button.
type Button int

// Pointer buttons.
const (
	ButtonLeft Button = iota
	ButtonRight
)

// Action is the press/release half of a button or key event.
type Action int

// Actions.
const (
	Press Action = iota
	Release
)

// Key identifies a keyboard key the editor core reacts to. The values
// are abstract; the windowing layer maps its own key codes onto them.
type Key int

// Keys with default bindings.
const (
	KeyS Key = iota
	KeyT
	KeyC
	KeyR
	KeyP
	KeySpace
	KeyD
	KeyEscape
	KeyQ
	KeyShift
)

// Command is an editor action a key can be bound to.
type Command int

// Commands.
const (
	CmdNone Command = iota
	CmdSelectMode
	CmdTriangleMode
	CmdEllipseMode
	CmdRectMode
	CmdPolygonMode
	CmdResetCamera
	CmdDeleteSelected
	CmdExit
)

// DefaultBindings returns the standard key map: S/T/C/R/P switch modes,
// Space resets the camera, D deletes the selection, Escape and Q exit.
// Shift is the constrain modifier and is not bindable.
func DefaultBindings() map[Key]Command {
	return map[Key]Command{
		KeyS:      CmdSelectMode,
		KeyT:      CmdTriangleMode,
		KeyC:      CmdEllipseMode,
		KeyR:      CmdRectMode,
		KeyP:      CmdPolygonMode,
		KeySpace:  CmdResetCamera,
		KeyD:      CmdDeleteSelected,
		KeyEscape: CmdExit,
		KeyQ:      CmdExit,
	}
}

// CaptureGate is implemented by a UI overlay (sidebar, color picker)
// that may claim input before the canvas sees it. When the gate reports
// capture, the corresponding event is dropped without processing.
//
// A nil gate never captures.
type CaptureGate interface {
	// CaptureMouse reports whether the UI currently claims pointer
	// events (e.g. the cursor is over a panel).
	CaptureMouse() bool

	// CaptureKeyboard reports whether the UI currently claims key
	// events (e.g. a text field has focus).
	CaptureKeyboard() bool
}

// InputManager translates raw pointer and key events, delivered in
// window-pixel coordinates, into camera, selection and gesture calls.
// It owns the transient interaction state: the drag origin, whether a
// selection drag or a pan is active, and the live constrain modifier.
type InputManager struct {
	editor *Editor
	gate   CaptureGate

	bindings map[Key]Command
	onExit   func()

	panning    bool
	dragging   bool
	dragOrigin Point
	shiftDown  bool

	exitRequested bool
}

// newInputManager wires an input pipeline to its editor.
func newInputManager(e *Editor) *InputManager {
	return &InputManager{
		editor:   e,
		bindings: DefaultBindings(),
	}
}

// SetGate installs the UI capture gate consulted before every event.
func (im *InputManager) SetGate(g CaptureGate) { im.gate = g }

// SetBindings replaces the key map. Nil restores the defaults.
func (im *InputManager) SetBindings(b map[Key]Command) {
	if b == nil {
		b = DefaultBindings()
	}
	im.bindings = b
}

// SetExitHandler registers a callback invoked when CmdExit fires.
func (im *InputManager) SetExitHandler(fn func()) { im.onExit = fn }

// ExitRequested reports whether an exit command has fired.
func (im *InputManager) ExitRequested() bool { return im.exitRequested }

// ConstrainDown reports whether the constrain modifier is currently
// held. Checked live during shape construction and finalization.
func (im *InputManager) ConstrainDown() bool { return im.shiftDown }

func (im *InputManager) mouseCaptured() bool {
	return im.gate != nil && im.gate.CaptureMouse()
}

func (im *InputManager) keyboardCaptured() bool {
	return im.gate != nil && im.gate.CaptureKeyboard()
}

// PointerButton handles a pointer button event at the given window
// position. Events claimed by the UI gate are dropped.
func (im *InputManager) PointerButton(button Button, action Action, x, y float64) {
	if im.mouseCaptured() {
		return
	}

	ed := im.editor
	world := ed.cam.ScreenToWorld(x, y)

	switch button {
	case ButtonLeft:
		if action == Press {
			im.leftPress(world)
		} else {
			im.leftRelease(world)
		}
	case ButtonRight:
		switch action {
		case Press:
			im.panning = true
			im.dragOrigin = world
			Logger().Debug("pan started", "x", world.X, "y", world.Y)
		case Release:
			im.panning = false
			Logger().Debug("pan stopped")
		}
	}
}

func (im *InputManager) leftPress(world Point) {
	ed := im.editor
	im.dragOrigin = world

	switch {
	case ed.mode == ModeSelect:
		ed.sel.HandleClick(world, im.shiftDown)
		im.dragging = !ed.sel.IsEmpty()

	case ed.mode.isPrimitive():
		ed.gesture.BeginPrimitive(world)

	case ed.mode == ModePolygon:
		if ed.gesture.AddPolygonVertex(world, im.shiftDown) {
			s := NewPolygon(ed.gesture.FinalVertices(), ed.color)
			ed.doc.Add(s)
			ed.clearPreview()
		}

	default:
		Logger().Warn("invalid mode", "mode", ed.mode.String())
	}
}

func (im *InputManager) leftRelease(world Point) {
	ed := im.editor

	switch {
	case ed.mode == ModeSelect:
		im.dragging = false

	case ed.mode.isPrimitive():
		verts := ed.gesture.FinishPrimitive(world)
		if verts != nil {
			ed.AddShape(verts, im.shiftDown)
		}
		ed.clearPreview()
	}
	// Polygon clicks are handled entirely on press.
}

// PointerMove handles cursor movement at the given window position.
// Depending on the interaction state this drags the selection, updates
// the gesture preview, or pans the camera.
func (im *InputManager) PointerMove(x, y float64) {
	if im.mouseCaptured() {
		return
	}

	ed := im.editor
	world := ed.cam.ScreenToWorld(x, y)

	switch {
	case im.dragging && !ed.sel.IsEmpty():
		ed.sel.MoveSelected(world.Sub(im.dragOrigin))
		im.dragOrigin = world

	case ed.gesture.IsEditing():
		ed.gesture.UpdatePointer(world)
		ed.setPreview(ed.gesture.PreviewShape(ed.mode, ed.color, im.shiftDown))

	case im.panning:
		// Pan by the negative cursor delta so the world follows the
		// drag; after the pan the cursor is back over the origin point.
		ed.cam.Pan(im.dragOrigin.Sub(world))
	}
}

// Scroll handles a scroll event at the given window position, zooming
// the camera around the cursor.
func (im *InputManager) Scroll(x, y, delta float64) {
	if im.mouseCaptured() {
		return
	}
	im.editor.cam.ZoomAt(x, y, delta)
}

// ViewportResized forwards new window and framebuffer dimensions to the
// camera.
func (im *InputManager) ViewportResized(winW, winH, fbW, fbH int) {
	im.editor.cam.UpdateViewport(winW, winH, fbW, fbH)
}

// Key handles a keyboard event. The constrain modifier is tracked on
// both edges before the gate check so the modifier state cannot stick
// when the UI takes focus mid-press; all other keys respect the gate and
// act on press only.
func (im *InputManager) Key(key Key, action Action) {
	if key == KeyShift {
		im.shiftDown = action == Press
		return
	}
	if im.keyboardCaptured() || action != Press {
		return
	}

	ed := im.editor
	switch im.bindings[key] {
	case CmdSelectMode:
		ed.SetMode(ModeSelect)
	case CmdTriangleMode:
		ed.SetMode(ModeTriangle)
	case CmdEllipseMode:
		ed.SetMode(ModeEllipse)
	case CmdRectMode:
		ed.SetMode(ModeRect)
	case CmdPolygonMode:
		ed.SetMode(ModePolygon)
	case CmdResetCamera:
		ed.cam.Reset()
	case CmdDeleteSelected:
		ed.DeleteSelected()
	case CmdExit:
		im.exitRequested = true
		if im.onExit != nil {
			im.onExit()
		}
	default:
		Logger().Debug("unbound key", "key", int(key))
	}
}
