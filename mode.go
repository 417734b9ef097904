package paint

// Mode is the active drawing tool. It is a single shared value read by
// the input pipeline; switching it clears any in-progress gesture and
// the current selection.
type Mode int

// Drawing modes.
const (
	ModeSelect Mode = iota
	ModeTriangle
	ModeEllipse
	ModeRect
	ModePolygon
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeTriangle:
		return "triangle"
	case ModeEllipse:
		return "circle"
	case ModeRect:
		return "rectangle"
	case ModePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// IsDrawing reports whether the mode creates shapes (anything but
// select).
func (m Mode) IsDrawing() bool {
	return m != ModeSelect
}

// isPrimitive reports whether the mode uses the press-drag-release
// gesture rather than the multi-click polygon gesture.
func (m Mode) isPrimitive() bool {
	switch m {
	case ModeTriangle, ModeEllipse, ModeRect:
		return true
	default:
		return false
	}
}
