package apitype

// Transform is a staged geometric edit of the working buffer.
type Transform int

const (
	NoTransform Transform = iota
	ROTATE_LEFT
	ROTATE_RIGHT
	FLIP_HORIZONTAL
	FLIP_VERTICAL
)

// Inverse returns the transform that undoes this one.
func (s Transform) Inverse() Transform {
	switch s {
	case ROTATE_LEFT:
		return ROTATE_RIGHT
	case ROTATE_RIGHT:
		return ROTATE_LEFT
	default:
		return s
	}
}

// SwapsDimensions tells whether the canvas width and height trade places.
func (s Transform) SwapsDimensions() bool {
	return s == ROTATE_LEFT || s == ROTATE_RIGHT
}

func (s Transform) String() string {
	switch s {
	case ROTATE_LEFT:
		return "Rotate left"
	case ROTATE_RIGHT:
		return "Rotate right"
	case FLIP_HORIZONTAL:
		return "Flip horizontal"
	case FLIP_VERTICAL:
		return "Flip vertical"
	}
	return "None"
}
