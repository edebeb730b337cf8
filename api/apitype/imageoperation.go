package apitype

import (
	"image"
)

// ImageOperation produces a new image from the given one. Implementations
// never modify their input.
type ImageOperation interface {
	Apply(img image.Image) image.Image
	Transform() Transform
	String() string
}
