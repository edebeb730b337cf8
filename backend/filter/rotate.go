package filter

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"vincit.fi/image-triage/api/apitype"
)

type ImageRotate struct {
	transform apitype.Transform

	apitype.ImageOperation
}

// NewImageRotateLeft turns the image 90 degrees counter-clockwise.
func NewImageRotateLeft() apitype.ImageOperation {
	return &ImageRotate{transform: apitype.ROTATE_LEFT}
}

// NewImageRotateRight turns the image 90 degrees clockwise.
func NewImageRotateRight() apitype.ImageOperation {
	return &ImageRotate{transform: apitype.ROTATE_RIGHT}
}

func (s *ImageRotate) Apply(img image.Image) image.Image {
	if s.transform == apitype.ROTATE_LEFT {
		return imaging.Rotate90(img)
	} else {
		return imaging.Rotate270(img)
	}
}

func (s *ImageRotate) Transform() apitype.Transform {
	return s.transform
}

func (s *ImageRotate) String() string {
	return fmt.Sprintf("Rotate %s", s.direction())
}

func (s *ImageRotate) direction() string {
	if s.transform == apitype.ROTATE_LEFT {
		return "left"
	}
	return "right"
}
