package filter

import (
	"image"

	"github.com/disintegration/imaging"
	"vincit.fi/image-triage/api/apitype"
)

type ImageFlip struct {
	transform apitype.Transform

	apitype.ImageOperation
}

// NewImageFlipHorizontal mirrors the image left to right.
func NewImageFlipHorizontal() apitype.ImageOperation {
	return &ImageFlip{transform: apitype.FLIP_HORIZONTAL}
}

// NewImageFlipVertical mirrors the image top to bottom.
func NewImageFlipVertical() apitype.ImageOperation {
	return &ImageFlip{transform: apitype.FLIP_VERTICAL}
}

func (s *ImageFlip) Apply(img image.Image) image.Image {
	if s.transform == apitype.FLIP_HORIZONTAL {
		return imaging.FlipH(img)
	} else {
		return imaging.FlipV(img)
	}
}

func (s *ImageFlip) Transform() apitype.Transform {
	return s.transform
}

func (s *ImageFlip) String() string {
	if s.transform == apitype.FLIP_HORIZONTAL {
		return "Flip horizontal"
	}
	return "Flip vertical"
}
