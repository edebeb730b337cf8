package apitype

import (
	"fmt"
	"image"
)

type Size struct {
	width  int
	height int
}

func (s Size) Height() int {
	return s.height
}

func (s Size) Width() int {
	return s.width
}

// Swapped is the size of the same canvas turned by 90 degrees.
func (s Size) Swapped() Size {
	return Size{width: s.height, height: s.width}
}

func (s Size) Exceeds(maxWidth int, maxHeight int) bool {
	return s.width > maxWidth || s.height > maxHeight
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

func SizeOfImage(img image.Image) Size {
	if img == nil {
		return Size{}
	}
	return SizeFromRectangle(img.Bounds())
}

func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}

// ScaleDownToFit is ScaleToFit that never enlarges and never collapses a
// side to zero.
func ScaleDownToFit(source Size, target Size) Size {
	if source.width <= 0 || source.height <= 0 {
		return Size{}
	}
	if source.width <= target.width && source.height <= target.height {
		return source
	}
	width, height := ScaleToFit(source.width, source.height, target.width, target.height)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Size{width, height}
}
