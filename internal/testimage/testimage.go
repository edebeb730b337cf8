// Package testimage builds small in-memory images for tests.
package testimage

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// New returns an image where every pixel has a distinct colour so that
// any rotation or flip changes the pixel content.
func New(width int, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(width, 1)),
				G: uint8(y * 255 / max(height, 1)),
				B: uint8((x + y*width) % 256),
				A: 255,
			})
		}
	}
	return img
}

func PNG(width int, height int) []byte {
	return EncodePNG(New(width, height))
}

func EncodePNG(img image.Image) []byte {
	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Pixels flattens the image into NRGBA bytes, row by row.
func Pixels(img image.Image) []byte {
	bounds := img.Bounds()
	pixels := make([]byte, 0, bounds.Dx()*bounds.Dy()*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, c.R, c.G, c.B, c.A)
		}
	}
	return pixels
}
