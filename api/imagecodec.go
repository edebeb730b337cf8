package api

import (
	"image"

	"vincit.fi/image-triage/api/apitype"
)

// ImageCodec turns file bytes into pixels and back. Decode failures are
// reported as plain errors, the caller classifies them.
type ImageCodec interface {
	// DecodeConfig reads only the header to get the declared dimensions.
	DecodeConfig(data []byte) (apitype.Size, error)
	Decode(data []byte) (image.Image, error)
	// Encode picks the output format from the file name.
	Encode(img image.Image, fileName string) ([]byte, error)
	ReadExif(data []byte) (*apitype.ExifSummary, error)
}
