package imageloader

import (
	"bytes"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common/logger"
)

type ImagingCodec struct {
	options apitype.EncodeOptions

	api.ImageCodec
}

func NewImageCodec(options apitype.EncodeOptions) *ImagingCodec {
	return &ImagingCodec{
		options: options,
	}
}

func (s *ImagingCodec) DecodeConfig(data []byte) (apitype.Size, error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return apitype.Size{}, err
	}
	return apitype.SizeOf(config.Width, config.Height), nil
}

func (s *ImagingCodec) Decode(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(s.options.AutoOrient()))
}

func (s *ImagingCodec) Encode(img image.Image, fileName string) ([]byte, error) {
	format, err := imaging.FormatFromFilename(fileName)
	if err != nil {
		return nil, errors.Errorf("no encoder for '%s': %w", fileName, err)
	}

	buffer := &bytes.Buffer{}
	if err := imaging.Encode(buffer, img, format, imaging.JPEGQuality(s.options.Quality())); err != nil {
		logger.Error.Println("Could not encode image", err)
		return nil, errors.WithStack(err)
	}
	return buffer.Bytes(), nil
}

func (s *ImagingCodec) ReadExif(data []byte) (*apitype.ExifSummary, error) {
	decodedExif, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var model string
	if tag, err := decodedExif.Get(exif.Model); err == nil {
		if value, err := tag.StringVal(); err == nil {
			model = strings.TrimSpace(value)
		}
	}
	taken, _ := decodedExif.DateTime()
	return apitype.NewExifSummary(model, taken), nil
}
