package imageloader

import (
	"time"

	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common/logger"
)

type Loader struct {
	fileSystem api.FileSystem
	codec      api.ImageCodec
	maxWidth   int
	maxHeight  int
}

func NewLoader(fileSystem api.FileSystem, codec api.ImageCodec, maxWidth int, maxHeight int) *Loader {
	return &Loader{
		fileSystem: fileSystem,
		codec:      codec,
		maxWidth:   maxWidth,
		maxHeight:  maxHeight,
	}
}

// Materialize reads and decodes the item. It fails with *apitype.DecodeError
// when the file can not be read or decoded and with *apitype.OversizeError
// when the image is larger than the configured maximum. The size is checked
// from the header before the pixels are decoded.
func (s *Loader) Materialize(item *apitype.QueueItem) (*Instance, error) {
	startTime := time.Now()

	data, err := s.fileSystem.Read(item.Path())
	if err != nil {
		return nil, &apitype.DecodeError{Name: item.FileName(), Err: err}
	}

	declaredSize, err := s.codec.DecodeConfig(data)
	if err != nil {
		return nil, &apitype.DecodeError{Name: item.FileName(), Err: err}
	}
	if err := s.checkSize(item, declaredSize); err != nil {
		return nil, err
	}

	img, err := s.codec.Decode(data)
	if err != nil {
		return nil, &apitype.DecodeError{Name: item.FileName(), Err: err}
	}
	if img == nil {
		return nil, &apitype.DecodeError{Name: item.FileName(), Err: errors.New("decoder returned no image")}
	}
	if err := s.checkSize(item, apitype.SizeOfImage(img)); err != nil {
		return nil, err
	}

	exifSummary, err := s.codec.ReadExif(data)
	if err != nil {
		logger.Trace.Printf("No exif data for '%s': %s", item.FileName(), err)
	}

	logger.Trace.Printf("'%s': Loaded in %s", item.Path(), time.Since(startTime))
	return NewInstance(item, img, int64(len(data)), exifSummary), nil
}

func (s *Loader) checkSize(item *apitype.QueueItem, size apitype.Size) error {
	if size.Exceeds(s.maxWidth, s.maxHeight) {
		return &apitype.OversizeError{
			Name:      item.FileName(),
			Size:      size,
			MaxWidth:  s.maxWidth,
			MaxHeight: s.maxHeight,
		}
	}
	return nil
}
