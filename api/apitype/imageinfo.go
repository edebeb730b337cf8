package apitype

import (
	"fmt"
	"image"
)

// ImageInfo is what the host shows of the current item: the name, the
// working buffer and where the item sits in the queue.
type ImageInfo struct {
	item      *QueueItem
	size      Size
	imageData image.Image
	byteSize  int64
	exif      *ExifSummary
	position  int
	total     int
}

func NewImageInfo(item *QueueItem, imageData image.Image, byteSize int64, exif *ExifSummary, position int, total int) *ImageInfo {
	return &ImageInfo{
		item:      item,
		size:      SizeOfImage(imageData),
		imageData: imageData,
		byteSize:  byteSize,
		exif:      exif,
		position:  position,
		total:     total,
	}
}

func (s *ImageInfo) String() string {
	if s != nil {
		return "ImageInfo{" + s.item.String() + "}"
	} else {
		return "ImageInfo<nil>"
	}
}

func (s *ImageInfo) Item() *QueueItem {
	return s.item
}

func (s *ImageInfo) Name() string {
	return s.item.FileName()
}

// ImageData is the working buffer with the staged transforms applied.
func (s *ImageInfo) ImageData() image.Image {
	return s.imageData
}

func (s *ImageInfo) Size() Size {
	return s.size
}

func (s *ImageInfo) ByteSize() int64 {
	return s.byteSize
}

func (s *ImageInfo) ByteSizeInMB() float64 {
	return float64(s.byteSize) / (1024.0 * 1024.0)
}

func (s *ImageInfo) Exif() *ExifSummary {
	return s.exif
}

func (s *ImageInfo) Position() int {
	return s.position
}

func (s *ImageInfo) Total() int {
	return s.total
}

// Title is shown in the header, e.g. "cat.png  (3/10)".
func (s *ImageInfo) Title() string {
	return fmt.Sprintf("%s  (%d/%d)", s.Name(), s.position, s.total)
}
