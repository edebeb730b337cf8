package imageloader

import (
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common/logger"
)

// Instance is the loaded image of the current queue item. The original
// buffer is never modified, staged edits replace the working buffer.
type Instance struct {
	item       *apitype.QueueItem
	original   image.Image
	working    image.Image
	size       apitype.Size
	byteSize   int64
	exif       *apitype.ExifSummary
	transforms []apitype.Transform

	scaled     image.Image
	scaledSize apitype.Size
}

func NewInstance(item *apitype.QueueItem, original image.Image, byteSize int64, exif *apitype.ExifSummary) *Instance {
	return &Instance{
		item:     item,
		original: original,
		working:  original,
		size:     apitype.SizeOfImage(original),
		byteSize: byteSize,
		exif:     exif,
	}
}

// NewInstanceFromSnapshot rebuilds the instance of an item brought back by
// undo. The snapshot is what was written to disk, so it is both the
// original and the working buffer.
func NewInstanceFromSnapshot(item *apitype.QueueItem, snapshot image.Image, byteSize int64, exif *apitype.ExifSummary) *Instance {
	return NewInstance(item, snapshot, byteSize, exif)
}

func (s *Instance) IsValid() bool {
	return s != nil && s.item.IsValid() && s.working != nil
}

func (s *Instance) Item() *apitype.QueueItem {
	return s.item
}

func (s *Instance) Original() image.Image {
	return s.original
}

func (s *Instance) Working() image.Image {
	return s.working
}

// Size is the declared size of the decoded image.
func (s *Instance) Size() apitype.Size {
	return s.size
}

func (s *Instance) WorkingSize() apitype.Size {
	return apitype.SizeOfImage(s.working)
}

func (s *Instance) ByteSize() int64 {
	return s.byteSize
}

func (s *Instance) Exif() *apitype.ExifSummary {
	return s.exif
}

func (s *Instance) Transforms() []apitype.Transform {
	transforms := make([]apitype.Transform, len(s.transforms))
	copy(transforms, s.transforms)
	return transforms
}

func (s *Instance) Modified() bool {
	return len(s.transforms) > 0
}

func (s *Instance) Apply(operation apitype.ImageOperation) {
	startTime := time.Now()
	s.working = operation.Apply(s.working)
	s.transforms = append(s.transforms, operation.Transform())
	s.scaled = nil
	logger.Trace.Printf("'%s': %s applied in %s", s.item.FileName(), operation, time.Since(startTime))
}

// Snapshot copies the working buffer so later edits can not reach it.
func (s *Instance) Snapshot() image.Image {
	return imaging.Clone(s.working)
}

// Preview returns the working buffer scaled down to fit the given size.
func (s *Instance) Preview(size apitype.Size) image.Image {
	if s.working == nil {
		return nil
	}

	newSize := apitype.ScaleDownToFit(s.WorkingSize(), size)
	if newSize == s.WorkingSize() {
		return s.working
	}
	if s.scaled != nil && s.scaledSize == newSize {
		logger.Trace.Print("Use cached scaled image")
		return s.scaled
	}

	startTime := time.Now()
	s.scaled = resize.Resize(uint(newSize.Width()), uint(newSize.Height()), s.working, resize.Lanczos3)
	s.scaledSize = newSize
	logger.Trace.Printf("'%s': Scaled to %s in %s", s.item.FileName(), newSize, time.Since(startTime))
	return s.scaled
}

func (s *Instance) Info(position int, total int) *apitype.ImageInfo {
	return apitype.NewImageInfo(s.item, s.working, s.byteSize, s.exif, position, total)
}

func (s *Instance) GetByteLength() int {
	return GetByteLength(s.original) + GetByteLength(s.working) + GetByteLength(s.scaled)
}

func GetByteLength(img image.Image) int {
	if img != nil {
		// Approximation using the image size
		const bytesPerPixel = 4
		bounds := img.Bounds()
		return bounds.Dx() * bounds.Dy() * bytesPerPixel
	} else {
		return 0
	}
}
