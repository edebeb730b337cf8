package apitype

import (
	"fmt"
	"time"
)

// ExifSummary is the part of the EXIF data shown to the operator.
type ExifSummary struct {
	cameraModel string
	taken       time.Time
}

func NewExifSummary(cameraModel string, taken time.Time) *ExifSummary {
	return &ExifSummary{
		cameraModel: cameraModel,
		taken:       taken,
	}
}

func (s *ExifSummary) CameraModel() string {
	if s != nil {
		return s.cameraModel
	} else {
		return ""
	}
}

func (s *ExifSummary) Taken() time.Time {
	if s != nil {
		return s.taken
	} else {
		return time.Time{}
	}
}

func (s *ExifSummary) String() string {
	if s == nil {
		return ""
	}
	switch {
	case s.cameraModel != "" && !s.taken.IsZero():
		return fmt.Sprintf("%s, %s", s.cameraModel, s.taken.Format("2006-01-02 15:04"))
	case s.cameraModel != "":
		return s.cameraModel
	case !s.taken.IsZero():
		return s.taken.Format("2006-01-02 15:04")
	}
	return ""
}
