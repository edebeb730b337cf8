package apitype

type EncodeOptions struct {
	quality    int
	autoOrient bool
}

func NewEncodeOptions(quality int, autoOrient bool) EncodeOptions {
	return EncodeOptions{
		quality:    quality,
		autoOrient: autoOrient,
	}
}

func (s EncodeOptions) Quality() int {
	return s.quality
}

// AutoOrient applies the EXIF orientation while decoding.
func (s EncodeOptions) AutoOrient() bool {
	return s.autoOrient
}
