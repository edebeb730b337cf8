package session

import (
	"image"

	"github.com/stretchr/testify/mock"
	"vincit.fi/image-triage/api"
)

// MockCodec fails Encode and decodes with the wrapped codec.
type MockCodec struct {
	api.ImageCodec
	mock.Mock
}

func (s *MockCodec) Encode(img image.Image, fileName string) ([]byte, error) {
	args := s.Called(img, fileName)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
