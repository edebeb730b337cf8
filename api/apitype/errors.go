package apitype

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrSessionClosed  = errors.New("session has ended")
	ErrNoCurrentImage = errors.New("no image is loaded")
)

// DecodeError means the bytes of a file could not be turned into an image.
type DecodeError struct {
	Name string
	Err  error
}

func (s *DecodeError) Error() string {
	return fmt.Sprintf("could not open image '%s': %v", s.Name, s.Err)
}

func (s *DecodeError) Unwrap() error {
	return s.Err
}

type OversizeError struct {
	Name      string
	Size      Size
	MaxWidth  int
	MaxHeight int
}

func (s *OversizeError) Error() string {
	return fmt.Sprintf("image '%s' is %dx%d which exceeds the maximum size %dx%d",
		s.Name, s.Size.Width(), s.Size.Height(), s.MaxWidth, s.MaxHeight)
}

// CommitError is reported when writing an image to its category fails. The
// source file and the queue are left as they were.
type CommitError struct {
	Name        string
	Destination string
	Err         error
}

func (s *CommitError) Error() string {
	return fmt.Sprintf("could not save '%s' to '%s': %v", s.Name, s.Destination, s.Err)
}

func (s *CommitError) Unwrap() error {
	return s.Err
}

type UndoError struct {
	Source      string
	Destination string
	Err         error
}

func (s *UndoError) Error() string {
	return fmt.Sprintf("could not move '%s' back to '%s': %v", s.Destination, s.Source, s.Err)
}

func (s *UndoError) Unwrap() error {
	return s.Err
}

type InputOutOfRangeError struct {
	Index int
	Max   int
}

func (s *InputOutOfRangeError) Error() string {
	return fmt.Sprintf("category %d is out of range, enter a number between 1 and %d", s.Index, s.Max)
}

// IsQuarantineError tells whether the error means that the file can not be
// classified at all and belongs to the error folder.
func IsQuarantineError(err error) bool {
	var decodeError *DecodeError
	var oversizeError *OversizeError
	return errors.As(err, &decodeError) || errors.As(err, &oversizeError)
}
