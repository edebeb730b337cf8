package history

import (
	"image"
	"time"

	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common/logger"
)

// Entry is one committed decision. Source is where the file was before the
// commit and Destination where it was written to. Snapshot is the working
// buffer that was encoded to Destination.
type Entry struct {
	Item        *apitype.QueueItem
	Category    *apitype.Category
	Source      string
	Destination string
	Snapshot    image.Image
	ByteSize    int64
	Exif        *apitype.ExifSummary
	Time        time.Time
}

func NewEntry(item *apitype.QueueItem, category *apitype.Category, destination string, snapshot image.Image) *Entry {
	return &Entry{
		Item:        item,
		Category:    category,
		Source:      item.Path(),
		Destination: destination,
		Snapshot:    snapshot,
		Time:        time.Now(),
	}
}

// WithFile records the written file's size and the EXIF summary of the
// image so that undo can show them again.
func (s *Entry) WithFile(byteSize int64, exif *apitype.ExifSummary) *Entry {
	s.ByteSize = byteSize
	s.Exif = exif
	return s
}

func (s *Entry) String() string {
	return s.Item.FileName() + " -> " + s.Category.Name()
}

// Stack keeps the committed decisions in commit order. With a non-zero
// maximum depth the oldest entries are evicted and can no longer be undone.
type Stack struct {
	entries  []*Entry
	maxDepth int
	evicted  int
}

func NewStack(maxDepth int) *Stack {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &Stack{
		entries:  []*Entry{},
		maxDepth: maxDepth,
	}
}

func (s *Stack) Push(entry *Entry) {
	s.entries = append(s.entries, entry)
	if s.maxDepth > 0 && len(s.entries) > s.maxDepth {
		dropped := s.entries[0]
		s.entries[0] = nil
		s.entries = s.entries[1:]
		s.evicted++
		logger.Debug.Printf("History is full, %s can no longer be undone", dropped)
	}
}

func (s *Stack) Pop() (*Entry, error) {
	if len(s.entries) == 0 {
		return nil, apitype.ErrNothingToUndo
	}
	last := len(s.entries) - 1
	entry := s.entries[last]
	s.entries[last] = nil
	s.entries = s.entries[:last]
	return entry, nil
}

func (s *Stack) Peek() (*Entry, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Evicted is the number of entries dropped because of the depth limit.
func (s *Stack) Evicted() int {
	return s.evicted
}

// Entries returns the entries oldest first.
func (s *Stack) Entries() []*Entry {
	entries := make([]*Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}
