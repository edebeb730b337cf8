package library

import (
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common/logger"
)

var ErrQueueExhausted = errors.New("queue is exhausted")

// Queue holds the items that still wait for a decision. The cursor is
// always in 0..Len() and Len() means that nothing is left.
type Queue struct {
	items  []*apitype.QueueItem
	cursor int
}

func NewQueue(items []*apitype.QueueItem) *Queue {
	queueItems := make([]*apitype.QueueItem, len(items))
	copy(queueItems, items)
	return &Queue{
		items:  queueItems,
		cursor: 0,
	}
}

func (s *Queue) Peek() (*apitype.QueueItem, bool) {
	if s.Exhausted() {
		return nil, false
	}
	return s.items[s.cursor], true
}

// RemoveCurrent takes the item at the cursor out of the queue. The cursor
// stays where it is so the following item slides into its place.
func (s *Queue) RemoveCurrent() (*apitype.QueueItem, error) {
	if s.Exhausted() {
		return nil, ErrQueueExhausted
	}
	item := s.items[s.cursor]
	s.items = append(s.items[:s.cursor], s.items[s.cursor+1:]...)
	logger.Trace.Printf("Removed %s from queue, %d left", item, len(s.items))
	return item, nil
}

// InsertAtCursor puts the item back so that it is the next one to be
// processed.
func (s *Queue) InsertAtCursor(item *apitype.QueueItem) {
	s.items = append(s.items, nil)
	copy(s.items[s.cursor+1:], s.items[s.cursor:])
	s.items[s.cursor] = item
	logger.Trace.Printf("Inserted %s to queue at %d", item, s.cursor)
}

func (s *Queue) Advance() {
	s.moveWithOffset(1)
}

func (s *Queue) Retreat() {
	s.moveWithOffset(-1)
}

func (s *Queue) moveWithOffset(offset int) {
	s.cursor += offset

	if s.cursor > len(s.items) {
		s.cursor = len(s.items)
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *Queue) Len() int {
	return len(s.items)
}

func (s *Queue) Cursor() int {
	return s.cursor
}

func (s *Queue) Items() []*apitype.QueueItem {
	items := make([]*apitype.QueueItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Queue) Exhausted() bool {
	return s.cursor >= len(s.items)
}
