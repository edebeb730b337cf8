package session

import (
	"fmt"

	"vincit.fi/image-triage/api/apitype"
)

// Stats counts where the images of the session went. Remaining, Classified,
// Evicted and Quarantined always add up to Initial.
type Stats struct {
	Initial     int
	Remaining   int
	Classified  int
	Evicted     int
	Quarantined int
	ByCategory  map[apitype.CategoryId]int
}

func (s *Session) Stats() Stats {
	byCategory := make(map[apitype.CategoryId]int, len(s.classified))
	for id, count := range s.classified {
		if count > 0 {
			byCategory[id] = count
		}
	}
	return Stats{
		Initial:     s.initialCount,
		Remaining:   s.queue.Len(),
		Classified:  s.history.Len(),
		Evicted:     s.history.Evicted(),
		Quarantined: s.quarantine.Count(),
		ByCategory:  byCategory,
	}
}

func (s Stats) Resolved() int {
	return s.Classified + s.Evicted + s.Quarantined
}

func (s Stats) String() string {
	return fmt.Sprintf("%d/%d resolved (%d classified, %d quarantined), %d remaining",
		s.Resolved(), s.Initial, s.Classified+s.Evicted, s.Quarantined, s.Remaining)
}
