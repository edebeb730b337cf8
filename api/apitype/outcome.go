package apitype

import (
	"fmt"
	"strings"
)

// QuarantinedItem records a file that was moved to the error folder
// because it could not be opened or was too large.
type QuarantinedItem struct {
	Item        *QueueItem
	Destination string
	Reason      error
	// MoveErr is set when the file could not be moved and was left in the
	// source directory. It is dropped from the queue in either case.
	MoveErr error
}

func (s *QuarantinedItem) String() string {
	if s.MoveErr != nil {
		return fmt.Sprintf("%s: %v (could not move to error folder: %v)", s.Item.FileName(), s.Reason, s.MoveErr)
	}
	return fmt.Sprintf("%s: %v", s.Item.FileName(), s.Reason)
}

// Outcome describes what a submitted command did to the session.
type Outcome struct {
	Command     Command
	Advanced    bool
	Undone      bool
	Transformed bool
	Quarantined []*QuarantinedItem
	Rejected    error
	Completed   bool
	Aborted     bool

	// Category the current item was classified to, when Advanced.
	Category *Category
	// Item that was classified or brought back by undo.
	Item *QueueItem

	Pending        string
	PendingChanged bool
}

func (s *Outcome) IsRejected() bool {
	return s.Rejected != nil
}

func (s *Outcome) String() string {
	var parts []string
	if s.Advanced {
		parts = append(parts, fmt.Sprintf("advanced(%s->%s)", s.Item.FileName(), s.Category.Name()))
	}
	if s.Undone {
		parts = append(parts, fmt.Sprintf("undone(%s)", s.Item.FileName()))
	}
	if s.Transformed {
		parts = append(parts, "transformed")
	}
	for _, quarantined := range s.Quarantined {
		parts = append(parts, fmt.Sprintf("quarantined(%s)", quarantined.Item.FileName()))
	}
	if s.Rejected != nil {
		parts = append(parts, fmt.Sprintf("rejected(%v)", s.Rejected))
	}
	if s.Completed {
		parts = append(parts, "completed")
	}
	if s.Aborted {
		parts = append(parts, "aborted")
	}
	if s.PendingChanged {
		parts = append(parts, fmt.Sprintf("pending(%s)", s.Pending))
	}
	return "Outcome{" + strings.Join(parts, ",") + "}"
}
