package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api/apitype"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

type status struct {
	text string
	kind statusKind
}

func describeQuarantined(quarantined []*apitype.QuarantinedItem) []string {
	var lines []string
	for _, item := range quarantined {
		if item.MoveErr != nil {
			lines = append(lines, fmt.Sprintf("Could not move %s to the error folder: %v", item.Item.FileName(), item.MoveErr))
		} else {
			lines = append(lines, fmt.Sprintf("Moved %s to the error folder: %v", item.Item.FileName(), item.Reason))
		}
	}
	return lines
}

func describeRejection(err error) string {
	var rangeErr *apitype.InputOutOfRangeError
	switch {
	case errors.Is(err, apitype.ErrNothingToUndo):
		return "Nothing to undo"
	case errors.Is(err, apitype.ErrSessionClosed):
		return "All images are processed, press - to undo or esc to quit"
	case errors.As(err, &rangeErr):
		return fmt.Sprintf("Category %d does not exist, enter a number between 1 and %d", rangeErr.Index, rangeErr.Max)
	}
	return err.Error()
}

// describeOutcome builds the status line text for an outcome. An empty
// text means that nothing worth showing happened.
func describeOutcome(outcome *apitype.Outcome) status {
	var lines []string
	kind := statusInfo

	switch {
	case outcome.Rejected != nil:
		lines = append(lines, describeRejection(outcome.Rejected))
		kind = statusError
	case outcome.Advanced:
		lines = append(lines, fmt.Sprintf("Moved %s to %s", outcome.Item.FileName(), outcome.Category.Name()))
		kind = statusSuccess
	case outcome.Undone:
		lines = append(lines, fmt.Sprintf("Restored %s from %s", outcome.Item.FileName(), outcome.Category.Name()))
		kind = statusSuccess
	case outcome.Transformed:
		if transform, ok := outcome.Command.(*apitype.TransformCommand); ok {
			lines = append(lines, transform.Transform.String())
		}
	}

	if len(outcome.Quarantined) > 0 {
		lines = append(lines, describeQuarantined(outcome.Quarantined)...)
		if kind != statusError {
			kind = statusWarning
		}
	}
	if outcome.Completed && outcome.Rejected == nil {
		lines = append(lines, "All images processed, press - to undo or esc to quit")
	}
	return status{text: strings.Join(lines, "\n"), kind: kind}
}
