package input

import (
	"strconv"
	"strings"

	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common"
	"vincit.fi/image-triage/common/logger"
)

const maxPendingDigits = 6

// Result of one key press. Command is nil when the key only edited the
// pending input or is not bound to anything.
type Result struct {
	Command        apitype.Command
	PendingChanged bool
}

// Decoder turns key names into session commands. In buffered mode digits
// are collected until confirmed with space or enter, in single mode every
// digit is a command of its own.
type Decoder struct {
	mode    common.InputMode
	pending []byte
}

func NewDecoder(mode common.InputMode) *Decoder {
	if mode != common.SingleKeyInput {
		mode = common.BufferedInput
	}
	return &Decoder{
		mode:    mode,
		pending: []byte{},
	}
}

func (s *Decoder) Mode() common.InputMode {
	return s.mode
}

// Pending returns the digits typed but not yet confirmed.
func (s *Decoder) Pending() string {
	return string(s.pending)
}

func (s *Decoder) HandleKey(keyName string) Result {
	switch keyName {
	case "ctrl+c", "esc":
		return Result{Command: apitype.Quit()}
	case "-":
		return Result{Command: apitype.Undo()}
	case "a":
		return Result{Command: apitype.RotateLeft()}
	case "d":
		return Result{Command: apitype.RotateRight()}
	case "w":
		return Result{Command: apitype.FlipVertical()}
	case "s":
		return Result{Command: apitype.FlipHorizontal()}
	}

	if s.mode == common.SingleKeyInput {
		return s.handleSingleKey(keyName)
	} else {
		return s.handleBufferedKey(keyName)
	}
}

// QuitsOn tells whether the key would decode to Quit in the current
// state. The pending input is not changed.
func (s *Decoder) QuitsOn(keyName string) bool {
	switch keyName {
	case "ctrl+c", "esc":
		return true
	case "0":
		return s.mode == common.SingleKeyInput || len(s.pending) == 0
	}
	return false
}

func (s *Decoder) handleSingleKey(keyName string) Result {
	if !isDigit(keyName) {
		return Result{}
	}
	if keyName == "0" {
		return Result{Command: apitype.Quit()}
	}
	return Result{Command: apitype.Classify(apitype.CategoryId(keyName[0] - '0'))}
}

func (s *Decoder) handleBufferedKey(keyName string) Result {
	switch {
	case keyName == "0" && len(s.pending) == 0:
		return Result{Command: apitype.Quit()}
	case isDigit(keyName):
		if len(s.pending) >= maxPendingDigits {
			logger.Debug.Printf("Input buffer full, ignoring '%s'", keyName)
			return Result{}
		}
		s.pending = append(s.pending, keyName[0])
		return Result{PendingChanged: true}
	case keyName == "backspace":
		if len(s.pending) == 0 {
			return Result{}
		}
		s.pending = s.pending[:len(s.pending)-1]
		return Result{PendingChanged: true}
	case keyName == "enter" || keyName == "space" || keyName == " ":
		return s.confirm()
	}
	return Result{}
}

// confirm turns the pending digits into a classify command. The buffer is
// cleared whether the command later succeeds or not.
func (s *Decoder) confirm() Result {
	if len(s.pending) == 0 {
		return Result{}
	}
	value := strings.TrimLeft(string(s.pending), "0")
	s.pending = s.pending[:0]

	index, err := strconv.Atoi(value)
	if err != nil {
		index = 0
	}
	return Result{
		Command:        apitype.Classify(apitype.CategoryId(index)),
		PendingChanged: true,
	}
}

func isDigit(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= '0' && keyName[0] <= '9'
}
