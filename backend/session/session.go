package session

import (
	"image"
	"time"

	"github.com/google/uuid"
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/backend/filter"
	"vincit.fi/image-triage/backend/history"
	"vincit.fi/image-triage/backend/imageloader"
	"vincit.fi/image-triage/backend/input"
	"vincit.fi/image-triage/backend/library"
	"vincit.fi/image-triage/backend/quarantine"
	"vincit.fi/image-triage/common"
	"vincit.fi/image-triage/common/constants"
	"vincit.fi/image-triage/common/logger"
)

type Config struct {
	SourceDir  string
	DestDir    string
	Categories *apitype.CategorySet
	MaxWidth   int
	MaxHeight  int
	InputMode  common.InputMode
	// MaxHistory limits how many decisions can be undone, 0 means no limit.
	MaxHistory int
	Include    []string
}

type Dependencies struct {
	FileSystem api.FileSystem
	Codec      api.ImageCodec
}

// Session is one run over a source directory. It is driven only by the
// commands submitted to it and is not safe for concurrent use.
type Session struct {
	id         string
	config     Config
	fileSystem api.FileSystem
	codec      api.ImageCodec
	loader     *imageloader.Loader
	filters    *filter.Manager
	queue      *library.Queue
	history    *history.Stack
	quarantine *quarantine.Handler
	decoder    *input.Decoder

	state        State
	current      *imageloader.Instance
	initialCount int
	classified   map[apitype.CategoryId]int

	startupQuarantined []*apitype.QuarantinedItem
}

// Start scans the source directory and loads the first image. Files that
// can not be opened are quarantined before Start returns.
func Start(config Config, deps Dependencies) (*Session, error) {
	if config.Categories == nil {
		config.Categories = apitype.DefaultCategorySet()
	}
	if config.MaxWidth <= 0 {
		config.MaxWidth = constants.DefaultMaxWidth
	}
	if config.MaxHeight <= 0 {
		config.MaxHeight = constants.DefaultMaxHeight
	}

	s := &Session{
		id:         uuid.NewString(),
		config:     config,
		fileSystem: deps.FileSystem,
		codec:      deps.Codec,
		loader:     imageloader.NewLoader(deps.FileSystem, deps.Codec, config.MaxWidth, config.MaxHeight),
		filters:    filter.NewFilterManager(),
		history:    history.NewStack(config.MaxHistory),
		quarantine: quarantine.NewHandler(deps.FileSystem, config.DestDir),
		decoder:    input.NewDecoder(config.InputMode),
		classified: map[apitype.CategoryId]int{},
		state:      Loading,
	}

	if err := s.quarantine.EnsureErrorDir(); err != nil {
		return nil, errors.Errorf("could not create error folder: %w", err)
	}

	items, err := library.LoadQueueItems(deps.FileSystem, config.SourceDir, config.Include)
	if err != nil {
		return nil, err
	}
	s.queue = library.NewQueue(items)
	s.initialCount = len(items)

	logger.Info.Printf("Session %s: %d images in '%s', categories %s",
		s.id, s.initialCount, config.SourceDir, config.Categories)
	s.startupQuarantined = s.load()
	return s, nil
}

// load materializes the item at the cursor. Items that fail are
// quarantined and the next one is tried until one loads or the queue runs
// out.
func (s *Session) load() []*apitype.QuarantinedItem {
	var quarantined []*apitype.QuarantinedItem
	s.current = nil
	for {
		s.state = Loading
		item, ok := s.queue.Peek()
		if !ok {
			s.state = Completed
			logger.Info.Printf("Session %s: all images processed", s.id)
			return quarantined
		}

		instance, err := s.loader.Materialize(item)
		if err == nil {
			s.current = instance
			s.state = AwaitingDecision
			logger.Debug.Printf("Session %s: showing %s", s.id, item)
			return quarantined
		}

		s.state = Quarantining
		if _, removeErr := s.queue.RemoveCurrent(); removeErr != nil {
			logger.Error.Printf("Could not remove %s from queue: %s", item, removeErr)
		}
		quarantined = append(quarantined, s.quarantine.Quarantine(item, err))
	}
}

// Submit applies one command. The returned outcome tells what changed;
// errors are reported in Outcome.Rejected and never end the session.
func (s *Session) Submit(command apitype.Command) *apitype.Outcome {
	startTime := time.Now()
	outcome := &apitype.Outcome{Command: command}

	switch c := command.(type) {
	case *apitype.QuitCommand:
		s.state = Aborted
		outcome.Aborted = true
	case *apitype.UndoCommand:
		if s.state == Aborted {
			outcome.Rejected = apitype.ErrSessionClosed
		} else {
			s.undo(outcome)
		}
	case *apitype.ClassifyCommand:
		if s.state.IsClosed() {
			outcome.Rejected = apitype.ErrSessionClosed
		} else {
			s.classify(c.CategoryId, outcome)
		}
	case *apitype.TransformCommand:
		if s.state.IsClosed() {
			outcome.Rejected = apitype.ErrSessionClosed
		} else {
			s.transform(c.Transform, outcome)
		}
	default:
		outcome.Rejected = errors.Errorf("unknown command %v", command)
	}

	outcome.Completed = s.state == Completed
	outcome.Pending = s.decoder.Pending()
	if outcome.Rejected != nil {
		logger.Debug.Printf("Session %s: %s rejected: %s", s.id, command, outcome.Rejected)
	}
	logger.Trace.Printf("Session %s: %s handled in %s: %s", s.id, command, time.Since(startTime), outcome)
	return outcome
}

// SubmitKey decodes the key and submits the resulting command. Keys that
// only edit the pending input return an outcome with PendingChanged set.
func (s *Session) SubmitKey(keyName string) *apitype.Outcome {
	result := s.decoder.HandleKey(keyName)
	if result.Command == nil {
		return &apitype.Outcome{
			Completed:      s.state == Completed,
			Pending:        s.decoder.Pending(),
			PendingChanged: result.PendingChanged,
		}
	}
	outcome := s.Submit(result.Command)
	outcome.PendingChanged = result.PendingChanged
	return outcome
}

// QuitsOn tells whether SubmitKey would end the session for the key.
func (s *Session) QuitsOn(keyName string) bool {
	return s.decoder.QuitsOn(keyName)
}

func (s *Session) classify(categoryId apitype.CategoryId, outcome *apitype.Outcome) {
	category, err := s.config.Categories.Get(categoryId)
	if err != nil {
		outcome.Rejected = err
		return
	}
	if s.current == nil {
		outcome.Rejected = apitype.ErrNoCurrentImage
		return
	}

	entry, err := s.commit(category)
	if err != nil {
		logger.Error.Printf("Session %s: %s", s.id, err)
		outcome.Rejected = err
		return
	}

	outcome.Advanced = true
	outcome.Category = category
	outcome.Item = entry.Item
	outcome.Quarantined = s.load()
}

func (s *Session) undo(outcome *apitype.Outcome) {
	entry, err := s.revert()
	if err != nil {
		outcome.Rejected = err
		return
	}
	outcome.Undone = true
	outcome.Item = entry.Item
	outcome.Category = entry.Category
}

func (s *Session) transform(transform apitype.Transform, outcome *apitype.Outcome) {
	if s.current == nil {
		outcome.Rejected = apitype.ErrNoCurrentImage
		return
	}
	operation, err := s.filters.GetOperation(transform)
	if err != nil {
		outcome.Rejected = err
		return
	}
	s.current.Apply(operation)
	outcome.Transformed = true
	outcome.Item = s.current.Item()
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Categories() *apitype.CategorySet {
	return s.config.Categories
}

func (s *Session) InputMode() common.InputMode {
	return s.decoder.Mode()
}

// Pending returns the digits typed but not yet confirmed.
func (s *Session) Pending() string {
	return s.decoder.Pending()
}

// Current describes the image waiting for a decision, or nil when there is
// none. Position counts the images already resolved, starting from 1.
func (s *Session) Current() *apitype.ImageInfo {
	if s.current == nil || s.state != AwaitingDecision {
		return nil
	}
	position := s.initialCount - s.queue.Len() + 1
	return s.current.Info(position, s.initialCount)
}

// Preview returns the working buffer of the current image scaled to fit
// the size.
func (s *Session) Preview(size apitype.Size) image.Image {
	if s.current == nil || s.state != AwaitingDecision {
		return nil
	}
	return s.current.Preview(size)
}

// Transforms lists the edits staged on the current image.
func (s *Session) Transforms() []apitype.Transform {
	if s.current == nil {
		return []apitype.Transform{}
	}
	return s.current.Transforms()
}

// StartupQuarantined lists the files quarantined while Start looked for
// the first loadable image.
func (s *Session) StartupQuarantined() []*apitype.QuarantinedItem {
	return s.startupQuarantined
}

func (s *Session) Quarantined() []*apitype.QuarantinedItem {
	return s.quarantine.Items()
}

func (s *Session) Queue() []*apitype.QueueItem {
	return s.queue.Items()
}

func (s *Session) Cursor() int {
	return s.queue.Cursor()
}

func (s *Session) History() []*history.Entry {
	return s.history.Entries()
}
