package session

import (
	"path/filepath"

	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/backend/history"
	"vincit.fi/image-triage/backend/imageloader"
	"vincit.fi/image-triage/common/logger"
)

// commit writes the working buffer of the current image to the category
// folder and only then deletes the source. Any failure leaves the source
// file and the queue as they were.
func (s *Session) commit(category *apitype.Category) (*history.Entry, error) {
	item := s.current.Item()
	targetDir := filepath.Join(s.config.DestDir, category.SubPath())
	destination := item.DestinationIn(targetDir)

	fail := func(err error) (*history.Entry, error) {
		return nil, &apitype.CommitError{Name: item.FileName(), Destination: destination, Err: err}
	}

	if err := s.fileSystem.EnsureDir(targetDir); err != nil {
		return fail(err)
	}

	snapshot := s.current.Snapshot()
	data, err := s.codec.Encode(snapshot, destination)
	if err != nil {
		return fail(err)
	}

	if s.fileSystem.Exists(destination) {
		logger.Warn.Printf("'%s' already exists and will be replaced", destination)
	}
	if err := s.fileSystem.Write(destination, data); err != nil {
		return fail(err)
	}

	if err := s.fileSystem.Delete(item.Path()); err != nil {
		if removeErr := s.fileSystem.Delete(destination); removeErr != nil {
			logger.Error.Printf("Could not remove '%s' after failed commit: %s", destination, removeErr)
		}
		return fail(err)
	}

	if _, err := s.queue.RemoveCurrent(); err != nil {
		logger.Error.Printf("Could not remove %s from queue: %s", item, err)
	}
	entry := history.NewEntry(item, category, destination, snapshot).
		WithFile(int64(len(data)), s.current.Exif())
	s.history.Push(entry)
	s.classified[category.Id()]++

	logger.Info.Printf("Session %s: '%s' -> '%s'", s.id, item.FileName(), category.Name())
	return entry, nil
}

// revert reverses the most recent commit. The file is moved back as it was
// written and the item becomes the current one again with the working
// buffer it had when it was committed.
func (s *Session) revert() (*history.Entry, error) {
	entry, err := s.history.Pop()
	if err != nil {
		return nil, err
	}

	if err := s.fileSystem.Move(entry.Destination, entry.Source); err != nil {
		s.history.Push(entry)
		return nil, &apitype.UndoError{Source: entry.Source, Destination: entry.Destination, Err: err}
	}

	s.queue.InsertAtCursor(entry.Item)
	s.current = imageloader.NewInstanceFromSnapshot(entry.Item, entry.Snapshot, entry.ByteSize, entry.Exif)
	s.state = AwaitingDecision
	s.classified[entry.Category.Id()]--

	logger.Info.Printf("Session %s: undo '%s' from '%s'", s.id, entry.Item.FileName(), entry.Category.Name())
	return entry, nil
}
