package quarantine

import (
	"path/filepath"

	"vincit.fi/image-triage/api"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common/constants"
	"vincit.fi/image-triage/common/logger"
)

// Handler moves files that can not be classified to the error folder under
// the destination directory. Nothing it does can be undone.
type Handler struct {
	fileSystem api.FileSystem
	errorDir   string
	items      []*apitype.QuarantinedItem
}

func NewHandler(fileSystem api.FileSystem, destDir string) *Handler {
	return &Handler{
		fileSystem: fileSystem,
		errorDir:   filepath.Join(destDir, constants.ErrorDirName),
		items:      []*apitype.QuarantinedItem{},
	}
}

func (s *Handler) EnsureErrorDir() error {
	return s.fileSystem.EnsureDir(s.errorDir)
}

func (s *Handler) ErrorDir() string {
	return s.errorDir
}

// Quarantine moves the item's file to the error folder. The item is
// recorded even when the move fails so that it is not retried.
func (s *Handler) Quarantine(item *apitype.QueueItem, reason error) *apitype.QuarantinedItem {
	quarantined := &apitype.QuarantinedItem{
		Item:        item,
		Destination: item.DestinationIn(s.errorDir),
		Reason:      reason,
	}

	logger.Warn.Printf("Quarantining '%s': %s", item.FileName(), reason)
	if err := s.fileSystem.Move(item.Path(), quarantined.Destination); err != nil {
		logger.Error.Printf("Could not move '%s' to '%s': %s", item.Path(), quarantined.Destination, err)
		quarantined.MoveErr = err
	}

	s.items = append(s.items, quarantined)
	return quarantined
}

func (s *Handler) Items() []*apitype.QuarantinedItem {
	items := make([]*apitype.QuarantinedItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Handler) Count() int {
	return len(s.items)
}
