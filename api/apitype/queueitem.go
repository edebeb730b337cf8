package apitype

import (
	"path/filepath"
	"strings"

	"vincit.fi/image-triage/common/util"
)

// QueueItem is one not yet classified file of the source directory.
type QueueItem struct {
	directory string
	filename  string
	path      string
}

var (
	EmptyQueueItem       = QueueItem{path: ""}
	supportedFileEndings = util.NewSetOf(".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff")
)

func NewQueueItem(fileDir string, fileName string) *QueueItem {
	return &QueueItem{
		directory: fileDir,
		filename:  fileName,
		path:      filepath.Join(fileDir, fileName),
	}
}

func GetEmptyQueueItem() *QueueItem {
	return &EmptyQueueItem
}

func (s *QueueItem) IsValid() bool {
	return s != nil && s.path != "" && s.filename != ""
}

func (s *QueueItem) String() string {
	if s != nil {
		if s.IsValid() {
			return "QueueItem{" + s.filename + "}"
		} else {
			return "QueueItem<invalid>"
		}
	} else {
		return "QueueItem<nil>"
	}
}

func (s *QueueItem) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *QueueItem) Directory() string {
	if s != nil {
		return s.directory
	} else {
		return ""
	}
}

func (s *QueueItem) FileName() string {
	if s != nil {
		return s.filename
	} else {
		return ""
	}
}

// DestinationIn resolves where the item goes inside the given folder.
func (s *QueueItem) DestinationIn(dir string) string {
	return filepath.Join(dir, s.FileName())
}

func IsSupported(fileName string) bool {
	return supportedFileEndings.Contains(strings.ToLower(filepath.Ext(fileName)))
}
