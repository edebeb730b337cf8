package library

import (
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common/logger"
)

// LoadQueueItems lists the supported images of the directory in listing
// order. Sub directories are not scanned. When patterns are given, only
// names matching at least one of them are included.
func LoadQueueItems(fileSystem api.FileSystem, directory string, patterns []string) ([]*apitype.QueueItem, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid include pattern '%s'", pattern)
		}
	}

	startTime := time.Now()
	names, err := fileSystem.ListDir(directory)
	if err != nil {
		return nil, errors.Errorf("could not list '%s': %w", directory, err)
	}

	var items []*apitype.QueueItem
	for _, name := range names {
		if !apitype.IsSupported(name) {
			logger.Trace.Printf("Skipping unsupported file '%s'", name)
			continue
		}
		if !matchesAny(name, patterns) {
			logger.Trace.Printf("Skipping '%s', not included", name)
			continue
		}
		items = append(items, apitype.NewQueueItem(directory, name))
	}

	logger.Debug.Printf("Found %d images in '%s' in %s", len(items), directory, time.Since(startTime))
	return items, nil
}

func matchesAny(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
