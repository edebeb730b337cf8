package category

import (
	"bufio"
	"io"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api"
	"vincit.fi/image-triage/common/constants"
	"vincit.fi/image-triage/common/logger"
)

const fileVersionHeader = "#version:1"

// FileStore keeps the category list in a text file: a version header and
// one category per line.
type FileStore struct {
	fs       afero.Fs
	filePath string

	api.CategoryStore
}

func NewFileStore(fs afero.Fs, filePath string) *FileStore {
	return &FileStore{
		fs:       fs,
		filePath: filePath,
	}
}

// DefaultFilePath is the categories file in the user's home directory.
func DefaultFilePath() (string, error) {
	currentUser, err := user.Current()
	if err != nil {
		return "", errors.Errorf("could not find current user: %w", err)
	}
	return filepath.Join(currentUser.HomeDir, constants.ImageTriageDir, constants.CategoriesFileName), nil
}

func (s *FileStore) FilePath() string {
	return s.filePath
}

// Load returns no categories when the file does not exist yet.
func (s *FileStore) Load() ([]string, error) {
	f, err := s.fs.Open(s.filePath)
	if err != nil {
		if exists, _ := afero.Exists(s.fs, s.filePath); !exists {
			logger.Debug.Printf("No categories file '%s'", s.filePath)
			return []string{}, nil
		}
		return nil, errors.Errorf("could not open '%s': %w", s.filePath, err)
	}
	defer f.Close()

	logger.Info.Printf("Reading categories from file '%s'", s.filePath)
	return readCategoriesFromReader(f)
}

func (s *FileStore) Save(categories []string) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return errors.Errorf("could not create directory for '%s': %w", s.filePath, err)
	}

	logger.Info.Printf("Saving categories to file '%s'", s.filePath)
	f, err := s.fs.Create(s.filePath)
	if err != nil {
		return errors.Errorf("could not write '%s': %w", s.filePath, err)
	}

	err = writeCategoriesToBuffer(bufio.NewWriter(f), categories)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Errorf("could not write '%s': %w", s.filePath, err)
	}
	return nil
}

// Parse returns the category name of a line. Older files have lines of the
// form Name:Shortcut or Name:Path:Shortcut.
func Parse(value string) string {
	name, _, _ := strings.Cut(value, ":")
	return strings.TrimSpace(name)
}

func fromCategoriesStrings(lines []string) []string {
	categories := []string{}
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		if name := Parse(line); len(name) > 0 {
			categories = append(categories, name)
		}
	}
	logger.Debug.Printf("Parsed %d categories", len(categories))
	for _, name := range categories {
		logger.Trace.Printf(" - %s", name)
	}
	return categories
}

func writeCategoriesToBuffer(w *bufio.Writer, categories []string) error {
	if _, err := w.WriteString(fileVersionHeader + "\n"); err != nil {
		return err
	}
	for _, name := range categories {
		if _, err := w.WriteString(name + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func readCategoriesFromReader(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return fromCategoriesStrings(lines), nil
}
