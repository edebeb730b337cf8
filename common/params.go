package common

import (
	"regexp"
	"strings"

	"vincit.fi/image-triage/common/constants"
)

type InputMode string

const (
	BufferedInput  InputMode = "buffered"
	SingleKeyInput InputMode = "single"
)

type Params struct {
	sourceDir      string
	destDir        string
	categories     []string
	maxWidth       int
	maxHeight      int
	inputMode      InputMode
	jpegQuality    int
	autoOrient     bool
	maxHistory     int
	include        []string
	logLevel       string
	logFile        string
	categoriesFile string
}

type ParamsBuilder struct {
	params Params
}

func NewEmptyParams() *Params {
	return &Params{
		categories:  []string{},
		maxWidth:    constants.DefaultMaxWidth,
		maxHeight:   constants.DefaultMaxHeight,
		inputMode:   BufferedInput,
		jpegQuality: constants.DefaultJpegQuality,
		include:     []string{},
		logLevel:    "INFO",
	}
}

func NewParamsBuilder(sourceDir string, destDir string) *ParamsBuilder {
	params := NewEmptyParams()
	params.sourceDir = sourceDir
	params.destDir = destDir
	return &ParamsBuilder{params: *params}
}

func (s *ParamsBuilder) Categories(categories []string) *ParamsBuilder {
	s.params.categories = categories
	return s
}

func (s *ParamsBuilder) MaxSize(width int, height int) *ParamsBuilder {
	s.params.maxWidth = width
	s.params.maxHeight = height
	return s
}

func (s *ParamsBuilder) InputMode(mode InputMode) *ParamsBuilder {
	s.params.inputMode = mode
	return s
}

func (s *ParamsBuilder) JpegQuality(quality int) *ParamsBuilder {
	s.params.jpegQuality = quality
	return s
}

func (s *ParamsBuilder) AutoOrient(autoOrient bool) *ParamsBuilder {
	s.params.autoOrient = autoOrient
	return s
}

func (s *ParamsBuilder) MaxHistory(maxHistory int) *ParamsBuilder {
	s.params.maxHistory = maxHistory
	return s
}

func (s *ParamsBuilder) Include(patterns []string) *ParamsBuilder {
	s.params.include = patterns
	return s
}

func (s *ParamsBuilder) Logging(level string, file string) *ParamsBuilder {
	s.params.logLevel = level
	s.params.logFile = file
	return s
}

func (s *ParamsBuilder) CategoriesFile(path string) *ParamsBuilder {
	s.params.categoriesFile = path
	return s
}

func (s *ParamsBuilder) Build() *Params {
	params := s.params
	return &params
}

var categorySeparator = regexp.MustCompile("[,，]")

// SplitCategories splits an operator supplied list on both the ASCII and
// the full width comma and drops empty entries.
func SplitCategories(value string) []string {
	var categories []string
	for _, part := range categorySeparator.Split(value, -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return categories
}

func (s *Params) SourceDir() string {
	return s.sourceDir
}

func (s *Params) DestDir() string {
	return s.destDir
}

func (s *Params) Categories() []string {
	return s.categories
}

func (s *Params) MaxWidth() int {
	return s.maxWidth
}

func (s *Params) MaxHeight() int {
	return s.maxHeight
}

func (s *Params) InputMode() InputMode {
	return s.inputMode
}

func (s *Params) JpegQuality() int {
	return s.jpegQuality
}

func (s *Params) AutoOrient() bool {
	return s.autoOrient
}

func (s *Params) MaxHistory() int {
	return s.maxHistory
}

func (s *Params) Include() []string {
	return s.include
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) LogFile() string {
	return s.logFile
}

func (s *Params) CategoriesFile() string {
	return s.categoriesFile
}
