package constants

const (
	ErrorDirName       = "error"
	CategoriesFileName = "categories"
	ImageTriageDir     = ".image-triage"
	ConfigFileName     = "config"
	EnvPrefix          = "IMAGE_TRIAGE"

	DefaultMaxWidth    = 5000
	DefaultMaxHeight   = 5000
	DefaultJpegQuality = 95
)

var DefaultCategories = []string{"flagged", "clear"}
