package backend

import (
	"github.com/spf13/afero"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/backend/category"
	"vincit.fi/image-triage/backend/fileio"
	"vincit.fi/image-triage/backend/imageloader"
	"vincit.fi/image-triage/backend/session"
	"vincit.fi/image-triage/common"
	"vincit.fi/image-triage/common/logger"
)

type Services struct {
	FileSystem      *fileio.FileSystem
	Codec           *imageloader.ImagingCodec
	CategoryStore   *category.FileStore
	CategoryManager *category.Manager
}

func (s *Services) Close() {
	if err := s.CategoryManager.Close(); err != nil {
		logger.Error.Printf("Could not save categories: %s", err)
	}
}

// InitializeServices builds the collaborators of a session on top of the
// given file system.
func InitializeServices(params *common.Params, fs afero.Fs) (*Services, error) {
	logger.Debug.Printf("Initialize services...")
	categoriesFile := params.CategoriesFile()
	if categoriesFile == "" {
		defaultFile, err := category.DefaultFilePath()
		if err != nil {
			return nil, err
		}
		categoriesFile = defaultFile
	}

	categoryStore := category.NewFileStore(fs, categoriesFile)
	services := &Services{
		FileSystem:      fileio.NewFileSystem(fs),
		Codec:           imageloader.NewImageCodec(apitype.NewEncodeOptions(params.JpegQuality(), params.AutoOrient())),
		CategoryStore:   categoryStore,
		CategoryManager: category.NewManager(categoryStore),
	}
	logger.Debug.Printf("Services initialized")
	return services, nil
}

// StartSession resolves the categories and starts a session over the
// source directory.
func (s *Services) StartSession(params *common.Params) (*session.Session, error) {
	categories, err := s.CategoryManager.Resolve(params.Categories())
	if err != nil {
		return nil, err
	}

	return session.Start(session.Config{
		SourceDir:  params.SourceDir(),
		DestDir:    params.DestDir(),
		Categories: categories,
		MaxWidth:   params.MaxWidth(),
		MaxHeight:  params.MaxHeight(),
		InputMode:  params.InputMode(),
		MaxHistory: params.MaxHistory(),
		Include:    params.Include(),
	}, session.Dependencies{
		FileSystem: s.FileSystem,
		Codec:      s.Codec,
	})
}
