package category

import (
	"vincit.fi/image-triage/api"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common/logger"
)

// Manager decides which categories a session uses and remembers them for
// the next run.
type Manager struct {
	store      api.CategoryStore
	categories *apitype.CategorySet
}

func NewManager(store api.CategoryStore) *Manager {
	return &Manager{
		store: store,
	}
}

// Resolve uses the command line categories when given, otherwise the
// saved ones and finally the default set.
func (s *Manager) Resolve(commandLineCategories []string) (*apitype.CategorySet, error) {
	var labels []string
	if len(commandLineCategories) > 0 {
		logger.Info.Printf("Reading from command line parameters")
		labels = commandLineCategories
	} else if loaded, err := s.store.Load(); err != nil {
		logger.Warn.Printf("Could not load saved categories: %s", err)
	} else {
		labels = loaded
	}

	if len(labels) == 0 {
		logger.Info.Printf("Using default categories")
		s.categories = apitype.DefaultCategorySet()
		return s.categories, nil
	}

	categories, err := apitype.NewCategorySet(labels)
	if err != nil {
		return nil, err
	}
	s.categories = categories
	return s.categories, nil
}

func (s *Manager) Categories() *apitype.CategorySet {
	return s.categories
}

// Close saves the categories in use.
func (s *Manager) Close() error {
	if s.categories == nil {
		return nil
	}
	logger.Info.Print("Shutting down category manager")
	return s.store.Save(s.categories.Names())
}
