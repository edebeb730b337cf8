package apitype

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/common/constants"
	"vincit.fi/image-triage/common/util"
)

// CategoryId is the 1-based position of a category in its set.
type CategoryId int

const NoCategory = CategoryId(0)

type Category struct {
	id   CategoryId
	name string
}

func NewCategory(id CategoryId, name string) *Category {
	return &Category{
		id:   id,
		name: name,
	}
}

func (s *Category) Id() CategoryId {
	if s != nil {
		return s.id
	} else {
		return NoCategory
	}
}

func (s *Category) Name() string {
	if s != nil {
		return s.name
	} else {
		return ""
	}
}

// SubPath is the folder under the destination base the category's images
// are written to.
func (s *Category) SubPath() string {
	return s.Name()
}

func (s *Category) String() string {
	if s != nil {
		return fmt.Sprintf("%d:%s", s.id, s.name)
	} else {
		return "Category<nil>"
	}
}

// CategorySet is the ordered, immutable list of labels of one session.
type CategorySet struct {
	categories []*Category
}

func NewCategorySet(labels []string) (*CategorySet, error) {
	if len(labels) == 0 {
		return nil, errors.New("at least one category is required")
	}

	seen := util.NewSet[string]()
	categories := make([]*Category, 0, len(labels))
	for i, label := range labels {
		if err := validateLabel(label); err != nil {
			return nil, err
		}
		if seen.Contains(label) {
			return nil, errors.Errorf("duplicate category '%s'", label)
		}
		seen.Add(label)
		categories = append(categories, NewCategory(CategoryId(i+1), label))
	}
	return &CategorySet{categories: categories}, nil
}

func DefaultCategorySet() *CategorySet {
	set, _ := NewCategorySet(constants.DefaultCategories)
	return set
}

func validateLabel(label string) error {
	switch {
	case strings.TrimSpace(label) == "":
		return errors.New("category name must not be empty")
	case label == "." || label == "..":
		return errors.Errorf("category '%s' is not a valid folder name", label)
	case strings.ContainsAny(label, `/\:`):
		return errors.Errorf("category '%s' must not contain '/', '\\' or ':'", label)
	case strings.HasPrefix(strings.TrimSpace(label), "#"):
		return errors.Errorf("category '%s' must not start with '#'", label)
	case label == constants.ErrorDirName:
		return errors.Errorf("category '%s' is reserved for quarantined files", label)
	}
	return nil
}

// Get returns the category for a 1-based index.
func (s *CategorySet) Get(id CategoryId) (*Category, error) {
	if id < 1 || int(id) > len(s.categories) {
		return nil, &InputOutOfRangeError{Index: int(id), Max: len(s.categories)}
	}
	return s.categories[id-1], nil
}

func (s *CategorySet) Len() int {
	return len(s.categories)
}

func (s *CategorySet) Categories() []*Category {
	categories := make([]*Category, len(s.categories))
	copy(categories, s.categories)
	return categories
}

func (s *CategorySet) Names() []string {
	names := make([]string, 0, len(s.categories))
	for _, category := range s.categories {
		names = append(names, category.name)
	}
	return names
}

func (s *CategorySet) String() string {
	return fmt.Sprintf("CategorySet%v", s.Names())
}
