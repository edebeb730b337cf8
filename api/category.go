package api

// CategoryStore keeps the operator's category list between runs.
type CategoryStore interface {
	Load() ([]string, error)
	Save(categories []string) error
}
