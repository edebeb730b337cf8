package filter

import (
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/common/logger"
)

type Filter struct {
	id        apitype.Transform
	operation apitype.ImageOperation
}

func (s *Filter) Operation() apitype.ImageOperation {
	return s.operation
}

func (s *Filter) Id() apitype.Transform {
	return s.id
}

// Manager knows the operation for every transform the operator can stage.
type Manager struct {
	filters map[apitype.Transform]*Filter
}

func NewFilterManager() *Manager {
	manager := &Manager{
		filters: map[apitype.Transform]*Filter{},
	}
	manager.AddFilter(NewImageRotateLeft())
	manager.AddFilter(NewImageRotateRight())
	manager.AddFilter(NewImageFlipHorizontal())
	manager.AddFilter(NewImageFlipVertical())
	return manager
}

func (s *Manager) AddFilter(operation apitype.ImageOperation) {
	s.filters[operation.Transform()] = &Filter{
		id:        operation.Transform(),
		operation: operation,
	}
}

func (s *Manager) GetOperation(transform apitype.Transform) (apitype.ImageOperation, error) {
	if filter, ok := s.filters[transform]; !ok {
		logger.Error.Printf("Could not find filter '%s'", transform)
		return nil, errors.Errorf("unknown transform '%s'", transform)
	} else {
		return filter.Operation(), nil
	}
}
