package community

import (
	"context"

	domain "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
)

// Store persists Community state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Community, error)
	GetByName(ctx context.Context, name string) (domain.Community, error)
	Save(ctx context.Context, value domain.Community) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Community, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Limit    int
	Offset   int
	Category string
	Status   string
	Search   string
}
