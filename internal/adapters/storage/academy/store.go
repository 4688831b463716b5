package academy

import (
	"context"

	domain "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/academy"
)

// Store persists Academy state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Academy, error)
	Save(ctx context.Context, value domain.Academy) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Academy, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Limit       int
	Offset      int
	CommunityID string
	Status      string
	Search      string
}
