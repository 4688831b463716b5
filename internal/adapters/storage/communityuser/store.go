package communityuser

import (
	"context"

	domain "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/communityuser"
)

// Store persists CommunityUser state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.CommunityUser, error)
	GetByEmail(ctx context.Context, email string) (domain.CommunityUser, error)
	Save(ctx context.Context, value domain.CommunityUser) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.CommunityUser, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Limit  int
	Offset int
	Status string
	Search string
}
