package repository

import (
	"context"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
)

// UserRepository defines methods for user data access. The store assigns
// identifiers and creation timestamps; callers never supply them.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	Delete(ctx context.Context, id string) error
}
