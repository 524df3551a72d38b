package service

import (
	"context"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
)

// UserService defines the operations the settings endpoints expose over
// the user store.
type UserService interface {
	CreateUser(ctx context.Context, form domain.UserForm) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
