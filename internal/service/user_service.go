package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
	"github.com/dethrtrns/techwondoe-test-task/internal/logger"
	"github.com/dethrtrns/techwondoe-test-task/internal/metrics"
	"github.com/dethrtrns/techwondoe-test-task/internal/repository"
)

// userService implements UserService on top of a UserRepository.
type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// CreateUser stores a new user. A blank avatar is replaced with the
// deterministic default before the record reaches the store, and every new
// user starts out invited.
func (s *userService) CreateUser(ctx context.Context, form domain.UserForm) (domain.User, error) {
	avatar := form.Avatar
	if avatar == "" {
		avatar = domain.DefaultAvatarURL(form.Name)
	}

	start := time.Now()
	created, err := s.repo.Create(ctx, domain.User{
		Name:   form.Name,
		Email:  form.Email,
		Role:   form.Role,
		Avatar: avatar,
		Status: domain.StatusInvited,
	})
	metrics.ObserveStoreOperation("create", outcome(err), start)
	if err != nil {
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	logger.Info("User created",
		slog.String("user_id", created.ID),
		slog.String("role", created.Role))
	return created, nil
}

// ListUsers returns all users as stored.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	start := time.Now()
	users, err := s.repo.List(ctx)
	metrics.ObserveStoreOperation("list", outcome(err), start)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies a patch to an existing user and returns the record the
// store confirmed.
func (s *userService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	start := time.Now()
	updated, err := s.repo.Update(ctx, id, patch)
	metrics.ObserveStoreOperation("update", outcome(err), start)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, err
		}
		logger.Error("Failed to update user",
			slog.String("user_id", id),
			slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	logger.Info("User updated", slog.String("user_id", id))
	return updated, nil
}

// DeleteUser removes a user by id.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	metrics.ObserveStoreOperation("delete", outcome(err), start)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		logger.Error("Failed to delete user",
			slog.String("user_id", id),
			slog.String("error", err.Error()))
		return fmt.Errorf("delete user: %w", err)
	}

	logger.Info("User deleted", slog.String("user_id", id))
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrUserNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
