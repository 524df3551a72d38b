package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
)

// MockUserService is a testify mock for service.UserService.
type MockUserService struct {
	mock.Mock
}

func NewMockUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserService {
	m := &MockUserService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserService) CreateUser(ctx context.Context, form domain.UserForm) (domain.User, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
