//go:build unit
// +build unit

package web

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input users.RegisterInput) (*users.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*users.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) ListOthers(ctx context.Context, userID string) ([]*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, update users.ProfileUpdate) (*users.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, userID, pictureURL string) error {
	args := m.Called(ctx, userID, pictureURL)
	return args.Error(0)
}

func (m *MockUserService) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockKudoService is a mock implementation of KudoService
type MockKudoService struct {
	mock.Mock
}

func (m *MockKudoService) Send(ctx context.Context, input kudos.SendInput) (*kudos.Kudo, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kudos.Kudo), args.Error(1)
}

func (m *MockKudoService) Feed(ctx context.Context, query *kudos.KudoQuery) ([]*kudos.Kudo, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kudos.Kudo), args.Error(1)
}

func (m *MockKudoService) Recent(ctx context.Context, limit int) ([]*kudos.Kudo, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kudos.Kudo), args.Error(1)
}

// MockAvatarUploadService is a mock implementation of AvatarUploadService
type MockAvatarUploadService struct {
	mock.Mock
}

func (m *MockAvatarUploadService) Upload(ctx context.Context, userID string, form *multipart.Form) (string, error) {
	args := m.Called(ctx, userID, form)
	return args.String(0), args.Error(1)
}

func (m *MockAvatarUploadService) Remove(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
