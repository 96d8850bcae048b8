package authservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"github.com/aibaljacob/prodigi/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		email         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "newuser",
			email:    "newuser@example.com",
			password: "password123",
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				userRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, "newuser", user.Login)
						assert.Equal(t, "newuser@example.com", user.Email)
						assert.Equal(t, "hashedpassword", user.PasswordHash)
						assert.Equal(t, auth.RoleBuyer, user.Role)
						user.ID = 1
						return user, nil
					})
			},
			expectedError: nil,
		},
		{
			name:     "Login already taken",
			login:    "existing",
			email:    "existing@example.com",
			password: "password123",
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("user existing: %w", pg.ErrUniqueViolation))
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Hashing failure",
			login:    "newuser",
			email:    "newuser@example.com",
			password: "password123",
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword("password123").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), tt.login, tt.email, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.login, user.Login)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	activeUser := &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword", Role: auth.RoleBuyer, IsActive: true}
	bannedUser := &domain.User{ID: 2, Login: "banned", PasswordHash: "hashedpassword", Role: auth.RoleBuyer, IsActive: false}

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "testuser",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(activeUser, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "password123").Return(true)
			},
			expectedError: nil,
		},
		{
			name:     "Unknown login",
			login:    "missing",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "missing").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			login:    "testuser",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(activeUser, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrong").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Banned account",
			login:    "banned",
			password: "password123",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "banned").Return(bannedUser, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "password123").Return(true)
			},
			expectedError: ErrUserBanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.login, user.Login)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().
		GenerateJWT(1, auth.RoleBuyer, gomock.Any()).
		Return("some-jwt-token", nil)

	token, err := service.GenerateToken(1, auth.RoleBuyer)
	assert.NoError(t, err)
	assert.Equal(t, "some-jwt-token", token)

	jwtService.EXPECT().
		GenerateJWT(1, auth.RoleBuyer, gomock.Any()).
		Return("", errors.New("sign error"))

	token, err = service.GenerateToken(1, auth.RoleBuyer)
	assert.Error(t, err)
	assert.Empty(t, token)
}
