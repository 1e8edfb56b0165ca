// service/user_service_test.go
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"simple-bank-api/model"
	"simple-bank-api/repository"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	req := model.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"}

	t.Run("success", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", mock.Anything, req.Email).Return(nil, sql.ErrNoRows).Once()
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Name == req.Name && u.Email == req.Email && u.Password != req.Password && u.Password != ""
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 5
		}).Return(nil).Once()

		userService := NewUserService(repo, newTestAuthService(), nil, time.Minute)
		user, err := userService.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 5, user.ID)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", mock.Anything, req.Email).Return(&model.User{ID: 1, Email: req.Email}, nil).Once()

		userService := NewUserService(repo, newTestAuthService(), nil, time.Minute)
		_, err := userService.Register(ctx, req)

		assert.ErrorIs(t, err, ErrUserExists)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("duplicate detected by unique constraint", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", mock.Anything, req.Email).Return(nil, sql.ErrNoRows).Once()
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

		userService := NewUserService(repo, newTestAuthService(), nil, time.Minute)
		_, err := userService.Register(ctx, req)

		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("lookup error", func(t *testing.T) {
		repo := new(mockUserRepo)
		dbErr := errors.New("connection reset")
		repo.On("GetUserByEmail", mock.Anything, req.Email).Return(nil, dbErr).Once()

		userService := NewUserService(repo, newTestAuthService(), nil, time.Minute)
		_, err := userService.Register(ctx, req)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuthService()
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	stored := &model.User{ID: 8, Email: "ada@example.com", Password: hash}

	t.Run("success", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", mock.Anything, stored.Email).Return(stored, nil).Once()

		token, err := NewUserService(repo, auth, nil, time.Minute).Login(ctx, model.LoginRequest{Email: stored.Email, Password: "secret1"})

		require.NoError(t, err)
		userID, err := auth.ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, 8, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", mock.Anything, stored.Email).Return(stored, nil).Once()

		_, err := NewUserService(repo, auth, nil, time.Minute).Login(ctx, model.LoginRequest{Email: stored.Email, Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, sql.ErrNoRows).Once()

		_, err := NewUserService(repo, auth, nil, time.Minute).Login(ctx, model.LoginRequest{Email: "nobody@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()
	ttl := 10 * time.Minute

	t.Run("cache hit skips the database", func(t *testing.T) {
		repo := new(mockUserRepo)
		cache := new(mockCache)
		cached, _ := json.Marshal(model.UserProfile{ID: 3, Name: "Ada", Email: "ada@example.com"})
		cache.On("Get", mock.Anything, "users:3").Return(string(cached), nil).Once()

		profile, err := NewUserService(repo, newTestAuthService(), cache, ttl).GetProfile(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "Ada", profile.Name)
		repo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
		cache.AssertExpectations(t)
	})

	t.Run("cache miss loads and stores the profile", func(t *testing.T) {
		repo := new(mockUserRepo)
		cache := new(mockCache)
		cache.On("Get", mock.Anything, "users:3").Return("", redis.Nil).Once()
		repo.On("GetUserByID", mock.Anything, 3).Return(&model.User{ID: 3, Name: "Ada", Email: "ada@example.com", Password: "hash"}, nil).Once()
		cache.On("Set", mock.Anything, "users:3", mock.Anything, ttl).Return(nil).Once()

		profile, err := NewUserService(repo, newTestAuthService(), cache, ttl).GetProfile(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, &model.UserProfile{ID: 3, Name: "Ada", Email: "ada@example.com"}, profile)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("no cache configured", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByID", mock.Anything, 3).Return(&model.User{ID: 3, Name: "Ada"}, nil).Once()

		profile, err := NewUserService(repo, newTestAuthService(), nil, ttl).GetProfile(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, profile.ID)
	})

	t.Run("user not found", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByID", mock.Anything, 4).Return(nil, sql.ErrNoRows).Once()

		userService := NewUserService(repo, newTestAuthService(), nil, ttl)
		_, err := userService.GetProfile(ctx, 4)
		assert.ErrorIs(t, err, ErrUserNotFound)

		repo.On("GetUserByID", mock.Anything, 4).Return(nil, sql.ErrNoRows).Once()
		exists, err := userService.Exists(ctx, 4)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
