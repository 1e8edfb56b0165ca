package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"simple-bank-api/logger"
	"simple-bank-api/model"
	"simple-bank-api/repository"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService handles registration, login and profile lookups.
type UserService struct {
	userRepo repository.IUserRepository
	auth     *AuthService
	cache    ICacheClient
	cacheTTL time.Duration
}

// NewUserService creates a new UserService. cache may be nil, in which case
// profiles are always read from the database.
func NewUserService(userRepo repository.IUserRepository, auth *AuthService, cache ICacheClient, cacheTTL time.Duration) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func userCacheKey(userID int) string {
	return fmt.Sprintf("users:%d", userID)
}

// Register creates a user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	log := logger.Log.WithField("email", req.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		log.Info("Registration rejected, email already in use")
		return nil, ErrUserExists
	}

	hashedPassword, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// Login checks the credentials and returns a signed access token.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.auth.CheckPasswordHash(req.Password, user.Password) {
		logger.Log.WithField("user_id", user.ID).Warn("Login failed, wrong password")
		return "", ErrInvalidCredentials
	}

	return s.auth.GenerateJWT(user.ID)
}

// GetProfile returns the public profile of a user, using a cache-aside
// strategy when a cache is configured.
func (s *UserService) GetProfile(ctx context.Context, userID int) (*model.UserProfile, error) {
	log := logger.Log.WithField("user_id", userID)
	cacheKey := userCacheKey(userID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var profile model.UserProfile
			if err := json.Unmarshal([]byte(cached), &profile); err == nil {
				log.Debug("User profile served from cache")
				return &profile, nil
			}
		}
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	profile := &model.UserProfile{ID: user.ID, Name: user.Name, Email: user.Email}

	if s.cache != nil {
		if data, err := json.Marshal(profile); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				log.WithFields(logrus.Fields{"key": cacheKey}).WithError(err).Warn("Failed to cache user profile")
			}
		}
	}

	return profile, nil
}

// Exists reports whether the user is present, going through the profile cache.
func (s *UserService) Exists(ctx context.Context, userID int) (bool, error) {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
