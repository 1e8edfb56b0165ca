package repository

import (
	"context"
	"database/sql"
	"fmt"
	"simple-bank-api/logger"
	"simple-bank-api/model"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a user and fills in its generated id and created_at.
// A taken email yields ErrDuplicate.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	log := logger.Log.WithField("email", user.Email)
	log.Info("Executing query to create a new user")

	query := `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, user.Name, user.Email, user.Password).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("Email already registered")
			return ErrDuplicate
		}
		log.WithError(err).Error("Failed to execute create user query")
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUserByEmail returns sql.ErrNoRows when no user has the email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, name, email, password, created_at FROM users WHERE email = $1`
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("email", email).Error("Failed to execute get user by email query")
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID returns sql.ErrNoRows when the user does not exist.
func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, name, email, password, created_at FROM users WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("user_id", id).Error("Failed to execute get user by id query")
		}
		return nil, err
	}
	return user, nil
}
