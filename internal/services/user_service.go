package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/staffdesk-be/internal/auth"
	"github.com/isdelr/staffdesk-be/internal/models"
)

var (
	// ErrUserExists reports a signup against an already-taken email or username.
	ErrUserExists = errors.New("user already exists with this email or username")
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserServiceProvider defines the interface for user account services.
type UserServiceProvider interface {
	CreateUser(username, email, password string) (models.User, error)
	AuthenticateUser(email, password string) (models.User, error)
	FindUserByID(id string) (models.User, bool, error)
}

// UserService provides business logic for user accounts.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser registers a new account, hashing the password before storage.
func (s *UserService) CreateUser(username, email, password string) (models.User, error) {
	var count int
	row := s.db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ? OR username = ?", email, username)
	if err := row.Scan(&count); err != nil {
		return models.User{}, fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return models.User{}, ErrUserExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username, email, password_hash, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Username, user.Email, hash, user.CreatedAt, user.UpdatedAt); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// AuthenticateUser verifies a user's credentials. Unknown email and wrong
// password both yield ErrInvalidCredentials.
func (s *UserService) AuthenticateUser(email, password string) (models.User, error) {
	var user models.User
	var hash string
	row := s.db.QueryRow("SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &hash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !auth.CheckPassword(password, hash) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// FindUserByID retrieves a user by ID. The boolean result distinguishes an
// absent user from a query failure; this backs the auth gate's per-request
// existence check.
func (s *UserService) FindUserByID(id string) (models.User, bool, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, email, created_at, updated_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}
	return user, true, nil
}
