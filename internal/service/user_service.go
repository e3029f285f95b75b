package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	dom "github.com/Hamza-Shahid10/ENotebook-Backend/internal/domain"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/repo"
	"github.com/Hamza-Shahid10/ENotebook-Backend/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// Matches the original cost factor.
const bcryptCost = 10

// Applies to the trimmed name, so whitespace padding cannot smuggle an
// empty name past the request binding.
const minNameLen = 4

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidName        = errors.New("invalid name")
)

// UserService handles registration, login and profile management.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user with a hashed password.
// Returns ErrEmailTaken when the email is already registered.
func (s *UserService) Register(ctx context.Context, name, email, password string) (dom.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if utf8.RuneCountInString(name) < minNameLen {
		return dom.User{}, ErrInvalidName
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return dom.User{}, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, name, email, string(hash))
	if err != nil {
		// Backstop for a concurrent registration racing past the lookup.
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks email and password; returns the user if valid.
// A missing account and a wrong password are indistinguishable to the caller.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID returns the user for an id. Tokens outlive account deletion,
// so a verified identity may still resolve to ErrNotFound here.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]dom.User, error) {
	return s.repo.List(ctx)
}

// Update applies the provided fields to the user. A new password is rehashed.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, name, email, password *string) (dom.User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	patch := existing
	if name != nil {
		n := strings.TrimSpace(*name)
		if utf8.RuneCountInString(n) < minNameLen {
			return dom.User{}, ErrInvalidName
		}
		patch.Name = n
	}
	if email != nil {
		patch.Email = normalizeEmail(*email)
	}
	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
		if err != nil {
			return dom.User{}, err
		}
		patch.PasswordHash = string(hash)
	}
	u, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// Delete removes the user. The user's notes are intentionally left in place.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
