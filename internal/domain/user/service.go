package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so a login failure does not reveal which part was wrong.
var ErrInvalidCredentials = errors.New("login failed")

// Service persists and authenticates users.
type Service struct {
	repo       Repository
	bcryptCost int
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository, bcryptCost int) *Service {
	if bcryptCost < bcrypt.DefaultCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, bcryptCost: bcryptCost}
}

// Signup hashes the password and stores a new user. The repository reports a
// conflict when the email is already registered.
func (s *Service) Signup(ctx context.Context, name, email, password, apiKey string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	usr := &User{
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(strings.ToLower(email)),
		PasswordHash: string(hash),
		APIKey:       strings.TrimSpace(apiKey),
	}
	if err := s.repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// Authenticate verifies the email/password pair and returns the user on
// success. Unknown emails and hash mismatches both yield
// ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	usr, err := s.repo.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return usr, nil
}

// Get returns the user with the given id, or nil when absent.
func (s *Service) Get(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}
