package users

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/stockpilot-erp/stockpilot-erp/internal/shared"
)

// Service coordinates user operations.
type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(), nil
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	u, ok := s.repo.Get(id)
	if !ok {
		return User{}, &shared.NotFoundError{Resource: "User"}
	}
	return u, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	u, ok := s.repo.FindByUsername(username)
	if !ok {
		return User{}, &shared.NotFoundError{Resource: "User"}
	}
	return u, nil
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("users: hash password: %w", err)
	}
	u := s.repo.Insert(func(id int64) User {
		return User{
			ID:           id,
			Username:     req.Username,
			PasswordHash: string(hash),
			FullName:     req.FullName,
			Role:         req.Role,
			CreatedAt:    s.now(),
		}
	})
	return u, nil
}
