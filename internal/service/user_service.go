package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vcaron/dialogue/internal/domain"
	"github.com/vcaron/dialogue/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// UserService exposes the user directory: the list a client picks a
// conversation partner from, and single-profile lookup.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListOthers returns every user except the viewer, ordered by username.
func (s *UserService) ListOthers(ctx context.Context, viewerID uuid.UUID) ([]domain.User, error) {
	users, err := s.userRepo.ListOthers(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
