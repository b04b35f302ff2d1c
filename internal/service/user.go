package service

import (
	"context"
	"time"

	"github.com/clienthub/clienthub/internal/model"
	"github.com/clienthub/clienthub/internal/repository"
)

// UserService exposes identity record operations
type UserService interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	Upsert(ctx context.Context, uu *model.UpsertUser) (*model.User, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type userService struct {
	userRps repository.UserRepository
}

// NewUserService builds UserService over provided repository
func NewUserService(userRps repository.UserRepository) UserService {
	return &userService{userRps: userRps}
}

func (s *userService) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.userRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Upsert inserts or refreshes the identity record from provider attributes.
// Repeated calls with identical input are idempotent apart from the update
// timestamp, which is refreshed on every call.
func (s *userService) Upsert(ctx context.Context, uu *model.UpsertUser) (*model.User, error) {
	now := time.Now().UTC()

	u := &model.User{
		ID:              uu.ID,
		Email:           uu.Email,
		FirstName:       uu.FirstName,
		LastName:        uu.LastName,
		ProfileImageURL: uu.ProfileImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	upserted, err := s.userRps.Upsert(ctx, u)
	if err != nil {
		return nil, err
	}
	return upserted, nil
}

// DeleteByID removes the user and, through the repository, every customer
// the user owns.
func (s *userService) DeleteByID(ctx context.Context, id string) (bool, error) {
	deleted, err := s.userRps.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	return deleted, nil
}
