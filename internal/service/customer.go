package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clienthub/clienthub/internal/apperrors"
	"github.com/clienthub/clienthub/internal/model"
	"github.com/clienthub/clienthub/internal/repository"
)

// CustomerService exposes customer operations scoped to the owning user
type CustomerService interface {
	FindAllByUserID(ctx context.Context, userID string) ([]*model.Customer, error)
	FindByID(ctx context.Context, id string, userID string) (*model.Customer, error)
	Create(ctx context.Context, userID string, nc *model.NewCustomer) (*model.Customer, error)
	Update(ctx context.Context, userID string, uc *model.UpdateCustomer) (*model.Customer, error)
	Merge(ctx context.Context, userID string, patch *model.PatchCustomer) (*model.Customer, error)
	DeleteByID(ctx context.Context, id string, userID string) (bool, error)
}

type customerService struct {
	customerRps repository.CustomerRepository
}

// NewCustomerService builds CustomerService over provided repository
func NewCustomerService(customerRps repository.CustomerRepository) CustomerService {
	return &customerService{customerRps: customerRps}
}

func (s *customerService) FindAllByUserID(ctx context.Context, userID string) ([]*model.Customer, error) {
	customers, err := s.customerRps.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *customerService) FindByID(ctx context.Context, id string, userID string) (*model.Customer, error) {
	c, err := s.customerRps.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create persists a new customer with a generated id and fresh timestamps.
// The email must not be used by any other customer of the same user - the
// pre-check produces the friendly conflict, the relational backend's unique
// index remains the authoritative guard under concurrent writers.
func (s *customerService) Create(ctx context.Context, userID string, nc *model.NewCustomer) (*model.Customer, error) {
	email := strings.TrimSpace(nc.Email)

	unique, err := s.customerRps.IsEmailUnique(ctx, email, userID, "")
	if err != nil {
		return nil, err
	}

	if !unique {
		return nil, apperrors.NewEmailTakenErr(email)
	}

	now := time.Now().UTC()
	c := &model.Customer{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(nc.Name),
		Email:     email,
		Phone:     normalizeOptional(nc.Phone),
		Company:   normalizeOptional(nc.Company),
		Status:    defaultStatus(nc.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.customerRps.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the customer's full field set, keeping the creation
// timestamp and refreshing the update timestamp. Returns nil when no
// customer matches (id, userID).
func (s *customerService) Update(ctx context.Context, userID string, uc *model.UpdateCustomer) (*model.Customer, error) {
	existing, err := s.customerRps.FindByID(ctx, uc.ID, userID)
	if err != nil || existing == nil {
		return nil, err
	}

	email := strings.TrimSpace(uc.Email)
	if err := s.checkEmailUnique(ctx, email, userID, uc.ID); err != nil {
		return nil, err
	}

	c := &model.Customer{
		ID:        existing.ID,
		UserID:    existing.UserID,
		Name:      strings.TrimSpace(uc.Name),
		Email:     email,
		Phone:     normalizeOptional(uc.Phone),
		Company:   normalizeOptional(uc.Company),
		Status:    defaultStatus(uc.Status),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := s.customerRps.Update(ctx, c)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, nil
	}
	return c, nil
}

// Merge applies a partial update - absent patch fields leave the stored
// values untouched.
func (s *customerService) Merge(ctx context.Context, userID string, patch *model.PatchCustomer) (*model.Customer, error) {
	existing, err := s.customerRps.FindByID(ctx, patch.ID, userID)
	if err != nil || existing == nil {
		return nil, err
	}

	merged := existing.MergePatch(patch)
	merged.Name = strings.TrimSpace(merged.Name)
	merged.Email = strings.TrimSpace(merged.Email)
	merged.Phone = normalizeOptional(merged.Phone)
	merged.Company = normalizeOptional(merged.Company)
	merged.UpdatedAt = time.Now().UTC()

	if err := s.checkEmailUnique(ctx, merged.Email, userID, merged.ID); err != nil {
		return nil, err
	}

	updated, err := s.customerRps.Update(ctx, &merged)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, nil
	}
	return &merged, nil
}

func (s *customerService) DeleteByID(ctx context.Context, id string, userID string) (bool, error) {
	deleted, err := s.customerRps.DeleteByID(ctx, id, userID)
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// checkEmailUnique verifies no OTHER customer of the user holds the email.
// The customer being updated is excluded, so keeping the email unchanged
// never conflicts with itself.
func (s *customerService) checkEmailUnique(ctx context.Context, email string, userID string, excludeID string) error {
	unique, err := s.customerRps.IsEmailUnique(ctx, email, userID, excludeID)
	if err != nil {
		return err
	}

	if !unique {
		return apperrors.NewEmailTakenErr(email)
	}
	return nil
}

func defaultStatus(status model.Status) model.Status {
	if status == "" {
		return model.StatusLead
	}
	return status
}

// normalizeOptional maps absent, null and blank optional values to no-value
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
