package model

import "time"

// Status classifies how far a customer moved through the sales funnel
type Status string

const (
	// StatusLead is the default status of a newly added customer
	StatusLead Status = "Lead"
	// StatusActive means customer is actively doing business
	StatusActive Status = "Active"
	// StatusInactive means relationship is dormant
	StatusInactive Status = "Inactive"
)

// Customer is customer model entity, always owned by exactly one user
type Customer struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     *string   `json:"phone" bson:"phone"`
	Company   *string   `json:"company" bson:"company"`
	Status    Status    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// NewCustomer is payload for customer creation
type NewCustomer struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Company *string `json:"company" validate:"omitempty,max=255"`
	Status  Status  `json:"status" validate:"omitempty,oneof=Lead Active Inactive"`
}

// UpdateCustomer is payload for full customer replacement
type UpdateCustomer struct {
	ID      string  `param:"id"`
	Name    string  `json:"name" validate:"required,max=255"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Company *string `json:"company" validate:"omitempty,max=255"`
	Status  Status  `json:"status" validate:"omitempty,oneof=Lead Active Inactive"`
}

// PatchCustomer is payload for partial customer update, nil field stays unchanged
type PatchCustomer struct {
	ID      string  `param:"id"`
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email   *string `json:"email" validate:"omitempty,email,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Company *string `json:"company" validate:"omitempty,max=255"`
	Status  *Status `json:"status" validate:"omitempty,oneof=Lead Active Inactive"`
}

// MergePatch applies present patch fields on top of existing customer
func (c Customer) MergePatch(patch *PatchCustomer) Customer {
	if patch.Name != nil {
		c.Name = *patch.Name
	}

	if patch.Email != nil {
		c.Email = *patch.Email
	}

	if patch.Phone != nil {
		s := *patch.Phone
		c.Phone = &s
	}

	if patch.Company != nil {
		s := *patch.Company
		c.Company = &s
	}

	if patch.Status != nil {
		c.Status = *patch.Status
	}
	return c
}
