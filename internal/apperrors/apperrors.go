package apperrors

import (
	"encoding/json"
	"fmt"
)

// EmailTakenErr signals violation of the per-user customer email uniqueness.
// It is raised either by the pre-check or by the storage engine at write time.
type EmailTakenErr struct {
	email string
}

func (e *EmailTakenErr) Error() string {
	return fmt.Sprintf("customer with email %s already exists", e.email)
}

// MarshalJSON renders error in response payload format
func (e *EmailTakenErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: "email", Message: e.Error()})
}

// NewEmailTakenErr builds EmailTakenErr for provided email
func NewEmailTakenErr(email string) *EmailTakenErr {
	return &EmailTakenErr{email: email}
}
