package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is keyed by phone number; the booking flow resolves customers
// through get-or-create rather than an explicit signup.
type Customer struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Phone           string    `db:"phone" json:"phone"`
	Name            *string   `db:"name" json:"name,omitempty"`
	Email           *string   `db:"email" json:"email,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	LastInteraction time.Time `db:"last_interaction" json:"last_interaction"`
}

type UpdateCustomerNameRequest struct {
	Name string `json:"name" binding:"required" validate:"required,max=100"`
}
