package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	StudentID    *string   `json:"studentId,omitempty"`
	Department   *string   `json:"department,omitempty"`
	Year         *int      `json:"year,omitempty"`
	RoomNumber   *string   `json:"roomNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Principal is the authenticated identity attached to a request by the
// auth middleware. Handlers never look at credentials, only at this.
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}
