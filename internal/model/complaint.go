package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ComplaintStatusPending    = "pending"
	ComplaintStatusInProgress = "in-progress"
	ComplaintStatusResolved   = "resolved"
)

type Complaint struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Room            string     `json:"room"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	SubmittedBy     uuid.UUID  `json:"submittedBy"`
	SubmittedByName string     `json:"submittedByName"`
	AssignedTo      *uuid.UUID `json:"assignedTo,omitempty"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	AdminNotes      *string    `json:"adminNotes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"omitempty,oneof=Water Electricity Cleaning Maintenance Food Security Other"`
	Room        string `json:"room" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type UpdateComplaintStatusRequest struct {
	Status     string     `json:"status" validate:"required,oneof=pending in-progress resolved"`
	AdminNotes *string    `json:"adminNotes,omitempty"`
	AssignedTo *uuid.UUID `json:"assignedTo,omitempty"`
}

type ComplaintPage struct {
	Complaints  []Complaint `json:"complaints"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	Total       int         `json:"total"`
}
