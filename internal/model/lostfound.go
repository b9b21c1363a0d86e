package model

import (
	"time"

	"github.com/google/uuid"
)

type LostFoundItem struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Type            string     `json:"type"` // lost | found
	Category        string     `json:"category"`
	Location        string     `json:"location"`
	ContactInfo     string     `json:"contactInfo"`
	ImageURL        *string    `json:"imageUrl,omitempty"`
	SubmittedBy     uuid.UUID  `json:"submittedBy"`
	SubmittedByName string     `json:"submittedByName"`
	Status          string     `json:"status"` // active | resolved | expired
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	ExpiryDate      time.Time  `json:"expiryDate"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreateLostFoundRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=lost found"`
	Category    string `json:"category" validate:"omitempty,oneof=Electronics Books Clothing Accessories Documents Keys Other"`
	Location    string `json:"location" validate:"required"`
	ContactInfo string `json:"contactInfo" validate:"required"`
	Image       string `json:"image,omitempty"` // uploaded out-of-band, data URI or remote URL
}

type UpdateLostFoundRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active resolved expired"`
	ContactInfo *string `json:"contactInfo,omitempty"`
}

type LostFoundPage struct {
	Items       []LostFoundItem `json:"items"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int             `json:"total"`
}
