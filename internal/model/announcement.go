package model

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Category   string     `json:"category"`
	Author     uuid.UUID  `json:"author"`
	AuthorName string     `json:"authorName"`
	Priority   string     `json:"priority"`
	IsActive   bool       `json:"isActive"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type CreateAnnouncementRequest struct {
	Title      string     `json:"title" validate:"required"`
	Content    string     `json:"content" validate:"required"`
	Category   string     `json:"category" validate:"omitempty,oneof=General Academic Hostel Events Exams Sports"`
	Priority   string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

type AnnouncementPage struct {
	Announcements []Announcement `json:"announcements"`
	TotalPages    int            `json:"totalPages"`
	CurrentPage   int            `json:"currentPage"`
	Total         int            `json:"total"`
}
