package model

import (
	"time"

	"github.com/google/uuid"
)

type TechNewsItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	URL         *string   `json:"url,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UpsertTechNewsRequest struct {
	Title       string     `json:"title" validate:"required"`
	Summary     string     `json:"summary" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Source      string     `json:"source" validate:"required"`
	URL         *string    `json:"url,omitempty" validate:"omitempty,url"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

type TechNewsPage struct {
	News        []TechNewsItem `json:"news"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Total       int            `json:"total"`
}
