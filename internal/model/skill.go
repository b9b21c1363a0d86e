package model

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Avatar            string    `json:"avatar"`
	Rating            float64   `json:"rating"`
	Reviews           int       `json:"reviews"`
	Skills            []string  `json:"skills"`
	Category          string    `json:"category"`
	Bio               string    `json:"bio"`
	HourlyRate        string    `json:"hourlyRate"`
	Location          string    `json:"location"`
	Availability      []string  `json:"availability"`
	SessionsCompleted int       `json:"sessionsCompleted"`
	UserID            uuid.UUID `json:"userId"`
	UserEmail         string    `json:"userEmail"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CreateSkillRequest struct {
	Name         string   `json:"name" validate:"required"`
	Avatar       string   `json:"avatar,omitempty"`
	Skills       []string `json:"skills" validate:"required,min=1"`
	Category     string   `json:"category" validate:"required,oneof=Programming Design Languages Music Business Photography Other"`
	Bio          string   `json:"bio" validate:"required"`
	HourlyRate   string   `json:"hourlyRate,omitempty"`
	Location     string   `json:"location" validate:"required"`
	Availability []string `json:"availability,omitempty"`
}
