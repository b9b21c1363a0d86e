package model

import (
	"time"

	"github.com/google/uuid"
)

type TimetableEntry struct {
	ID          uuid.UUID `json:"id"`
	Subject     string    `json:"subject"`
	Instructor  string    `json:"instructor"`
	Room        string    `json:"room"`
	Day         string    `json:"day"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Department  string    `json:"department"`
	Year        int       `json:"year"`
	Semester    int       `json:"semester"`
	SubjectCode string    `json:"subjectCode"`
	Credits     int       `json:"credits"`
	Type        string    `json:"type"` // lecture | lab | tutorial
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UpsertTimetableRequest struct {
	Subject     string `json:"subject" validate:"required"`
	Instructor  string `json:"instructor" validate:"required"`
	Room        string `json:"room" validate:"required"`
	Day         string `json:"day" validate:"required,weekday"`
	StartTime   string `json:"startTime" validate:"required,timeofday"`
	EndTime     string `json:"endTime" validate:"required,timeofday"`
	Department  string `json:"department" validate:"required"`
	Year        int    `json:"year" validate:"required,min=1,max=4"`
	Semester    int    `json:"semester" validate:"required,min=1,max=8"`
	SubjectCode string `json:"subjectCode" validate:"required"`
	Credits     int    `json:"credits" validate:"omitempty,min=1,max=10"`
	Type        string `json:"type" validate:"omitempty,oneof=lecture lab tutorial"`
}
