// Package store defines the persistence boundary. Two implementations
// exist: postgres (durable, pgx) and memory (seeded fallback used when
// the database is unreachable at startup). Both enforce identical
// semantics; the choice is made once per process and injected.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/util"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrPollClosed            = errors.New("poll is not active")
	ErrDuplicateVote         = errors.New("user has already voted on this poll")
	ErrInvalidOptionIndex    = errors.New("option index out of range")
	ErrInvalidPollDefinition = errors.New("question and at least 2 options are required")
	ErrDuplicateEmail        = errors.New("email already registered")
)

type Store interface {
	Users() UserStore
	Polls() PollStore
	Announcements() AnnouncementStore
	Complaints() ComplaintStore
	LostFound() LostFoundStore
	Timetable() TimetableStore
	Skills() SkillStore
	TechNews() TechNewsStore
}

type UserStore interface {
	Create(ctx context.Context, user model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

type PollFilter struct {
	Status string // "active", "closed", "" or "all" for everything
	Page   int
	Limit  int
}

type PollStore interface {
	// List returns non-deactivated polls newest first, annotated for
	// the given user, plus the total count before pagination.
	List(ctx context.Context, f PollFilter, userID uuid.UUID) ([]model.AnnotatedPoll, int, error)
	Get(ctx context.Context, id uuid.UUID, userID uuid.UUID) (model.AnnotatedPoll, error)
	Create(ctx context.Context, poll model.Poll) error
	// CastVote applies the vote as a single atomic unit per poll:
	// the duplicate-vote check, the option tally increment, the total
	// increment and the voter-ledger append all commit together or not
	// at all.
	CastVote(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) (model.AnnotatedPoll, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type AnnouncementFilter struct {
	Category   string
	ActiveOnly bool
	Page       int
	Limit      int
}

type AnnouncementStore interface {
	List(ctx context.Context, f AnnouncementFilter) ([]model.Announcement, int, error)
	Create(ctx context.Context, a model.Announcement) error
	// Update changes title, content, category, priority and expiry
	// only; author and creation fields are preserved. Returns the
	// merged record.
	Update(ctx context.Context, a model.Announcement) (model.Announcement, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type ComplaintFilter struct {
	SubmittedBy *uuid.UUID // non-nil restricts to one user's complaints
	Status      string
	Category    string
	Page        int
	Limit       int
}

type ComplaintStore interface {
	List(ctx context.Context, f ComplaintFilter) ([]model.Complaint, int, error)
	Get(ctx context.Context, id uuid.UUID) (model.Complaint, error)
	Create(ctx context.Context, c model.Complaint) error
	UpdateStatus(ctx context.Context, id uuid.UUID, req model.UpdateComplaintStatusRequest) (model.Complaint, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LostFoundFilter struct {
	Type     string
	Category string
	Status   string
	Page     int
	Limit    int
}

type LostFoundStore interface {
	List(ctx context.Context, f LostFoundFilter) ([]model.LostFoundItem, int, error)
	Get(ctx context.Context, id uuid.UUID) (model.LostFoundItem, error)
	Create(ctx context.Context, item model.LostFoundItem) error
	Update(ctx context.Context, item model.LostFoundItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimetableFilter struct {
	Department string
	Year       int
	Day        string
}

type TimetableStore interface {
	List(ctx context.Context, f TimetableFilter) ([]model.TimetableEntry, error)
	Get(ctx context.Context, id uuid.UUID) (model.TimetableEntry, error)
	Create(ctx context.Context, e model.TimetableEntry) error
	Update(ctx context.Context, e model.TimetableEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SkillFilter struct {
	Category string
	Search   string // matched against name, bio and skill tags
	Page     int
	Limit    int
}

type SkillStore interface {
	List(ctx context.Context, f SkillFilter) ([]model.Skill, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Skill, error)
	Get(ctx context.Context, id uuid.UUID) (model.Skill, error)
	Create(ctx context.Context, s model.Skill) error
	Update(ctx context.Context, s model.Skill) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type TechNewsFilter struct {
	Category string
	Page     int
	Limit    int
}

type TechNewsStore interface {
	List(ctx context.Context, f TechNewsFilter) ([]model.TechNewsItem, int, error)
	Get(ctx context.Context, id uuid.UUID) (model.TechNewsItem, error)
	Create(ctx context.Context, n model.TechNewsItem) error
	Update(ctx context.Context, n model.TechNewsItem) error
}

const defaultPollLifetime = 30 * 24 * time.Hour

// BuildPoll validates a create request and constructs the poll both
// implementations persist. Question and options are trimmed, empty
// options discarded; fewer than 2 surviving options is rejected.
func BuildPoll(req model.CreatePollRequest, creator model.Principal, now time.Time) (model.Poll, error) {
	question := strings.TrimSpace(req.Question)

	texts := util.TrimNonEmpty(req.Options)
	opts := make([]model.PollOption, 0, len(texts))
	for _, text := range texts {
		opts = append(opts, model.PollOption{Text: text, Votes: 0})
	}

	if question == "" || len(opts) < 2 {
		return model.Poll{}, ErrInvalidPollDefinition
	}

	endDate := now.Add(defaultPollLifetime)
	if req.EndDate != nil {
		endDate = *req.EndDate
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "General"
	}

	return model.Poll{
		ID:            uuid.New(),
		Question:      question,
		Options:       opts,
		TotalVotes:    0,
		Status:        model.PollStatusActive,
		EndDate:       endDate,
		Category:      category,
		CreatedBy:     creator.ID,
		CreatedByName: creator.Name,
		Voters:        []model.Voter{},
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
