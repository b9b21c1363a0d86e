package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PollStatusActive = "active"
	PollStatusClosed = "closed"
)

type PollOption struct {
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Voter is one entry in a poll's voter ledger. At most one entry exists
// per user id; the tallies are derived from this ledger.
type Voter struct {
	UserID      uuid.UUID `json:"userId"`
	OptionIndex int       `json:"optionIndex"`
	VotedAt     time.Time `json:"votedAt"`
}

type Poll struct {
	ID            uuid.UUID    `json:"id"`
	Question      string       `json:"question"`
	Options       []PollOption `json:"options"`
	TotalVotes    int          `json:"totalVotes"`
	Status        string       `json:"status"`
	EndDate       time.Time    `json:"endDate"`
	Category      string       `json:"category"`
	CreatedBy     uuid.UUID    `json:"createdBy"`
	CreatedByName string       `json:"createdByName"`
	Voters        []Voter      `json:"voters"`
	IsActive      bool         `json:"isActive"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// AnnotatedPoll is a Poll plus the per-request projection of the
// requesting user's own vote. Never persisted.
type AnnotatedPoll struct {
	Poll
	UserVoted       bool `json:"userVoted"`
	UserVotedOption *int `json:"userVotedOption"`
}

// Annotate computes the requester's view of the poll against the
// current voter ledger.
func (p Poll) Annotate(userID uuid.UUID) AnnotatedPoll {
	out := AnnotatedPoll{Poll: p}
	for _, v := range p.Voters {
		if v.UserID == userID {
			out.UserVoted = true
			idx := v.OptionIndex
			out.UserVotedOption = &idx
			break
		}
	}
	return out
}

type CreatePollRequest struct {
	Question string     `json:"question"`
	Options  []string   `json:"options"`
	EndDate  *time.Time `json:"endDate,omitempty"`
	Category string     `json:"category,omitempty"`
}

type CastVoteRequest struct {
	OptionIndex int `json:"optionIndex"`
}

type PollPage struct {
	Polls       []AnnotatedPoll `json:"polls"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int             `json:"total"`
}
