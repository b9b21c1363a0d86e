package memory

import (
	"context"
	"time"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/google/uuid"
)

type pollStore Store

func (ps *pollStore) List(ctx context.Context, f store.PollFilter, userID uuid.UUID) ([]model.AnnotatedPoll, int, error) {
	s := (*Store)(ps)
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]model.Poll, 0, len(s.polls))
	for _, p := range s.polls {
		if !p.IsActive {
			continue
		}
		if f.Status != "" && f.Status != "all" && p.Status != f.Status {
			continue
		}
		filtered = append(filtered, p)
	}

	pageItems, total := page(filtered, f.Page, f.Limit)

	out := make([]model.AnnotatedPoll, 0, len(pageItems))
	for _, p := range pageItems {
		out = append(out, clonePoll(p).Annotate(userID))
	}
	return out, total, nil
}

func (ps *pollStore) Get(ctx context.Context, id, userID uuid.UUID) (model.AnnotatedPoll, error) {
	s := (*Store)(ps)
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findPoll(id)
	if i < 0 {
		return model.AnnotatedPoll{}, store.ErrNotFound
	}
	return clonePoll(s.polls[i]).Annotate(userID), nil
}

func (ps *pollStore) Create(ctx context.Context, poll model.Poll) error {
	s := (*Store)(ps)
	s.mu.Lock()
	defer s.mu.Unlock()

	// newest first
	s.polls = append([]model.Poll{clonePoll(poll)}, s.polls...)
	return nil
}

func (ps *pollStore) CastVote(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) (model.AnnotatedPoll, error) {
	s := (*Store)(ps)
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findPoll(pollID)
	if i < 0 {
		return model.AnnotatedPoll{}, store.ErrNotFound
	}
	p := &s.polls[i]

	if p.Status != model.PollStatusActive {
		return model.AnnotatedPoll{}, store.ErrPollClosed
	}
	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return model.AnnotatedPoll{}, store.ErrInvalidOptionIndex
	}
	for _, v := range p.Voters {
		if v.UserID == userID {
			return model.AnnotatedPoll{}, store.ErrDuplicateVote
		}
	}

	now := time.Now()
	p.Options[optionIndex].Votes++
	p.TotalVotes++
	p.Voters = append(p.Voters, model.Voter{
		UserID:      userID,
		OptionIndex: optionIndex,
		VotedAt:     now,
	})
	p.UpdatedAt = now

	return clonePoll(*p).Annotate(userID), nil
}

func (ps *pollStore) Deactivate(ctx context.Context, id uuid.UUID) error {
	s := (*Store)(ps)
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findPoll(id)
	if i < 0 {
		return store.ErrNotFound
	}
	s.polls[i].IsActive = false
	return nil
}

// findPoll returns the index of the non-deactivated poll with the given
// id, or -1. Caller must hold the lock.
func (s *Store) findPoll(id uuid.UUID) int {
	for i, p := range s.polls {
		if p.ID == id && p.IsActive {
			return i
		}
	}
	return -1
}

// clonePoll deep-copies the slices so callers never alias store state.
func clonePoll(p model.Poll) model.Poll {
	out := p
	out.Options = append([]model.PollOption(nil), p.Options...)
	out.Voters = append([]model.Voter(nil), p.Voters...)
	return out
}
