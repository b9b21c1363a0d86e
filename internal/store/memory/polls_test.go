package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newTestPoll(t *testing.T, s *Store, options ...string) model.Poll {
	t.Helper()

	req := model.CreatePollRequest{
		Question: "Which mess menu should we keep?",
		Options:  options,
	}
	creator := model.Principal{ID: uuid.New(), Name: "Admin User", Role: "admin"}

	poll, err := store.BuildPoll(req, creator, time.Now())
	if err != nil {
		t.Fatalf("BuildPoll returned error: %v", err)
	}
	if err := s.Polls().Create(context.Background(), poll); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return poll
}

// checkConsistent verifies the tally and ledger bookkeeping of a poll:
// totalVotes equals the sum of option votes, the ledger has exactly one
// entry per counted vote, and no user appears twice.
func checkConsistent(t *testing.T, p model.Poll) {
	t.Helper()

	sum := 0
	for _, o := range p.Options {
		sum += o.Votes
	}
	if p.TotalVotes != sum {
		t.Errorf("totalVotes = %d, sum of option votes = %d", p.TotalVotes, sum)
	}
	if len(p.Voters) != p.TotalVotes {
		t.Errorf("len(voters) = %d, totalVotes = %d", len(p.Voters), p.TotalVotes)
	}

	seen := make(map[uuid.UUID]bool, len(p.Voters))
	perOption := make([]int, len(p.Options))
	for _, v := range p.Voters {
		if seen[v.UserID] {
			t.Errorf("user %s appears twice in the voter ledger", v.UserID)
		}
		seen[v.UserID] = true
		if v.OptionIndex < 0 || v.OptionIndex >= len(p.Options) {
			t.Fatalf("ledger entry has option index %d out of range", v.OptionIndex)
		}
		perOption[v.OptionIndex]++
	}
	for i, o := range p.Options {
		if perOption[i] != o.Votes {
			t.Errorf("option %d: ledger count %d, tally %d", i, perOption[i], o.Votes)
		}
	}
}

func TestCastVote(t *testing.T) {
	ctx := context.Background()
	s := New()
	poll := newTestPoll(t, s, "Continue current menu", "Rotate weekly")

	userA := uuid.New()
	userB := uuid.New()

	got, err := s.Polls().CastVote(ctx, poll.ID, userA, 0)
	if err != nil {
		t.Fatalf("first vote returned error: %v", err)
	}
	if got.TotalVotes != 1 || got.Options[0].Votes != 1 {
		t.Errorf("after first vote totalVotes = %d, option 0 votes = %d, want 1 and 1",
			got.TotalVotes, got.Options[0].Votes)
	}
	if !got.UserVoted || got.UserVotedOption == nil || *got.UserVotedOption != 0 {
		t.Errorf("vote response not annotated for the voter: %+v", got)
	}
	checkConsistent(t, got.Poll)

	got, err = s.Polls().CastVote(ctx, poll.ID, userB, 1)
	if err != nil {
		t.Fatalf("second vote returned error: %v", err)
	}
	if got.TotalVotes != 2 || got.Options[1].Votes != 1 {
		t.Errorf("after second vote totalVotes = %d, option 1 votes = %d, want 2 and 1",
			got.TotalVotes, got.Options[1].Votes)
	}
	checkConsistent(t, got.Poll)
}

func TestCastVoteRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown poll", func(t *testing.T) {
		s := New()
		_, err := s.Polls().CastVote(ctx, uuid.New(), uuid.New(), 0)
		if !errors.Is(err, store.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("closed poll", func(t *testing.T) {
		s := New()
		poll := newTestPoll(t, s, "A", "B")
		s.mu.Lock()
		s.polls[0].Status = model.PollStatusClosed
		s.mu.Unlock()

		_, err := s.Polls().CastVote(ctx, poll.ID, uuid.New(), 0)
		if !errors.Is(err, store.ErrPollClosed) {
			t.Errorf("got %v, want ErrPollClosed", err)
		}
	})

	t.Run("option index out of range", func(t *testing.T) {
		s := New()
		poll := newTestPoll(t, s, "A", "B")
		for _, idx := range []int{-1, 2, 100} {
			_, err := s.Polls().CastVote(ctx, poll.ID, uuid.New(), idx)
			if !errors.Is(err, store.ErrInvalidOptionIndex) {
				t.Errorf("index %d: got %v, want ErrInvalidOptionIndex", idx, err)
			}
		}
	})

	t.Run("duplicate vote", func(t *testing.T) {
		s := New()
		poll := newTestPoll(t, s, "A", "B")
		user := uuid.New()

		if _, err := s.Polls().CastVote(ctx, poll.ID, user, 0); err != nil {
			t.Fatalf("first vote returned error: %v", err)
		}
		// Retrying with a different option must not change anything either.
		for _, idx := range []int{0, 1} {
			_, err := s.Polls().CastVote(ctx, poll.ID, user, idx)
			if !errors.Is(err, store.ErrDuplicateVote) {
				t.Errorf("repeat vote on option %d: got %v, want ErrDuplicateVote", idx, err)
			}
		}

		got, err := s.Polls().Get(ctx, poll.ID, user)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if got.TotalVotes != 1 {
			t.Errorf("totalVotes = %d after rejected repeats, want 1", got.TotalVotes)
		}
		checkConsistent(t, got.Poll)
	})

	t.Run("rejected vote leaves no trace", func(t *testing.T) {
		s := New()
		poll := newTestPoll(t, s, "A", "B")

		if _, err := s.Polls().CastVote(ctx, poll.ID, uuid.New(), 5); !errors.Is(err, store.ErrInvalidOptionIndex) {
			t.Fatalf("got %v, want ErrInvalidOptionIndex", err)
		}

		got, err := s.Polls().Get(ctx, poll.ID, uuid.Nil)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if got.TotalVotes != 0 || len(got.Voters) != 0 {
			t.Errorf("rejected vote mutated the poll: totalVotes=%d voters=%d",
				got.TotalVotes, len(got.Voters))
		}
	})
}

// Votes are accepted after endDate as long as the status is still
// active; only the status field closes a poll.
func TestCastVotePastEndDate(t *testing.T) {
	ctx := context.Background()
	s := New()
	poll := newTestPoll(t, s, "A", "B")

	s.mu.Lock()
	s.polls[0].EndDate = time.Now().Add(-24 * time.Hour)
	s.mu.Unlock()

	if _, err := s.Polls().CastVote(ctx, poll.ID, uuid.New(), 0); err != nil {
		t.Errorf("vote after endDate on an active poll returned %v, want nil", err)
	}
}

func TestBuildPollValidation(t *testing.T) {
	creator := model.Principal{ID: uuid.New(), Name: "Admin User"}
	now := time.Now()

	testCases := []struct {
		name    string
		req     model.CreatePollRequest
		wantErr bool
	}{
		{"two options", model.CreatePollRequest{Question: "Q", Options: []string{"A", "B"}}, false},
		{"one option", model.CreatePollRequest{Question: "Q", Options: []string{"A"}}, true},
		{"no options", model.CreatePollRequest{Question: "Q"}, true},
		{"blank question", model.CreatePollRequest{Question: "   ", Options: []string{"A", "B"}}, true},
		{"blank options dropped below two", model.CreatePollRequest{Question: "Q", Options: []string{"A", "  ", ""}}, true},
		{"blank options dropped but two remain", model.CreatePollRequest{Question: "Q", Options: []string{"A", " ", "B"}}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			poll, err := store.BuildPoll(tc.req, creator, now)
			if tc.wantErr {
				if !errors.Is(err, store.ErrInvalidPollDefinition) {
					t.Errorf("got %v, want ErrInvalidPollDefinition", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildPoll returned error: %v", err)
			}
			if poll.Status != model.PollStatusActive || !poll.IsActive {
				t.Errorf("new poll not active: %+v", poll)
			}
			if poll.TotalVotes != 0 || len(poll.Voters) != 0 {
				t.Errorf("new poll has votes: %+v", poll)
			}
		})
	}
}

func TestConcurrentDistinctVoters(t *testing.T) {
	ctx := context.Background()
	s := New()
	poll := newTestPoll(t, s, "A", "B", "C")

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := s.Polls().CastVote(ctx, poll.ID, uuid.New(), i%3); err != nil {
				t.Errorf("vote %d returned error: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.Polls().Get(ctx, poll.ID, uuid.Nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.TotalVotes != n {
		t.Errorf("totalVotes = %d, want %d", got.TotalVotes, n)
	}
	checkConsistent(t, got.Poll)
}

func TestConcurrentSameVoter(t *testing.T) {
	ctx := context.Background()
	s := New()
	poll := newTestPoll(t, s, "A", "B")
	user := uuid.New()

	const n = 50
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Polls().CastVote(ctx, poll.ID, user, i%2)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	accepted, rejected := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, store.ErrDuplicateVote):
			rejected++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if accepted != 1 || rejected != n-1 {
		t.Errorf("accepted = %d, rejected = %d, want 1 and %d", accepted, rejected, n-1)
	}

	got, err := s.Polls().Get(ctx, poll.ID, user)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.TotalVotes != 1 {
		t.Errorf("totalVotes = %d, want 1", got.TotalVotes)
	}
	checkConsistent(t, got.Poll)
}

// Two users voting for different options on a two-option poll must end
// with both tallies at one and the total at two.
func TestTwoVotersTwoOptions(t *testing.T) {
	ctx := context.Background()
	s := New()
	poll := newTestPoll(t, s, "Yes", "No")

	if _, err := s.Polls().CastVote(ctx, poll.ID, uuid.New(), 0); err != nil {
		t.Fatalf("vote on option 0 returned error: %v", err)
	}
	if _, err := s.Polls().CastVote(ctx, poll.ID, uuid.New(), 1); err != nil {
		t.Fatalf("vote on option 1 returned error: %v", err)
	}

	got, err := s.Polls().Get(ctx, poll.ID, uuid.Nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Options[0].Votes != 1 || got.Options[1].Votes != 1 || got.TotalVotes != 2 {
		t.Errorf("tallies = [%d %d], total = %d, want [1 1] and 2",
			got.Options[0].Votes, got.Options[1].Votes, got.TotalVotes)
	}
	checkConsistent(t, got.Poll)
}

func TestAnnotation(t *testing.T) {
	ctx := context.Background()
	s := New()
	poll := newTestPoll(t, s, "A", "B")
	voter := uuid.New()
	other := uuid.New()

	if _, err := s.Polls().CastVote(ctx, poll.ID, voter, 1); err != nil {
		t.Fatalf("CastVote returned error: %v", err)
	}

	forVoter, err := s.Polls().Get(ctx, poll.ID, voter)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !forVoter.UserVoted || forVoter.UserVotedOption == nil || *forVoter.UserVotedOption != 1 {
		t.Errorf("voter view not annotated: %+v", forVoter)
	}

	forOther, err := s.Polls().Get(ctx, poll.ID, other)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if forOther.UserVoted || forOther.UserVotedOption != nil {
		t.Errorf("non-voter view annotated: %+v", forOther)
	}
}

func TestListPolls(t *testing.T) {
	ctx := context.Background()
	s := New()
	first := newTestPoll(t, s, "A", "B")
	second := newTestPoll(t, s, "C", "D")

	s.mu.Lock()
	for i := range s.polls {
		if s.polls[i].ID == first.ID {
			s.polls[i].Status = model.PollStatusClosed
		}
	}
	s.mu.Unlock()

	t.Run("all", func(t *testing.T) {
		polls, total, err := s.Polls().List(ctx, store.PollFilter{}, uuid.Nil)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if total != 2 || len(polls) != 2 {
			t.Errorf("total = %d, len = %d, want 2 and 2", total, len(polls))
		}
		// newest first
		if polls[0].ID != second.ID {
			t.Errorf("first listed poll = %s, want newest %s", polls[0].ID, second.ID)
		}
	})

	t.Run("active only", func(t *testing.T) {
		polls, total, err := s.Polls().List(ctx, store.PollFilter{Status: model.PollStatusActive}, uuid.Nil)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if total != 1 || len(polls) != 1 || polls[0].ID != second.ID {
			t.Errorf("active filter returned %d polls, want just %s", len(polls), second.ID)
		}
	})

	t.Run("deactivated polls are hidden", func(t *testing.T) {
		if err := s.Polls().Deactivate(ctx, second.ID); err != nil {
			t.Fatalf("Deactivate returned error: %v", err)
		}
		_, total, err := s.Polls().List(ctx, store.PollFilter{}, uuid.Nil)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if total != 1 {
			t.Errorf("total = %d after deactivation, want 1", total)
		}
		if _, err := s.Polls().Get(ctx, second.ID, uuid.Nil); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("Get on deactivated poll returned %v, want ErrNotFound", err)
		}
	})
}

// Results returned to callers are copies; mutating them must not leak
// back into the store.
func TestReturnedPollIsIsolated(t *testing.T) {
	ctx := context.Background()
	s := New()
	poll := newTestPoll(t, s, "A", "B")

	got, err := s.Polls().Get(ctx, poll.ID, uuid.Nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	got.Options[0].Votes = 999
	got.Voters = append(got.Voters, model.Voter{UserID: uuid.New()})

	fresh, err := s.Polls().Get(ctx, poll.ID, uuid.Nil)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if fresh.Options[0].Votes != 0 || len(fresh.Voters) != 0 {
		t.Errorf("caller mutation leaked into the store: %+v", fresh.Poll)
	}
}

func TestSeededPollsAreConsistent(t *testing.T) {
	s := NewSeeded()

	polls, _, err := s.Polls().List(context.Background(), store.PollFilter{}, uuid.Nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(polls) == 0 {
		t.Fatal("seeded store has no polls")
	}
	for _, p := range polls {
		checkConsistent(t, p.Poll)
	}
}
