package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusconnect/campus_api/config"
	deps "github.com/campusconnect/campus_api/internal/debs"
	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store/memory"
	"github.com/campusconnect/campus_api/util/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()

	return &API{
		Config: &config.Config{
			JwtSecret:  "test-secret",
			JwtExpires: "1h",
		},
		Deps:  &deps.Dependencies{Cloudinary: &storage.Cloudinary{}},
		Store: memory.New(),
	}
}

func addTestUser(t *testing.T, api *API, name, email, role string) (model.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := api.Store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("creating user: %v", err)
	}

	token, _, err := api.createToken(user.ID.String())
	if err != nil {
		t.Fatalf("creating token: %v", err)
	}
	return user, token
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (*http.Response, ServerResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("X-Request-Source", "test")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var envelope ServerResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding response envelope: %v", err)
	}
	return resp, envelope
}

// decodeData re-marshals the envelope's data field into a typed value.
func decodeData(t *testing.T, envelope ServerResponse, target interface{}) {
	t.Helper()

	raw, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("marshaling envelope data: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("unmarshaling envelope data: %v", err)
	}
}

func TestPollVotingFlow(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.setUpServerHandler())
	defer srv.Close()

	_, adminToken := addTestUser(t, api, "Admin User", "admin@campus.edu", "admin")
	_, aliceToken := addTestUser(t, api, "Alice", "alice@campus.edu", "student")
	_, bobToken := addTestUser(t, api, "Bob", "bob@campus.edu", "student")

	resp, envelope := doRequest(t, srv, http.MethodPost, "/api/polls", adminToken, model.CreatePollRequest{
		Question: "Should the library stay open 24/7 during exams?",
		Options:  []string{"Yes", "No"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create poll status = %d, want 201", resp.StatusCode)
	}
	var created model.AnnotatedPoll
	decodeData(t, envelope, &created)
	if created.TotalVotes != 0 || created.UserVoted {
		t.Errorf("fresh poll should have no votes: %+v", created)
	}

	votePath := fmt.Sprintf("/api/polls/%s/vote", created.ID)

	resp, envelope = doRequest(t, srv, http.MethodPost, votePath, aliceToken, model.CastVoteRequest{OptionIndex: 0})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("vote status = %d, want 200", resp.StatusCode)
	}
	var afterVote model.AnnotatedPoll
	decodeData(t, envelope, &afterVote)
	if afterVote.TotalVotes != 1 || afterVote.Options[0].Votes != 1 {
		t.Errorf("after vote totalVotes = %d, option 0 = %d, want 1 and 1",
			afterVote.TotalVotes, afterVote.Options[0].Votes)
	}
	if !afterVote.UserVoted || afterVote.UserVotedOption == nil || *afterVote.UserVotedOption != 0 {
		t.Errorf("vote response not annotated for the voter: %+v", afterVote)
	}

	t.Run("second vote by the same user conflicts", func(t *testing.T) {
		resp, envelope := doRequest(t, srv, http.MethodPost, votePath, aliceToken, model.CastVoteRequest{OptionIndex: 1})
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("repeat vote status = %d, want 409", resp.StatusCode)
		}
		if envelope.Status != "conflict" {
			t.Errorf("repeat vote envelope status = %q, want conflict", envelope.Status)
		}
	})

	t.Run("another user can still vote", func(t *testing.T) {
		resp, envelope := doRequest(t, srv, http.MethodPost, votePath, bobToken, model.CastVoteRequest{OptionIndex: 1})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("vote status = %d, want 200", resp.StatusCode)
		}
		var poll model.AnnotatedPoll
		decodeData(t, envelope, &poll)
		if poll.TotalVotes != 2 || poll.Options[1].Votes != 1 {
			t.Errorf("totalVotes = %d, option 1 = %d, want 2 and 1", poll.TotalVotes, poll.Options[1].Votes)
		}
	})

	t.Run("out of range option", func(t *testing.T) {
		_, voterToken := addTestUser(t, api, "Cara", "cara@campus.edu", "student")
		resp, _ := doRequest(t, srv, http.MethodPost, votePath, voterToken, model.CastVoteRequest{OptionIndex: 7})
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("out-of-range vote status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("unknown poll", func(t *testing.T) {
		path := fmt.Sprintf("/api/polls/%s/vote", uuid.New())
		resp, _ := doRequest(t, srv, http.MethodPost, path, aliceToken, model.CastVoteRequest{OptionIndex: 0})
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("unknown poll vote status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("listing annotates per requester", func(t *testing.T) {
		_, envelope := doRequest(t, srv, http.MethodGet, "/api/polls", aliceToken, nil)
		var page model.PollPage
		decodeData(t, envelope, &page)
		if len(page.Polls) != 1 {
			t.Fatalf("listed %d polls, want 1", len(page.Polls))
		}
		if !page.Polls[0].UserVoted || *page.Polls[0].UserVotedOption != 0 {
			t.Errorf("alice's view not annotated: %+v", page.Polls[0])
		}

		_, envelope = doRequest(t, srv, http.MethodGet, "/api/polls", adminToken, nil)
		decodeData(t, envelope, &page)
		if page.Polls[0].UserVoted {
			t.Errorf("admin's view annotated without a vote: %+v", page.Polls[0])
		}
	})
}

func TestCreatePollValidation(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.setUpServerHandler())
	defer srv.Close()

	_, token := addTestUser(t, api, "Alice", "alice@campus.edu", "student")

	testCases := []struct {
		name string
		req  model.CreatePollRequest
		want int
	}{
		{"one option", model.CreatePollRequest{Question: "Q", Options: []string{"A"}}, http.StatusBadRequest},
		{"blank question", model.CreatePollRequest{Question: " ", Options: []string{"A", "B"}}, http.StatusBadRequest},
		{"two options", model.CreatePollRequest{Question: "Q", Options: []string{"A", "B"}}, http.StatusCreated},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := doRequest(t, srv, http.MethodPost, "/api/polls", token, tc.req)
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestDeletePollRequiresAdmin(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.setUpServerHandler())
	defer srv.Close()

	_, adminToken := addTestUser(t, api, "Admin User", "admin@campus.edu", "admin")
	_, studentToken := addTestUser(t, api, "Alice", "alice@campus.edu", "student")

	_, envelope := doRequest(t, srv, http.MethodPost, "/api/polls", adminToken, model.CreatePollRequest{
		Question: "Q", Options: []string{"A", "B"},
	})
	var poll model.AnnotatedPoll
	decodeData(t, envelope, &poll)
	path := "/api/polls/" + poll.ID.String()

	resp, _ := doRequest(t, srv, http.MethodDelete, path, studentToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("student delete status = %d, want 403", resp.StatusCode)
	}

	resp, _ = doRequest(t, srv, http.MethodDelete, path, adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("admin delete status = %d, want 200", resp.StatusCode)
	}

	resp, _ = doRequest(t, srv, http.MethodGet, path, adminToken, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestPollRoutesRequireAuth(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.setUpServerHandler())
	defer srv.Close()

	resp, _ := doRequest(t, srv, http.MethodGet, "/api/polls", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated list status = %d, want 401", resp.StatusCode)
	}

	resp, _ = doRequest(t, srv, http.MethodGet, "/api/polls", "not-a-jwt", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("garbage token status = %d, want 401", resp.StatusCode)
	}
}

func TestRequestSourceHeaderRequired(t *testing.T) {
	api := newTestAPI(t)
	srv := httptest.NewServer(api.setUpServerHandler())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/polls", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("missing X-Request-Source status = %d, want 500", resp.StatusCode)
	}
}
