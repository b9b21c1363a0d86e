package rest

import (
	"context"
	"time"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/campusconnect/campus_api/util"
	"github.com/campusconnect/campus_api/util/values"
	"github.com/google/uuid"
)

func (api *API) ListPollsHelper(ctx context.Context, status string, page, limit int, principal model.Principal) (model.PollPage, string, string, error) {
	page, limit = util.Paginate(page, limit)

	polls, total, err := api.Store.Polls().List(ctx, store.PollFilter{
		Status: status,
		Page:   page,
		Limit:  limit,
	}, principal.ID)
	if err != nil {
		return model.PollPage{}, values.Error, "Failed to fetch polls", err
	}
	if polls == nil {
		polls = []model.AnnotatedPoll{}
	}

	return model.PollPage{
		Polls:       polls,
		TotalPages:  util.TotalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}, values.Success, "Polls fetched successfully", nil
}

func (api *API) CreatePollHelper(ctx context.Context, req model.CreatePollRequest, principal model.Principal) (model.AnnotatedPoll, string, string, error) {
	poll, err := store.BuildPoll(req, principal, time.Now())
	if err != nil {
		status, message := storeErrStatus(err)
		return model.AnnotatedPoll{}, status, message, err
	}

	if err := api.Store.Polls().Create(ctx, poll); err != nil {
		return model.AnnotatedPoll{}, values.Error, "Failed to create poll", err
	}

	// The creator has not voted on a fresh poll.
	return poll.Annotate(uuid.Nil), values.Created, "Poll created successfully", nil
}

func (api *API) CastVoteHelper(ctx context.Context, pollID uuid.UUID, optionIndex int, principal model.Principal) (model.AnnotatedPoll, string, string, error) {
	poll, err := api.Store.Polls().CastVote(ctx, pollID, principal.ID, optionIndex)
	if err != nil {
		status, message := storeErrStatus(err)
		return model.AnnotatedPoll{}, status, message, err
	}
	return poll, values.Success, "Vote recorded successfully", nil
}
