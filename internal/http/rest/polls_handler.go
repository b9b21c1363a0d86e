package rest

import (
	"net/http"
	"strconv"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/util"
	"github.com/campusconnect/campus_api/util/tracing"
	"github.com/campusconnect/campus_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) PollRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListPolls))
		r.Method(http.MethodPost, "/", Handler(api.CreatePoll))
		r.Method(http.MethodGet, "/{pollID}", Handler(api.GetPoll))
		r.Method(http.MethodPost, "/{pollID}/vote", Handler(api.VoteOnPoll))

		r.Group(func(admin chi.Router) {
			admin.Use(api.RequireAdmin)
			admin.Method(http.MethodDelete, "/{pollID}", Handler(api.DeletePoll))
		})
	})

	return mux
}

func (api *API) ListPolls(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	status := r.URL.Query().Get("status")
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 10
	}

	result, respStatus, message, err := api.ListPollsHelper(r.Context(), status, page, limit, principal)
	if err != nil {
		return respondWithError(err, message, respStatus, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     respStatus,
		StatusCode: util.StatusCode(respStatus),
		Data:       result,
	}
}

func (api *API) CreatePoll(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreatePollRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	poll, status, message, err := api.CreatePollHelper(r.Context(), req, principal)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       poll,
	}
}

func (api *API) GetPoll(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pollID, err := util.StringToUUID(chi.URLParam(r, "pollID"))
	if err != nil {
		return respondWithError(err, "invalid poll ID", values.BadRequestBody, &tc)
	}

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	poll, err := api.Store.Polls().Get(r.Context(), pollID, principal.ID)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Poll retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       poll,
	}
}

func (api *API) VoteOnPoll(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pollID, err := util.StringToUUID(chi.URLParam(r, "pollID"))
	if err != nil {
		return respondWithError(err, "invalid poll ID", values.BadRequestBody, &tc)
	}

	var req model.CastVoteRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	poll, status, message, err := api.CastVoteHelper(r.Context(), pollID, req.OptionIndex, principal)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       poll,
	}
}

func (api *API) DeletePoll(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pollID, err := util.StringToUUID(chi.URLParam(r, "pollID"))
	if err != nil {
		return respondWithError(err, "invalid poll ID", values.BadRequestBody, &tc)
	}

	if err := api.Store.Polls().Deactivate(r.Context(), pollID); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Poll deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
