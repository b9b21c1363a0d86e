package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/campusconnect/campus_api/util"
	"github.com/campusconnect/campus_api/util/tracing"
	"github.com/campusconnect/campus_api/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func (api *API) ComplaintRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListComplaints))
		r.Method(http.MethodPost, "/", Handler(api.CreateComplaint))
		r.Method(http.MethodGet, "/{id}", Handler(api.GetComplaint))

		r.Group(func(admin chi.Router) {
			admin.Use(api.RequireAdmin)
			admin.Method(http.MethodPut, "/{id}/status", Handler(api.UpdateComplaintStatus))
			admin.Method(http.MethodDelete, "/{id}", Handler(api.DeleteComplaint))
		})
	})

	return mux
}

func (api *API) ListComplaints(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, limit = util.Paginate(page, limit)

	filter := store.ComplaintFilter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
		Page:     page,
		Limit:    limit,
	}
	// Students only ever see their own complaints.
	if !principal.IsAdmin() {
		filter.SubmittedBy = &principal.ID
	}

	complaints, total, err := api.Store.Complaints().List(r.Context(), filter)
	if err != nil {
		return respondWithError(err, "Failed to fetch complaints", values.Error, &tc)
	}
	if complaints == nil {
		complaints = []model.Complaint{}
	}

	return &ServerResponse{
		Message:    "Complaints fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: model.ComplaintPage{
			Complaints:  complaints,
			TotalPages:  util.TotalPages(total, limit),
			CurrentPage: page,
			Total:       total,
		},
	}
}

func (api *API) GetComplaint(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid complaint ID", values.BadRequestBody, &tc)
	}

	complaint, err := api.Store.Complaints().Get(r.Context(), id)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	if !principal.IsAdmin() && complaint.SubmittedBy != principal.ID {
		return respondWithError(errors.New("complaint belongs to another user"),
			"You can only view your own complaints", values.NotAllowed, &tc)
	}

	return &ServerResponse{
		Message:    "Complaint fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       complaint,
	}
}

func (api *API) CreateComplaint(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateComplaintRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	if req.Category == "" {
		req.Category = "Other"
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	complaint := model.Complaint{
		ID:              util.GenerateUUID(),
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Room:            req.Room,
		Status:          model.ComplaintStatusPending,
		Priority:        req.Priority,
		SubmittedBy:     principal.ID,
		SubmittedByName: principal.Name,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := api.Store.Complaints().Create(r.Context(), complaint); err != nil {
		return respondWithError(err, "Failed to submit complaint", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Complaint submitted successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       complaint,
	}
}

func (api *API) UpdateComplaintStatus(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid complaint ID", values.BadRequestBody, &tc)
	}

	var req model.UpdateComplaintStatusRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	complaint, err := api.Store.Complaints().UpdateStatus(r.Context(), id, req)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Complaint status updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       complaint,
	}
}

func (api *API) DeleteComplaint(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid complaint ID", values.BadRequestBody, &tc)
	}

	if err := api.Store.Complaints().Delete(r.Context(), id); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Complaint deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
