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
)

func (api *API) AnnouncementRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListAnnouncements))

		r.Group(func(admin chi.Router) {
			admin.Use(api.RequireAdmin)
			admin.Method(http.MethodPost, "/", Handler(api.CreateAnnouncement))
			admin.Method(http.MethodPut, "/{id}", Handler(api.UpdateAnnouncement))
			admin.Method(http.MethodDelete, "/{id}", Handler(api.DeleteAnnouncement))
		})
	})

	return mux
}

func (api *API) ListAnnouncements(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, limit = util.Paginate(page, limit)

	// Students only see live announcements; admins see retired ones too.
	announcements, total, err := api.Store.Announcements().List(r.Context(), store.AnnouncementFilter{
		Category:   r.URL.Query().Get("category"),
		ActiveOnly: !principal.IsAdmin(),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return respondWithError(err, "Failed to fetch announcements", values.Error, &tc)
	}
	if announcements == nil {
		announcements = []model.Announcement{}
	}

	return &ServerResponse{
		Message:    "Announcements fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: model.AnnouncementPage{
			Announcements: announcements,
			TotalPages:    util.TotalPages(total, limit),
			CurrentPage:   page,
			Total:         total,
		},
	}
}

func (api *API) CreateAnnouncement(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateAnnouncementRequest
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
		req.Category = "General"
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	announcement := model.Announcement{
		ID:         util.GenerateUUID(),
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Author:     principal.ID,
		AuthorName: principal.Name,
		Priority:   req.Priority,
		IsActive:   true,
		ExpiryDate: req.ExpiryDate,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := api.Store.Announcements().Create(r.Context(), announcement); err != nil {
		return respondWithError(err, "Failed to create announcement", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Announcement created successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       announcement,
	}
}

func (api *API) UpdateAnnouncement(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid announcement ID", values.BadRequestBody, &tc)
	}

	var req model.CreateAnnouncementRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	if req.Category == "" {
		req.Category = "General"
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	updated, err := api.Store.Announcements().Update(r.Context(), model.Announcement{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Priority:   req.Priority,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Announcement updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       updated,
	}
}

func (api *API) DeleteAnnouncement(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid announcement ID", values.BadRequestBody, &tc)
	}

	if err := api.Store.Announcements().Deactivate(r.Context(), id); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Announcement deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
