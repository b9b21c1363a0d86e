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

// Listings expire after 30 days unless resolved earlier.
const lostFoundLifetime = 30 * 24 * time.Hour

func (api *API) LostFoundRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListLostFound))
		r.Method(http.MethodPost, "/", Handler(api.CreateLostFound))
		r.Method(http.MethodGet, "/{id}", Handler(api.GetLostFound))
		r.Method(http.MethodPut, "/{id}", Handler(api.UpdateLostFound))
		r.Method(http.MethodDelete, "/{id}", Handler(api.DeleteLostFound))
	})

	return mux
}

func (api *API) ListLostFound(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, limit = util.Paginate(page, limit)

	items, total, err := api.Store.LostFound().List(r.Context(), store.LostFoundFilter{
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return respondWithError(err, "Failed to fetch lost and found items", values.Error, &tc)
	}
	if items == nil {
		items = []model.LostFoundItem{}
	}

	return &ServerResponse{
		Message:    "Items fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: model.LostFoundPage{
			Items:       items,
			TotalPages:  util.TotalPages(total, limit),
			CurrentPage: page,
			Total:       total,
		},
	}
}

func (api *API) GetLostFound(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid item ID", values.BadRequestBody, &tc)
	}

	item, err := api.Store.LostFound().Get(r.Context(), id)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Item fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       item,
	}
}

func (api *API) CreateLostFound(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateLostFoundRequest
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

	var imageURL *string
	if req.Image != "" && api.Deps.Cloudinary.Enabled() {
		url, uploadErr := api.Deps.Cloudinary.UploadImage(r.Context(), req.Image, "lostfound")
		if uploadErr != nil {
			return respondWithError(uploadErr, "Failed to upload image", values.Error, &tc)
		}
		imageURL = &url
	}

	now := time.Now()
	item := model.LostFoundItem{
		ID:              util.GenerateUUID(),
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		Category:        req.Category,
		Location:        req.Location,
		ContactInfo:     req.ContactInfo,
		ImageURL:        imageURL,
		SubmittedBy:     principal.ID,
		SubmittedByName: principal.Name,
		Status:          "active",
		ExpiryDate:      now.Add(lostFoundLifetime),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := api.Store.LostFound().Create(r.Context(), item); err != nil {
		return respondWithError(err, "Failed to create item", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Item reported successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       item,
	}
}

func (api *API) UpdateLostFound(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid item ID", values.BadRequestBody, &tc)
	}

	var req model.UpdateLostFoundRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	item, err := api.Store.LostFound().Get(r.Context(), id)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	if !principal.IsAdmin() && item.SubmittedBy != principal.ID {
		return respondWithError(errors.New("item belongs to another user"),
			"You can only update your own items", values.NotAllowed, &tc)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ContactInfo != nil {
		item.ContactInfo = *req.ContactInfo
	}
	if req.Status != nil {
		item.Status = *req.Status
		if item.Status == "resolved" && item.ResolvedAt == nil {
			now := time.Now()
			item.ResolvedAt = &now
		}
	}
	item.UpdatedAt = time.Now()

	if err := api.Store.LostFound().Update(r.Context(), item); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Item updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       item,
	}
}

func (api *API) DeleteLostFound(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid item ID", values.BadRequestBody, &tc)
	}

	item, err := api.Store.LostFound().Get(r.Context(), id)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	if !principal.IsAdmin() && item.SubmittedBy != principal.ID {
		return respondWithError(errors.New("item belongs to another user"),
			"You can only delete your own items", values.NotAllowed, &tc)
	}

	if err := api.Store.LostFound().Delete(r.Context(), id); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Item deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
