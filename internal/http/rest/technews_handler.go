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
	"github.com/google/uuid"
)

func (api *API) TechNewsRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListTechNews))
		r.Method(http.MethodGet, "/{id}", Handler(api.GetTechNews))

		r.Group(func(admin chi.Router) {
			admin.Use(api.RequireAdmin)
			admin.Method(http.MethodPost, "/", Handler(api.CreateTechNews))
			admin.Method(http.MethodPut, "/{id}", Handler(api.UpdateTechNews))
		})
	})

	return mux
}

func (api *API) ListTechNews(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, limit = util.Paginate(page, limit)

	news, total, err := api.Store.TechNews().List(r.Context(), store.TechNewsFilter{
		Category: r.URL.Query().Get("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return respondWithError(err, "Failed to fetch tech news", values.Error, &tc)
	}
	if news == nil {
		news = []model.TechNewsItem{}
	}

	return &ServerResponse{
		Message:    "Tech news fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: model.TechNewsPage{
			News:        news,
			TotalPages:  util.TotalPages(total, limit),
			CurrentPage: page,
			Total:       total,
		},
	}
}

func (api *API) GetTechNews(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid article ID", values.BadRequestBody, &tc)
	}

	item, err := api.Store.TechNews().Get(r.Context(), id)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Article fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       item,
	}
}

func (api *API) CreateTechNews(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.UpsertTechNewsRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	item := techNewsFromRequest(util.GenerateUUID(), req)
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	if err := api.Store.TechNews().Create(r.Context(), item); err != nil {
		return respondWithError(err, "Failed to create article", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Article created successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       item,
	}
}

func (api *API) UpdateTechNews(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid article ID", values.BadRequestBody, &tc)
	}

	var req model.UpsertTechNewsRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	item := techNewsFromRequest(id, req)
	item.UpdatedAt = time.Now()

	if err := api.Store.TechNews().Update(r.Context(), item); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Article updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       item,
	}
}

func techNewsFromRequest(id uuid.UUID, req model.UpsertTechNewsRequest) model.TechNewsItem {
	category := req.Category
	if category == "" {
		category = "General"
	}
	publishedAt := time.Now()
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}

	return model.TechNewsItem{
		ID:          id,
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Source:      req.Source,
		URL:         req.URL,
		Category:    category,
		Tags:        req.Tags,
		PublishedAt: publishedAt,
		IsActive:    true,
	}
}
