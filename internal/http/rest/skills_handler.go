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

func (api *API) SkillRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListSkills))
		r.Method(http.MethodGet, "/my-skills", Handler(api.ListMySkills))
		r.Method(http.MethodPost, "/", Handler(api.CreateSkill))
		r.Method(http.MethodPut, "/{id}", Handler(api.UpdateSkill))
		r.Method(http.MethodDelete, "/{id}", Handler(api.DeleteSkill))
	})

	return mux
}

func (api *API) ListSkills(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, limit = util.Paginate(page, limit)

	skills, total, err := api.Store.Skills().List(r.Context(), store.SkillFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return respondWithError(err, "Failed to fetch skills", values.Error, &tc)
	}
	if skills == nil {
		skills = []model.Skill{}
	}

	return &ServerResponse{
		Message:    "Skills fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"skills":      skills,
			"totalPages":  util.TotalPages(total, limit),
			"currentPage": page,
			"total":       total,
		},
	}
}

func (api *API) ListMySkills(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	skills, err := api.Store.Skills().ListByUser(r.Context(), principal.ID)
	if err != nil {
		return respondWithError(err, "Failed to fetch skills", values.Error, &tc)
	}
	if skills == nil {
		skills = []model.Skill{}
	}

	return &ServerResponse{
		Message:    "Skills fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       skills,
	}
}

func (api *API) CreateSkill(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateSkillRequest
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

	now := time.Now()
	skill := model.Skill{
		ID:           util.GenerateUUID(),
		Name:         req.Name,
		Avatar:       req.Avatar,
		Skills:       req.Skills,
		Category:     req.Category,
		Bio:          req.Bio,
		HourlyRate:   req.HourlyRate,
		Location:     req.Location,
		Availability: req.Availability,
		UserID:       principal.ID,
		UserEmail:    principal.Email,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := api.Store.Skills().Create(r.Context(), skill); err != nil {
		return respondWithError(err, "Failed to create skill profile", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Skill profile created successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       skill,
	}
}

func (api *API) UpdateSkill(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid skill ID", values.BadRequestBody, &tc)
	}

	var req model.CreateSkillRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	existing, err := api.Store.Skills().Get(r.Context(), id)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	if existing.UserID != principal.ID {
		return respondWithError(errors.New("skill profile belongs to another user"),
			"You can only update your own skill profile", values.NotAllowed, &tc)
	}

	existing.Name = req.Name
	existing.Avatar = req.Avatar
	existing.Skills = req.Skills
	existing.Category = req.Category
	existing.Bio = req.Bio
	existing.HourlyRate = req.HourlyRate
	existing.Location = req.Location
	existing.Availability = req.Availability
	existing.UpdatedAt = time.Now()

	if err := api.Store.Skills().Update(r.Context(), existing); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Skill profile updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       existing,
	}
}

func (api *API) DeleteSkill(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	principal, err := principalFrom(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user from context", values.NotAuthorised, &tc)
	}

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid skill ID", values.BadRequestBody, &tc)
	}

	existing, err := api.Store.Skills().Get(r.Context(), id)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	if !principal.IsAdmin() && existing.UserID != principal.ID {
		return respondWithError(errors.New("skill profile belongs to another user"),
			"You can only delete your own skill profile", values.NotAllowed, &tc)
	}

	if err := api.Store.Skills().Deactivate(r.Context(), id); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Skill profile deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
