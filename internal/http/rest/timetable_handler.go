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

func (api *API) TimetableRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/", Handler(api.ListTimetable))
		r.Method(http.MethodGet, "/{id}", Handler(api.GetTimetableEntry))

		r.Group(func(admin chi.Router) {
			admin.Use(api.RequireAdmin)
			admin.Method(http.MethodPost, "/", Handler(api.CreateTimetableEntry))
			admin.Method(http.MethodPut, "/{id}", Handler(api.UpdateTimetableEntry))
			admin.Method(http.MethodDelete, "/{id}", Handler(api.DeleteTimetableEntry))
		})
	})

	return mux
}

func (api *API) ListTimetable(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	entries, err := api.Store.Timetable().List(r.Context(), store.TimetableFilter{
		Department: r.URL.Query().Get("department"),
		Year:       year,
		Day:        r.URL.Query().Get("day"),
	})
	if err != nil {
		return respondWithError(err, "Failed to fetch timetable", values.Error, &tc)
	}
	if entries == nil {
		entries = []model.TimetableEntry{}
	}

	return &ServerResponse{
		Message:    "Timetable fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       entries,
	}
}

func (api *API) GetTimetableEntry(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid entry ID", values.BadRequestBody, &tc)
	}

	entry, err := api.Store.Timetable().Get(r.Context(), id)
	if err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Entry fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       entry,
	}
}

func (api *API) CreateTimetableEntry(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.UpsertTimetableRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	entry := timetableEntryFromRequest(util.GenerateUUID(), req)
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt

	if err := api.Store.Timetable().Create(r.Context(), entry); err != nil {
		return respondWithError(err, "Failed to create timetable entry", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Timetable entry created successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       entry,
	}
}

func (api *API) UpdateTimetableEntry(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid entry ID", values.BadRequestBody, &tc)
	}

	var req model.UpsertTimetableRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	entry := timetableEntryFromRequest(id, req)
	entry.UpdatedAt = time.Now()

	if err := api.Store.Timetable().Update(r.Context(), entry); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Timetable entry updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       entry,
	}
}

func (api *API) DeleteTimetableEntry(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		return respondWithError(err, "invalid entry ID", values.BadRequestBody, &tc)
	}

	if err := api.Store.Timetable().Delete(r.Context(), id); err != nil {
		status, message := storeErrStatus(err)
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Timetable entry deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func timetableEntryFromRequest(id uuid.UUID, req model.UpsertTimetableRequest) model.TimetableEntry {
	entryType := req.Type
	if entryType == "" {
		entryType = "lecture"
	}
	credits := req.Credits
	if credits == 0 {
		credits = 3
	}

	return model.TimetableEntry{
		ID:          id,
		Subject:     req.Subject,
		Instructor:  req.Instructor,
		Room:        req.Room,
		Day:         req.Day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Department:  req.Department,
		Year:        req.Year,
		Semester:    req.Semester,
		SubjectCode: req.SubjectCode,
		Credits:     credits,
		Type:        entryType,
		IsActive:    true,
	}
}
