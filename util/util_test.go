package util

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/campusconnect/campus_api/util/values"
)

func TestPaginate(t *testing.T) {
	testCases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative values", -3, -1, 1, 10},
		{"passthrough", 2, 25, 2, 25},
		{"limit capped", 1, 500, 1, 100},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := Paginate(tc.page, tc.limit)
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Errorf("Paginate(%d, %d) = (%d, %d); want (%d, %d)",
					tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		total int
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{5, 0, 0},
	}
	for _, tc := range testCases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d; want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.NotAllowed, http.StatusForbidden},
		{values.Conflict, http.StatusConflict},
		{values.NotFound, http.StatusNotFound},
		{values.NotAuthorised, http.StatusUnauthorized},
		{values.TokenExpired, http.StatusUnauthorized},
		{values.Error, http.StatusInternalServerError},
		{"anything-else", http.StatusOK},
	}
	for _, tc := range testCases {
		if got := StatusCode(tc.status); got != tc.want {
			t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.want)
		}
	}
}

func TestTrimNonEmpty(t *testing.T) {
	got := TrimNonEmpty([]string{" a ", "", "  ", "b", "c "})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrimNonEmpty = %v; want %v", got, want)
	}
}

func TestValidEmail(t *testing.T) {
	if err := ValidEmail("user@campus.edu"); err != nil {
		t.Errorf("ValidEmail rejected a valid address: %v", err)
	}
	for _, bad := range []string{"", "no-at-sign", "@campus.edu"} {
		if err := ValidEmail(bad); err == nil {
			t.Errorf("ValidEmail(%q) accepted an invalid address", bad)
		}
	}
}
