package memory

import (
	"context"
	"testing"
	"time"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	user := model.User{
		ID:    uuid.New(),
		Name:  "Jane Roe",
		Email: "jane@campus.edu",
		Role:  "student",
	}
	if err := s.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	t.Run("duplicate email is rejected case-insensitively", func(t *testing.T) {
		dup := model.User{ID: uuid.New(), Email: "JANE@campus.edu"}
		if err := s.Users().Create(ctx, dup); !errors.Is(err, store.ErrDuplicateEmail) {
			t.Errorf("got %v, want ErrDuplicateEmail", err)
		}
	})

	t.Run("lookup by email", func(t *testing.T) {
		got, err := s.Users().GetByEmail(ctx, "Jane@Campus.edu")
		if err != nil {
			t.Fatalf("GetByEmail returned error: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("got user %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("lookup by id", func(t *testing.T) {
		got, err := s.Users().GetByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetByID returned error: %v", err)
		}
		if got.Email != user.Email {
			t.Errorf("got email %q, want %q", got.Email, user.Email)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := s.Users().GetByID(ctx, uuid.New()); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}

func TestComplaintLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()
	submitter := uuid.New()

	complaint := model.Complaint{
		ID:          uuid.New(),
		Title:       "Broken fan",
		Description: "Ceiling fan in H-117 stopped working.",
		Category:    "Electricity",
		Room:        "H-117",
		Status:      model.ComplaintStatusPending,
		Priority:    "medium",
		SubmittedBy: submitter,
		CreatedAt:   time.Now(),
	}
	if err := s.Complaints().Create(ctx, complaint); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	t.Run("filter by submitter", func(t *testing.T) {
		mine, total, err := s.Complaints().List(ctx, store.ComplaintFilter{SubmittedBy: &submitter})
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if total != 1 || len(mine) != 1 {
			t.Fatalf("got %d complaints for submitter, want 1", total)
		}

		other := uuid.New()
		none, total, err := s.Complaints().List(ctx, store.ComplaintFilter{SubmittedBy: &other})
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if total != 0 || len(none) != 0 {
			t.Errorf("got %d complaints for a stranger, want 0", total)
		}
	})

	t.Run("resolving stamps resolvedAt", func(t *testing.T) {
		notes := "Fan motor replaced"
		updated, err := s.Complaints().UpdateStatus(ctx, complaint.ID, model.UpdateComplaintStatusRequest{
			Status:     model.ComplaintStatusResolved,
			AdminNotes: &notes,
		})
		if err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}
		if updated.Status != model.ComplaintStatusResolved {
			t.Errorf("status = %q, want resolved", updated.Status)
		}
		if updated.ResolvedAt == nil {
			t.Error("resolvedAt not set on resolution")
		}
		if updated.AdminNotes == nil || *updated.AdminNotes != notes {
			t.Errorf("adminNotes = %v, want %q", updated.AdminNotes, notes)
		}
	})

	t.Run("unknown complaint", func(t *testing.T) {
		_, err := s.Complaints().UpdateStatus(ctx, uuid.New(), model.UpdateComplaintStatusRequest{Status: model.ComplaintStatusPending})
		if !errors.Is(err, store.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := s.Complaints().Delete(ctx, complaint.ID); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if _, err := s.Complaints().Get(ctx, complaint.ID); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("got %v after delete, want ErrNotFound", err)
		}
	})
}

func TestAnnouncementVisibility(t *testing.T) {
	ctx := context.Background()
	s := New()

	live := model.Announcement{ID: uuid.New(), Title: "Live", Category: "General", IsActive: true}
	retired := model.Announcement{ID: uuid.New(), Title: "Retired", Category: "General", IsActive: false}
	for _, a := range []model.Announcement{live, retired} {
		if err := s.Announcements().Create(ctx, a); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	visible, total, err := s.Announcements().List(ctx, store.AnnouncementFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 1 || len(visible) != 1 || visible[0].ID != live.ID {
		t.Errorf("ActiveOnly returned %d announcements, want only the live one", total)
	}

	everything, total, err := s.Announcements().List(ctx, store.AnnouncementFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 2 || len(everything) != 2 {
		t.Errorf("unfiltered list returned %d announcements, want 2", total)
	}
}

// Updates only touch the editable fields; authorship and creation
// metadata must survive.
func TestAnnouncementUpdatePreservesAuthor(t *testing.T) {
	ctx := context.Background()
	s := New()
	author := uuid.New()
	created := time.Now().Add(-48 * time.Hour)

	original := model.Announcement{
		ID:         uuid.New(),
		Title:      "Old title",
		Content:    "Old content",
		Category:   "General",
		Author:     author,
		AuthorName: "Admin User",
		Priority:   "medium",
		IsActive:   true,
		CreatedAt:  created,
	}
	if err := s.Announcements().Create(ctx, original); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	merged, err := s.Announcements().Update(ctx, model.Announcement{
		ID:       original.ID,
		Title:    "New title",
		Content:  "New content",
		Category: "Exams",
		Priority: "high",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if merged.Title != "New title" || merged.Category != "Exams" || merged.Priority != "high" {
		t.Errorf("editable fields not applied: %+v", merged)
	}
	if merged.Author != author || merged.AuthorName != "Admin User" {
		t.Errorf("authorship lost on update: author=%s authorName=%q", merged.Author, merged.AuthorName)
	}
	if !merged.CreatedAt.Equal(created) {
		t.Errorf("createdAt changed on update: %v, want %v", merged.CreatedAt, created)
	}
	if !merged.IsActive {
		t.Error("update deactivated the announcement")
	}

	stored, _, err := s.Announcements().List(ctx, store.AnnouncementFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if stored[0].Author != author || stored[0].AuthorName != "Admin User" {
		t.Errorf("stored record lost authorship: %+v", stored[0])
	}

	t.Run("unknown announcement", func(t *testing.T) {
		_, err := s.Announcements().Update(ctx, model.Announcement{ID: uuid.New(), Title: "X"})
		if !errors.Is(err, store.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}

func TestSkillSearch(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := uuid.New()

	skill := model.Skill{
		ID:       uuid.New(),
		Name:     "Jane Roe",
		Skills:   []string{"Python", "Django"},
		Category: "Programming",
		Bio:      "Backend tutoring",
		UserID:   owner,
		IsActive: true,
	}
	if err := s.Skills().Create(ctx, skill); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	testCases := []struct {
		name   string
		filter store.SkillFilter
		want   int
	}{
		{"by tag", store.SkillFilter{Search: "python"}, 1},
		{"by bio", store.SkillFilter{Search: "tutoring"}, 1},
		{"by name", store.SkillFilter{Search: "jane"}, 1},
		{"no match", store.SkillFilter{Search: "violin"}, 0},
		{"category match", store.SkillFilter{Category: "Programming"}, 1},
		{"category miss", store.SkillFilter{Category: "Music"}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, total, err := s.Skills().List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			if total != tc.want {
				t.Errorf("total = %d, want %d", total, tc.want)
			}
		})
	}

	t.Run("deactivated profiles disappear", func(t *testing.T) {
		if err := s.Skills().Deactivate(ctx, skill.ID); err != nil {
			t.Fatalf("Deactivate returned error: %v", err)
		}
		_, total, err := s.Skills().List(ctx, store.SkillFilter{})
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if total != 0 {
			t.Errorf("total = %d after deactivation, want 0", total)
		}
		mine, err := s.Skills().ListByUser(ctx, owner)
		if err != nil {
			t.Fatalf("ListByUser returned error: %v", err)
		}
		if len(mine) != 0 {
			t.Errorf("ListByUser returned %d profiles after deactivation, want 0", len(mine))
		}
	})
}

func TestTimetableFilters(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	entries, err := s.Timetable().List(ctx, store.TimetableFilter{Department: "Computer Science", Day: "Monday"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, e := range entries {
		if e.Department != "Computer Science" || e.Day != "Monday" {
			t.Errorf("filter leaked entry %q on %s for %s", e.Subject, e.Day, e.Department)
		}
	}

	none, err := s.Timetable().List(ctx, store.TimetableFilter{Year: 1})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("year filter returned %d entries, want 0", len(none))
	}
}
