package memory

import (
	"context"
	"strings"
	"time"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/google/uuid"
)

type announcementStore Store

func (as *announcementStore) List(ctx context.Context, f store.AnnouncementFilter) ([]model.Announcement, int, error) {
	s := (*Store)(as)
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]model.Announcement, 0, len(s.announcements))
	for _, a := range s.announcements {
		if f.ActiveOnly && !a.IsActive {
			continue
		}
		if f.Category != "" && f.Category != "All" && a.Category != f.Category {
			continue
		}
		filtered = append(filtered, a)
	}
	items, total := page(filtered, f.Page, f.Limit)
	return items, total, nil
}

func (as *announcementStore) Create(ctx context.Context, a model.Announcement) error {
	s := (*Store)(as)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.announcements = append([]model.Announcement{a}, s.announcements...)
	return nil
}

func (as *announcementStore) Update(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	s := (*Store)(as)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID != a.ID {
			continue
		}
		existing := &s.announcements[i]
		existing.Title = a.Title
		existing.Content = a.Content
		existing.Category = a.Category
		existing.Priority = a.Priority
		existing.ExpiryDate = a.ExpiryDate
		existing.UpdatedAt = time.Now()
		return *existing, nil
	}
	return model.Announcement{}, store.ErrNotFound
}

func (as *announcementStore) Deactivate(ctx context.Context, id uuid.UUID) error {
	s := (*Store)(as)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements[i].IsActive = false
			return nil
		}
	}
	return store.ErrNotFound
}

type complaintStore Store

func (cs *complaintStore) List(ctx context.Context, f store.ComplaintFilter) ([]model.Complaint, int, error) {
	s := (*Store)(cs)
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]model.Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		if f.SubmittedBy != nil && c.SubmittedBy != *f.SubmittedBy {
			continue
		}
		if f.Status != "" && f.Status != "All" && c.Status != f.Status {
			continue
		}
		if f.Category != "" && f.Category != "All" && c.Category != f.Category {
			continue
		}
		filtered = append(filtered, c)
	}
	items, total := page(filtered, f.Page, f.Limit)
	return items, total, nil
}

func (cs *complaintStore) Get(ctx context.Context, id uuid.UUID) (model.Complaint, error) {
	s := (*Store)(cs)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.complaints {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Complaint{}, store.ErrNotFound
}

func (cs *complaintStore) Create(ctx context.Context, c model.Complaint) error {
	s := (*Store)(cs)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.complaints = append([]model.Complaint{c}, s.complaints...)
	return nil
}

func (cs *complaintStore) UpdateStatus(ctx context.Context, id uuid.UUID, req model.UpdateComplaintStatusRequest) (model.Complaint, error) {
	s := (*Store)(cs)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID != id {
			continue
		}
		c := &s.complaints[i]
		c.Status = req.Status
		c.AdminNotes = req.AdminNotes
		if req.AssignedTo != nil {
			c.AssignedTo = req.AssignedTo
		}
		if req.Status == model.ComplaintStatusResolved {
			now := time.Now()
			c.ResolvedAt = &now
		}
		c.UpdatedAt = time.Now()
		return *c, nil
	}
	return model.Complaint{}, store.ErrNotFound
}

func (cs *complaintStore) Delete(ctx context.Context, id uuid.UUID) error {
	s := (*Store)(cs)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID == id {
			s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type lostFoundStore Store

func (ls *lostFoundStore) List(ctx context.Context, f store.LostFoundFilter) ([]model.LostFoundItem, int, error) {
	s := (*Store)(ls)
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]model.LostFoundItem, 0, len(s.lostFound))
	for _, item := range s.lostFound {
		if f.Type != "" && f.Type != "all" && item.Type != f.Type {
			continue
		}
		if f.Category != "" && f.Category != "All" && item.Category != f.Category {
			continue
		}
		if f.Status != "" && f.Status != "all" && item.Status != f.Status {
			continue
		}
		filtered = append(filtered, item)
	}
	items, total := page(filtered, f.Page, f.Limit)
	return items, total, nil
}

func (ls *lostFoundStore) Get(ctx context.Context, id uuid.UUID) (model.LostFoundItem, error) {
	s := (*Store)(ls)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.lostFound {
		if item.ID == id {
			return item, nil
		}
	}
	return model.LostFoundItem{}, store.ErrNotFound
}

func (ls *lostFoundStore) Create(ctx context.Context, item model.LostFoundItem) error {
	s := (*Store)(ls)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lostFound = append([]model.LostFoundItem{item}, s.lostFound...)
	return nil
}

func (ls *lostFoundStore) Update(ctx context.Context, item model.LostFoundItem) error {
	s := (*Store)(ls)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lostFound {
		if s.lostFound[i].ID == item.ID {
			item.CreatedAt = s.lostFound[i].CreatedAt
			item.UpdatedAt = time.Now()
			s.lostFound[i] = item
			return nil
		}
	}
	return store.ErrNotFound
}

func (ls *lostFoundStore) Delete(ctx context.Context, id uuid.UUID) error {
	s := (*Store)(ls)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lostFound {
		if s.lostFound[i].ID == id {
			s.lostFound = append(s.lostFound[:i], s.lostFound[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type timetableStore Store

func (ts *timetableStore) List(ctx context.Context, f store.TimetableFilter) ([]model.TimetableEntry, error) {
	s := (*Store)(ts)
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.TimetableEntry, 0, len(s.timetable))
	for _, e := range s.timetable {
		if !e.IsActive {
			continue
		}
		if f.Department != "" && e.Department != f.Department {
			continue
		}
		if f.Year != 0 && e.Year != f.Year {
			continue
		}
		if f.Day != "" && e.Day != f.Day {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (ts *timetableStore) Get(ctx context.Context, id uuid.UUID) (model.TimetableEntry, error) {
	s := (*Store)(ts)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.timetable {
		if e.ID == id {
			return e, nil
		}
	}
	return model.TimetableEntry{}, store.ErrNotFound
}

func (ts *timetableStore) Create(ctx context.Context, e model.TimetableEntry) error {
	s := (*Store)(ts)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timetable = append(s.timetable, e)
	return nil
}

func (ts *timetableStore) Update(ctx context.Context, e model.TimetableEntry) error {
	s := (*Store)(ts)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.timetable {
		if s.timetable[i].ID == e.ID {
			e.CreatedAt = s.timetable[i].CreatedAt
			e.UpdatedAt = time.Now()
			s.timetable[i] = e
			return nil
		}
	}
	return store.ErrNotFound
}

func (ts *timetableStore) Delete(ctx context.Context, id uuid.UUID) error {
	s := (*Store)(ts)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.timetable {
		if s.timetable[i].ID == id {
			s.timetable = append(s.timetable[:i], s.timetable[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type skillStore Store

func (ss *skillStore) List(ctx context.Context, f store.SkillFilter) ([]model.Skill, int, error) {
	s := (*Store)(ss)
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(f.Search)
	filtered := make([]model.Skill, 0, len(s.skills))
	for _, sk := range s.skills {
		if !sk.IsActive {
			continue
		}
		if f.Category != "" && f.Category != "All" && sk.Category != f.Category {
			continue
		}
		if search != "" && !skillMatches(sk, search) {
			continue
		}
		filtered = append(filtered, sk)
	}
	items, total := page(filtered, f.Page, f.Limit)
	return items, total, nil
}

func skillMatches(sk model.Skill, search string) bool {
	if strings.Contains(strings.ToLower(sk.Name), search) ||
		strings.Contains(strings.ToLower(sk.Bio), search) {
		return true
	}
	for _, tag := range sk.Skills {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func (ss *skillStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Skill, error) {
	s := (*Store)(ss)
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.Skill{}
	for _, sk := range s.skills {
		if sk.UserID == userID && sk.IsActive {
			out = append(out, sk)
		}
	}
	return out, nil
}

func (ss *skillStore) Get(ctx context.Context, id uuid.UUID) (model.Skill, error) {
	s := (*Store)(ss)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sk := range s.skills {
		if sk.ID == id {
			return sk, nil
		}
	}
	return model.Skill{}, store.ErrNotFound
}

func (ss *skillStore) Create(ctx context.Context, sk model.Skill) error {
	s := (*Store)(ss)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skills = append([]model.Skill{sk}, s.skills...)
	return nil
}

func (ss *skillStore) Update(ctx context.Context, sk model.Skill) error {
	s := (*Store)(ss)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.skills {
		if s.skills[i].ID == sk.ID {
			sk.CreatedAt = s.skills[i].CreatedAt
			sk.UpdatedAt = time.Now()
			s.skills[i] = sk
			return nil
		}
	}
	return store.ErrNotFound
}

func (ss *skillStore) Deactivate(ctx context.Context, id uuid.UUID) error {
	s := (*Store)(ss)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.skills {
		if s.skills[i].ID == id {
			s.skills[i].IsActive = false
			return nil
		}
	}
	return store.ErrNotFound
}

type techNewsStore Store

func (ns *techNewsStore) List(ctx context.Context, f store.TechNewsFilter) ([]model.TechNewsItem, int, error) {
	s := (*Store)(ns)
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]model.TechNewsItem, 0, len(s.techNews))
	for _, n := range s.techNews {
		if !n.IsActive {
			continue
		}
		if f.Category != "" && f.Category != "All" && n.Category != f.Category {
			continue
		}
		filtered = append(filtered, n)
	}
	items, total := page(filtered, f.Page, f.Limit)
	return items, total, nil
}

func (ns *techNewsStore) Get(ctx context.Context, id uuid.UUID) (model.TechNewsItem, error) {
	s := (*Store)(ns)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.techNews {
		if n.ID == id {
			return n, nil
		}
	}
	return model.TechNewsItem{}, store.ErrNotFound
}

func (ns *techNewsStore) Create(ctx context.Context, n model.TechNewsItem) error {
	s := (*Store)(ns)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.techNews = append([]model.TechNewsItem{n}, s.techNews...)
	return nil
}

func (ns *techNewsStore) Update(ctx context.Context, n model.TechNewsItem) error {
	s := (*Store)(ns)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.techNews {
		if s.techNews[i].ID == n.ID {
			n.CreatedAt = s.techNews[i].CreatedAt
			n.UpdatedAt = time.Now()
			s.techNews[i] = n
			return nil
		}
	}
	return store.ErrNotFound
}
