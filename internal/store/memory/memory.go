// Package memory is the fallback persistence strategy used when the
// database is unreachable at startup. Semantics match the postgres
// store exactly, minus durability. A single mutex guards all state;
// this also serializes the read-check-write sequence of vote casting.
package memory

import (
	"sync"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
)

type Store struct {
	mu            sync.Mutex
	users         []model.User
	polls         []model.Poll
	announcements []model.Announcement
	complaints    []model.Complaint
	lostFound     []model.LostFoundItem
	timetable     []model.TimetableEntry
	skills        []model.Skill
	techNews      []model.TechNewsItem
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// NewSeeded returns a store preloaded with the demo dataset so the
// client is usable out of the box in fallback mode.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}

func (s *Store) Users() store.UserStore                 { return (*userStore)(s) }
func (s *Store) Polls() store.PollStore                 { return (*pollStore)(s) }
func (s *Store) Announcements() store.AnnouncementStore { return (*announcementStore)(s) }
func (s *Store) Complaints() store.ComplaintStore       { return (*complaintStore)(s) }
func (s *Store) LostFound() store.LostFoundStore        { return (*lostFoundStore)(s) }
func (s *Store) Timetable() store.TimetableStore        { return (*timetableStore)(s) }
func (s *Store) Skills() store.SkillStore               { return (*skillStore)(s) }
func (s *Store) TechNews() store.TechNewsStore          { return (*techNewsStore)(s) }

// page slices a filtered result set. Returns the page plus the total
// count before pagination.
func page[T any](items []T, pageNum, limit int) ([]T, int) {
	total := len(items)
	if limit < 1 {
		limit = 10
	}
	if pageNum < 1 {
		pageNum = 1
	}
	start := (pageNum - 1) * limit
	if start >= total {
		return []T{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], total
}
