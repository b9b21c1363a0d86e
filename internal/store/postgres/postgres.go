// Package postgres is the durable persistence strategy, backed by pgx.
package postgres

import (
	"github.com/campusconnect/campus_api/internal/db"
	"github.com/campusconnect/campus_api/internal/store"
)

type Store struct {
	db *db.DB
}

var _ store.Store = (*Store)(nil)

func New(database *db.DB) *Store {
	return &Store{db: database}
}

func (s *Store) Users() store.UserStore                 { return &userStore{s.db} }
func (s *Store) Polls() store.PollStore                 { return &pollStore{s.db} }
func (s *Store) Announcements() store.AnnouncementStore { return &announcementStore{s.db} }
func (s *Store) Complaints() store.ComplaintStore       { return &complaintStore{s.db} }
func (s *Store) LostFound() store.LostFoundStore        { return &lostFoundStore{s.db} }
func (s *Store) Timetable() store.TimetableStore        { return &timetableStore{s.db} }
func (s *Store) Skills() store.SkillStore               { return &skillStore{s.db} }
func (s *Store) TechNews() store.TechNewsStore          { return &techNewsStore{s.db} }
