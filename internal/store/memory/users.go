package memory

import (
	"context"
	"strings"

	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/google/uuid"
)

type userStore Store

func (us *userStore) Create(ctx context.Context, user model.User) error {
	s := (*Store)(us)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return store.ErrDuplicateEmail
		}
	}
	s.users = append(s.users, user)
	return nil
}

func (us *userStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	s := (*Store)(us)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, store.ErrNotFound
}

func (us *userStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	s := (*Store)(us)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, store.ErrNotFound
}
