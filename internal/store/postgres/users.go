package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusconnect/campus_api/internal/db"
	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

type userStore struct {
	db *db.DB
}

func (us *userStore) Create(ctx context.Context, user model.User) error {
	stmt := `
        INSERT INTO users (id, name, email, password_hash, role, student_id, department, year, room_number)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := us.db.Pool().Exec(ctx, stmt,
		user.ID, user.Name, strings.ToLower(user.Email), user.PasswordHash, user.Role,
		user.StudentID, user.Department, user.Year, user.RoomNumber,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation on users.email
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.ErrDuplicateEmail
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (us *userStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return us.get(ctx, `email = $1`, strings.ToLower(email))
}

func (us *userStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return us.get(ctx, `id = $1`, id)
}

func (us *userStore) get(ctx context.Context, cond string, arg interface{}) (model.User, error) {
	var user model.User
	stmt := `
        SELECT id, name, email, password_hash, role, student_id, department, year, room_number, created_at, updated_at
        FROM users WHERE ` + cond

	err := us.db.Pool().QueryRow(ctx, stmt, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.StudentID,
		&user.Department,
		&user.Year,
		&user.RoomNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.User{}, store.ErrNotFound
		}
		return model.User{}, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}
