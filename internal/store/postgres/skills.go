package postgres

import (
	"context"
	"fmt"

	"github.com/campusconnect/campus_api/internal/db"
	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type skillStore struct {
	db *db.DB
}

const skillColumns = `id, name, avatar, rating, reviews, skills, category, bio, hourly_rate,
    location, availability, sessions_completed, user_id, user_email, is_active, created_at, updated_at`

func scanSkill(row pgx.Row) (model.Skill, error) {
	var s model.Skill
	err := row.Scan(
		&s.ID, &s.Name, &s.Avatar, &s.Rating, &s.Reviews, &s.Skills, &s.Category, &s.Bio,
		&s.HourlyRate, &s.Location, &s.Availability, &s.SessionsCompleted,
		&s.UserID, &s.UserEmail, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (ss *skillStore) List(ctx context.Context, f store.SkillFilter) ([]model.Skill, int, error) {
	where := `WHERE is_active = TRUE`
	args := []interface{}{}
	if f.Category != "" && f.Category != "All" {
		args = append(args, f.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where += fmt.Sprintf(` AND (name ILIKE $%d OR bio ILIKE $%d OR EXISTS (
            SELECT 1 FROM unnest(skills) tag WHERE tag ILIKE $%d))`, n, n, n)
	}

	var total int
	if err := ss.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM skills `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting skills: %w", err)
	}

	limit, page := f.Limit, f.Page
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	stmt := fmt.Sprintf(`SELECT %s FROM skills %s ORDER BY rating DESC, created_at DESC LIMIT %d OFFSET %d`,
		skillColumns, where, limit, (page-1)*limit)

	rows, err := ss.db.Pool().Query(ctx, stmt, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing skills: %w", err)
	}
	defer rows.Close()

	var out []model.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning skill: %w", err)
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (ss *skillStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Skill, error) {
	stmt := fmt.Sprintf(`SELECT %s FROM skills WHERE user_id = $1 AND is_active = TRUE ORDER BY created_at DESC`, skillColumns)
	rows, err := ss.db.Pool().Query(ctx, stmt, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user skills: %w", err)
	}
	defer rows.Close()

	out := []model.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning skill: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (ss *skillStore) Get(ctx context.Context, id uuid.UUID) (model.Skill, error) {
	stmt := fmt.Sprintf(`SELECT %s FROM skills WHERE id = $1`, skillColumns)
	s, err := scanSkill(ss.db.Pool().QueryRow(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Skill{}, store.ErrNotFound
		}
		return model.Skill{}, fmt.Errorf("getting skill: %w", err)
	}
	return s, nil
}

func (ss *skillStore) Create(ctx context.Context, s model.Skill) error {
	stmt := `
        INSERT INTO skills (id, name, avatar, rating, reviews, skills, category, bio, hourly_rate,
                            location, availability, sessions_completed, user_id, user_email, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `
	_, err := ss.db.Pool().Exec(ctx, stmt,
		s.ID, s.Name, s.Avatar, s.Rating, s.Reviews, s.Skills, s.Category, s.Bio, s.HourlyRate,
		s.Location, s.Availability, s.SessionsCompleted, s.UserID, s.UserEmail, s.IsActive,
	)
	if err != nil {
		return fmt.Errorf("creating skill: %w", err)
	}
	return nil
}

func (ss *skillStore) Update(ctx context.Context, s model.Skill) error {
	stmt := `
        UPDATE skills
        SET name = $2, avatar = $3, skills = $4, category = $5, bio = $6,
            hourly_rate = $7, location = $8, availability = $9, updated_at = NOW()
        WHERE id = $1
    `
	tag, err := ss.db.Pool().Exec(ctx, stmt,
		s.ID, s.Name, s.Avatar, s.Skills, s.Category, s.Bio, s.HourlyRate, s.Location, s.Availability)
	if err != nil {
		return fmt.Errorf("updating skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (ss *skillStore) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := ss.db.Pool().Exec(ctx,
		`UPDATE skills SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivating skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
