package postgres

import (
	"context"
	"fmt"

	"github.com/campusconnect/campus_api/internal/db"
	"github.com/campusconnect/campus_api/internal/model"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type announcementStore struct {
	db *db.DB
}

func (as *announcementStore) List(ctx context.Context, f store.AnnouncementFilter) ([]model.Announcement, int, error) {
	where := `WHERE TRUE`
	args := []interface{}{}
	if f.ActiveOnly {
		where += ` AND is_active = TRUE`
	}
	if f.Category != "" && f.Category != "All" {
		args = append(args, f.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	var total int
	if err := as.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM announcements `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting announcements: %w", err)
	}

	limit, page := f.Limit, f.Page
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	stmt := fmt.Sprintf(`
        SELECT id, title, content, category, author, author_name, priority,
               is_active, expiry_date, created_at, updated_at
        FROM announcements %s
        ORDER BY created_at DESC
        LIMIT %d OFFSET %d
    `, where, limit, (page-1)*limit)

	rows, err := as.db.Pool().Query(ctx, stmt, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing announcements: %w", err)
	}
	defer rows.Close()

	var out []model.Announcement
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Content, &a.Category, &a.Author, &a.AuthorName,
			&a.Priority, &a.IsActive, &a.ExpiryDate, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning announcement: %w", err)
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (as *announcementStore) Create(ctx context.Context, a model.Announcement) error {
	stmt := `
        INSERT INTO announcements (id, title, content, category, author, author_name, priority, is_active, expiry_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := as.db.Pool().Exec(ctx, stmt,
		a.ID, a.Title, a.Content, a.Category, a.Author, a.AuthorName, a.Priority, a.IsActive, a.ExpiryDate,
	)
	if err != nil {
		return fmt.Errorf("creating announcement: %w", err)
	}
	return nil
}

func (as *announcementStore) Update(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	stmt := `
        UPDATE announcements
        SET title = $2, content = $3, category = $4, priority = $5, expiry_date = $6, updated_at = NOW()
        WHERE id = $1
        RETURNING id, title, content, category, author, author_name, priority,
                  is_active, expiry_date, created_at, updated_at
    `
	var merged model.Announcement
	err := as.db.Pool().QueryRow(ctx, stmt, a.ID, a.Title, a.Content, a.Category, a.Priority, a.ExpiryDate).Scan(
		&merged.ID, &merged.Title, &merged.Content, &merged.Category, &merged.Author, &merged.AuthorName,
		&merged.Priority, &merged.IsActive, &merged.ExpiryDate, &merged.CreatedAt, &merged.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.Announcement{}, store.ErrNotFound
		}
		return model.Announcement{}, fmt.Errorf("updating announcement: %w", err)
	}
	return merged, nil
}

func (as *announcementStore) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := as.db.Pool().Exec(ctx,
		`UPDATE announcements SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivating announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
