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

type lostFoundStore struct {
	db *db.DB
}

const lostFoundColumns = `id, title, description, type, category, location, contact_info, image_url,
    submitted_by, submitted_by_name, status, resolved_at, expiry_date, created_at, updated_at`

func scanLostFound(row pgx.Row) (model.LostFoundItem, error) {
	var item model.LostFoundItem
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.Type, &item.Category,
		&item.Location, &item.ContactInfo, &item.ImageURL,
		&item.SubmittedBy, &item.SubmittedByName, &item.Status,
		&item.ResolvedAt, &item.ExpiryDate, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (ls *lostFoundStore) List(ctx context.Context, f store.LostFoundFilter) ([]model.LostFoundItem, int, error) {
	where := `WHERE TRUE`
	args := []interface{}{}
	if f.Type != "" && f.Type != "all" {
		args = append(args, f.Type)
		where += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	if f.Category != "" && f.Category != "All" {
		args = append(args, f.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if f.Status != "" && f.Status != "all" {
		args = append(args, f.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	var total int
	if err := ls.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM lost_found_items `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting lost-found items: %w", err)
	}

	limit, page := f.Limit, f.Page
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	stmt := fmt.Sprintf(`SELECT %s FROM lost_found_items %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		lostFoundColumns, where, limit, (page-1)*limit)

	rows, err := ls.db.Pool().Query(ctx, stmt, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing lost-found items: %w", err)
	}
	defer rows.Close()

	var out []model.LostFoundItem
	for rows.Next() {
		item, err := scanLostFound(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning lost-found item: %w", err)
		}
		out = append(out, item)
	}
	return out, total, rows.Err()
}

func (ls *lostFoundStore) Get(ctx context.Context, id uuid.UUID) (model.LostFoundItem, error) {
	row := ls.db.Pool().QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM lost_found_items WHERE id = $1`, lostFoundColumns), id)
	item, err := scanLostFound(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.LostFoundItem{}, store.ErrNotFound
		}
		return model.LostFoundItem{}, fmt.Errorf("getting lost-found item: %w", err)
	}
	return item, nil
}

func (ls *lostFoundStore) Create(ctx context.Context, item model.LostFoundItem) error {
	stmt := `
        INSERT INTO lost_found_items (id, title, description, type, category, location, contact_info,
                                      image_url, submitted_by, submitted_by_name, status, expiry_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	_, err := ls.db.Pool().Exec(ctx, stmt,
		item.ID, item.Title, item.Description, item.Type, item.Category, item.Location,
		item.ContactInfo, item.ImageURL, item.SubmittedBy, item.SubmittedByName, item.Status, item.ExpiryDate,
	)
	if err != nil {
		return fmt.Errorf("creating lost-found item: %w", err)
	}
	return nil
}

func (ls *lostFoundStore) Update(ctx context.Context, item model.LostFoundItem) error {
	stmt := `
        UPDATE lost_found_items
        SET title = $2, description = $3, status = $4, contact_info = $5,
            resolved_at = $6, updated_at = NOW()
        WHERE id = $1
    `
	tag, err := ls.db.Pool().Exec(ctx, stmt,
		item.ID, item.Title, item.Description, item.Status, item.ContactInfo, item.ResolvedAt)
	if err != nil {
		return fmt.Errorf("updating lost-found item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (ls *lostFoundStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := ls.db.Pool().Exec(ctx, `DELETE FROM lost_found_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting lost-found item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
