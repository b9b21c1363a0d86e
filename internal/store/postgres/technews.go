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

type techNewsStore struct {
	db *db.DB
}

const techNewsColumns = `id, title, summary, content, source, url, category, tags,
    published_at, is_active, created_at, updated_at`

func scanTechNews(row pgx.Row) (model.TechNewsItem, error) {
	var n model.TechNewsItem
	err := row.Scan(
		&n.ID, &n.Title, &n.Summary, &n.Content, &n.Source, &n.URL, &n.Category,
		&n.Tags, &n.PublishedAt, &n.IsActive, &n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

func (ns *techNewsStore) List(ctx context.Context, f store.TechNewsFilter) ([]model.TechNewsItem, int, error) {
	where := `WHERE is_active = TRUE`
	args := []interface{}{}
	if f.Category != "" && f.Category != "All" {
		args = append(args, f.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	var total int
	if err := ns.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM tech_news `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting tech news: %w", err)
	}

	limit, page := f.Limit, f.Page
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	stmt := fmt.Sprintf(`SELECT %s FROM tech_news %s ORDER BY published_at DESC LIMIT %d OFFSET %d`,
		techNewsColumns, where, limit, (page-1)*limit)

	rows, err := ns.db.Pool().Query(ctx, stmt, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing tech news: %w", err)
	}
	defer rows.Close()

	var out []model.TechNewsItem
	for rows.Next() {
		n, err := scanTechNews(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning tech news: %w", err)
		}
		out = append(out, n)
	}
	return out, total, rows.Err()
}

func (ns *techNewsStore) Get(ctx context.Context, id uuid.UUID) (model.TechNewsItem, error) {
	row := ns.db.Pool().QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM tech_news WHERE id = $1`, techNewsColumns), id)
	n, err := scanTechNews(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.TechNewsItem{}, store.ErrNotFound
		}
		return model.TechNewsItem{}, fmt.Errorf("getting tech news: %w", err)
	}
	return n, nil
}

func (ns *techNewsStore) Create(ctx context.Context, n model.TechNewsItem) error {
	stmt := `
        INSERT INTO tech_news (id, title, summary, content, source, url, category, tags, published_at, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := ns.db.Pool().Exec(ctx, stmt,
		n.ID, n.Title, n.Summary, n.Content, n.Source, n.URL, n.Category, n.Tags, n.PublishedAt, n.IsActive,
	)
	if err != nil {
		return fmt.Errorf("creating tech news: %w", err)
	}
	return nil
}

func (ns *techNewsStore) Update(ctx context.Context, n model.TechNewsItem) error {
	stmt := `
        UPDATE tech_news
        SET title = $2, summary = $3, content = $4, source = $5, url = $6,
            category = $7, tags = $8, published_at = $9, updated_at = NOW()
        WHERE id = $1
    `
	tag, err := ns.db.Pool().Exec(ctx, stmt,
		n.ID, n.Title, n.Summary, n.Content, n.Source, n.URL, n.Category, n.Tags, n.PublishedAt)
	if err != nil {
		return fmt.Errorf("updating tech news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
