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

type complaintStore struct {
	db *db.DB
}

const complaintColumns = `id, title, description, category, room, status, priority,
    submitted_by, submitted_by_name, assigned_to, resolved_at, admin_notes, created_at, updated_at`

func scanComplaint(row pgx.Row) (model.Complaint, error) {
	var c model.Complaint
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Category, &c.Room, &c.Status, &c.Priority,
		&c.SubmittedBy, &c.SubmittedByName, &c.AssignedTo, &c.ResolvedAt, &c.AdminNotes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (cs *complaintStore) List(ctx context.Context, f store.ComplaintFilter) ([]model.Complaint, int, error) {
	where := `WHERE TRUE`
	args := []interface{}{}
	if f.SubmittedBy != nil {
		args = append(args, *f.SubmittedBy)
		where += fmt.Sprintf(` AND submitted_by = $%d`, len(args))
	}
	if f.Status != "" && f.Status != "All" {
		args = append(args, f.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if f.Category != "" && f.Category != "All" {
		args = append(args, f.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}

	var total int
	if err := cs.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM complaints `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting complaints: %w", err)
	}

	limit, page := f.Limit, f.Page
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	stmt := fmt.Sprintf(`SELECT %s FROM complaints %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		complaintColumns, where, limit, (page-1)*limit)

	rows, err := cs.db.Pool().Query(ctx, stmt, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing complaints: %w", err)
	}
	defer rows.Close()

	var out []model.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning complaint: %w", err)
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (cs *complaintStore) Get(ctx context.Context, id uuid.UUID) (model.Complaint, error) {
	row := cs.db.Pool().QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM complaints WHERE id = $1`, complaintColumns), id)
	c, err := scanComplaint(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.Complaint{}, store.ErrNotFound
		}
		return model.Complaint{}, fmt.Errorf("getting complaint: %w", err)
	}
	return c, nil
}

func (cs *complaintStore) Create(ctx context.Context, c model.Complaint) error {
	stmt := `
        INSERT INTO complaints (id, title, description, category, room, status, priority, submitted_by, submitted_by_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := cs.db.Pool().Exec(ctx, stmt,
		c.ID, c.Title, c.Description, c.Category, c.Room, c.Status, c.Priority, c.SubmittedBy, c.SubmittedByName,
	)
	if err != nil {
		return fmt.Errorf("creating complaint: %w", err)
	}
	return nil
}

func (cs *complaintStore) UpdateStatus(ctx context.Context, id uuid.UUID, req model.UpdateComplaintStatusRequest) (model.Complaint, error) {
	stmt := `
        UPDATE complaints
        SET status = $2,
            admin_notes = $3,
            assigned_to = COALESCE($4, assigned_to),
            resolved_at = CASE WHEN $2 = 'resolved' THEN NOW() ELSE resolved_at END,
            updated_at = NOW()
        WHERE id = $1
    `
	tag, err := cs.db.Pool().Exec(ctx, stmt, id, req.Status, req.AdminNotes, req.AssignedTo)
	if err != nil {
		return model.Complaint{}, fmt.Errorf("updating complaint status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Complaint{}, store.ErrNotFound
	}
	return cs.Get(ctx, id)
}

func (cs *complaintStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := cs.db.Pool().Exec(ctx, `DELETE FROM complaints WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
