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

type timetableStore struct {
	db *db.DB
}

const timetableColumns = `id, subject, instructor, room, day, start_time, end_time,
    department, year, semester, subject_code, credits, type, is_active, created_at, updated_at`

func scanTimetable(row pgx.Row) (model.TimetableEntry, error) {
	var e model.TimetableEntry
	err := row.Scan(
		&e.ID, &e.Subject, &e.Instructor, &e.Room, &e.Day, &e.StartTime, &e.EndTime,
		&e.Department, &e.Year, &e.Semester, &e.SubjectCode, &e.Credits, &e.Type,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (ts *timetableStore) List(ctx context.Context, f store.TimetableFilter) ([]model.TimetableEntry, error) {
	where := `WHERE is_active = TRUE`
	args := []interface{}{}
	if f.Department != "" {
		args = append(args, f.Department)
		where += fmt.Sprintf(` AND department = $%d`, len(args))
	}
	if f.Year != 0 {
		args = append(args, f.Year)
		where += fmt.Sprintf(` AND year = $%d`, len(args))
	}
	if f.Day != "" {
		args = append(args, f.Day)
		where += fmt.Sprintf(` AND day = $%d`, len(args))
	}

	stmt := fmt.Sprintf(`SELECT %s FROM timetable_entries %s ORDER BY day, start_time`, timetableColumns, where)
	rows, err := ts.db.Pool().Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("listing timetable entries: %w", err)
	}
	defer rows.Close()

	var out []model.TimetableEntry
	for rows.Next() {
		e, err := scanTimetable(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning timetable entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (ts *timetableStore) Get(ctx context.Context, id uuid.UUID) (model.TimetableEntry, error) {
	row := ts.db.Pool().QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM timetable_entries WHERE id = $1`, timetableColumns), id)
	e, err := scanTimetable(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.TimetableEntry{}, store.ErrNotFound
		}
		return model.TimetableEntry{}, fmt.Errorf("getting timetable entry: %w", err)
	}
	return e, nil
}

func (ts *timetableStore) Create(ctx context.Context, e model.TimetableEntry) error {
	stmt := `
        INSERT INTO timetable_entries (id, subject, instructor, room, day, start_time, end_time,
                                       department, year, semester, subject_code, credits, type, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `
	_, err := ts.db.Pool().Exec(ctx, stmt,
		e.ID, e.Subject, e.Instructor, e.Room, e.Day, e.StartTime, e.EndTime,
		e.Department, e.Year, e.Semester, e.SubjectCode, e.Credits, e.Type, e.IsActive,
	)
	if err != nil {
		return fmt.Errorf("creating timetable entry: %w", err)
	}
	return nil
}

func (ts *timetableStore) Update(ctx context.Context, e model.TimetableEntry) error {
	stmt := `
        UPDATE timetable_entries
        SET subject = $2, instructor = $3, room = $4, day = $5, start_time = $6, end_time = $7,
            department = $8, year = $9, semester = $10, subject_code = $11, credits = $12,
            type = $13, updated_at = NOW()
        WHERE id = $1
    `
	tag, err := ts.db.Pool().Exec(ctx, stmt,
		e.ID, e.Subject, e.Instructor, e.Room, e.Day, e.StartTime, e.EndTime,
		e.Department, e.Year, e.Semester, e.SubjectCode, e.Credits, e.Type,
	)
	if err != nil {
		return fmt.Errorf("updating timetable entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (ts *timetableStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := ts.db.Pool().Exec(ctx, `DELETE FROM timetable_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting timetable entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
