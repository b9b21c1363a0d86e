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

type pollStore struct {
	db *db.DB
}

func (ps *pollStore) List(ctx context.Context, f store.PollFilter, userID uuid.UUID) ([]model.AnnotatedPoll, int, error) {
	where := `WHERE is_active = TRUE`
	args := []interface{}{}
	if f.Status != "" && f.Status != "all" {
		where += ` AND status = $1`
		args = append(args, f.Status)
	}

	var total int
	if err := ps.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM polls `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting polls: %w", err)
	}

	limit := f.Limit
	if limit < 1 {
		limit = 10
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	stmt := fmt.Sprintf(`
        SELECT id, question, total_votes, status, end_date, category,
               created_by, created_by_name, is_active, created_at, updated_at
        FROM polls %s
        ORDER BY created_at DESC
        LIMIT %d OFFSET %d
    `, where, limit, (page-1)*limit)

	rows, err := ps.db.Pool().Query(ctx, stmt, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing polls: %w", err)
	}
	defer rows.Close()

	var polls []model.Poll
	for rows.Next() {
		var p model.Poll
		if err := rows.Scan(
			&p.ID, &p.Question, &p.TotalVotes, &p.Status, &p.EndDate, &p.Category,
			&p.CreatedBy, &p.CreatedByName, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	out := make([]model.AnnotatedPoll, 0, len(polls))
	for _, p := range polls {
		if err := ps.loadDetails(ctx, &p); err != nil {
			return nil, 0, err
		}
		out = append(out, p.Annotate(userID))
	}
	return out, total, nil
}

func (ps *pollStore) Get(ctx context.Context, id, userID uuid.UUID) (model.AnnotatedPoll, error) {
	var p model.Poll
	stmt := `
        SELECT id, question, total_votes, status, end_date, category,
               created_by, created_by_name, is_active, created_at, updated_at
        FROM polls
        WHERE id = $1 AND is_active = TRUE
    `
	err := ps.db.Pool().QueryRow(ctx, stmt, id).Scan(
		&p.ID, &p.Question, &p.TotalVotes, &p.Status, &p.EndDate, &p.Category,
		&p.CreatedBy, &p.CreatedByName, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.AnnotatedPoll{}, store.ErrNotFound
		}
		return model.AnnotatedPoll{}, fmt.Errorf("getting poll: %w", err)
	}
	if err := ps.loadDetails(ctx, &p); err != nil {
		return model.AnnotatedPoll{}, err
	}
	return p.Annotate(userID), nil
}

func (ps *pollStore) loadDetails(ctx context.Context, p *model.Poll) error {
	rows, err := ps.db.Pool().Query(ctx,
		`SELECT text, votes FROM poll_options WHERE poll_id = $1 ORDER BY idx`, p.ID)
	if err != nil {
		return fmt.Errorf("loading poll options: %w", err)
	}
	defer rows.Close()

	p.Options = []model.PollOption{}
	for rows.Next() {
		var o model.PollOption
		if err := rows.Scan(&o.Text, &o.Votes); err != nil {
			return fmt.Errorf("scanning poll option: %w", err)
		}
		p.Options = append(p.Options, o)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	vrows, err := ps.db.Pool().Query(ctx,
		`SELECT user_id, option_index, voted_at FROM poll_voters WHERE poll_id = $1 ORDER BY voted_at`, p.ID)
	if err != nil {
		return fmt.Errorf("loading poll voters: %w", err)
	}
	defer vrows.Close()

	p.Voters = []model.Voter{}
	for vrows.Next() {
		var v model.Voter
		if err := vrows.Scan(&v.UserID, &v.OptionIndex, &v.VotedAt); err != nil {
			return fmt.Errorf("scanning poll voter: %w", err)
		}
		p.Voters = append(p.Voters, v)
	}
	return vrows.Err()
}

func (ps *pollStore) Create(ctx context.Context, poll model.Poll) error {
	return ps.db.RunInTx(ctx, func(tx pgx.Tx) error {
		stmt := `
            INSERT INTO polls (id, question, total_votes, status, end_date, category,
                               created_by, created_by_name, is_active, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        `
		_, err := tx.Exec(ctx, stmt,
			poll.ID, poll.Question, poll.TotalVotes, poll.Status, poll.EndDate, poll.Category,
			poll.CreatedBy, poll.CreatedByName, poll.IsActive, poll.CreatedAt, poll.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("creating poll: %w", err)
		}

		for i, o := range poll.Options {
			_, err := tx.Exec(ctx,
				`INSERT INTO poll_options (poll_id, idx, text, votes) VALUES ($1, $2, $3, $4)`,
				poll.ID, i, o.Text, o.Votes,
			)
			if err != nil {
				return fmt.Errorf("creating poll option: %w", err)
			}
		}
		return nil
	})
}

// CastVote applies the whole vote inside one transaction. The poll row
// is locked FOR UPDATE so concurrent votes on the same poll serialize,
// and the poll_voters primary key (poll_id, user_id) rejects a second
// entry from the same user even across processes.
func (ps *pollStore) CastVote(ctx context.Context, pollID, userID uuid.UUID, optionIndex int) (model.AnnotatedPoll, error) {
	err := ps.db.RunInTx(ctx, func(tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx,
			`SELECT status FROM polls WHERE id = $1 AND is_active = TRUE FOR UPDATE`, pollID,
		).Scan(&status)
		if err == pgx.ErrNoRows {
			return store.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("locking poll: %w", err)
		}
		if status != model.PollStatusActive {
			return store.ErrPollClosed
		}

		tag, err := tx.Exec(ctx,
			`UPDATE poll_options SET votes = votes + 1 WHERE poll_id = $1 AND idx = $2`,
			pollID, optionIndex,
		)
		if err != nil {
			return fmt.Errorf("incrementing option tally: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return store.ErrInvalidOptionIndex
		}

		tag, err = tx.Exec(ctx,
			`INSERT INTO poll_voters (poll_id, user_id, option_index)
             VALUES ($1, $2, $3)
             ON CONFLICT (poll_id, user_id) DO NOTHING`,
			pollID, userID, optionIndex,
		)
		if err != nil {
			return fmt.Errorf("recording voter: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return store.ErrDuplicateVote
		}

		_, err = tx.Exec(ctx,
			`UPDATE polls SET total_votes = total_votes + 1, updated_at = NOW() WHERE id = $1`,
			pollID,
		)
		if err != nil {
			return fmt.Errorf("incrementing total votes: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.AnnotatedPoll{}, err
	}

	return ps.Get(ctx, pollID, userID)
}

func (ps *pollStore) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := ps.db.Pool().Exec(ctx,
		`UPDATE polls SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("deactivating poll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
