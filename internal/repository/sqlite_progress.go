package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/goaltrack/internal/db"
	"github.com/alexanderramin/goaltrack/internal/domain"
)

type SQLiteProgressRepo struct {
	db db.DBTX
}

func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

const progressColumns = `p.id, p.goal_id, p.date, p.minutes_spent, p.note, p.target_met, p.created_at, p.updated_at`

func (r *SQLiteProgressRepo) Create(ctx context.Context, p *domain.ProgressEntry) error {
	query := `INSERT INTO progress_entries (id, goal_id, date, minutes_spent, note, target_met, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.GoalID,
		dayString(p.Date),
		p.MinutesSpent,
		p.Note,
		boolToInt(p.TargetMet),
		timestamp(p.CreatedAt),
		timestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting progress entry: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) GetByID(ctx context.Context, id string) (*domain.ProgressEntry, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_entries p WHERE p.id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := r.scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("progress entry: %w", ErrNotFound)
	}
	return p, err
}

func (r *SQLiteProgressRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.ProgressEntry, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_entries p
		WHERE p.goal_id = ? ORDER BY p.date, p.created_at, p.id`
	return r.list(ctx, "listing progress by goal", query, goalID)
}

func (r *SQLiteProgressRepo) ListByGoalBetween(ctx context.Context, goalID string, from, to time.Time) ([]*domain.ProgressEntry, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_entries p
		WHERE p.goal_id = ? AND p.date >= ? AND p.date < ?
		ORDER BY p.date, p.created_at, p.id`
	return r.list(ctx, "listing progress by goal window", query, goalID, dayString(from), dayString(to))
}

// ListByUserBetween returns every entry on the user's goals dated in [from, to).
func (r *SQLiteProgressRepo) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.ProgressEntry, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_entries p
		JOIN goals g ON g.id = p.goal_id
		WHERE g.user_id = ? AND p.date >= ? AND p.date < ?
		ORDER BY p.date, p.created_at, p.id`
	return r.list(ctx, "listing progress by user window", query, userID, dayString(from), dayString(to))
}

func (r *SQLiteProgressRepo) Update(ctx context.Context, p *domain.ProgressEntry) error {
	query := `UPDATE progress_entries SET date = ?, minutes_spent = ?, note = ?, target_met = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		dayString(p.Date),
		p.MinutesSpent,
		p.Note,
		boolToInt(p.TargetMet),
		timestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating progress entry: %w", err)
	}
	return requireAffected(res, "progress entry")
}

func (r *SQLiteProgressRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM progress_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting progress entry: %w", err)
	}
	return requireAffected(res, "progress entry")
}

func (r *SQLiteProgressRepo) list(ctx context.Context, op, query string, args ...any) ([]*domain.ProgressEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []*domain.ProgressEntry
	for rows.Next() {
		p, err := r.scanProgress(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteProgressRepo) scanProgress(row scanner) (*domain.ProgressEntry, error) {
	var p domain.ProgressEntry
	var dateStr, createdAtStr, updatedAtStr string
	var targetMet int

	err := row.Scan(&p.ID, &p.GoalID, &dateStr, &p.MinutesSpent, &p.Note, &targetMet, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning progress entry: %w", err)
	}
	p.TargetMet = targetMet != 0

	if p.Date, err = time.Parse(domain.DateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if p.CreatedAt, err = parseTimestamp(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTimestamp(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	return &p, nil
}
