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

type SQLiteGoalRepo struct {
	db db.DBTX
}

func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

const goalColumns = `id, user_id, title, description, target_minutes_per_day, start_date, end_date, tags, created_at, updated_at`

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	tags, err := encodeTags(g.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO goals (` + goalColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		g.ID,
		g.UserID,
		g.Title,
		g.Description,
		g.TargetMinutesPerDay,
		dayString(g.StartDate),
		nullableDay(g.EndDate),
		tags,
		timestamp(g.CreatedAt),
		timestamp(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	g, err := r.scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal: %w", ErrNotFound)
	}
	return g, err
}

func (r *SQLiteGoalRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := r.scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	tags, err := encodeTags(g.Tags)
	if err != nil {
		return err
	}
	query := `UPDATE goals SET title = ?, description = ?, target_minutes_per_day = ?, start_date = ?, end_date = ?, tags = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Title,
		g.Description,
		g.TargetMinutesPerDay,
		dayString(g.StartDate),
		nullableDay(g.EndDate),
		tags,
		timestamp(g.UpdatedAt),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return requireAffected(res, "goal")
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return requireAffected(res, "goal")
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteGoalRepo) scanGoal(row scanner) (*domain.Goal, error) {
	var g domain.Goal
	var startDateStr, tagsStr, createdAtStr, updatedAtStr string
	var endDateStr sql.NullString

	err := row.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetMinutesPerDay,
		&startDateStr, &endDateStr, &tagsStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return r.populateGoal(&g, startDateStr, endDateStr, tagsStr, createdAtStr, updatedAtStr)
}

func (r *SQLiteGoalRepo) populateGoal(g *domain.Goal, startDateStr string, endDateStr sql.NullString, tagsStr, createdAtStr, updatedAtStr string) (*domain.Goal, error) {
	var err error
	g.StartDate, err = time.Parse(domain.DateLayout, startDateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	g.EndDate = parseNullableDay(endDateStr)
	if g.Tags, err = decodeTags(tagsStr); err != nil {
		return nil, err
	}
	if g.CreatedAt, err = parseTimestamp(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if g.UpdatedAt, err = parseTimestamp(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	return g, nil
}

func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
