package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/mzhuravlev/feedback-board/internal/common/db"
	"github.com/mzhuravlev/feedback-board/internal/feedback/domain"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type Repository interface {
	Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
	FindByID(ctx context.Context, id int64) (domain.Feedback, error)
	Update(ctx context.Context, feedback domain.Feedback) error
	Delete(ctx context.Context, id int64) error
	ListByUsername(ctx context.Context, username string) ([]domain.Feedback, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	defer db.ObserveQuery("create_feedback", time.Now())

	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO feedback (title, content, username, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		feedback.Title,
		feedback.Content,
		feedback.Username,
		feedback.CreatedAt,
		feedback.UpdatedAt,
	)

	if err := row.Scan(&feedback.ID); err != nil {
		db.CountQueryError("create_feedback", err)
		return domain.Feedback{}, fmt.Errorf("failed to create feedback: %w", err)
	}
	return feedback, nil
}

func (r *PgRepository) FindByID(ctx context.Context, id int64) (domain.Feedback, error) {
	defer db.ObserveQuery("find_feedback_by_id", time.Now())

	row := r.pool.QueryRow(
		ctx,
		`SELECT id, title, content, username, created_at, updated_at
		 FROM feedback WHERE id = $1`,
		id,
	)

	var feedback domain.Feedback
	err := row.Scan(
		&feedback.ID,
		&feedback.Title,
		&feedback.Content,
		&feedback.Username,
		&feedback.CreatedAt,
		&feedback.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Feedback{}, ErrFeedbackNotFound
		}
		db.CountQueryError("find_feedback_by_id", err)
		return domain.Feedback{}, fmt.Errorf("failed to find feedback by id: %w", err)
	}

	return feedback, nil
}

func (r *PgRepository) Update(ctx context.Context, feedback domain.Feedback) error {
	defer db.ObserveQuery("update_feedback", time.Now())

	tag, err := r.pool.Exec(
		ctx,
		`UPDATE feedback SET title = $1, content = $2, updated_at = $3 WHERE id = $4`,
		feedback.Title,
		feedback.Content,
		feedback.UpdatedAt,
		feedback.ID,
	)
	if err != nil {
		db.CountQueryError("update_feedback", err)
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}

func (r *PgRepository) Delete(ctx context.Context, id int64) error {
	defer db.ObserveQuery("delete_feedback", time.Now())

	tag, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		db.CountQueryError("delete_feedback", err)
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}

func (r *PgRepository) ListByUsername(ctx context.Context, username string) ([]domain.Feedback, error) {
	defer db.ObserveQuery("list_feedback_by_username", time.Now())

	rows, err := r.pool.Query(
		ctx,
		`SELECT id, title, content, username, created_at, updated_at
		 FROM feedback WHERE username = $1 ORDER BY id`,
		username,
	)
	if err != nil {
		db.CountQueryError("list_feedback_by_username", err)
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Feedback, 0)
	for rows.Next() {
		var feedback domain.Feedback
		err := rows.Scan(
			&feedback.ID,
			&feedback.Title,
			&feedback.Content,
			&feedback.Username,
			&feedback.CreatedAt,
			&feedback.UpdatedAt,
		)
		if err != nil {
			db.CountQueryError("list_feedback_by_username", err)
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		items = append(items, feedback)
	}
	if err := rows.Err(); err != nil {
		db.CountQueryError("list_feedback_by_username", err)
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}

	return items, nil
}
