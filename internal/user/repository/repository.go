package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/mzhuravlev/feedback-board/internal/common/db"
	"github.com/mzhuravlev/feedback-board/internal/user/domain"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)

type Repository interface {
	Create(ctx context.Context, user domain.User) error
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, user domain.User) error {
	defer db.ObserveQuery("create_user", time.Now())

	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users (username, password_hash, email, first_name, last_name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.FirstName,
		user.LastName,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return ErrEmailAlreadyExists
			}
			return ErrUsernameAlreadyExists
		}
		db.CountQueryError("create_user", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PgRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	defer db.ObserveQuery("find_user_by_username", time.Now())

	row := r.pool.QueryRow(
		ctx,
		`SELECT username, password_hash, email, first_name, last_name, created_at
		 FROM users WHERE username = $1`,
		username,
	)

	var user domain.User
	err := row.Scan(
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		db.CountQueryError("find_user_by_username", err)
		return domain.User{}, fmt.Errorf("failed to find user by username: %w", err)
	}

	return user, nil
}
