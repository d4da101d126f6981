package db

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
)

const schemaMigration = `
CREATE TABLE IF NOT EXISTS users (
    username text PRIMARY KEY,
    password_hash text NOT NULL,
    email text NOT NULL,
    first_name text NOT NULL,
    last_name text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT users_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS feedback (
    id bigserial PRIMARY KEY,
    title text NOT NULL,
    content text NOT NULL,
    username text NOT NULL REFERENCES users(username),
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS feedback_username_idx
ON feedback (username);
`

// Migrate applies the idempotent startup schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaMigration)
	return err
}
