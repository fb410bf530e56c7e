package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	company     TEXT NOT NULL DEFAULT '',
	source      TEXT NOT NULL DEFAULT '',
	url         TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	skills      TEXT NOT NULL DEFAULT '',
	salary      TEXT NOT NULL DEFAULT '',
	posted      TIMESTAMPTZ NOT NULL,
	remote      BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_jobs_posted ON jobs (posted DESC);

CREATE TABLE IF NOT EXISTS profile (
	id                   TEXT PRIMARY KEY,
	skills               TEXT NOT NULL DEFAULT '',
	experience           TEXT NOT NULL DEFAULT '',
	min_hourly_rate      INT NOT NULL DEFAULT 0,
	min_project_rate     INT NOT NULL DEFAULT 0,
	preferred_categories TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS favorite_jobs (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	job_id        TEXT NOT NULL DEFAULT '',
	title         TEXT NOT NULL DEFAULT '',
	company       TEXT NOT NULL DEFAULT '',
	source        TEXT NOT NULL DEFAULT '',
	url           TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	salary        TEXT NOT NULL DEFAULT '',
	remote        BOOLEAN NOT NULL DEFAULT FALSE,
	posted        TIMESTAMPTZ,
	match_score   INT NOT NULL DEFAULT 0,
	match_reasons TEXT NOT NULL DEFAULT '',
	notes         TEXT NOT NULL DEFAULT '',
	priority      TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, url)
);
`

// Migrate creates the tables on startup. Statements are idempotent, so
// repeated boots against the same database are safe.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}
