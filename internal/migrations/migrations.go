package migrations

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/people-manager/internal/logger"
)

// step is a single schema change. Each step runs in its own transaction and
// must be idempotent: running it against an already-current schema performs
// zero mutations.
type step struct {
	name string
	run  func(ctx context.Context, tx *sqlx.Tx) error
}

// Apply brings the database schema up to the current shape. A failed step is
// logged and skipped; it never prevents the remaining steps or process start.
func Apply(ctx context.Context, db *sqlx.DB) {
	for _, s := range steps {
		if err := applyStep(ctx, db, s); err != nil {
			logger.Log.Errorw("migration step failed, skipping",
				"step", s.name,
				"error", err,
			)
			continue
		}
		logger.Log.Infow("migration step applied", "step", s.name)
	}
}

func applyStep(ctx context.Context, db *sqlx.DB, s step) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := s.run(ctx, tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

var steps = []step{
	{name: "create users table", run: createUsersTable},
	{name: "create persons table", run: createPersonsTable},
	{name: "add persons.user_id", run: addOwnerColumn},
	{name: "add persons.person_seq", run: addSeqColumn},
	{name: "unique index on (user_id, person_seq)", run: createSeqIndex},
}

func createUsersTable(ctx context.Context, tx *sqlx.Tx) error {
	const query = `
		CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	_, err := tx.ExecContext(ctx, query)
	return err
}

func createPersonsTable(ctx context.Context, tx *sqlx.Tx) error {
	const query = `
		CREATE TABLE IF NOT EXISTS persons (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			roll TEXT NOT NULL,
			age INTEGER NOT NULL,
			gender TEXT NOT NULL
		)
	`
	_, err := tx.ExecContext(ctx, query)
	return err
}

// addOwnerColumn adds the owner reference to persons. It never sets the owner
// of any existing row: assigning orphaned rows to an account would silently
// hand that account records it does not own.
func addOwnerColumn(ctx context.Context, tx *sqlx.Tx) error {
	exists, err := columnExists(ctx, tx, "persons", "user_id")
	if err != nil || exists {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`ALTER TABLE persons ADD COLUMN user_id UUID REFERENCES users(user_id)`)
	return err
}

// addSeqColumn adds the per-owner sequence column and, only in the run that
// introduces it, backfills existing owned rows: per owner, rows are numbered
// 1..n ordered by global id ascending. Rows without an owner stay unnumbered
// and remain unreachable through owner-scoped queries.
func addSeqColumn(ctx context.Context, tx *sqlx.Tx) error {
	exists, err := columnExists(ctx, tx, "persons", "person_seq")
	if err != nil || exists {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`ALTER TABLE persons ADD COLUMN person_seq BIGINT`); err != nil {
		return err
	}

	const backfill = `
		UPDATE persons AS p
		SET person_seq = numbered.rn
		FROM (
			SELECT id, ROW_NUMBER() OVER (PARTITION BY user_id ORDER BY id ASC) AS rn
			FROM persons
			WHERE user_id IS NOT NULL
		) AS numbered
		WHERE p.id = numbered.id
	`
	_, err = tx.ExecContext(ctx, backfill)
	return err
}

func createSeqIndex(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS persons_user_seq_key ON persons (user_id, person_seq)`)
	return err
}

func columnExists(ctx context.Context, tx *sqlx.Tx, table, column string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = $1 AND column_name = $2
		)
	`
	var exists bool
	err := tx.GetContext(ctx, &exists, query, table, column)
	return exists, err
}
