package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/people-manager/internal/logger"
	"github.com/sbilibin2017/people-manager/internal/models"
)

// personColumns is the column list returned by every mutating statement.
const personColumns = "id, user_id, person_seq, name, roll, age, gender"

// PersonReadRepository handles owner-scoped person reads. Every query filters
// on the owner and on a present sequence number, so legacy rows without an
// owner are unreachable here.
type PersonReadRepository struct {
	db *sqlx.DB
}

func NewPersonReadRepository(db *sqlx.DB) *PersonReadRepository {
	return &PersonReadRepository{db: db}
}

// GetBySeq returns the owner's record with the given sequence number, or nil
// if the owner has no such record.
func (r *PersonReadRepository) GetBySeq(ctx context.Context, userID uuid.UUID, seq int64) (*models.PersonDB, error) {
	const query = `
		SELECT ` + personColumns + `
		FROM persons
		WHERE user_id = $1 AND person_seq = $2
	`

	var person models.PersonDB
	err := r.db.GetContext(ctx, &person, query, userID, seq)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, seq},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &person, nil
}

// List returns the owner's records ordered by sequence number, optionally
// filtered by a case-insensitive name substring, sliced by offset and limit.
func (r *PersonReadRepository) List(ctx context.Context, userID uuid.UUID, search *string, offset, limit int) ([]models.PersonDB, error) {
	const query = `
		SELECT ` + personColumns + `
		FROM persons
		WHERE user_id = $1
		  AND person_seq IS NOT NULL
		  AND ($2::TEXT IS NULL OR name ILIKE '%' || $2 || '%')
		ORDER BY person_seq ASC
		OFFSET $3 LIMIT $4
	`

	persons := []models.PersonDB{}
	err := r.db.SelectContext(ctx, &persons, query, userID, search, offset, limit)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, search, offset, limit},
		"count", len(persons),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return persons, nil
}

// PersonWriteRepository handles person write operations. Statements run on
// the ambient transaction from the request context when one is present.
type PersonWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPersonWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PersonWriteRepository {
	return &PersonWriteRepository{db: db, txGetter: txGetter}
}

func (r *PersonWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new record for the owner with sequence number
// max(person_seq)+1. The per-owner advisory transaction lock serializes
// concurrent creates by the same owner, so two creates can never read the
// same maximum; the unique (user_id, person_seq) index is the backstop.
// Requires a transaction: the ambient one when present, otherwise its own.
func (r *PersonWriteRepository) Create(ctx context.Context, userID uuid.UUID, name, roll string, age int, gender string) (*models.PersonDB, error) {
	tx := (*sqlx.Tx)(nil)
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}
	if tx != nil {
		return r.createInTx(ctx, tx, userID, name, roll, age, gender)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	person, err := r.createInTx(ctx, tx, userID, name, roll, age, gender)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return person, nil
}

func (r *PersonWriteRepository) createInTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, name, roll string, age int, gender string) (*models.PersonDB, error) {
	// Held until the transaction ends, covering the MAX read and the insert.
	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::TEXT, 0))`, userID); err != nil {
		return nil, err
	}

	const query = `
		INSERT INTO persons (user_id, person_seq, name, roll, age, gender)
		VALUES (
			$1,
			(SELECT COALESCE(MAX(person_seq), 0) + 1 FROM persons WHERE user_id = $1),
			$2, $3, $4, $5
		)
		RETURNING ` + personColumns + `
	`
	args := []any{userID, name, roll, age, gender}

	var person models.PersonDB
	err := sqlx.GetContext(ctx, tx, &person, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &person, nil
}

// Replace overwrites all mutable fields of the owner's record. Identity
// columns are never part of the SET clause. Returns nil if the owner has no
// record with that sequence number.
func (r *PersonWriteRepository) Replace(ctx context.Context, userID uuid.UUID, seq int64, name, roll string, age int, gender string) (*models.PersonDB, error) {
	const query = `
		UPDATE persons
		SET name = $3, roll = $4, age = $5, gender = $6
		WHERE user_id = $1 AND person_seq = $2
		RETURNING ` + personColumns + `
	`
	args := []any{userID, seq, name, roll, age, gender}

	var person models.PersonDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &person, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// UpdateFields applies only the given mutable columns. The SET clause is
// assembled from an explicit column switch; anything outside the allow-list
// is rejected here regardless of what the caller validated.
func (r *PersonWriteRepository) UpdateFields(ctx context.Context, userID uuid.UUID, seq int64, fields map[string]any) (*models.PersonDB, error) {
	if len(fields) == 0 {
		return nil, errors.New("no fields to update")
	}

	set := make([]string, 0, len(fields))
	args := []any{userID, seq}
	for field, value := range fields {
		switch field {
		case models.PersonFieldName, models.PersonFieldRoll, models.PersonFieldAge, models.PersonFieldGender:
			args = append(args, value)
			set = append(set, fmt.Sprintf("%s = $%d", field, len(args)))
		default:
			return nil, fmt.Errorf("column %q is not updatable", field)
		}
	}

	query := `
		UPDATE persons
		SET ` + strings.Join(set, ", ") + `
		WHERE user_id = $1 AND person_seq = $2
		RETURNING ` + personColumns + `
	`

	var person models.PersonDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &person, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// Delete removes the owner's record and returns its last state, or nil if
// absent. Remaining records keep their sequence numbers; there is no
// compaction.
func (r *PersonWriteRepository) Delete(ctx context.Context, userID uuid.UUID, seq int64) (*models.PersonDB, error) {
	const query = `
		DELETE FROM persons
		WHERE user_id = $1 AND person_seq = $2
		RETURNING ` + personColumns + `
	`
	args := []any{userID, seq}

	var person models.PersonDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &person, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}
