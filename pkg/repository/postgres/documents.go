package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/store"
)

// Each collection is a table of JSONB documents. id, created_at and
// updated_at mirror the fields inside doc so they can be indexed and sorted.

type docRow struct {
	id        uuid.UUID
	doc       any
	createdAt time.Time
	updatedAt time.Time
}

// insertDocs writes rows into table within one transaction.
func insertDocs(ctx context.Context, pool *pgxpool.Pool, table string, withUpdated bool, rows []docRow) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, r := range rows {
		raw, err := json.Marshal(r.doc)
		if err != nil {
			return fmt.Errorf("encode %s document: %w", table, err)
		}
		if withUpdated {
			_, err = tx.Exec(ctx, `INSERT INTO `+table+` (id, doc, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
				r.id, raw, r.createdAt, r.updatedAt)
		} else {
			_, err = tx.Exec(ctx, `INSERT INTO `+table+` (id, doc, created_at) VALUES ($1, $2, $3)`,
				r.id, raw, r.createdAt)
		}
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return store.ErrAlreadyExists
			}
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}
	return tx.Commit(ctx)
}

// queryDocs runs a query selecting a single doc column and decodes every row into T.
func queryDocs[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []T{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		res = append(res, v)
	}
	return res, rows.Err()
}

// queryDoc decodes the single document selected by sql.
func queryDoc[T any](ctx context.Context, pool *pgxpool.Pool, sql string, args ...any) (T, error) {
	var v T
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return v, store.ErrNotFound
		}
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode document: %w", err)
	}
	return v, nil
}

func now() time.Time { return time.Now().UTC() }
