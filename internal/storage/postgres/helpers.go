package postgres

import (
	"errors"
	"fmt"
	"strings"

	"assuredgig/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// listQuery accumulates WHERE conditions and their positional arguments.
type listQuery struct {
	conditions []string
	args       []interface{}
}

// add appends a condition whose single placeholder is written as %d.
func (q *listQuery) add(condition string, arg interface{}) {
	q.args = append(q.args, arg)
	q.conditions = append(q.conditions, fmt.Sprintf(condition, len(q.args)))
}

// build constructs the final SQL with ordering and pagination.
func (q *listQuery) build(baseQuery, orderBy string, limit, offset int) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(q.conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(q.conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY ")
	queryBuilder.WriteString(orderBy)

	if limit > 0 {
		q.args = append(q.args, limit)
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(q.args)))
	}
	if offset > 0 {
		q.args = append(q.args, offset)
		queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(q.args)))
	}

	return queryBuilder.String()
}

// mapWriteError translates constraint violations into storage errors.
func mapWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == "users_email_key" {
				return storage.ErrDuplicateEmail
			}
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, storage.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: invalid reference %s: %w", op, pgErr.ConstraintName, storage.ErrConflict)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// mapReadError translates a missing row into storage.ErrNotFound.
func mapReadError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// collect scans every row into T by column name and never returns a nil slice.
func collect[T any](rows pgx.Rows, op string) ([]T, error) {
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", op, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// collectOne scans exactly one row into T.
func collectOne[T any](rows pgx.Rows) (*T, error) {
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	return &v, nil
}
