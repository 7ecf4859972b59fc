package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Querier is the part of pgxpool.Pool, pgx.Conn and pgx.Tx that RowExists needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RowExists checks that a row whose column equals the value exists in a table.
// It implements validator.Existence[V].
type RowExists[V any] struct {
	db    Querier
	table string
	query string
}

// NewRowExists builds an existence check for table.column. The table may be
// schema-qualified ("billing.plans"); both names are quoted as identifiers.
func NewRowExists[V any](db Querier, table, column string) *RowExists[V] {
	query := fmt.Sprintf(
		"SELECT 1 FROM %s WHERE %s = $1 LIMIT 1",
		pgx.Identifier(strings.Split(table, ".")).Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	)
	return &RowExists[V]{db: db, table: table, query: query}
}

func (r *RowExists[V]) Exists(ctx context.Context, value V) (bool, error) {
	var one int
	if err := r.db.QueryRow(ctx, r.query, value).Scan(&one); err != nil {
		if IsNotFoundError(err) {
			return false, nil
		}
		return false, errors.Join(ErrExistenceCheckFailed, err)
	}
	return true, nil
}

// Table returns the table the check reads, as given to NewRowExists.
func (r *RowExists[V]) Table() string {
	return r.table
}

// Query returns the SQL statement the check runs.
func (r *RowExists[V]) Query() string {
	return r.query
}

var _ validator.Existence[int64] = (*RowExists[int64])(nil)
