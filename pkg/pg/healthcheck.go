package pg

import (
	"context"
	"errors"
	"fmt"
)

// Pinger is the part of pgxpool.Pool and pgx.Conn that Healthcheck needs.
type Pinger interface {
	Querier
	Ping(ctx context.Context) error
}

const tableExistsQuery = "SELECT to_regclass($1) IS NOT NULL"

// Healthcheck returns a health check that pings the database and, when tables
// are given, checks that each of them resolves. Pass the tables existence
// checks read from, such as RowExists.Table(): a dropped table would
// otherwise fail every lookup at validation time.
func Healthcheck(db Pinger, tables ...string) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}

		var missing []string
		for _, table := range tables {
			var found bool
			if err := db.QueryRow(ctx, tableExistsQuery, table).Scan(&found); err != nil {
				return errors.Join(ErrHealthcheckFailed, err)
			}
			if !found {
				missing = append(missing, table)
			}
		}
		if len(missing) > 0 {
			return errors.Join(ErrHealthcheckFailed, fmt.Errorf("%w: %q", ErrTableMissing, missing))
		}
		return nil
	}
}
