// Package pg connects to PostgreSQL through pgx/v5 and provides row existence
// checks for the validator's Exists constraint.
//
//   - Config is populated from environment variables via config.Load.
//   - Connect opens a *pgxpool.Pool, retrying until the database answers.
//   - RowExists implements validator.Existence[V] with a single-row lookup.
//   - Healthcheck pings the pool and checks that the tables existence checks
//     read from are present.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    panic(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
//	schema := validator.NewSchema(
//	    validator.FieldOf("plan_id", func(o Order) int64 { return o.PlanID },
//	        validator.ID(),
//	        validator.Exists[int64](pg.NewRowExists[int64](pool, "billing.plans", "id")),
//	    ),
//	)
//
// A missing row is a violation; a failed query is returned by the session as
// an error wrapping both validator.ErrInvalidExtension and ErrExistenceCheckFailed.
package pg
