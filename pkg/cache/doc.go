// Package cache memoizes existence checks used by the validator.
//
// Existence checks backed by Redis or PostgreSQL cost a round trip per
// validated value. Wrapping one in an Existence keeps its answers in an
// in-process freecache store for a fixed time:
//
//	rows := pg.NewRowExists[int64](pool, "billing.plans", "id")
//	plans := cache.NewExistence[int64](rows, 1<<20, time.Minute)
//
//	schema := validator.NewSchema(
//	    validator.FieldOf("plan_id", func(o Order) int64 { return o.PlanID },
//	        validator.Exists[int64](plans),
//	    ),
//	)
//
// Both positive and negative answers are cached; errors are not. Call Forget
// after creating or deleting the referenced record to drop a stale answer.
//
// The cache is safe for concurrent use.
package cache
