// Package redis connects to a Redis server and exposes Redis-backed existence
// checks for the validator's Exists constraint.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which retries the connection using the supplied configuration.
//   - SetMember and KeyExists, implementations of validator.Existence[string].
//   - Healthcheck, which pings the server and checks the keys existence checks
//     read from, for liveness and readiness endpoints.
//
// Config fields are populated from environment variables via config.Load.
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	schema := validator.NewSchema(
//	    validator.FieldOf("country", func(f SignupForm) string { return f.Country },
//	        validator.Exists[string](redis.NewSetMember(client, "countries")),
//	    ),
//	    validator.FieldOf("invite", func(f SignupForm) string { return f.Invite },
//	        validator.Exists[string](redis.NewKeyExists(client, "invite:")),
//	    ),
//	)
//
// # Errors
//
// Failures are reported with sentinel errors (ErrRedisNotReady,
// ErrExistenceCheckFailed and friends) joined with the go-redis error, so both
// can be matched with errors.Is.
package redis
