package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Healthcheck returns a health check that pings Redis and, when keys are given,
// checks that each of them exists. Pass the keys existence checks read
// from, such as SetMember.Key(): a missing set makes every lookup report
// "missing" instead of failing.
func Healthcheck(client redis.UniversalClient, keys ...string) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if len(keys) == 0 {
			return nil
		}

		pipe := client.Pipeline()
		cmds := make([]*redis.IntCmd, len(keys))
		for i, key := range keys {
			cmds[i] = pipe.Exists(ctx, key)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}

		var missing []string
		for i, cmd := range cmds {
			if cmd.Val() == 0 {
				missing = append(missing, keys[i])
			}
		}
		if len(missing) > 0 {
			return errors.Join(ErrHealthcheckFailed, fmt.Errorf("%w: %q", ErrKeyMissing, missing))
		}
		return nil
	}
}
