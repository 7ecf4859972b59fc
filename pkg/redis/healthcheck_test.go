package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/redis"
)

func TestHealthcheck(t *testing.T) {
	t.Run("ping only", func(t *testing.T) {
		_, client := setupMiniredis(t)
		assert.NoError(t, redis.Healthcheck(client)(context.Background()))
	})

	t.Run("existence keys present", func(t *testing.T) {
		mr, client := setupMiniredis(t)
		_, err := mr.SAdd("countries", "DE", "FR")
		require.NoError(t, err)
		require.NoError(t, mr.Set("invite:abc", "1"))

		countries := redis.NewSetMember(client, "countries")
		assert.NoError(t, redis.Healthcheck(client, countries.Key(), "invite:abc")(context.Background()))
	})

	t.Run("missing key", func(t *testing.T) {
		mr, client := setupMiniredis(t)
		_, err := mr.SAdd("countries", "DE")
		require.NoError(t, err)

		err = redis.Healthcheck(client, "countries", "usernames")(context.Background())
		require.ErrorIs(t, err, redis.ErrHealthcheckFailed)
		assert.ErrorIs(t, err, redis.ErrKeyMissing)
		assert.Contains(t, err.Error(), "usernames")
		assert.NotContains(t, err.Error(), "countries")
	})

	t.Run("server down", func(t *testing.T) {
		mr, client := setupMiniredis(t)
		mr.Close()

		err := redis.Healthcheck(client, "countries")(context.Background())
		assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
	})
}
