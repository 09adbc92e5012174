package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// Nothing listens on port 1, so every command fails to connect.
func unreachableRedis(t *testing.T) *Redis {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })
	return NewRedis(rdb, time.Minute)
}

func TestRedisUnreachableIsNoSession(t *testing.T) {
	s := NewStore(unreachableRedis(t), "")

	_, ok := s.Restore(context.Background())
	require.False(t, ok)
}

func TestRedisUnreachableLoginFails(t *testing.T) {
	s := NewStore(unreachableRedis(t), "")

	require.Error(t, s.Login(context.Background(), demo))
	require.Error(t, s.Logout(context.Background()))
}
