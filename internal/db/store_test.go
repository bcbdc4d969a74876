package db

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGormStore(t *testing.T) *GormStore {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := OpenGorm(DriverSQLite, dsn)
	require.NoError(t, err)

	store, err := NewGormStore(gdb)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func setupRedisStore(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client)
	t.Cleanup(func() { store.Close() })
	return mr, store
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Store { return setupGormStore(t) },
		"redis": func(t *testing.T) Store {
			_, s := setupRedisStore(t)
			return s
		},
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx := context.Background()

			_, ok, err := store.Get(ctx, "pos-cart")
			require.NoError(t, err)
			assert.False(t, ok, "missing key should report not found")

			require.NoError(t, store.Set(ctx, "pos-cart", `[{"quantity":1}]`))
			v, ok, err := store.Get(ctx, "pos-cart")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"quantity":1}]`, v)

			require.NoError(t, store.Set(ctx, "pos-cart", "[]"))
			v, _, err = store.Get(ctx, "pos-cart")
			require.NoError(t, err)
			assert.Equal(t, "[]", v, "second write should overwrite")
		})
	}
}

func TestRedisStoreUsesPrefix(t *testing.T) {
	mr, store := setupRedisStore(t)

	require.NoError(t, store.Set(context.Background(), "pos-cart", "[]"))

	v, err := mr.Get(DefaultRedisPrefix + "pos-cart")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestRedisStoreConnectionError(t *testing.T) {
	mr, store := setupRedisStore(t)
	mr.Close()

	err := store.Set(context.Background(), "pos-cart", "[]")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, err := Open(ctx, DriverMemory, "")
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, s)
	})

	t.Run("sqlite", func(t *testing.T) {
		s, err := Open(ctx, DriverSQLite, "file:open_sqlite?mode=memory&cache=shared")
		require.NoError(t, err)
		defer s.Close()
		assert.IsType(t, &GormStore{}, s)
	})

	t.Run("redis", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		defer mr.Close()

		s, err := Open(ctx, DriverRedis, "redis://"+mr.Addr())
		require.NoError(t, err)
		defer s.Close()
		assert.IsType(t, &RedisStore{}, s)
	})

	t.Run("bad redis url", func(t *testing.T) {
		_, err := Open(ctx, DriverRedis, "not a url")
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(ctx, "cassandra", "")
		assert.EqualError(t, err, `unknown store driver "cassandra"`)
	})
}
