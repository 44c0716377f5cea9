package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) KV {
	t.Helper()

	kv, closeFn, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	return kv
}

func TestKV_Contract(t *testing.T) {
	backends := map[string]func(t *testing.T) KV{
		"memory": func(*testing.T) KV { return NewMemStore() },
		"sqlite": openSQLite,
	}

	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			kv := mk(t)

			require.NoError(t, kv.Ping(ctx))

			_, ok, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, "k", "v1"))
			require.NoError(t, kv.Set(ctx, "k", "v2"))

			v, ok, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v2", v)

			require.NoError(t, kv.Delete(ctx, "k"))
			require.NoError(t, kv.Delete(ctx, "k"))

			_, ok, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	kv, closeFn, err := Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "elenorm_cart:v1", `[{"id":"spider","qty":2}]`))
	require.NoError(t, closeFn())

	kv, closeFn, err = Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer closeFn()

	v, ok, err := kv.Get(ctx, "elenorm_cart:v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"spider","qty":2}]`, v)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), "redis", "")
	assert.True(t, errors.Is(err, ErrUnknownDriver))
}
