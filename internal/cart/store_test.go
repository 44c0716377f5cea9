package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/internal/storage"
)

const visitor = "v_test"

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemStore(), "", nil)

	want := Cart{Lines: []Line{{"core-logo", 3}, {"spider", 1}, {"core-logo", 2}}}
	require.NoError(t, s.Save(ctx, visitor, want))

	got, err := s.Load(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_WireFormat(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemStore()
	s := NewStore(kv, "", nil)

	require.NoError(t, s.Save(ctx, visitor, Cart{Lines: []Line{{"spider", 2}}}))

	raw, ok, err := kv.Get(ctx, DefaultKey+":"+visitor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"spider","qty":2}]`, raw)
}

func TestStore_LoadMissingIsEmpty(t *testing.T) {
	s := NewStore(storage.NewMemStore(), "", nil)

	c, err := s.Load(context.Background(), visitor)
	require.NoError(t, err)
	assert.True(t, c.Empty())
}

func TestStore_LoadCorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemStore()
	s := NewStore(kv, "", nil)

	for _, raw := range []string{"not json", `{"id":"x"}`, `[{"id":`, `"str"`, "null"} {
		require.NoError(t, kv.Set(ctx, DefaultKey+":"+visitor, raw))

		c, err := s.Load(ctx, visitor)
		require.NoError(t, err, "raw %q", raw)
		assert.True(t, c.Empty(), "raw %q", raw)
	}
}

func TestStore_ClearRemovesSlot(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemStore()
	s := NewStore(kv, "", nil)

	require.NoError(t, s.Save(ctx, visitor, Cart{Lines: []Line{{"a", 1}}}))
	require.NoError(t, s.Clear(ctx, visitor))

	_, ok, err := kv.Get(ctx, DefaultKey+":"+visitor)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_VisitorsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemStore(), "", nil)

	require.NoError(t, s.Save(ctx, "v1", Cart{Lines: []Line{{"a", 1}}}))

	c, err := s.Load(ctx, "v2")
	require.NoError(t, err)
	assert.True(t, c.Empty())
}

type failingKV struct{}

var errBackend = errors.New("backend down")

func (failingKV) Get(context.Context, string) (string, bool, error) { return "", false, errBackend }
func (failingKV) Set(context.Context, string, string) error         { return errBackend }
func (failingKV) Delete(context.Context, string) error              { return errBackend }
func (failingKV) Ping(context.Context) error                        { return errBackend }

func TestStore_BackendErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	s := NewStore(failingKV{}, "", nil)

	_, err := s.Load(ctx, visitor)
	assert.ErrorIs(t, err, errBackend)
	assert.ErrorIs(t, s.Save(ctx, visitor, Cart{}), errBackend)
	assert.ErrorIs(t, s.Clear(ctx, visitor), errBackend)
}
