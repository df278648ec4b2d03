package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "cache"), true, ttl)
	require.NoError(t, err)
	return store
}

func TestEntry(t *testing.T) {
	entry := NewEntry("k", json.RawMessage(`{}`), time.Minute)

	assert.False(t, entry.IsExpired())
	assert.Greater(t, entry.Remaining(), time.Duration(0))
	assert.LessOrEqual(t, entry.Age(), 2*time.Second)

	entry.ExpiresAt = time.Now().Add(-time.Second)
	assert.True(t, entry.IsExpired())
	assert.Equal(t, time.Duration(0), entry.Remaining())
}

func TestGenerateKey(t *testing.T) {
	req := map[string]any{"state": "Delhi", "ids": []string{"a", "b"}, "daily_km": 40}

	k1, err := GenerateKey(KeyParams{Operation: "compare", Catalog: "embedded@1.2.0", Request: req})
	require.NoError(t, err)
	assert.Len(t, k1, 64)

	k2, err := GenerateKey(KeyParams{Operation: " Compare ", Catalog: "embedded@1.2.0", Request: req})
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := GenerateKey(KeyParams{Operation: "compare", Catalog: "other.yaml@1.0.0", Request: req})
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	k4, err := GenerateKey(KeyParams{
		Operation: "compare", Catalog: "embedded@1.2.0", Request: req,
		Defaults: map[string]float64{"daily_km": 100},
	})
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4, "resolved defaults are part of the key")

	_, err = GenerateKey(KeyParams{})
	require.ErrorIs(t, err, ErrInvalidCacheKey)

	_, err = GenerateKey(KeyParams{Operation: "x", Request: make(chan int)})
	require.Error(t, err)
}

func TestFileStore(t *testing.T) {
	store := newStore(t, time.Minute)
	data := json.RawMessage(`{"hello":"world"}`)

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, store.Set("key", "compare", data))

		entry, err := store.Get("key")
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(entry.Data))
		assert.Equal(t, "compare", entry.Operation)

		count, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("UnsafeKey", func(t *testing.T) {
		require.NoError(t, store.Set("a/b:c", "x", data))
		_, err := store.Get("a/b:c")
		require.NoError(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete("key"))
		require.NoError(t, store.Delete("key"))

		_, err := store.Get("key")
		assert.ErrorIs(t, err, ErrCacheNotFound)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Set("k1", "x", data))
		require.NoError(t, store.Set("k2", "x", data))

		removed, err := store.Clear()
		require.NoError(t, err)
		assert.Equal(t, 3, removed)

		count, _ := store.Count()
		assert.Zero(t, count)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		assert.ErrorIs(t, store.Set("", "x", data), ErrInvalidCacheKey)
	})
}

func TestFileStore_Expiry(t *testing.T) {
	store := newStore(t, 0)
	require.NoError(t, store.Set("gone", "x", json.RawMessage(`1`)))

	_, err := store.Get("gone")
	require.ErrorIs(t, err, ErrCacheExpired)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFileStore_CleanupExpired(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	live, err := NewFileStore(dir, true, time.Hour)
	require.NoError(t, err)
	stale, err := NewFileStore(dir, true, 0)
	require.NoError(t, err)

	require.NoError(t, live.Set("fresh", "x", json.RawMessage(`1`)))
	require.NoError(t, stale.Set("old", "x", json.RawMessage(`2`)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.json"), []byte("not json"), 0600))

	removed, err := live.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = live.Get("fresh")
	require.NoError(t, err)
}

func TestFileStore_Disabled(t *testing.T) {
	store, err := NewFileStore("", false, time.Minute)
	require.NoError(t, err)

	assert.False(t, store.IsEnabled())
	assert.ErrorIs(t, store.Set("k", "x", nil), ErrCacheDisabled)
	_, err = store.Get("k")
	assert.ErrorIs(t, err, ErrCacheDisabled)
	_, err = store.Clear()
	assert.ErrorIs(t, err, ErrCacheDisabled)

	_, err = NewFileStore("", true, time.Minute)
	require.Error(t, err)
}

type answer struct {
	Total int64 `json:"total"`
}

func TestFetch(t *testing.T) {
	store := newStore(t, time.Hour)
	params := KeyParams{Operation: "recommend", Catalog: "embedded", Request: map[string]int{"budget": 10}}
	calls := 0
	compute := func(context.Context) (answer, error) {
		calls++
		return answer{Total: 22894}, nil
	}

	got, hit, err := Fetch(context.Background(), store, params, compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(22894), got.Total)

	got, hit, err = Fetch(context.Background(), store, params, compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(22894), got.Total)
	assert.Equal(t, 1, calls)
}

func TestFetch_DisabledAndErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	compute := func(context.Context) (answer, error) {
		calls++
		return answer{}, boom
	}

	_, hit, err := Fetch(context.Background(), nil, KeyParams{Operation: "x"}, compute)
	require.ErrorIs(t, err, boom)
	assert.False(t, hit)

	store := newStore(t, time.Hour)
	_, _, err = Fetch(context.Background(), store, KeyParams{Operation: "x"}, compute)
	require.ErrorIs(t, err, boom)

	count, _ := store.Count()
	assert.Zero(t, count, "failed computations are not cached")
	assert.Equal(t, 2, calls)
}

func TestFetch_UnencodableResult(t *testing.T) {
	store := newStore(t, time.Hour)
	compute := func(context.Context) (map[string]any, error) {
		return map[string]any{"callback": func() {}}, nil
	}

	got, hit, err := Fetch(context.Background(), store, KeyParams{Operation: "compare"}, compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Contains(t, got, "callback")

	count, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "30s", FormatDuration(30*time.Second))
	assert.Equal(t, "5m", FormatDuration(5*time.Minute))
	assert.Equal(t, "2h", FormatDuration(2*time.Hour))
	assert.Equal(t, "2h30m", FormatDuration(2*time.Hour+30*time.Minute))
	assert.Equal(t, "3d", FormatDuration(72*time.Hour))
	assert.Equal(t, "3d2h", FormatDuration(74*time.Hour))
}
