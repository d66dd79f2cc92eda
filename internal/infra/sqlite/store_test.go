package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/memory-game-bot/internal/kv"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc"
	s, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Get(ctx, kv.Key(1, kv.RecordContacts))
	require.ErrorIs(t, err, kv.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "a", []byte("one")))
	require.NoError(t, s.Set(ctx, "a", []byte("two")))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	require.NoError(t, s.SetMany(ctx, map[string][]byte{
		"b": []byte("3"),
		"c": []byte("4"),
	}))
	got, err = s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "4", string(got))

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	require.ErrorIs(t, err, kv.ErrKeyNotFound)

	require.NoError(t, s.DeleteMany(ctx, "b", "c", "missing"))
	_, err = s.Get(ctx, "b")
	require.ErrorIs(t, err, kv.ErrKeyNotFound)
	_, err = s.Get(ctx, "c")
	require.ErrorIs(t, err, kv.ErrKeyNotFound)
}
