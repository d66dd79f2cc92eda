package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/memory-game-bot/internal/kv"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, kv.ErrKeyNotFound)

	value := []byte(`{"a":1}`)
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	require.NoError(t, s.SetMany(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}))
	got, err = s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	require.ErrorIs(t, err, kv.ErrKeyNotFound)

	require.NoError(t, s.DeleteMany(ctx, "a", "b", "missing"))
	_, err = s.Get(ctx, "a")
	require.ErrorIs(t, err, kv.ErrKeyNotFound)
	_, err = s.Get(ctx, "b")
	require.ErrorIs(t, err, kv.ErrKeyNotFound)
	require.NoError(t, s.Close())
}

func TestBoardStorage(t *testing.T) {
	s := NewBoardStorage()

	_, had := s.UpsertAndGetPrev(1, 10, "a")
	assert.False(t, had)

	prev, had := s.UpsertAndGetPrev(1, 11, "b")
	require.True(t, had)
	assert.Equal(t, 10, prev.MessageID)
	assert.Equal(t, "a", prev.SessionID)

	msg, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, 11, msg.MessageID)

	s.Delete(1)
	_, ok = s.Get(1)
	assert.False(t, ok)
}
