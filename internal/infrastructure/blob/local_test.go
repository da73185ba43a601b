package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestLocal_ReadAbsent(t *testing.T) {
	store := NewLocal(t.TempDir(), slog.Default())

	data, ok, err := store.Read(context.Background(), "missing.json")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestLocal_WriteThenRead(t *testing.T) {
	store := NewLocal(t.TempDir(), slog.Default())
	ctx := context.Background()

	err := store.Write(ctx, "data.json", []byte(`[]`), "application/json")
	require.NoError(t, err)

	data, ok, err := store.Read(ctx, "data.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), data)
}

func TestLocal_Overwrite(t *testing.T) {
	store := NewLocal(t.TempDir(), slog.Default())
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "data.json", []byte("first"), "text/plain"))
	require.NoError(t, store.Write(ctx, "data.json", []byte("second"), "text/plain"))

	data, ok, err := store.Read(ctx, "data.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("second"), data)
}
