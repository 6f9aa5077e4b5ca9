package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide_ja.json")

	require.NoError(t, NewSink().Write(context.Background(), path, []byte(`{"a": "あ"}`)))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{"a": "あ"}`, string(got))

	require.NoError(t, NewSink().Write(context.Background(), path, []byte(`{}`)))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `{}`, string(got))
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "guide_ja.json")

	err := NewSink().Write(context.Background(), path, []byte(`{}`))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestWriteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "guide_ja.json")
	require.ErrorIs(t, NewSink().Write(ctx, path, []byte(`{}`)), context.Canceled)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
