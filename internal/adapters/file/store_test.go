package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mughesh03/aromatone/internal/adapters/file"
	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.SessionStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_Layout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "sessions")
	store := file.New(dir)
	ctx := context.Background()

	sess := domain.NewSession("s-1", "signup", 6, domain.FormData{"name": "Ada"}, time.Now())
	require.NoError(t, store.Save(ctx, sess))

	_, err := os.Stat(filepath.Join(dir, "s-1.json"))
	require.NoError(t, err, "session file should exist")

	// Stray temp files are ignored by List.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-s-2-123.json"), []byte("{}"), 0o644))
	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s-1"}, ids)
}

func TestFileStore_RejectsPathTraversal(t *testing.T) {
	store := file.New(t.TempDir())
	_, err := store.Load(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, file.ErrInvalidSessionID)
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "absent"))
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}
