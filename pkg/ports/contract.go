package ports

import (
	"context"
	"testing"
	"time"

	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests to verify that a SessionStore
// implementation adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	newSession := func(id string) *domain.Session {
		return domain.NewSession(id, "signup", 6, domain.FormData{
			"name":        "Ada",
			"musicGenres": []string{"Jazz", "Pop"},
			"budget":      "medium",
			"newsletter":  true,
			"servings":    float64(4),
		}, now)
	}

	t.Run("Save and Load", func(t *testing.T) {
		sess := newSession(sessionID)
		sess.State.CurrentStep = 3

		err := store.Save(ctx, sess)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sess.State, loaded.State)
		assert.Equal(t, sess.Variant, loaded.Variant)
		assert.Equal(t, domain.StatusActive, loaded.Status)
		// Kinds survive persistence: lists stay []string, numbers float64.
		assert.Equal(t, sess.Form, loaded.Form)
		assert.True(t, sess.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Load Returns a Copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.Form["name"] = "mutated"
		loaded.State.CurrentStep = 1

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", again.Form["name"])
		assert.Equal(t, 3, again.State.CurrentStep)
	})

	t.Run("Overwrite", func(t *testing.T) {
		sess := newSession(sessionID)
		sess.State.CurrentStep = 6
		completed := now.Add(time.Minute)
		sess.Status = domain.StatusCompleted
		sess.CompletedAt = &completed
		require.NoError(t, store.Save(ctx, sess))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 6, loaded.State.CurrentStep)
		assert.True(t, loaded.Completed())
		require.NotNil(t, loaded.CompletedAt)
		assert.True(t, completed.Equal(*loaded.CompletedAt))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, newSession(sessionID))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")

		assert.NoError(t, store.Delete(ctx, sessionID), "Deleting twice should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		require.NoError(t, store.Save(ctx, newSession(id1)))
		require.NoError(t, store.Save(ctx, newSession(id2)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
