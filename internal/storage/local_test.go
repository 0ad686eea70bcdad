package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStorageService_RoundTrip(t *testing.T) {
	store, err := NewLocalStorageService(t.TempDir())
	if err != nil {
		t.Fatalf("error creating storage: %v", err)
	}
	ctx := context.Background()

	t.Run("SaveReadDelete", func(t *testing.T) {
		written, err := store.SaveFile(ctx, "resumes/10/abc.pdf", strings.NewReader("pdf bytes"))
		assert.NoError(t, err)
		assert.Equal(t, int64(9), written)

		exists, size, err := store.FileExists(ctx, "resumes/10/abc.pdf")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, int64(9), size)

		rc, err := store.ReadFile(ctx, "resumes/10/abc.pdf")
		assert.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		assert.NoError(t, err)
		assert.Equal(t, "pdf bytes", string(data))

		assert.NoError(t, store.DeleteFile(ctx, "resumes/10/abc.pdf"))
		exists, _, err = store.FileExists(ctx, "resumes/10/abc.pdf")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("DeleteMissingIsNotAnError", func(t *testing.T) {
		assert.NoError(t, store.DeleteFile(ctx, "resumes/10/never-existed.pdf"))
	})

	t.Run("EscapingKeysRejected", func(t *testing.T) {
		_, err := store.SaveFile(ctx, "../outside.pdf", strings.NewReader("x"))
		assert.Error(t, err)

		_, err = store.ReadFile(ctx, "/etc/passwd")
		assert.Error(t, err)
	})
}
