package service_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/store"
)

// newStore opens a store in a temp dir seeded with the given file contents,
// keyed by file name.
func newStore(t *testing.T, files map[string]string) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(st.Dir(), name), []byte(content), 0o644))
	}
	return st
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := model.ParseDate(value)
	require.NoError(t, err)
	return d
}
