package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/killallgit/vidcode-api/internal/services/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeAged(t *testing.T, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("id\n"), 0644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
}

func TestService_Sweep(t *testing.T) {
	root := t.TempDir()

	stale := filepath.Join(root, "demo", storage.TempName("0001_a.csv"))
	fresh := filepath.Join(root, "demo", storage.TempName("0002_b.csv"))
	finished := filepath.Join(root, "demo", "0000_old.csv")
	otherProject := filepath.Join(root, "other", storage.TempName("0003_c.xlsx"))

	writeAged(t, stale, 2*time.Hour)
	writeAged(t, fresh, time.Minute)
	writeAged(t, finished, 48*time.Hour)
	writeAged(t, otherProject, 3*time.Hour)

	svc := NewService(root, time.Hour, time.Minute)
	removed, err := svc.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.NoFileExists(t, stale)
	assert.NoFileExists(t, otherProject)
	assert.FileExists(t, fresh)
	assert.FileExists(t, finished)
}

func TestService_SweepMissingRoot(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "missing"), time.Hour, time.Minute)
	removed, err := svc.Sweep()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(t.TempDir(), 0, -1)
	assert.Equal(t, time.Hour, svc.maxAge)
	assert.Equal(t, 15*time.Minute, svc.cleanupInterval)
}

func TestService_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	stale := filepath.Join(root, "demo", storage.TempName("0001_a.csv"))
	writeAged(t, stale, 2*time.Hour)

	svc := NewService(root, time.Hour, time.Hour)
	svc.Start(context.Background())
	// The first sweep runs before Start returns
	assert.NoFileExists(t, stale)

	svc.Stop()
}

func TestService_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	svc := NewService(t.TempDir(), time.Hour, time.Hour)
	svc.Start(ctx)

	cancel()
	svc.wg.Wait()
}
