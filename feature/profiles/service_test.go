package profiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"profile-sync/core/identity"
	"profile-sync/core/orchestrator"
	"profile-sync/core/profile"
	"profile-sync/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// lockedSequence is a goroutine-safe generator yielding NEW-1, NEW-2, ...
func lockedSequence() identity.Generator {
	var mu sync.Mutex
	n := 0
	return identity.GeneratorFunc(func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("NEW-%d", n), nil
	})
}

type fixture struct {
	dir       string
	inventory string
	store     *store.FileStore
}

func newFixture(t *testing.T, hosts string) *fixture {
	t.Helper()
	dir := t.TempDir()
	inv := filepath.Join(dir, "devices.yaml")
	require.NoError(t, os.WriteFile(inv, []byte("hosts:\n"+hosts), 0o644))
	return &fixture{
		dir:       dir,
		inventory: inv,
		store:     store.NewFileStore(filepath.Join(dir, "profiles.json")),
	}
}

func (f *fixture) service() *Service {
	runner := orchestrator.NewRunner([]string{f.inventory}, f.store, lockedSequence(), nil, zap.NewNop())
	return NewService(runner, zap.NewNop())
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "  web1:\n    ip: 10.0.0.1\n")
	svc := f.service()

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	require.NoError(t, f.store.Save(ctx, []profile.Record{{Name: "web1", Guid: "X-1"}}))
	records, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "X-1", records[0].Guid)
}

func TestService_SyncRequiresDropConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "  web1:\n    ip: 10.0.0.1\n")
	prior := []profile.Record{{Name: "web1", Guid: "X-1"}, {Name: "old", Guid: "X-2"}}
	require.NoError(t, f.store.Save(ctx, prior))
	svc := f.service()

	res, err := svc.Sync(ctx, false)
	require.ErrorIs(t, err, ErrDropNotConfirmed)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Plan.Summary.Dropped)

	saved, err := f.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, prior, saved)

	res, err = svc.Sync(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Plan.Summary.Kept)

	saved, err = f.store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "X-1", saved[0].Guid)
}

func TestService_ConcurrentSyncs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "  web1:\n    ip: 10.0.0.1\n  db1:\n    ip: 10.0.0.2\n")
	svc := f.service()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Sync(ctx, i%2 == 0)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	// Whatever order the runs took, identifiers minted by the first write
	// are kept by every later one.
	saved, err := f.store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	res, err := svc.Plan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Plan.Summary.Kept)
	assert.Equal(t, saved, res.Plan.Records)
}
