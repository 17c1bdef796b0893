package profiles

import (
	"path/filepath"
	"testing"

	"profile-sync/core/orchestrator"
	"profile-sync/core/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	st := store.NewFileStore(filepath.Join(t.TempDir(), "profiles.json"))
	runner := orchestrator.NewRunner(nil, st, lockedSequence(), nil, nil)
	feature := NewFeature(runner, zap.NewNop(), false)

	assert.Equal(t, "profiles", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
