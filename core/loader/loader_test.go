package loader

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFeature struct {
	mock.Mock
}

func (m *mockFeature) Name() string {
	return m.Called().String(0)
}

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(app fiber.Router) error {
	return m.Called(app).Error(0)
}

func newFeature(name string, enabled bool, loadErr error) *mockFeature {
	f := new(mockFeature)
	f.On("Name").Return(name)
	f.On("IsEnabled").Return(enabled)
	f.On("Load", mock.Anything).Return(loadErr).Maybe()
	return f
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()
	mgr := NewManager()

	profiles := newFeature("profiles", true, nil)
	disabled := newFeature("inventory", false, nil)
	mgr.Register(profiles)
	mgr.Register(disabled)

	loaded, err := mgr.LoadAll(app)
	require.NoError(t, err)
	assert.Equal(t, []string{"profiles"}, loaded)
	profiles.AssertCalled(t, "Load", app)
	disabled.AssertNotCalled(t, "Load", mock.Anything)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	mgr := NewManager()
	broken := newFeature("profiles", true, assert.AnError)
	after := newFeature("inventory", true, nil)
	mgr.Register(broken)
	mgr.Register(after)

	loaded, err := mgr.LoadAll(fiber.New())
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "profiles")
	assert.Empty(t, loaded)
	after.AssertNotCalled(t, "Load", mock.Anything)
}
