package loader_test

import (
	"errors"
	"testing"

	"travel-admin/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &stubFeature{name: "catalog", enabled: true}
		off := &stubFeature{name: "upload", enabled: false}

		mgr := loader.NewManager(nil)
		mgr.Register(on)
		mgr.Register(off)

		assert.NoError(t, mgr.LoadAll(fiber.New()))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("PropagatesError", func(t *testing.T) {
		mgr := loader.NewManager(nil)
		mgr.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})
		assert.ErrorContains(t, mgr.LoadAll(fiber.New()), "broken")
	})

	t.Run("RejectsDuplicates", func(t *testing.T) {
		mgr := loader.NewManager(nil)
		mgr.Register(&stubFeature{name: "catalog", enabled: true})
		mgr.Register(&stubFeature{name: "catalog", enabled: true})
		assert.Error(t, mgr.LoadAll(fiber.New()))
	})
}
