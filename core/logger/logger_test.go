package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"travel-admin/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("Console", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("JSONWarn", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "travel.log")
		l, err := logger.New(&logger.Config{Level: "info", Format: "json", File: path, MaxSizeMB: 1})
		require.NoError(t, err)

		l.Info("written to file", zap.String("kind", "package"))
		_ = l.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "written to file")
	})
}

func TestWithRayID(t *testing.T) {
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	base := zap.NewNop()
	assert.Same(t, base, logger.WithRayID(base, c))

	c.Locals("ray_id", "abc")
	assert.NotSame(t, base, logger.WithRayID(base, c))
}
