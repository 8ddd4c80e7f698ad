package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BUILDER_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, int64(12345), cfg.World.Seed, "Дефолтный сид")
	assert.Equal(t, 64, cfg.World.Width)
	assert.Equal(t, 64, cfg.World.Height)
	assert.False(t, cfg.World.Terrain.PrePlaceFloors)
}

func TestLoadYAML(t *testing.T) {
	yaml := `
world:
  seed: 777
  width: 32
  height: 16
  terrain:
    noise_scale: 0.1
    ground_level: 0.4
    pre_place_floors: true
eventbus:
  url: nats://127.0.0.1:4222
  stream: BUILDS
  retention_hours: 24
server:
  metrics_port: 9100
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(777), cfg.World.Seed)
	assert.Equal(t, 32, cfg.World.Width)
	assert.Equal(t, 16, cfg.World.Height)
	assert.Equal(t, 0.1, cfg.World.Terrain.NoiseScale)
	assert.True(t, cfg.World.Terrain.PrePlaceFloors)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.EventBus.URL)
	assert.Equal(t, 9100, cfg.Server.GetMetricsPort())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestMetricsPortFallback(t *testing.T) {
	s := &ServerConfig{}

	t.Setenv("BUILDER_METRICS_PORT", "")
	assert.Equal(t, 2112, s.GetMetricsPort(), "Дефолтный порт без конфига и ENV")

	t.Setenv("BUILDER_METRICS_PORT", "9999")
	assert.Equal(t, 9999, s.GetMetricsPort(), "ENV переопределяет дефолт")

	s.MetricsPort = 8080
	assert.Equal(t, 8080, s.GetMetricsPort(), "Конфиг важнее ENV")
}
