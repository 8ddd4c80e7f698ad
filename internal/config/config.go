package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
// Содержит мир, шину событий и серверные порты; может расширяться.

type Config struct {
	World    WorldConfig    `yaml:"world"`
	EventBus EventBusConfig `yaml:"eventbus"`
	Server   ServerConfig   `yaml:"server"`
}

// WorldConfig задаёт параметры генерации стартовой сетки.
type WorldConfig struct {
	Seed   int64 `yaml:"seed"`
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	// Terrain настраивает ландшафтный коллаборатор.
	Terrain TerrainConfig `yaml:"terrain"`
}

// TerrainConfig управляет шумом высот и порогом естественного пола.
type TerrainConfig struct {
	NoiseScale     float64 `yaml:"noise_scale"`
	GroundLevel    float64 `yaml:"ground_level"`
	PrePlaceFloors bool    `yaml:"pre_place_floors"`
}

type EventBusConfig struct {
	URL       string `yaml:"url"`
	Stream    string `yaml:"stream"`
	Retention int    `yaml:"retention_hours"`
}

type ServerConfig struct {
	MetricsPort int `yaml:"metrics_port"`
}

// GetMetricsPort возвращает порт Prometheus метрик с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "BUILDER_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Defaults возвращает конфигурацию по умолчанию: небольшой мир
// с детерминированным сидом и выключенным естественным полом.
func Defaults() *Config {
	return &Config{
		World: WorldConfig{
			Seed:   12345,
			Width:  64,
			Height: 64,
			Terrain: TerrainConfig{
				NoiseScale:     0.05,
				GroundLevel:    0.30,
				PrePlaceFloors: false,
			},
		},
	}
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV BUILDER_CONFIG или возвращает дефолты.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("BUILDER_CONFIG")
		if path == "" {
			return Defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
