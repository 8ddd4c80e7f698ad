package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDir уводит файлы логов во временную директорию теста
func useTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoggerManagerCachesPerComponent(t *testing.T) {
	useTempDir(t)
	lm := GetLoggerManager()
	t.Cleanup(func() { _ = lm.CloseAll() })

	first, err := lm.GetLogger("world")
	require.NoError(t, err)
	second, err := lm.GetLogger("world")
	require.NoError(t, err)
	assert.Same(t, first, second, "Повторный запрос возвращает тот же логгер")

	other, err := lm.GetLogger("build")
	require.NoError(t, err)
	assert.NotSame(t, first, other, "Разные компоненты — разные логгеры")
}

func TestLoggerManagerComponentGetters(t *testing.T) {
	useTempDir(t)
	t.Cleanup(func() { _ = GetLoggerManager().CloseAll() })

	world := GetWorldLogger()
	require.NotNil(t, world)
	assert.Same(t, world, GetWorldLogger(), "Геттер компонента стабилен")

	build := GetBuildLogger()
	require.NotNil(t, build)
	assert.NotSame(t, world, build)

	// Логирование через компонентный логгер не паникует
	assert.NotPanics(t, func() {
		build.Debug("Проверка компонентного логгера")
		GetSimLogger().Info("Проверка компонентного логгера")
	})
}

func TestLoggerManagerSetLogLevel(t *testing.T) {
	useTempDir(t)
	lm := GetLoggerManager()
	t.Cleanup(func() { _ = lm.CloseAll() })

	logger := lm.MustGetLogger("build")
	require.NotNil(t, logger)

	require.NoError(t, lm.SetLogLevel("build", ERROR, DEBUG))
	assert.Equal(t, ERROR, logger.minConsoleLevel)
	assert.Equal(t, DEBUG, logger.minFileLevel)

	assert.Error(t, lm.SetLogLevel("unknown-component", INFO, INFO),
		"Уровень для несозданного логгера не настраивается")
}

func TestLoggerManagerCloseAll(t *testing.T) {
	useTempDir(t)
	lm := GetLoggerManager()

	_, err := lm.GetLogger("sim")
	require.NoError(t, err)
	require.NoError(t, lm.CloseAll())

	// После CloseAll компонент создаётся заново
	recreated, err := lm.GetLogger("sim")
	require.NoError(t, err)
	require.NotNil(t, recreated)
	require.NoError(t, lm.CloseAll())
}
