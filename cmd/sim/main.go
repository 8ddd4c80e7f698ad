package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/grid-builder/internal/build"
	"github.com/annel0/grid-builder/internal/config"
	"github.com/annel0/grid-builder/internal/eventbus"
	"github.com/annel0/grid-builder/internal/logging"
	"github.com/annel0/grid-builder/internal/observability"
	"github.com/annel0/grid-builder/internal/vec"
	"github.com/annel0/grid-builder/internal/world"
	"go.opentelemetry.io/otel"
)

func main() {
	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("sim"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer func() { _ = logging.GetLoggerManager().CloseAll() }()

	logging.Info("🏗️ Запуск headless-симуляции строительного конвейера...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load("")
	if err != nil {
		logging.Error("❌ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	logging.Info("📡 Конфигурация: мир %dx%d (seed=%d), metrics=:%d",
		cfg.World.Width, cfg.World.Height, cfg.World.Seed, cfg.Server.GetMetricsPort())

	ctx := context.Background()

	// Телеметрия опциональна: без коллектора симуляция работает
	shutdownTelemetry, err := observability.InitTelemetry(ctx, "grid-builder-sim")
	if err != nil {
		logging.Warn("OpenTelemetry недоступен: %v", err)
		shutdownTelemetry = func(context.Context) error { return nil }
	}
	defer func() { _ = shutdownTelemetry(ctx) }()

	// === ШИНА СОБЫТИЙ ===
	var bus eventbus.EventBus
	if cfg.EventBus.URL != "" {
		jsBus, err := eventbus.NewJetStreamBus(cfg.EventBus.URL, cfg.EventBus.Stream,
			time.Duration(cfg.EventBus.Retention)*time.Hour)
		if err != nil {
			logging.Warn("JetStream недоступен (%v), используем in-memory шину", err)
			bus = eventbus.NewMemoryBus(1024)
		} else {
			defer jsBus.Close()
			bus = jsBus
		}
	} else {
		bus = eventbus.NewMemoryBus(1024)
	}
	eventbus.Init(bus)

	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Warn("LoggingListener не запущен: %v", err)
	}

	exporter := eventbus.NewMetricsExporter(bus)
	exporter.StartHTTP(fmt.Sprintf(":%d", cfg.Server.GetMetricsPort()))
	defer exporter.Stop()

	// === МИР ===
	grid := world.NewCellGrid()
	terrain := world.NewTerrainGenerator(cfg.World.Seed)
	if cfg.World.Terrain.NoiseScale > 0 {
		terrain.NoiseScale = cfg.World.Terrain.NoiseScale
	}
	if cfg.World.Terrain.GroundLevel > 0 {
		terrain.GroundLevel = cfg.World.Terrain.GroundLevel
	}
	terrain.PrePlaceFloors = cfg.World.Terrain.PrePlaceFloors

	if err := terrain.Populate(grid, cfg.World.Width, cfg.World.Height); err != nil {
		logging.Error("❌ Ошибка генерации мира: %v", err)
		log.Fatalf("❌ Ошибка генерации мира: %v", err)
	}

	// === СТРОИТЕЛЬНЫЙ КОНВЕЙЕР ===
	cells := build.NewCellSystem(grid)
	manager := build.NewBuildManager(cells)
	manager.SetMetrics(build.NewBuildMetrics())

	notifier := build.NewBusNotifier(bus)
	buildCtx := build.NewBuildContext(notifier)

	logging.Info("✅ Конвейер готов, прогоняем демонстрационную сессию")
	runScriptedSession(ctx, buildCtx, manager, notifier)

	// Ждём сигнала завершения: /metrics остаётся доступен
	logging.Info("⏳ Симуляция запущена, Ctrl+C для остановки")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logging.Info("🛑 Завершение симуляции")
}

// runScriptedSession — сценарий, заменяющий коллабораторов ввода и
// презентации: протаскивает несколько жестов через контекст и менеджер.
func runScriptedSession(ctx context.Context, buildCtx *build.BuildContext, manager *build.BuildManager, notifier *build.BusNotifier) {
	tracer := otel.Tracer("grid-builder/sim")

	commit := func(name string, mode build.BuildInteractionMode) {
		_, span := tracer.Start(ctx, name)
		defer span.End()

		intent, ok := buildCtx.TryCreateBuildIntent(mode)
		if !ok {
			logging.Warn("Жест %s не дал намерения", name)
			return
		}

		preview := manager.Evaluate(intent)
		valid, noop, invalid := preview.CountByOutcome()
		logging.Info("🔍 %s: предпросмотр %d клеток (valid=%d noop=%d invalid=%d)",
			name, intent.Len(), valid, noop, invalid)

		result := manager.Execute(intent)
		notifier.PublishResult(result)
	}

	cursor := func(x, y int) build.CursorHit {
		return build.CursorHit{Pos: vec.Vec2{X: x, Y: y}, Valid: true}
	}

	// Площадка пола 6x4
	buildCtx.SetContext(build.KindFloor)
	buildCtx.BeginBuild(cursor(2, 2), build.OpPlace)
	buildCtx.UpdateBuild(cursor(4, 3))
	buildCtx.UpdateBuild(cursor(7, 5))
	commit("floor-area", build.ModeDefault)
	buildCtx.EndBuild(cursor(7, 5))

	// Стены по периметру площадки
	buildCtx.SetContext(build.KindWall)
	buildCtx.BeginBuild(cursor(2, 2), build.OpPlace)
	buildCtx.UpdateBuild(cursor(7, 5))
	commit("wall-perimeter", build.ModeDefault)
	buildCtx.EndBuild(cursor(7, 5))

	// Дорожка ступенчатым путём
	buildCtx.SetContext(build.KindFloor)
	buildCtx.BeginBuild(cursor(7, 5), build.OpPlace)
	buildCtx.UpdateBuild(cursor(12, 9))
	commit("floor-path", build.ModeAltAlternative)
	buildCtx.EndBuild(cursor(12, 9))

	// Снятие угла площадки: стена мешает полу — частичный успех
	buildCtx.BeginBuild(cursor(2, 2), build.OpRemove)
	buildCtx.UpdateBuild(cursor(3, 3))
	commit("floor-remove-corner", build.ModeDefault)
	buildCtx.EndBuild(cursor(3, 3))

	buildCtx.CancelContext()
}
