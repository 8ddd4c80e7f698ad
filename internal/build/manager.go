package build

import (
	"fmt"

	"github.com/annel0/grid-builder/internal/logging"
)

// BuildManager оркестрирует две фазы работы с намерением:
// Evaluate — предпросмотр без мутации, Execute — фиксация с мутацией.
// Обе фазы обходят координаты намерения по порядку через CellSystem
// и собирают по одному исходу на координату.
type BuildManager struct {
	cells   *CellSystem
	metrics *BuildMetrics // nil — без учёта
}

// NewBuildManager создаёт менеджер над указанной системой клеток
func NewBuildManager(cells *CellSystem) *BuildManager {
	if cells == nil {
		panic("build: BuildManager требует ненулевой CellSystem")
	}
	return &BuildManager{cells: cells}
}

// SetMetrics подключает учёт метрик (вызывается один раз при старте)
func (bm *BuildManager) SetMetrics(m *BuildMetrics) {
	bm.metrics = m
}

// Evaluate выполняет неразрушающий прогон намерения: каждая координата
// валидируется, сетка не изменяется. Используется для живой подсветки
// во время жеста.
func (bm *BuildManager) Evaluate(intent *BuildIntent) BuildResult {
	results := make([]BuildOperationResult, 0, intent.Len())
	for _, pos := range intent.coords {
		switch intent.op {
		case OpPlace:
			results = append(results, bm.cells.CanPlace(intent.kind, pos))
		case OpRemove:
			results = append(results, bm.cells.CanRemove(intent.kind, pos))
		default:
			panic(unknownOperation("Evaluate", intent.op))
		}
	}

	res := BuildResult{Intent: intent, Results: results}
	bm.metrics.observeResult("evaluate", res)
	return res
}

// Execute фиксирует намерение: мутация происходит поклеточно по ходу
// обхода. Ранний выход и откат отсутствуют намеренно — неудача или
// NoOp на одной координате не мешает обработке остальных, поэтому
// дубликат координаты даёт Valid на первом вхождении и NoOp на втором.
func (bm *BuildManager) Execute(intent *BuildIntent) BuildResult {
	results := make([]BuildOperationResult, 0, intent.Len())
	for _, pos := range intent.coords {
		switch intent.op {
		case OpPlace:
			results = append(results, bm.cells.TryPlace(intent.kind, pos))
		case OpRemove:
			results = append(results, bm.cells.TryRemove(intent.kind, pos))
		default:
			panic(unknownOperation("Execute", intent.op))
		}
	}

	res := BuildResult{Intent: intent, Results: results}
	bm.metrics.observeResult("execute", res)

	valid, noop, invalid := res.CountByOutcome()
	logging.GetBuildLogger().Debug("🏗️ Execute %s/%s: %d координат (valid=%d noop=%d invalid=%d)",
		intent.kind, intent.op, intent.Len(), valid, noop, invalid)
	return res
}

func unknownOperation(phase string, op BuildOperation) string {
	return fmt.Sprintf("build: %s: необработанная операция %s", phase, op)
}
