package build

import (
	"github.com/annel0/grid-builder/internal/vec"
	"github.com/annel0/grid-builder/internal/world"
)

// BuildOperationResult — исход одиночной операции над клеткой.
type BuildOperationResult struct {
	Pos     vec.Vec2
	Outcome world.Outcome
	Reason  world.FailureReason
}

// IsValid возвращает true, если операция допустима (или была применена)
func (r BuildOperationResult) IsValid() bool { return r.Outcome == world.OutcomeValid }

// BuildResult — агрегат исходов по всем координатам намерения.
// Последовательность results имеет ту же длину и порядок, что и
// координаты намерения. Сводного флага успеха нет намеренно:
// потребитель обязан смотреть на индивидуальные исходы.
type BuildResult struct {
	Intent  *BuildIntent
	Results []BuildOperationResult
}

// CountByOutcome возвращает количество исходов каждого вида
func (br BuildResult) CountByOutcome() (valid, noop, invalid int) {
	for _, r := range br.Results {
		switch r.Outcome {
		case world.OutcomeValid:
			valid++
		case world.OutcomeNoOp:
			noop++
		case world.OutcomeInvalid:
			invalid++
		}
	}
	return
}
