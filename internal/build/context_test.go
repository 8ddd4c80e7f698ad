package build

import (
	"testing"

	"github.com/annel0/grid-builder/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingListener собирает уведомления для проверок
type recordingListener struct {
	activated   int
	deactivated int
	started     int
	changed     int
	ended       int
	cleared     int
	lastCurrent vec.Vec2
}

func (rl *recordingListener) ContextActivated(kind BuildKind) { rl.activated++ }
func (rl *recordingListener) ContextDeactivated()             { rl.deactivated++ }
func (rl *recordingListener) BuildStarted(kind BuildKind, op BuildOperation, start vec.Vec2) {
	rl.started++
}
func (rl *recordingListener) BuildChanged(current vec.Vec2) {
	rl.changed++
	rl.lastCurrent = current
}
func (rl *recordingListener) BuildEnded(start, end vec.Vec2) { rl.ended++ }
func (rl *recordingListener) BuildCleared()                  { rl.cleared++ }

func hit(x, y int) CursorHit {
	return CursorHit{Pos: vec.Vec2{X: x, Y: y}, Valid: true}
}

func TestBuildContextDragLifecycle(t *testing.T) {
	// Полный жизненный цикл жеста: активация, перетаскивание, завершение
	rl := &recordingListener{}
	bc := NewBuildContext(rl)

	assert.Equal(t, PhaseInactive, bc.Phase())

	bc.SetContext(KindFloor)
	assert.Equal(t, PhaseContextActive, bc.Phase())
	assert.Equal(t, 1, rl.activated)

	bc.BeginBuild(hit(0, 0), OpPlace)
	assert.Equal(t, PhaseDragging, bc.Phase())
	assert.Equal(t, 1, rl.started)

	bc.UpdateBuild(hit(2, 1))
	assert.Equal(t, 1, rl.changed, "Смена клетки даёт одно уведомление")

	// Намерение доступно до завершения жеста
	intent, ok := bc.TryCreateBuildIntent(ModeDefault)
	require.True(t, ok, "Во время жеста намерение создаётся")
	assert.Equal(t, 6, intent.Len(), "Намерение покрывает прямоугольник c0..c1")

	bc.EndBuild(hit(2, 1))
	assert.Equal(t, 1, rl.ended)
	assert.Equal(t, PhaseContextActive, bc.Phase(), "Выбор категории переживает жест")

	// Второй жест принимается
	bc.BeginBuild(hit(3, 3), OpPlace)
	assert.Equal(t, PhaseDragging, bc.Phase())
	assert.Equal(t, 2, rl.started)
}

func TestBuildContextChangedOnlyOnCellChange(t *testing.T) {
	rl := &recordingListener{}
	bc := NewBuildContext(rl)
	bc.SetContext(KindFloor)
	bc.BeginBuild(hit(0, 0), OpPlace)

	// Та же клетка — уведомления нет
	bc.UpdateBuild(hit(0, 0))
	assert.Equal(t, 0, rl.changed, "Повторная координата не даёт уведомления")

	bc.UpdateBuild(hit(1, 0))
	bc.UpdateBuild(hit(1, 0))
	assert.Equal(t, 1, rl.changed, "Дребезг внутри клетки подавляется")

	// EndBuild с новой клеткой делает финальную проверку
	bc.EndBuild(hit(2, 0))
	assert.Equal(t, 2, rl.changed, "Финальная проверка при завершении жеста")
	assert.Equal(t, vec.Vec2{X: 2, Y: 0}, rl.lastCurrent)
}

func TestBuildContextIgnoresCallsOutOfPhase(t *testing.T) {
	rl := &recordingListener{}
	bc := NewBuildContext(rl)

	// Без выбранной категории жесты игнорируются
	bc.BeginBuild(hit(0, 0), OpPlace)
	bc.UpdateBuild(hit(1, 1))
	bc.EndBuild(hit(1, 1))
	assert.Equal(t, PhaseInactive, bc.Phase())
	assert.Zero(t, rl.started)
	assert.Zero(t, rl.ended)

	// UpdateBuild вне жеста — no-op
	bc.SetContext(KindWall)
	bc.UpdateBuild(hit(1, 1))
	assert.Zero(t, rl.changed)

	_, ok := bc.TryCreateBuildIntent(ModeDefault)
	assert.False(t, ok, "Вне жеста намерение не создаётся")
}

func TestBuildContextInvalidCursorIgnored(t *testing.T) {
	rl := &recordingListener{}
	bc := NewBuildContext(rl)
	bc.SetContext(KindFloor)

	bc.BeginBuild(CursorHit{}, OpPlace)
	assert.Equal(t, PhaseContextActive, bc.Phase(), "Невалидный курсор не начинает жест")

	bc.BeginBuild(hit(0, 0), OpPlace)
	bc.UpdateBuild(CursorHit{})
	assert.Zero(t, rl.changed, "Невалидный курсор не двигает жест")
}

func TestBuildContextCancelBuild(t *testing.T) {
	rl := &recordingListener{}
	bc := NewBuildContext(rl)
	bc.SetContext(KindFloor)
	bc.BeginBuild(hit(0, 0), OpRemove)

	bc.CancelBuild()
	assert.Equal(t, PhaseContextActive, bc.Phase(), "Сброс жеста возвращает в ContextActive")
	assert.Equal(t, 1, rl.cleared)

	// Повторный сброс без жеста — тишина
	bc.CancelBuild()
	assert.Equal(t, 1, rl.cleared)
}

func TestBuildContextCancelContext(t *testing.T) {
	rl := &recordingListener{}
	bc := NewBuildContext(rl)
	bc.SetContext(KindFloor)
	bc.BeginBuild(hit(0, 0), OpPlace)

	bc.CancelContext()
	assert.Equal(t, PhaseInactive, bc.Phase())
	assert.Equal(t, 1, rl.cleared, "Активный жест сброшен")
	assert.Equal(t, 1, rl.deactivated, "Категория сброшена")

	// Полностью неактивный контекст — оба уведомления молчат
	bc.CancelContext()
	assert.Equal(t, 1, rl.cleared)
	assert.Equal(t, 1, rl.deactivated)
}

func TestBuildContextSetContextClearsDrag(t *testing.T) {
	rl := &recordingListener{}
	bc := NewBuildContext(rl)
	bc.SetContext(KindFloor)
	bc.BeginBuild(hit(0, 0), OpPlace)

	bc.SetContext(KindWall)
	assert.Equal(t, PhaseContextActive, bc.Phase())
	assert.Equal(t, 1, rl.cleared, "Смена категории сбрасывает жест")
	assert.Equal(t, 2, rl.activated)

	kind, ok := bc.ActiveKind()
	require.True(t, ok)
	assert.Equal(t, KindWall, kind)
}

func TestBuildContextPreviewIntent(t *testing.T) {
	bc := NewBuildContext(nil)

	// Без категории предпросмотр невозможен
	_, ok := bc.TryCreatePreviewIntent(hit(3, 3))
	assert.False(t, ok)

	bc.SetContext(KindWall)
	intent, ok := bc.TryCreatePreviewIntent(hit(3, 3))
	require.True(t, ok)
	assert.Equal(t, KindWall, intent.Kind())
	assert.Equal(t, OpPlace, intent.Operation(), "Предпросмотр всегда Place, никогда разрушающий")
	assert.Equal(t, []vec.Vec2{{X: 3, Y: 3}}, intent.Coordinates())

	// Предпросмотр работает и во время жеста
	bc.BeginBuild(hit(0, 0), OpRemove)
	intent, ok = bc.TryCreatePreviewIntent(hit(5, 5))
	require.True(t, ok)
	assert.Equal(t, OpPlace, intent.Operation())

	// Невалидный курсор — нет предпросмотра
	_, ok = bc.TryCreatePreviewIntent(CursorHit{})
	assert.False(t, ok)
}

func TestBuildContextNoneOperationGesture(t *testing.T) {
	bc := NewBuildContext(nil)
	bc.SetContext(KindFloor)
	bc.BeginBuild(hit(0, 0), OpNone)
	bc.UpdateBuild(hit(4, 4))

	// Операция None растеризуется в пустоту — намерения нет
	_, ok := bc.TryCreateBuildIntent(ModeDefault)
	assert.False(t, ok, "Жест с операцией None не даёт намерения")
}

func TestBuildContextUnknownKindPanics(t *testing.T) {
	bc := NewBuildContext(nil)
	assert.Panics(t, func() {
		bc.SetContext(BuildKind(99))
	}, "Категория без резолвера — фатальная ошибка")
}
