package build

import (
	"github.com/annel0/grid-builder/internal/vec"
)

// CursorHit — разрешённая координата курсора от слоя ввода.
// Valid гарантирует, что Pos определена (курсор над игровой сеткой).
type CursorHit struct {
	Pos   vec.Vec2
	Valid bool
}

// BuildPhase — фаза машины состояний жеста.
type BuildPhase uint8

const (
	PhaseInactive      BuildPhase = iota // Категория не выбрана
	PhaseContextActive                   // Категория выбрана, жеста нет
	PhaseDragging                        // Жест в процессе
)

// Состояние контекста — сумма-тип: нелегальные комбинации
// (например, текущая клетка без начальной) непредставимы.
type contextState interface {
	phase() BuildPhase
}

type stateInactive struct{}

type stateContextActive struct {
	kind     BuildKind
	resolver ShapeResolver
}

type stateDragging struct {
	kind     BuildKind
	resolver ShapeResolver
	op       BuildOperation
	start    vec.Vec2
	current  vec.Vec2
}

func (stateInactive) phase() BuildPhase      { return PhaseInactive }
func (stateContextActive) phase() BuildPhase { return PhaseContextActive }
func (stateDragging) phase() BuildPhase      { return PhaseDragging }

// BuildContext — машина состояний жеста перетаскивания.
// Владеет выбором активной категории и парой начальная/текущая
// координата; на завершении жеста делегирует резолверу активной
// категории построение BuildIntent.
//
// Все методы синхронны и вызываются из одного владеющего потока.
type BuildContext struct {
	state    contextState
	listener ContextListener
}

// NewBuildContext создаёт контекст в неактивном состоянии.
// nil-listener заменяется заглушкой.
func NewBuildContext(listener ContextListener) *BuildContext {
	if listener == nil {
		listener = NopContextListener{}
	}
	return &BuildContext{state: stateInactive{}, listener: listener}
}

// Phase возвращает текущую фазу машины состояний
func (bc *BuildContext) Phase() BuildPhase { return bc.state.phase() }

// ActiveKind возвращает выбранную категорию, если она есть
func (bc *BuildContext) ActiveKind() (BuildKind, bool) {
	switch s := bc.state.(type) {
	case stateContextActive:
		return s.kind, true
	case stateDragging:
		return s.kind, true
	default:
		return 0, false
	}
}

// DragBounds возвращает начальную и текущую клетку активного жеста
func (bc *BuildContext) DragBounds() (start, current vec.Vec2, ok bool) {
	if s, dragging := bc.state.(stateDragging); dragging {
		return s.start, s.current, true
	}
	return vec.Vec2{}, vec.Vec2{}, false
}

// SetContext выбирает активную категорию строительства из любого
// состояния. Незавершённый жест сбрасывается первым. Паникует, если
// для категории не зарегистрирован резолвер.
func (bc *BuildContext) SetContext(kind BuildKind) {
	resolver := MustResolverFor(kind)

	bc.clearDrag()
	bc.state = stateContextActive{kind: kind, resolver: resolver}
	bc.listener.ContextActivated(kind)
}

// BeginBuild начинает жест из ContextActive; в остальных фазах — no-op.
// Невалидный курсор игнорируется.
func (bc *BuildContext) BeginBuild(cursor CursorHit, op BuildOperation) {
	s, active := bc.state.(stateContextActive)
	if !active || !cursor.Valid {
		return
	}

	bc.state = stateDragging{
		kind:     s.kind,
		resolver: s.resolver,
		op:       op,
		start:    cursor.Pos,
		current:  cursor.Pos,
	}
	bc.listener.BuildStarted(s.kind, op, cursor.Pos)
}

// UpdateBuild обновляет текущую клетку жеста; уведомление BuildChanged
// уходит только при фактической смене клетки.
func (bc *BuildContext) UpdateBuild(cursor CursorHit) {
	s, dragging := bc.state.(stateDragging)
	if !dragging || !cursor.Valid {
		return
	}

	if cursor.Pos == s.current {
		return
	}
	s.current = cursor.Pos
	bc.state = s
	bc.listener.BuildChanged(cursor.Pos)
}

// EndBuild завершает жест: одна финальная проверка координаты,
// уведомление о завершении и возврат в ContextActive (выбор категории
// переживает жест).
func (bc *BuildContext) EndBuild(cursor CursorHit) {
	if _, dragging := bc.state.(stateDragging); !dragging {
		return
	}

	bc.UpdateBuild(cursor)

	s := bc.state.(stateDragging)
	bc.listener.BuildEnded(s.start, s.current)
	bc.state = stateContextActive{kind: s.kind, resolver: s.resolver}
}

// CancelBuild сбрасывает только жест, возвращаясь в ContextActive.
func (bc *BuildContext) CancelBuild() {
	bc.clearDrag()
}

// CancelContext полностью деактивирует контекст: сбрасывает жест,
// затем выбор категории; уведомления уходят по мере применимости.
func (bc *BuildContext) CancelContext() {
	bc.clearDrag()
	if _, active := bc.state.(stateContextActive); active {
		bc.state = stateInactive{}
		bc.listener.ContextDeactivated()
	}
}

// TryCreateBuildIntent строит намерение из активного жеста, делегируя
// резолверу активной категории. Пустая растеризация — не ошибка,
// а отсутствие намерения (ok=false). Вне фазы Dragging — ok=false.
func (bc *BuildContext) TryCreateBuildIntent(mode BuildInteractionMode) (*BuildIntent, bool) {
	s, dragging := bc.state.(stateDragging)
	if !dragging {
		return nil, false
	}

	coords := s.resolver.Resolve(s.start, s.current, s.op, mode)
	if len(coords) == 0 {
		return nil, false
	}
	return NewBuildIntent(s.kind, s.op, coords), true
}

// TryCreatePreviewIntent строит одноклеточное Place-намерение под
// курсором независимо от фазы жеста — только для подсветки валидности
// при наведении, никогда для разрушающих операций. Требует выбранной
// категории.
func (bc *BuildContext) TryCreatePreviewIntent(cursor CursorHit) (*BuildIntent, bool) {
	kind, ok := bc.ActiveKind()
	if !ok || !cursor.Valid {
		return nil, false
	}
	return NewBuildIntent(kind, OpPlace, []vec.Vec2{cursor.Pos}), true
}

// clearDrag сбрасывает активный жест, сохраняя выбор категории.
func (bc *BuildContext) clearDrag() {
	if s, dragging := bc.state.(stateDragging); dragging {
		bc.state = stateContextActive{kind: s.kind, resolver: s.resolver}
		bc.listener.BuildCleared()
	}
}
