package build

import (
	"fmt"

	"github.com/annel0/grid-builder/internal/vec"
	"github.com/google/uuid"
)

// BuildIntent — неизменяемая пакетная команда строительства:
// категория, операция и непустая упорядоченная последовательность
// координат. Дубликаты координат допустимы и значимы: при исполнении
// второе вхождение естественно даёт NoOp.
type BuildIntent struct {
	id     string
	kind   BuildKind
	op     BuildOperation
	coords []vec.Vec2
}

// NewBuildIntent создаёт намерение с защитной копией координат.
// Пустая или nil последовательность — нарушение контракта вызывающего,
// паника немедленно, а не при исполнении.
func NewBuildIntent(kind BuildKind, op BuildOperation, coords []vec.Vec2) *BuildIntent {
	if len(coords) == 0 {
		panic(fmt.Sprintf("build: BuildIntent(%s, %s) без координат", kind, op))
	}
	copied := make([]vec.Vec2, len(coords))
	copy(copied, coords)
	return &BuildIntent{
		id:     uuid.NewString(),
		kind:   kind,
		op:     op,
		coords: copied,
	}
}

// ID возвращает UUID намерения (для корреляции событий)
func (bi *BuildIntent) ID() string { return bi.id }

// Kind возвращает категорию слоя
func (bi *BuildIntent) Kind() BuildKind { return bi.kind }

// Operation возвращает операцию
func (bi *BuildIntent) Operation() BuildOperation { return bi.op }

// Len возвращает количество координат
func (bi *BuildIntent) Len() int { return len(bi.coords) }

// Coordinates возвращает копию последовательности координат
func (bi *BuildIntent) Coordinates() []vec.Vec2 {
	out := make([]vec.Vec2, len(bi.coords))
	copy(out, bi.coords)
	return out
}
