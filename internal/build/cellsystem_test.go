package build

import (
	"testing"

	"github.com/annel0/grid-builder/internal/vec"
	"github.com/annel0/grid-builder/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSystem создаёт систему над сеткой width×height пустых клеток
func newTestSystem(width, height int) *CellSystem {
	grid := world.NewCellGrid()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.CreateCell(vec.Vec2{X: x, Y: y})
		}
	}
	return NewCellSystem(grid)
}

func TestCellSystemNoCell(t *testing.T) {
	cs := newTestSystem(4, 4)
	outside := v(100, 100)

	// Координата вне сгенерированных границ
	res := cs.CanPlace(KindFloor, outside)
	assert.Equal(t, world.OutcomeInvalid, res.Outcome, "Вне границ — Invalid")
	assert.Equal(t, world.ReasonNoCell, res.Reason, "Причина — NoCell")
	assert.Equal(t, outside, res.Pos, "Результат несёт координату запроса")

	assert.Equal(t, world.ReasonNoCell, cs.CanRemove(KindWall, outside).Reason)
	assert.Equal(t, world.ReasonNoCell, cs.TryPlace(KindFloor, outside).Reason)
	assert.Equal(t, world.ReasonNoCell, cs.TryRemove(KindFloor, outside).Reason)
	assert.False(t, cs.Has(KindFloor, outside), "Has вне границ — false")
}

func TestCellSystemWallNeedsFloor(t *testing.T) {
	cs := newTestSystem(8, 8)
	pos := v(5, 5)

	// Стена на клетке без пола
	res := cs.CanPlace(KindWall, pos)
	assert.Equal(t, world.OutcomeInvalid, res.Outcome)
	assert.Equal(t, world.ReasonNoFloor, res.Reason, "Стена без пола — NoFloor")

	// После установки пола стена становится допустимой
	require.Equal(t, world.OutcomeValid, cs.TryPlace(KindFloor, pos).Outcome)
	res = cs.TryPlace(KindWall, pos)
	assert.Equal(t, world.OutcomeValid, res.Outcome, "Стена на полу — Valid")

	assert.True(t, cs.Has(KindFloor, pos))
	assert.True(t, cs.Has(KindWall, pos))
}

func TestCellSystemRemoveBlockedThenFreed(t *testing.T) {
	cs := newTestSystem(4, 4)
	pos := v(1, 1)

	// Пол и стена вместе, снятие пола заблокировано
	require.Equal(t, world.OutcomeValid, cs.TryPlace(KindFloor, pos).Outcome)
	require.Equal(t, world.OutcomeValid, cs.TryPlace(KindWall, pos).Outcome)

	res := cs.TryRemove(KindFloor, pos)
	assert.Equal(t, world.OutcomeInvalid, res.Outcome)
	assert.Equal(t, world.ReasonBlocked, res.Reason, "Пол под стеной — Blocked")
	assert.True(t, cs.Has(KindFloor, pos), "Заблокированное снятие не мутирует")

	// Снятие стены, затем пола — оба Valid
	assert.Equal(t, world.OutcomeValid, cs.TryRemove(KindWall, pos).Outcome)
	assert.Equal(t, world.OutcomeValid, cs.TryRemove(KindFloor, pos).Outcome)
	assert.False(t, cs.Has(KindFloor, pos))
	assert.False(t, cs.Has(KindWall, pos))
}

func TestCellSystemCanDoesNotMutate(t *testing.T) {
	cs := newTestSystem(4, 4)
	pos := v(2, 2)

	for i := 0; i < 3; i++ {
		res := cs.CanPlace(KindFloor, pos)
		assert.Equal(t, world.OutcomeValid, res.Outcome, "CanPlace не мутирует: всегда Valid")
	}
	assert.False(t, cs.Has(KindFloor, pos), "После CanPlace пол отсутствует")
}

func TestCellSystemUnknownKindPanics(t *testing.T) {
	cs := newTestSystem(2, 2)
	badKind := BuildKind(250)
	pos := v(0, 0)

	assert.Panics(t, func() { cs.Has(badKind, pos) })
	assert.Panics(t, func() { cs.CanPlace(badKind, pos) })
	assert.Panics(t, func() { cs.CanRemove(badKind, pos) })
	assert.Panics(t, func() { cs.TryPlace(badKind, pos) })
	assert.Panics(t, func() { cs.TryRemove(badKind, pos) })
}

func TestCellSystemRequiresGrid(t *testing.T) {
	assert.Panics(t, func() { NewCellSystem(nil) }, "nil-сетка — нарушение контракта")
}
