package build

import (
	"fmt"

	"github.com/annel0/grid-builder/internal/vec"
	"github.com/annel0/grid-builder/internal/world"
)

// CellSystem — единая точка входа для валидации и исполнения
// строительных операций. Транслирует пару (BuildKind, операция)
// в вызов нужного метода клетки, а отсутствие клетки — в
// структурный исход Invalid(NoCell).
//
// Сетка передаётся явно через конструктор; глобальных локаторов нет.
type CellSystem struct {
	grid *world.CellGrid
}

// NewCellSystem создаёт систему над указанной сеткой
func NewCellSystem(grid *world.CellGrid) *CellSystem {
	if grid == nil {
		panic("build: CellSystem требует ненулевую сетку")
	}
	return &CellSystem{grid: grid}
}

// Has возвращает true, если клетка существует и содержит слой kind
func (cs *CellSystem) Has(kind BuildKind, pos vec.Vec2) bool {
	cell, ok := cs.grid.TryGetCell(pos)
	if !ok {
		return false
	}
	switch kind {
	case KindFloor:
		return cell.HasFloor()
	case KindWall:
		return cell.HasWall()
	default:
		panic(unknownKind("Has", kind))
	}
}

// CanPlace валидирует установку слоя без мутации
func (cs *CellSystem) CanPlace(kind BuildKind, pos vec.Vec2) BuildOperationResult {
	cell, ok := cs.grid.TryGetCell(pos)
	if !ok {
		return noCell(pos)
	}
	return wrap(pos, cs.validatePlace(kind, cell))
}

// CanRemove валидирует снятие слоя без мутации
func (cs *CellSystem) CanRemove(kind BuildKind, pos vec.Vec2) BuildOperationResult {
	cell, ok := cs.grid.TryGetCell(pos)
	if !ok {
		return noCell(pos)
	}
	return wrap(pos, cs.validateRemove(kind, cell))
}

// TryPlace валидирует и, при OutcomeValid, применяет установку слоя
func (cs *CellSystem) TryPlace(kind BuildKind, pos vec.Vec2) BuildOperationResult {
	cell, ok := cs.grid.TryGetCell(pos)
	if !ok {
		return noCell(pos)
	}
	check := cs.validatePlace(kind, cell)
	if check.Outcome == world.OutcomeValid {
		switch kind {
		case KindFloor:
			cell.ApplyPlaceFloor()
		case KindWall:
			cell.ApplyPlaceWall()
		default:
			panic(unknownKind("TryPlace", kind))
		}
	}
	return wrap(pos, check)
}

// TryRemove валидирует и, при OutcomeValid, применяет снятие слоя
func (cs *CellSystem) TryRemove(kind BuildKind, pos vec.Vec2) BuildOperationResult {
	cell, ok := cs.grid.TryGetCell(pos)
	if !ok {
		return noCell(pos)
	}
	check := cs.validateRemove(kind, cell)
	if check.Outcome == world.OutcomeValid {
		switch kind {
		case KindFloor:
			cell.ApplyRemoveFloor()
		case KindWall:
			cell.ApplyRemoveWall()
		default:
			panic(unknownKind("TryRemove", kind))
		}
	}
	return wrap(pos, check)
}

func (cs *CellSystem) validatePlace(kind BuildKind, cell *world.Cell) world.Check {
	switch kind {
	case KindFloor:
		return cell.ValidatePlaceFloor()
	case KindWall:
		return cell.ValidatePlaceWall()
	default:
		panic(unknownKind("validatePlace", kind))
	}
}

func (cs *CellSystem) validateRemove(kind BuildKind, cell *world.Cell) world.Check {
	switch kind {
	case KindFloor:
		return cell.ValidateRemoveFloor()
	case KindWall:
		return cell.ValidateRemoveWall()
	default:
		panic(unknownKind("validateRemove", kind))
	}
}

func wrap(pos vec.Vec2, check world.Check) BuildOperationResult {
	return BuildOperationResult{Pos: pos, Outcome: check.Outcome, Reason: check.Reason}
}

func noCell(pos vec.Vec2) BuildOperationResult {
	return BuildOperationResult{Pos: pos, Outcome: world.OutcomeInvalid, Reason: world.ReasonNoCell}
}

func unknownKind(op string, kind BuildKind) string {
	return fmt.Sprintf("build: %s: необработанный BuildKind %s", op, kind)
}
