package world

import (
	"fmt"

	"github.com/annel0/grid-builder/internal/vec"
)

// CellGrid — разреженное хранилище клеток по координатам.
// Append-only: клетки создаются один раз ландшафтным коллаборатором
// при инициализации мира и никогда не удаляются.
//
// Внутренней блокировки нет: модель предполагает единственного
// владельца-писателя (поток симуляции); конкурентный доступ из
// нескольких горутин должен сериализоваться снаружи.
type CellGrid struct {
	cells map[vec.Vec2]*Cell
}

// NewCellGrid создаёт пустую сетку
func NewCellGrid() *CellGrid {
	return &CellGrid{cells: make(map[vec.Vec2]*Cell)}
}

// CreateCell создаёт клетку в указанной координате и возвращает её.
// Повторное создание клетки — нарушение контракта инициализации, паника.
func (g *CellGrid) CreateCell(pos vec.Vec2) *Cell {
	if _, exists := g.cells[pos]; exists {
		panic(fmt.Sprintf("world: клетка %v уже создана (сетка append-only)", pos))
	}
	cell := &Cell{}
	g.cells[pos] = cell
	return cell
}

// TryGetCell возвращает клетку по координате, если она существует
func (g *CellGrid) TryGetCell(pos vec.Vec2) (*Cell, bool) {
	cell, ok := g.cells[pos]
	return cell, ok
}

// Len возвращает количество созданных клеток
func (g *CellGrid) Len() int {
	return len(g.cells)
}

// Each вызывает fn для каждой существующей клетки.
// Порядок обхода map не определён; вызывающий не должен на него полагаться.
func (g *CellGrid) Each(fn func(pos vec.Vec2, cell *Cell)) {
	for pos, cell := range g.cells {
		fn(pos, cell)
	}
}
