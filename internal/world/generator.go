package world

import (
	"fmt"

	"github.com/annel0/grid-builder/internal/logging"
	"github.com/annel0/grid-builder/internal/util"
	"github.com/annel0/grid-builder/internal/vec"
)

// TerrainGenerator — ландшафтный коллаборатор инициализации.
// Заполняет CellGrid ровно одной клеткой на каждую координату игровых
// границ, один раз, до первой строительной операции. Поле высот на
// шуме Перлина детерминировано по сиду; высота решает, получает ли
// клетка естественный пол при старте.
type TerrainGenerator struct {
	Seed           int64   // Сид для генерации шума
	NoiseScale     float64 // Масштаб шума высот
	GroundLevel    float64 // Порог высоты, выше которого клетка — суша
	PrePlaceFloors bool    // Класть ли естественный пол на сушу

	noise *util.NoiseField
}

// NewTerrainGenerator создаёт генератор с настройками по умолчанию
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		Seed:        seed,
		NoiseScale:  0.05, // Настройка сглаженности ландшафта
		GroundLevel: 0.30, // Ниже — вода, пол не кладём
		noise:       util.NewNoiseField(seed),
	}
}

// HeightAt возвращает высоту ландшафта в точке (от 0 до 1)
func (tg *TerrainGenerator) HeightAt(pos vec.Vec2) float64 {
	return tg.noise.At(float64(pos.X)*tg.NoiseScale, float64(pos.Y)*tg.NoiseScale)
}

// Populate заполняет сетку клетками в прямоугольнике width×height
// начиная с (0,0). Вызывается ровно один раз для пустой сетки.
// Естественный пол кладётся через обычный протокол Validate/Apply —
// в обход машины состояний клетки мир не меняется.
func (tg *TerrainGenerator) Populate(grid *CellGrid, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("world: некорректные границы мира %dx%d", width, height)
	}
	if grid.Len() != 0 {
		return fmt.Errorf("world: сетка уже заполнена (%d клеток)", grid.Len())
	}

	floors := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := vec.Vec2{X: x, Y: y}
			cell := grid.CreateCell(pos)

			if tg.PrePlaceFloors && tg.HeightAt(pos) >= tg.GroundLevel {
				if cell.ValidatePlaceFloor().Outcome == OutcomeValid {
					cell.ApplyPlaceFloor()
					floors++
				}
			}
		}
	}

	logging.GetWorldLogger().Info("🌍 Мир заполнен: %dx%d клеток, естественных полов: %d (seed=%d)",
		width, height, floors, tg.Seed)
	return nil
}
