package util

import (
	"github.com/aquilax/go-perlin"
)

// NoiseField инкапсулирует детерминированный генератор шума Перлина.
// Один экземпляр на генератор мира; глобального состояния нет.
type NoiseField struct {
	p *perlin.Perlin
}

// NewNoiseField создаёт поле шума с указанным сидом.
func NewNoiseField(seed int64) *NoiseField {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &NoiseField{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

// At возвращает значение шума для указанных координат в диапазоне [0, 1].
func (nf *NoiseField) At(x, y float64) float64 {
	// Noise2D возвращает значение от -1 до 1
	noise := nf.p.Noise2D(x, y)
	return (noise + 1.0) / 2.0
}
