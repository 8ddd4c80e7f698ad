package vec

import "math"

// Vec2 представляет целочисленные 2D координаты клетки сетки.
// Значимый тип: сравнение и использование в качестве ключа map
// идут по значению полей.
type Vec2 struct {
	X, Y int
}

// Add возвращает сумму координат.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub возвращает разность координат (v - other).
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// DistanceTo вычисляет евклидово расстояние до другой точки.
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Abs возвращает покомпонентный модуль вектора.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: abs(v.X), Y: abs(v.Y)}
}

// Sign возвращает покомпонентный знак вектора (-1, 0 или 1).
func (v Vec2) Sign() Vec2 {
	return Vec2{X: sign(v.X), Y: sign(v.Y)}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
