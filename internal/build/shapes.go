package build

import (
	"github.com/annel0/grid-builder/internal/vec"
)

// Геометрические примитивы растеризации жестов. Все функции
// детерминированы: одинаковые входы всегда дают одинаковую
// последовательность координат. Обход областей построчный
// (y от меньшего к большему, внутри строки x от меньшего к большему).

// rectArea возвращает все клетки прямоугольника между углами a и b включительно.
func rectArea(a, b vec.Vec2) []vec.Vec2 {
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)

	out := make([]vec.Vec2, 0, (maxX-minX+1)*(maxY-minY+1))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			out = append(out, vec.Vec2{X: x, Y: y})
		}
	}
	return out
}

// rectPerimeter возвращает только граничные клетки прямоугольника.
// Для вырожденных прямоугольников (ширина или высота 1) совпадает
// с заполненной областью.
func rectPerimeter(a, b vec.Vec2) []vec.Vec2 {
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)

	out := make([]vec.Vec2, 0, 2*(maxX-minX+1)+2*(maxY-minY+1))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x == minX || x == maxX || y == minY || y == maxY {
				out = append(out, vec.Vec2{X: x, Y: y})
			}
		}
	}
	return out
}

// squareCorners возвращает углы квадрата, привязанного к start:
// сторона — максимум ширины и высоты охвата, квадрат растёт в сторону end.
func squareCorners(start, end vec.Vec2) (vec.Vec2, vec.Vec2) {
	delta := end.Sub(start)
	side := delta.Abs().X
	if delta.Abs().Y > side {
		side = delta.Abs().Y
	}

	dir := delta.Sign()
	// При нулевой компоненте квадрат растёт в положительном направлении
	if dir.X == 0 {
		dir.X = 1
	}
	if dir.Y == 0 {
		dir.Y = 1
	}

	opposite := vec.Vec2{X: start.X + dir.X*side, Y: start.Y + dir.Y*side}
	return start, opposite
}

// axisLine возвращает прямую осевую линию от start к end.
// Горизонтальная ось выбирается при |dx| ≥ |dy|; линия проходит
// по поперечной координате start.
func axisLine(start, end vec.Vec2) []vec.Vec2 {
	delta := end.Sub(start).Abs()
	if delta.X >= delta.Y {
		return rectArea(start, vec.Vec2{X: end.X, Y: start.Y})
	}
	return rectArea(start, vec.Vec2{X: start.X, Y: end.Y})
}

// steppedPath возвращает связный путь от start к end, на каждом шаге
// продвигаясь на одну клетку вдоль локально доминирующей оставшейся
// дельты (при равенстве — по горизонтали, согласованно с axisLine).
func steppedPath(start, end vec.Vec2) []vec.Vec2 {
	out := []vec.Vec2{start}
	cur := start
	for cur != end {
		remaining := end.Sub(cur)
		abs := remaining.Abs()
		step := vec.Vec2{}
		if abs.X >= abs.Y && abs.X > 0 {
			step.X = remaining.Sign().X
		} else {
			step.Y = remaining.Sign().Y
		}
		cur = cur.Add(step)
		out = append(out, cur)
	}
	return out
}

// filledDisk возвращает все клетки, центр которых лежит не дальше
// radius = distance(center, rim) от center (граница включительно).
func filledDisk(center, rim vec.Vec2) []vec.Vec2 {
	radius := center.DistanceTo(rim)
	r := int(radius)

	out := make([]vec.Vec2, 0, (2*r+1)*(2*r+1))
	for y := center.Y - r; y <= center.Y+r; y++ {
		for x := center.X - r; x <= center.X+r; x++ {
			pos := vec.Vec2{X: x, Y: y}
			if center.DistanceTo(pos) <= radius {
				out = append(out, pos)
			}
		}
	}
	return out
}

func minMax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
