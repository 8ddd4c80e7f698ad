package build

import (
	"fmt"

	"github.com/annel0/grid-builder/internal/vec"
)

// Регистрируем резолверы обеих категорий при инициализации пакета
func init() {
	RegisterResolver(KindFloor, &FloorShapeResolver{})
	RegisterResolver(KindWall, &WallShapeResolver{})
}

// FloorShapeResolver растеризует жесты для полов: площадные режимы
// дают заполненные фигуры.
type FloorShapeResolver struct{}

// Resolve возвращает координаты жеста для пола
func (r *FloorShapeResolver) Resolve(start, end vec.Vec2, op BuildOperation, mode BuildInteractionMode) []vec.Vec2 {
	// Снятие намеренно не зависит от режима: вся прямоугольная область
	if op == OpRemove {
		return rectArea(start, end)
	}
	if op != OpPlace {
		return nil
	}

	switch mode {
	case ModeDefault:
		return rectArea(start, end)
	case ModeShiftAlternative:
		a, b := squareCorners(start, end)
		return rectArea(a, b)
	case ModeCtrlAlternative:
		return axisLine(start, end)
	case ModeAltAlternative:
		return steppedPath(start, end)
	case ModeShiftCtrlAlternative:
		return filledDisk(start, end)
	default:
		panic(unknownMode("FloorShapeResolver", mode))
	}
}

// WallShapeResolver растеризует жесты для стен: стены ограждают
// области, поэтому площадные режимы дают только периметр.
// Линейные режимы и диск совпадают с половыми.
type WallShapeResolver struct{}

// Resolve возвращает координаты жеста для стены
func (r *WallShapeResolver) Resolve(start, end vec.Vec2, op BuildOperation, mode BuildInteractionMode) []vec.Vec2 {
	if op == OpRemove {
		return rectArea(start, end)
	}
	if op != OpPlace {
		return nil
	}

	switch mode {
	case ModeDefault:
		return rectPerimeter(start, end)
	case ModeShiftAlternative:
		a, b := squareCorners(start, end)
		return rectPerimeter(a, b)
	case ModeCtrlAlternative:
		return axisLine(start, end)
	case ModeAltAlternative:
		return steppedPath(start, end)
	case ModeShiftCtrlAlternative:
		return filledDisk(start, end)
	default:
		panic(unknownMode("WallShapeResolver", mode))
	}
}

func unknownMode(resolver string, mode BuildInteractionMode) string {
	return fmt.Sprintf("build: %s: необработанный режим %s", resolver, mode)
}
