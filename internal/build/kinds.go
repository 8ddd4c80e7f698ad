package build

import "fmt"

// BuildKind — категория строительного слоя.
// Закрытое, но расширяемое множество: диспетчеризация по BuildKind
// обязана быть тотальной, нераспознанный kind — фатальная ошибка
// программиста, а не восстановимый исход.
type BuildKind uint8

const (
	KindFloor BuildKind = iota // Пол — заполняет клетку
	KindWall                   // Стена — требует пол под собой
)

// String возвращает строковое представление категории
func (k BuildKind) String() string {
	switch k {
	case KindFloor:
		return "Floor"
	case KindWall:
		return "Wall"
	default:
		return fmt.Sprintf("BuildKind(%d)", uint8(k))
	}
}

// BuildOperation — действие над слоем.
type BuildOperation uint8

const (
	OpNone BuildOperation = iota
	OpPlace
	OpRemove
)

// String возвращает строковое представление операции
func (op BuildOperation) String() string {
	switch op {
	case OpNone:
		return "None"
	case OpPlace:
		return "Place"
	case OpRemove:
		return "Remove"
	default:
		return fmt.Sprintf("BuildOperation(%d)", uint8(op))
	}
}

// BuildInteractionMode выбирает алгоритм геометрии по зажатым
// модификаторам; семантика BuildKind от него не зависит.
type BuildInteractionMode uint8

const (
	ModeDefault              BuildInteractionMode = iota // Заполненный прямоугольник
	ModeShiftAlternative                                 // Квадрат, привязанный к началу
	ModeCtrlAlternative                                  // Прямая линия по доминирующей оси
	ModeAltAlternative                                   // Ступенчатый путь к цели
	ModeShiftCtrlAlternative                             // Заполненный диск
)

// String возвращает строковое представление режима
func (m BuildInteractionMode) String() string {
	switch m {
	case ModeDefault:
		return "Default"
	case ModeShiftAlternative:
		return "ShiftAlternative"
	case ModeCtrlAlternative:
		return "CtrlAlternative"
	case ModeAltAlternative:
		return "AltAlternative"
	case ModeShiftCtrlAlternative:
		return "ShiftCtrlAlternative"
	default:
		return fmt.Sprintf("BuildInteractionMode(%d)", uint8(m))
	}
}
