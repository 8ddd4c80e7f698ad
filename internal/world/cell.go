package world

import "fmt"

// Outcome классифицирует результат одиночной операции над клеткой.
type Outcome uint8

const (
	// OutcomeValid — операция допустима и (при применении) изменит состояние.
	OutcomeValid Outcome = iota
	// OutcomeNoOp — операция ничего не изменит (состояние уже целевое).
	OutcomeNoOp
	// OutcomeInvalid — операция отклонена, причина в FailureReason.
	OutcomeInvalid
)

// String возвращает строковое представление результата
func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "Valid"
	case OutcomeNoOp:
		return "NoOp"
	case OutcomeInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// FailureReason уточняет причину отклонения операции.
type FailureReason uint8

const (
	ReasonNone    FailureReason = iota // Операция не отклонена
	ReasonNoFloor                      // Стена требует пол под собой
	ReasonNoWall                       // Нет стены для операции
	ReasonBlocked                      // Снятию пола мешает зависимая стена
	ReasonNoCell                       // Клетка вне сгенерированных границ
)

// String возвращает строковое представление причины
func (r FailureReason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonNoFloor:
		return "NoFloor"
	case ReasonNoWall:
		return "NoWall"
	case ReasonBlocked:
		return "Blocked"
	case ReasonNoCell:
		return "NoCell"
	default:
		return fmt.Sprintf("FailureReason(%d)", uint8(r))
	}
}

// Check — результат валидации операции над клеткой.
type Check struct {
	Outcome Outcome
	Reason  FailureReason
}

func valid() Check { return Check{Outcome: OutcomeValid} }
func noOp() Check { return Check{Outcome: OutcomeNoOp} }

func invalid(r FailureReason) Check {
	return Check{Outcome: OutcomeInvalid, Reason: r}
}

// Cell — клетка сетки, владеющая наличием пола и стены.
// Инвариант: стена не существует без пола (hasWall ⇒ hasFloor).
//
// Протокол двухфазный: Validate* никогда не мутирует; Apply* требует,
// чтобы вызывающий только что получил OutcomeValid от парного Validate*,
// и паникует при любом другом состоянии — это нарушение контракта
// программиста, а не пользовательская ошибка.
type Cell struct {
	hasFloor bool
	hasWall  bool
}

// HasFloor возвращает true, если в клетке есть пол
func (c *Cell) HasFloor() bool { return c.hasFloor }

// HasWall возвращает true, если в клетке есть стена
func (c *Cell) HasWall() bool { return c.hasWall }

// IsEmpty возвращает true, если в клетке нет ни пола, ни стены
func (c *Cell) IsEmpty() bool { return !c.hasFloor && !c.hasWall }

// ValidatePlaceFloor проверяет установку пола.
func (c *Cell) ValidatePlaceFloor() Check {
	if c.hasFloor {
		return noOp()
	}
	return valid()
}

// ApplyPlaceFloor устанавливает пол. Паникует, если ValidatePlaceFloor
// не вернул бы OutcomeValid.
func (c *Cell) ApplyPlaceFloor() {
	c.mustBeValid("ApplyPlaceFloor", c.ValidatePlaceFloor())
	c.hasFloor = true
}

// ValidateRemoveFloor проверяет снятие пола. Пол с зависимой стеной
// снять нельзя (ReasonBlocked).
func (c *Cell) ValidateRemoveFloor() Check {
	if !c.hasFloor {
		return noOp()
	}
	if c.hasWall {
		return invalid(ReasonBlocked)
	}
	return valid()
}

// ApplyRemoveFloor снимает пол. Паникует, если ValidateRemoveFloor
// не вернул бы OutcomeValid.
func (c *Cell) ApplyRemoveFloor() {
	c.mustBeValid("ApplyRemoveFloor", c.ValidateRemoveFloor())
	c.hasFloor = false
}

// ValidatePlaceWall проверяет установку стены: требуется пол.
func (c *Cell) ValidatePlaceWall() Check {
	if !c.hasFloor {
		return invalid(ReasonNoFloor)
	}
	if c.hasWall {
		return noOp()
	}
	return valid()
}

// ApplyPlaceWall устанавливает стену. Паникует, если ValidatePlaceWall
// не вернул бы OutcomeValid.
func (c *Cell) ApplyPlaceWall() {
	c.mustBeValid("ApplyPlaceWall", c.ValidatePlaceWall())
	c.hasWall = true
}

// ValidateRemoveWall проверяет снятие стены.
func (c *Cell) ValidateRemoveWall() Check {
	if !c.hasWall {
		return noOp()
	}
	return valid()
}

// ApplyRemoveWall снимает стену. Паникует, если ValidateRemoveWall
// не вернул бы OutcomeValid.
func (c *Cell) ApplyRemoveWall() {
	c.mustBeValid("ApplyRemoveWall", c.ValidateRemoveWall())
	c.hasWall = false
}

func (c *Cell) mustBeValid(op string, check Check) {
	if check.Outcome != OutcomeValid {
		panic(fmt.Sprintf("world: %s вызван без предварительной валидации (outcome=%s, reason=%s)",
			op, check.Outcome, check.Reason))
	}
}
