package build

import (
	"github.com/annel0/grid-builder/internal/vec"
)

// ContextListener получает синхронные уведомления машины состояний
// жеста. Вызовы происходят в потоке симуляции; реализация не должна
// блокировать.
type ContextListener interface {
	// ContextActivated — выбрана категория строительства
	ContextActivated(kind BuildKind)
	// ContextDeactivated — выбор категории сброшен
	ContextDeactivated()
	// BuildStarted — начат жест
	BuildStarted(kind BuildKind, op BuildOperation, start vec.Vec2)
	// BuildChanged — текущая клетка жеста изменилась
	BuildChanged(current vec.Vec2)
	// BuildEnded — жест завершён
	BuildEnded(start, end vec.Vec2)
	// BuildCleared — активный жест сброшен без завершения
	BuildCleared()
}

// NopContextListener — заглушка для случаев, когда уведомления не нужны.
type NopContextListener struct{}

func (NopContextListener) ContextActivated(kind BuildKind) {}
func (NopContextListener) ContextDeactivated()             {}
func (NopContextListener) BuildStarted(kind BuildKind, op BuildOperation, start vec.Vec2) {}
func (NopContextListener) BuildChanged(current vec.Vec2)  {}
func (NopContextListener) BuildEnded(start, end vec.Vec2) {}
func (NopContextListener) BuildCleared()                  {}
