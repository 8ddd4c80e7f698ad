package build

import (
	"fmt"

	"github.com/annel0/grid-builder/internal/vec"
)

// ShapeResolver — чистая функция растеризации жеста: отображает
// (начало, конец, операция, режим) в упорядоченную последовательность
// координат. Результат может быть пустым (нет намерения) и может
// содержать дубликаты; одинаковые входы всегда дают одинаковый выход.
type ShapeResolver interface {
	Resolve(start, end vec.Vec2, op BuildOperation, mode BuildInteractionMode) []vec.Vec2
}

// Резолверы регистрируются по одному на BuildKind один раз при
// инициализации пакета; проверок типов в горячем пути нет.
var resolvers = make(map[BuildKind]ShapeResolver)

// RegisterResolver добавляет резолвер для категории в регистр.
// Повторная регистрация той же категории — ошибка программиста.
func RegisterResolver(kind BuildKind, r ShapeResolver) {
	if _, exists := resolvers[kind]; exists {
		panic(fmt.Sprintf("build: резолвер для %s уже зарегистрирован", kind))
	}
	resolvers[kind] = r
}

// ResolverFor возвращает резолвер для указанной категории
func ResolverFor(kind BuildKind) (ShapeResolver, bool) {
	r, exists := resolvers[kind]
	return r, exists
}

// MustResolverFor возвращает резолвер или паникует, если категория
// не зарегистрирована — диспетчеризация обязана быть тотальной.
func MustResolverFor(kind BuildKind) ShapeResolver {
	r, exists := resolvers[kind]
	if !exists {
		panic(fmt.Sprintf("build: нет резолвера для BuildKind %s", kind))
	}
	return r
}
