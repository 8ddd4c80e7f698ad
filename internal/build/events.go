package build

import (
	"context"
	"encoding/json"
	"time"

	"github.com/annel0/grid-builder/internal/eventbus"
	"github.com/annel0/grid-builder/internal/logging"
	"github.com/annel0/grid-builder/internal/vec"
	"github.com/google/uuid"
)

// Типы событий строительного конвейера на шине.
const (
	EventContextActivated   = "context_activated"
	EventContextDeactivated = "context_deactivated"
	EventBuildStarted       = "build_started"
	EventBuildChanged       = "build_changed"
	EventBuildEnded         = "build_ended"
	EventBuildCleared       = "build_cleared"
	EventBuildResult        = "build_result"
)

// GestureEventPayload — полезная нагрузка событий жеста.
type GestureEventPayload struct {
	Kind      string    `json:"kind,omitempty"`
	Operation string    `json:"operation,omitempty"`
	Start     *vec.Vec2 `json:"start,omitempty"`
	Current   *vec.Vec2 `json:"current,omitempty"`
	End       *vec.Vec2 `json:"end,omitempty"`
}

// ResultEventPayload — полезная нагрузка события результата исполнения.
type ResultEventPayload struct {
	IntentID  string              `json:"intent_id"`
	Kind      string              `json:"kind"`
	Operation string              `json:"operation"`
	Results   []CellResultPayload `json:"results"`
}

// CellResultPayload — исход одной клетки для презентационного потребителя.
type CellResultPayload struct {
	Pos     vec.Vec2 `json:"pos"`
	Outcome string   `json:"outcome"`
	Reason  string   `json:"reason,omitempty"`
}

// BusNotifier транслирует уведомления BuildContext и результаты
// исполнения в конверты шины событий для презентационного
// коллаборатора. Ядро шину не ждёт: публикация best-effort,
// ошибки только логируются.
type BusNotifier struct {
	bus    eventbus.EventBus
	source string
}

// NewBusNotifier создаёт адаптер над указанной шиной.
// nil означает «публиковать в глобальную шину пакета eventbus».
func NewBusNotifier(bus eventbus.EventBus) *BusNotifier {
	return &BusNotifier{bus: bus, source: "build-pipeline"}
}

// ContextActivated публикует событие выбора категории
func (bn *BusNotifier) ContextActivated(kind BuildKind) {
	bn.publish(EventContextActivated, "", 3, GestureEventPayload{Kind: kind.String()})
}

// ContextDeactivated публикует событие сброса категории
func (bn *BusNotifier) ContextDeactivated() {
	bn.publish(EventContextDeactivated, "", 3, GestureEventPayload{})
}

// BuildStarted публикует событие начала жеста
func (bn *BusNotifier) BuildStarted(kind BuildKind, op BuildOperation, start vec.Vec2) {
	bn.publish(EventBuildStarted, "", 3, GestureEventPayload{
		Kind:      kind.String(),
		Operation: op.String(),
		Start:     &start,
	})
}

// BuildChanged публикует событие смены текущей клетки
func (bn *BusNotifier) BuildChanged(current vec.Vec2) {
	bn.publish(EventBuildChanged, "", 3, GestureEventPayload{Current: &current})
}

// BuildEnded публикует событие завершения жеста
func (bn *BusNotifier) BuildEnded(start, end vec.Vec2) {
	bn.publish(EventBuildEnded, "", 3, GestureEventPayload{Start: &start, End: &end})
}

// BuildCleared публикует событие сброса жеста
func (bn *BusNotifier) BuildCleared() {
	bn.publish(EventBuildCleared, "", 3, GestureEventPayload{})
}

// PublishResult публикует результат исполнения намерения.
// CorrelationID конверта — UUID намерения, чтобы презентация могла
// связать результат с цепочкой событий жеста.
func (bn *BusNotifier) PublishResult(res BuildResult) {
	payload := ResultEventPayload{
		IntentID:  res.Intent.ID(),
		Kind:      res.Intent.Kind().String(),
		Operation: res.Intent.Operation().String(),
		Results:   make([]CellResultPayload, 0, len(res.Results)),
	}
	for _, r := range res.Results {
		crp := CellResultPayload{Pos: r.Pos, Outcome: r.Outcome.String()}
		if r.Reason != 0 {
			crp.Reason = r.Reason.String()
		}
		payload.Results = append(payload.Results, crp)
	}
	// Результаты важнее жестовых событий — не дропаются при backpressure
	bn.publish(EventBuildResult, res.Intent.ID(), 5, payload)
}

func (bn *BusNotifier) publish(eventType, correlationID string, priority int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.GetBuildLogger().Error("Ошибка сериализации события %s: %v", eventType, err)
		return
	}

	ev := &eventbus.Envelope{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().UTC(),
		Source:        bn.source,
		EventType:     eventType,
		Version:       1,
		CorrelationID: correlationID,
		Priority:      priority,
		Payload:       data,
	}
	// Без явной шины публикуем в глобальную; если и её нет,
	// событие молча отбрасывается
	if bn.bus != nil {
		err = bn.bus.Publish(context.Background(), ev)
	} else {
		err = eventbus.Publish(context.Background(), ev)
	}
	if err != nil {
		logging.GetBuildLogger().Warn("Событие %s не опубликовано: %v", eventType, err)
	}
}
