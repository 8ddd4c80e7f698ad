package eventbus

import (
	"context"

	"github.com/annel0/grid-builder/internal/logging"
)

// StartLoggingListener подписывается на все события и пишет их в стандартный лог.
// Презентационный хук по умолчанию: каждый результат строительства и каждое
// изменение жеста становятся видимы в логе. Функция неблокирующая.
func StartLoggingListener(bus EventBus) error {
	_, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		logging.Debug("[EventBus] %s %s src=%s corr=%s size=%dB", ev.ID, ev.EventType, ev.Source, ev.CorrelationID, len(ev.Payload))
	})
	if err != nil {
		return err
	}
	logging.Info("🪵 LoggingListener: подписка на все события активирована")
	return nil
}
