package notifications

import (
	"context"
	"encoding/json"
	"time"

	"mechmarket/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const subjectPrefix = "notifications.workflow."

// NATSEmitter publishes workflow events to NATS, fire-and-forget. A publish
// failure is logged and swallowed: notifications never fail a workflow
// mutation that already committed.
type NATSEmitter struct {
	nc  *nats.Conn
	log *zap.Logger
}

var _ interfaces.INotificationEmitter = (*NATSEmitter)(nil)

// NewNATSEmitter connects to the given NATS URL. An empty URL disables the
// emitter: a nil connection is returned and Emit becomes a no-op.
func NewNATSEmitter(url string, log *zap.Logger) (*NATSEmitter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if url == "" {
		log.Info("nats url not set, notifications disabled")
		return &NATSEmitter{log: log}, nil
	}

	nc, err := nats.Connect(url,
		nats.Name("mechmarket-workflow"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}

	log.Info("nats emitter connected", zap.String("url", url))
	return &NATSEmitter{nc: nc, log: log}, nil
}

func (e *NATSEmitter) Emit(ctx context.Context, eventType string, payload map[string]interface{}) {
	if e == nil || e.nc == nil {
		return
	}

	body := map[string]interface{}{
		"event":       eventType,
		"occurred_at": time.Now().UTC().Format(time.RFC3339Nano),
		"data":        payload,
	}
	b, err := json.Marshal(body)
	if err != nil {
		e.log.Warn("notification payload marshal failed", zap.String("event", eventType), zap.Error(err))
		return
	}

	if err := e.nc.Publish(subjectPrefix+eventType, b); err != nil {
		e.log.Warn("notification publish failed", zap.String("event", eventType), zap.Error(err))
	}
}

func (e *NATSEmitter) Close() {
	if e != nil && e.nc != nil {
		e.nc.Drain()
	}
}
