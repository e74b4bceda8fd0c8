package push

import (
	"encoding/json"
	"sync"

	"resto-pos/internal/connections/rabbitmq"
	"resto-pos/internal/domain"
	"resto-pos/internal/logger"
)

// AMQPChannel fans broker deliveries out to local subscribers. One
// instance per process; every dashboard view in the process shares it.
type AMQPChannel struct {
	lg *logger.Logger

	mu   sync.Mutex
	next int
	subs map[string]map[int]Handler
}

// NewAMQP binds a consumer queue on the shared connection and starts the
// dispatch loop. The loop ends when the connection closes; a missed
// event is repaired only by the next full reload.
func NewAMQP(client *rabbitmq.Client, consumer string, lg *logger.Logger) (*AMQPChannel, error) {
	deliveries, err := client.Consume(consumer)
	if err != nil {
		return nil, err
	}
	c := &AMQPChannel{lg: lg, subs: make(map[string]map[int]Handler)}
	go func() {
		for d := range deliveries {
			var order domain.Order
			if err := json.Unmarshal(d.Body, &order); err != nil || order.ID == "" {
				// malformed payloads are dropped, never fatal
				c.lg.Debug("event_dropped", map[string]any{"event": d.Type})
				continue
			}
			c.dispatch(d.Type, order)
		}
		c.lg.Info("push_channel_closed", nil)
	}()
	return c, nil
}

func (c *AMQPChannel) dispatch(event string, order domain.Order) {
	c.mu.Lock()
	handlers := make([]Handler, 0, len(c.subs[event]))
	for _, h := range c.subs[event] {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()
	for _, h := range handlers {
		h(order)
	}
}

func (c *AMQPChannel) Subscribe(event string, h Handler) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subs[event] == nil {
		c.subs[event] = make(map[int]Handler)
	}
	id := c.next
	c.next++
	c.subs[event][id] = h
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs[event], id)
	}
}
