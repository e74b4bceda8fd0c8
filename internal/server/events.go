package server

import (
	"context"
	"encoding/json"
	"fmt"

	"resto-pos/internal/connections/rabbitmq"
	"resto-pos/internal/domain"
)

// amqpPublisher pushes order events through the fanout exchange.
type amqpPublisher struct {
	client *rabbitmq.Client
}

func (p *amqpPublisher) PublishOrderEvent(ctx context.Context, event string, order domain.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event, err)
	}
	return p.client.Publish(ctx, event, body)
}
