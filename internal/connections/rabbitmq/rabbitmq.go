// Package rabbitmq owns the process-wide broker connection. It is opened
// once at startup and shared by every subscriber; dashboards detach their
// consumers but never close the connection itself.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"resto-pos/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Client struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string

	acks <-chan amqp.Confirmation
	mu   sync.Mutex // serializes Publish while waiting for confirms
}

func Dial(cfg config.Rabbit) (*Client, error) {
	vhost := cfg.VHost
	if vhost == "" {
		vhost = "/"
	}
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/%s", cfg.User, cfg.Password, cfg.Host, cfg.Port, vhost)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	c := &Client{conn: conn, ch: ch, exchange: cfg.Exchange, acks: acks}
	if err := c.declare(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// declare sets up the fanout exchange that carries order events to every
// connected dashboard.
func (c *Client) declare() error {
	return c.ch.ExchangeDeclare(c.exchange, "fanout", true, false, false, false, nil)
}

func (c *Client) Exchange() string { return c.exchange }

func (c *Client) Channel() *amqp.Channel { return c.ch }

func (c *Client) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *Client) Ping() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Publish sends body to the fanout exchange and waits for the broker ack.
func (c *Client) Publish(ctx context.Context, eventName string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.ch.PublishWithContext(ctx, c.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Type:        eventName,
		Timestamp:   time.Now().UTC(),
		Body:        body,
	})
	if err != nil {
		return err
	}
	select {
	case conf := <-c.acks:
		if conf.Ack {
			return nil
		}
		return errors.New("publish NACK from broker")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume binds an exclusive auto-delete queue to the fanout exchange and
// returns its delivery stream. Each dashboard gets its own queue, so every
// event reaches every subscriber.
func (c *Client) Consume(consumer string) (<-chan amqp.Delivery, error) {
	q, err := c.ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return nil, err
	}
	if err := c.ch.QueueBind(q.Name, "", c.exchange, false, nil); err != nil {
		return nil, err
	}
	return c.ch.Consume(q.Name, consumer, true, true, false, false, nil)
}
