// Package orderevents publishes accepted orders to Kafka for the kitchen worker.
package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// DefaultTopic is the topic the kitchen worker consumes new orders from.
const DefaultTopic = "orders.new"

// EventTypeHeader carries the kind of event on every published message.
const EventTypeHeader = "event-type"

const orderCreatedEvent = "order.created"

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderMessage is the JSON payload of an order.created event.
type OrderMessage struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customerName"`
	Table        string        `json:"table"`
	Items        []ItemMessage `json:"items"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// ItemMessage is one order line inside an OrderMessage.
type ItemMessage struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Note        string  `json:"note"`
}

// KafkaPublisher implements ports.OrderEventPublisher. Messages are keyed by order id
// so every event of one order lands on the same partition.
type KafkaPublisher struct {
	writer MessageWriter
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewKafkaPublisher writes to topic on brokers. The writer connects lazily, on the
// first publish.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

// NewKafkaPublisherWithWriter publishes through writer, which must already target
// the topic.
func NewKafkaPublisherWithWriter(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// PublishOrderCreated writes one order.created message and waits for the broker ack.
func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(NewOrderMessage(o))
	if err != nil {
		return fmt.Errorf("encode order %s: %w", o.ID(), err)
	}

	msg := kafka.Message{
		Key:     []byte(o.ID().String()),
		Value:   payload,
		Time:    o.CreatedAt(),
		Headers: []kafka.Header{{Key: EventTypeHeader, Value: []byte(orderCreatedEvent)}},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order %s: %w", o.ID(), err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NewOrderMessage snapshots o in the wire shape the kitchen worker reads.
func NewOrderMessage(o *order.Order) OrderMessage {
	items := make([]ItemMessage, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemMessage{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Note:        item.Note(),
		})
	}

	return OrderMessage{
		ID:           o.ID().String(),
		CustomerName: o.CustomerName(),
		Table:        o.Table(),
		Items:        items,
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt().UTC(),
	}
}
