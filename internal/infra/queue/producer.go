package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderPayload is published for every submitted visit that carries a
// follow-up date.
type ReminderPayload struct {
	VisitID      int    `json:"visit_id"`
	StoreName    string `json:"store_name"`
	SRName       string `json:"sr_name"`
	Username     string `json:"username"`
	PhoneNumber  string `json:"phone_number"`
	LeadType     string `json:"lead_type"`
	FollowUpDate string `json:"follow_up_date"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishReminder(ctx context.Context, payload ReminderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish reminder: %w", err)
	}
	return nil
}
