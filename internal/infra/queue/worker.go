package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderMailer is the contract the worker delivers through.
type ReminderMailer interface {
	SendFollowUpReminder(payload ReminderPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  ReminderMailer
}

func NewWorker(ch *amqp.Channel, mailer ReminderMailer) *Worker {
	return &Worker{Channel: ch, Mailer: mailer}
}

// Start consumes the reminder queue until the channel closes. Manual acks:
// malformed messages are rejected without requeue so they land on the DLQ.
func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("[Worker] failed to register consumer: %s", err)
	}

	log.Printf("[Worker] waiting for reminders on %q", queueName)

	for d := range msgs {
		var payload ReminderPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("[Worker] malformed reminder message: %s", err)
			d.Nack(false, false)
			continue
		}

		if err := w.Mailer.SendFollowUpReminder(payload); err != nil {
			log.Printf("[Worker] reminder for visit %d failed: %s", payload.VisitID, err)
			d.Nack(false, false)
			continue
		}

		log.Printf("[Worker] reminder sent for visit %d (%s)", payload.VisitID, payload.StoreName)
		d.Ack(false)
	}
}
