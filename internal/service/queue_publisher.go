// Package queue_publisher provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned to allow callers to ignore failures without
// interrupting the main request flow.
package queue_publisher

import (
    "context"
    "encoding/json"
    "errors"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog/log"

    q "github.com/iliyamo/train-trip-booking/internal/queue"
)

// ErrNoBroker indicates that no broker URL is configured. Payment handling
// treats this the same as any other publish failure: the booking succeeds
// and the event is dropped.
var ErrNoBroker = errors.New("no broker configured")

// PublishTicketIssued publishes a TicketIssuedEvent to the "ticket.issued"
// queue. The function attempts to be robust and to never panic; any error
// is logged and returned so the caller can choose to ignore it. Messages
// are marked as persistent.
func PublishTicketIssued(ctx context.Context, url string, event q.TicketIssuedEvent) error {
    if url == "" {
        return ErrNoBroker
    }
    conn, err := amqp.Dial(url)
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: dial failed")
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: channel open failed")
        return err
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        "ticket.issued", // name
        true,            // durable
        false,           // autoDelete
        false,           // exclusive
        false,           // noWait
        nil,             // args
    ); err != nil {
        log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: marshal event failed")
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx,
        "",              // default exchange
        "ticket.issued", // routing key = queue name
        false,           // mandatory
        false,           // immediate
        pub,
    ); err != nil {
        log.Warn().Err(err).Msg("rabbitmq: publish failed")
        return err
    }

    return nil
}
