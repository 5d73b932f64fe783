// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketIssuedEvent is published when a payment completes and a booking is
// confirmed. It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the booking archive.
type TicketIssuedEvent struct {
    Reference      string `json:"reference"`
    TripID         uint64 `json:"trip_id"`
    TrainNumber    string `json:"train_number"`
    FromStation    string `json:"from_station"`
    ToStation      string `json:"to_station"`
    Date           string `json:"date"`
    Departure      string `json:"departure"`
    Arrival        string `json:"arrival"`
    Plan           string `json:"plan"`
    PassengerName  string `json:"passenger_name"`
    Seat           *int   `json:"seat,omitempty"`
    TotalCents     uint32 `json:"total_cents"`
    IssuedAt       string `json:"issued_at"`
}
