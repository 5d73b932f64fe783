package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// BookingRepo archives confirmed bookings.  The archive is a flat table:
// one row per confirmed booking holding the trip snapshot, the lead
// passenger and the paid total.  Trip details are denormalised into the row
// because trips are generated, not stored, and the archive must stay
// readable even if the generation tables change.  All timestamp fields are
// assumed to be stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookingRecord mirrors the schema of the bookings table.
type BookingRecord struct {
	ID             uint64    `json:"-"`
	Reference      string    `json:"reference"`
	TripID         uint64    `json:"tripId"`
	TrainNumber    string    `json:"trainNumber"`
	FromStation    string    `json:"fromStation"`
	ToStation      string    `json:"toStation"`
	DateKey        string    `json:"date"`
	Departure      string    `json:"departure"`
	Arrival        string    `json:"arrival"`
	Plan           string    `json:"plan"`
	PassengerName  string    `json:"passengerName"`
	PassengerEmail string    `json:"passengerEmail"`
	Seat           *int      `json:"seat,omitempty"`
	TotalCents     uint32    `json:"totalCents"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Insert stores a confirmed booking.  The generated row ID is written back
// to the record.
func (r *BookingRepo) Insert(ctx context.Context, rec *BookingRecord) error {
	const q = `INSERT INTO bookings
		(reference, trip_id, train_number, from_station, to_station, travel_date,
		 departure, arrival, plan, passenger_name, passenger_email, seat, total_cents)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var seat sql.NullInt64
	if rec.Seat != nil {
		seat = sql.NullInt64{Int64: int64(*rec.Seat), Valid: true}
	}
	result, err := r.db.ExecContext(ctx, q,
		rec.Reference, rec.TripID, rec.TrainNumber, rec.FromStation, rec.ToStation,
		rec.DateKey, rec.Departure, rec.Arrival, rec.Plan,
		rec.PassengerName, rec.PassengerEmail, seat, rec.TotalCents,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = uint64(id)
	return nil
}

// GetByReference loads an archived booking by its public reference.  When
// no booking exists for the reference, ErrBookingNotFound is returned.
func (r *BookingRepo) GetByReference(ctx context.Context, reference string) (*BookingRecord, error) {
	const q = `SELECT id, reference, trip_id, train_number, from_station, to_station,
	                  travel_date, departure, arrival, plan,
	                  passenger_name, passenger_email, seat, total_cents, created_at
	           FROM bookings WHERE reference = ?`
	var rec BookingRecord
	var seat sql.NullInt64
	err := r.db.QueryRowContext(ctx, q, reference).Scan(
		&rec.ID, &rec.Reference, &rec.TripID, &rec.TrainNumber, &rec.FromStation, &rec.ToStation,
		&rec.DateKey, &rec.Departure, &rec.Arrival, &rec.Plan,
		&rec.PassengerName, &rec.PassengerEmail, &seat, &rec.TotalCents, &rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if seat.Valid {
		n := int(seat.Int64)
		rec.Seat = &n
	}
	return &rec, nil
}
