package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestInsertWritesBackID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs("TTB-AB12CD34", uint64(42), "7215", "الرياض", "الدمام", "١٣ نوفمبر ٢٠٢٥",
			"09:15", "13:20", "economy", "Mahmoud Mansour", "mahmoud@example.com",
			sqlmock.AnyArg(), uint32(19000)).
		WillReturnResult(sqlmock.NewResult(9, 1))

	repo := NewBookingRepo(db)
	seat := 21
	rec := &BookingRecord{
		Reference:      "TTB-AB12CD34",
		TripID:         42,
		TrainNumber:    "7215",
		FromStation:    "الرياض",
		ToStation:      "الدمام",
		DateKey:        "١٣ نوفمبر ٢٠٢٥",
		Departure:      "09:15",
		Arrival:        "13:20",
		Plan:           "economy",
		PassengerName:  "Mahmoud Mansour",
		PassengerEmail: "mahmoud@example.com",
		Seat:           &seat,
		TotalCents:     19000,
	}
	if err := repo.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if rec.ID != 9 {
		t.Errorf("ID = %d, want 9", rec.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetByReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	cols := []string{
		"id", "reference", "trip_id", "train_number", "from_station", "to_station",
		"travel_date", "departure", "arrival", "plan",
		"passenger_name", "passenger_email", "seat", "total_cents", "created_at",
	}
	created := time.Date(2025, 11, 10, 8, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE reference = ?")).
		WithArgs("TTB-AB12CD34").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			9, "TTB-AB12CD34", 42, "7215", "الرياض", "الدمام",
			"١٣ نوفمبر ٢٠٢٥", "09:15", "13:20", "economy",
			"Mahmoud Mansour", "mahmoud@example.com", nil, 19000, created,
		))

	repo := NewBookingRepo(db)
	rec, err := repo.GetByReference(context.Background(), "TTB-AB12CD34")
	if err != nil {
		t.Fatalf("GetByReference: %v", err)
	}
	if rec.TrainNumber != "7215" || rec.FromStation != "الرياض" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Seat != nil {
		t.Errorf("seat = %v, want nil", *rec.Seat)
	}
	if !rec.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", rec.CreatedAt, created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetByReferenceMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE reference = ?")).
		WithArgs("TTB-MISSING0").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewBookingRepo(db)
	_, err = repo.GetByReference(context.Background(), "TTB-MISSING0")
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
