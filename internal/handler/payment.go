// This file defines the payment step: card validation, the simulated
// processing delay, the booking reference, archiving, the ticket.issued
// event and clearing the draft.  Archiving and publishing are best-effort;
// only card validation and an incomplete draft can fail the request.

package handler

import (
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/train-trip-booking/internal/cart"
	"github.com/iliyamo/train-trip-booking/internal/metrics"
	"github.com/iliyamo/train-trip-booking/internal/middleware"
	"github.com/iliyamo/train-trip-booking/internal/model"
	"github.com/iliyamo/train-trip-booking/internal/queue"
	"github.com/iliyamo/train-trip-booking/internal/repository"
	queue_publisher "github.com/iliyamo/train-trip-booking/internal/service"
	"github.com/iliyamo/train-trip-booking/internal/utils"
	"github.com/iliyamo/train-trip-booking/internal/validate"
)

// PaymentHandler confirms bookings.  Bookings may be nil when the archive
// database is not configured; confirmed bookings are then only reported to
// the client and the event queue.
type PaymentHandler struct {
	Booking  *BookingHandler
	Bookings *repository.BookingRepo
	Metrics  *metrics.Collector
	AMQPURL  string
	Delay    time.Duration
}

// SubmitPayment validates the card, simulates processing and confirms the
// booking.  The card itself is checked and forgotten.
func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	var card model.PaymentCard
	if err := c.Bind(&card); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if problems := validate.Payment(card); len(problems) > 0 {
		if h.Metrics != nil {
			h.Metrics.PaymentFailures.WithLabelValues("validation").Inc()
		}
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": problems})
	}

	st := h.Booking.loadState(c)
	if !st.hasDraft || !st.hasTrip || !st.hasForm {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is incomplete: search, trip and passenger details are required"})
	}

	// Simulated processing window, as the payment gateway would impose.
	if h.Delay > 0 {
		time.Sleep(h.Delay)
	}

	reference, err := utils.NewBookingReference()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue booking reference"})
	}

	totals := cart.Compute(st.trip, st.sel.Plan, st.draft.PassengerTotal(), st.meals, st.baggage, st.lounge, st.seat != 0)
	totalCents := uint32(math.Round(totals.GrandTotal * 100))

	var seat *int
	if st.seat != 0 {
		s := st.seat
		seat = &s
	}
	rec := &repository.BookingRecord{
		Reference:      reference,
		TripID:         st.trip.ID,
		TrainNumber:    st.trip.TrainNumber,
		FromStation:    st.draft.FromStation,
		ToStation:      st.draft.ToStation,
		DateKey:        st.draft.DateKey,
		Departure:      st.trip.Departure,
		Arrival:        st.trip.Arrival,
		Plan:           st.sel.Plan,
		PassengerName:  st.form.FullName(),
		PassengerEmail: st.form.Email,
		Seat:           seat,
		TotalCents:     totalCents,
	}

	// Archive best-effort: a storage failure never loses the booking for
	// the rider, only for the archive.
	if h.Bookings != nil {
		if err := h.Bookings.Insert(ctx, rec); err != nil {
			log.Error().Err(err).Str("reference", reference).Msg("booking archive insert failed")
			if h.Metrics != nil {
				h.Metrics.PaymentFailures.WithLabelValues("archive").Inc()
			}
		}
	}

	issuedAt := time.Now().UTC().Format(time.RFC3339)
	_ = queue_publisher.PublishTicketIssued(ctx, h.AMQPURL, queue.TicketIssuedEvent{
		Reference:     reference,
		TripID:        st.trip.ID,
		TrainNumber:   st.trip.TrainNumber,
		FromStation:   st.draft.FromStation,
		ToStation:     st.draft.ToStation,
		Date:          st.draft.DateKey,
		Departure:     st.trip.Departure,
		Arrival:       st.trip.Arrival,
		Plan:          st.sel.Plan,
		PassengerName: st.form.FullName(),
		Seat:          seat,
		TotalCents:    totalCents,
		IssuedAt:      issuedAt,
	})

	h.Booking.Store.Clear(ctx, sid)

	if h.Metrics != nil {
		h.Metrics.BookingsConfirmed.Inc()
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"reference": reference,
		"totals":    totals,
		"issued_at": issuedAt,
	})
}
