package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-trip-booking/internal/handler"
	"github.com/iliyamo/train-trip-booking/internal/middleware"
)

// RegisterBooking registers the session-scoped booking funnel under /v1.
// POST /v1/sessions issues the anonymous session token; every other route
// requires it.  The funnel mirrors the booking steps: search draft, trip
// selection, passenger details, seat, extras, summary and payment.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, p *handler.PaymentHandler, sessionSecret string) {
	e.POST("/v1/sessions", b.CreateSession)

	g := e.Group(
		"/v1/booking",
		middleware.SessionAuth(sessionSecret),
	)
	g.GET("/draft", b.GetDraft)
	g.PUT("/draft", b.PutDraft)
	g.PUT("/trip", b.SelectTrip)
	g.GET("/passenger", b.GetPassenger)
	g.PUT("/passenger", b.PutPassenger)
	g.GET("/seats", b.GetSeatMap)
	g.PUT("/seat", b.PutSeat)
	g.GET("/extras", b.GetExtras)
	g.PUT("/meals", b.PutMeals)
	g.PUT("/baggage", b.PutBaggage)
	g.PUT("/lounge", b.PutLounge)
	g.GET("/summary", b.GetSummary)
	g.POST("/payment", p.SubmitPayment)
}

// RegisterArchive registers the confirmed-booking lookups.  References are
// unguessable, so no session is required to retrieve a booking by its
// reference.
func RegisterArchive(e *echo.Echo, a *handler.ArchiveHandler) {
	e.GET("/v1/bookings/:reference", a.GetBooking)
	e.GET("/v1/bookings/:reference/ticket", a.GetTicket)
}
