// This file defines the archive lookups: fetching a confirmed booking by
// its public reference and downloading its PDF e-ticket.  Both return 404
// when the archive is disabled, since nothing can be looked up.

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-trip-booking/internal/metrics"
	"github.com/iliyamo/train-trip-booking/internal/repository"
	"github.com/iliyamo/train-trip-booking/internal/ticket"
)

// ArchiveHandler serves confirmed bookings from the archive database.
type ArchiveHandler struct {
	Bookings *repository.BookingRepo
	Metrics  *metrics.Collector
}

// GetBooking returns an archived booking by reference.
func (h *ArchiveHandler) GetBooking(c echo.Context) error {
	if h.Bookings == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	rec, err := h.Bookings.GetByReference(c.Request().Context(), c.Param("reference"))
	if errors.Is(err, repository.ErrBookingNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": rec})
}

// GetTicket renders the e-ticket PDF for an archived booking.
func (h *ArchiveHandler) GetTicket(c echo.Context) error {
	if h.Bookings == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	rec, err := h.Bookings.GetByReference(c.Request().Context(), c.Param("reference"))
	if errors.Is(err, repository.ErrBookingNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	blob, filename, err := ticket.Build(rec)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not render ticket"})
	}
	if h.Metrics != nil {
		h.Metrics.TicketsRendered.Inc()
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", blob)
}
