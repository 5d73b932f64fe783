// Package handler exposes HTTP handlers for the booking API.  This file
// defines the public browse endpoints: stations, bookable dates and trip
// search.  These routes require no session and are safe to cache because
// the catalog is deterministic.

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-trip-booking/internal/catalog"
	"github.com/iliyamo/train-trip-booking/internal/metrics"
)

// TripsHandler aggregates the catalog and metrics needed for browsing.
type TripsHandler struct {
	Catalog *catalog.Catalog   // generated trip inventory
	Metrics *metrics.Collector // request counters
}

// GetStations returns the station reference table.
// Response JSON contains an "items" array of stations.
func (h *TripsHandler) GetStations(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": catalog.Stations()})
}

// GetDates returns the bookable date keys in chronological order.
func (h *TripsHandler) GetDates(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": catalog.DateKeys()})
}

// SearchTrips lists the trips for a route and date, taken from the query
// string (from, to, date).  Station display names and codes are both
// accepted.  Unknown routes or dates return an empty items array with 200:
// a search with no results is not an error.
func (h *TripsHandler) SearchTrips(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	date := c.QueryParam("date")
	if from == "" || to == "" || date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from, to and date are required"})
	}
	if h.Metrics != nil {
		h.Metrics.TripSearches.Inc()
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.TripsForRoute(from, to, date)})
}
