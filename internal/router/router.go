package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/train-trip-booking/internal/handler" // import the handlers that implement business logic
	"github.com/iliyamo/train-trip-booking/internal/metrics" // import the Prometheus collector for the /metrics endpoint
)

// RegisterRoutes registers routes that do not require a session on the
// provided Echo instance: the health check and the Prometheus scrape
// endpoint.
func RegisterRoutes(e *echo.Echo, m *metrics.Collector) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
}

// RegisterBrowse registers the unauthenticated browse endpoints: stations,
// bookable dates and trip search.  The extra middleware (response cache,
// rate limiter) is applied to the search route only; the reference tables
// are too small to bother caching.
func RegisterBrowse(e *echo.Echo, t *handler.TripsHandler, searchMW ...echo.MiddlewareFunc) {
	// Station and date reference tables
	e.GET("/v1/stations", t.GetStations)
	e.GET("/v1/dates", t.GetDates)
	// Trip search by ?from=&to=&date=
	e.GET("/v1/trips", t.SearchTrips, searchMW...)
}
