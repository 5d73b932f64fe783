package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	CatalogRoutes prometheus.Gauge
	CatalogTrips  prometheus.Gauge

	TripSearches      prometheus.Counter
	BookingsConfirmed prometheus.Counter
	PaymentFailures   *prometheus.CounterVec // reason label: validation|archive
	TicketsRendered   prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		CatalogRoutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "booking_catalog_routes",
			Help: "Number of station pairs in the generated catalog.",
		}),
		CatalogTrips: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "booking_catalog_trips",
			Help: "Total trips in the generated catalog across all dates.",
		}),
		TripSearches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_trip_searches_total",
			Help: "Total trip search requests served.",
		}),
		BookingsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_confirmed_total",
			Help: "Total bookings confirmed after payment.",
		}),
		PaymentFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_payment_failures_total",
			Help: "Payments rejected, by reason.",
		}, []string{"reason"}),
		TicketsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_tickets_rendered_total",
			Help: "Total PDF tickets rendered.",
		}),
	}

	// Register
	reg.MustRegister(
		c.CatalogRoutes, c.CatalogTrips,
		c.TripSearches, c.BookingsConfirmed, c.PaymentFailures, c.TicketsRendered,
	)

	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
