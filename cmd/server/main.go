package main // Entry point package

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/train-trip-booking/internal/catalog"
	"github.com/iliyamo/train-trip-booking/internal/config"
	"github.com/iliyamo/train-trip-booking/internal/database"
	"github.com/iliyamo/train-trip-booking/internal/handler"
	"github.com/iliyamo/train-trip-booking/internal/metrics"
	appmw "github.com/iliyamo/train-trip-booking/internal/middleware"
	"github.com/iliyamo/train-trip-booking/internal/queue"
	"github.com/iliyamo/train-trip-booking/internal/repository"
	"github.com/iliyamo/train-trip-booking/internal/router"
	"github.com/iliyamo/train-trip-booking/internal/store"
)

func main() {
	// .env is a convenience for local runs; absence is not an error.
	_ = godotenv.Load()

	if os.Getenv("APP_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	if os.Getenv("APP_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	cfg := config.Load() // Load environment config

	// The catalog is generated once and read-only afterwards.
	cat := catalog.Build()
	col := metrics.NewCollector()
	col.CatalogRoutes.Set(float64(cat.RouteCount()))
	col.CatalogTrips.Set(float64(cat.TripCount()))
	log.Info().Int("routes", cat.RouteCount()).Int("trips", cat.TripCount()).Msg("trip catalog generated")

	// Redis backs drafts, the response cache and the rate limiter; nil means
	// all three degrade (in-process drafts, no cache, no limiting).
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, using in-process draft store")
	}
	drafts := store.New(rdb, time.Duration(cfg.SessionTTLMin)*time.Minute)

	// The booking archive is optional.
	var bookings *repository.BookingRepo
	if cfg.ArchiveEnabled() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Warn().Err(err).Msg("booking archive unavailable, bookings will not be persisted")
		} else {
			bookings = repository.NewBookingRepo(db)
		}
	}

	if cfg.AMQPURL != "" && cfg.ConsumerEnable {
		go func() {
			if err := queue.StartTicketConsumer(cfg.AMQPURL); err != nil {
				log.Error().Err(err).Msg("ticket consumer stopped")
			}
		}()
	}

	trips := &handler.TripsHandler{Catalog: cat, Metrics: col}
	booking := &handler.BookingHandler{
		Catalog:       cat,
		Store:         drafts,
		SessionSecret: cfg.SessionSecret,
		SessionTTLMin: cfg.SessionTTLMin,
	}
	payment := &handler.PaymentHandler{
		Booking:  booking,
		Bookings: bookings,
		Metrics:  col,
		AMQPURL:  cfg.AMQPURL,
		Delay:    cfg.PaymentDelay,
	}
	archive := &handler.ArchiveHandler{Bookings: bookings, Metrics: col}

	e := echo.New() // Create Echo instance
	e.HideBanner = true

	router.RegisterRoutes(e, col)
	router.RegisterBrowse(e, trips,
		appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		appmw.NewRedisCache(config.LoadCacheConfig(), rdb),
	)
	router.RegisterBooking(e, booking, payment, cfg.SessionSecret)
	router.RegisterArchive(e, archive)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal().Err(err).Msg("server stopped")
	}
}
