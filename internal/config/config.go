package config // package config loads application configuration from environment variables

import (
    "log"  // log is used to report configuration errors and halt execution
    "os"   // os provides access to environment variables
    "time" // time expresses the artificial payment delay
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The archive database and the message broker are
// optional collaborators: when their variables are absent the related
// features are disabled instead of failing startup.
type Config struct {
    Env            string        // application environment (e.g. "dev", "prod")
    Port           string        // HTTP port to listen on
    SessionSecret  string        // secret used to sign booking-session JWTs
    SessionTTLMin  int           // booking-session time‑to‑live in minutes
    PaymentDelay   time.Duration // simulated processing delay before a payment completes
    DBUser         string        // archive database username (optional)
    DBPass         string        // archive database password (optional)
    DBHost         string        // archive database host; empty disables the archive
    DBPort         string        // archive database port
    DBName         string        // archive database name
    AMQPURL        string        // broker URL; empty disables ticket events
    ConsumerEnable bool          // run the ticket-log consumer in-process
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),        // environment (dev/test/prod)
        Port:           must("APP_PORT"),       // port to bind the HTTP server
        SessionSecret:  must("SESSION_SECRET"), // secret used for signing session JWTs
        SessionTTLMin:  envInt("SESSION_TTL_MIN", 120),
        PaymentDelay:   time.Duration(envInt("PAYMENT_DELAY_MS", 1500)) * time.Millisecond,
        DBUser:         os.Getenv("DB_USER"),
        DBPass:         os.Getenv("DB_PASS"),
        DBHost:         os.Getenv("DB_HOST"),
        DBPort:         getenv("DB_PORT", "3306"),
        DBName:         getenv("DB_NAME", "bookings"),
        AMQPURL:        firstEnv("RABBITMQ_URL", "AMQP_URL"),
        ConsumerEnable: envBool("TICKET_CONSUMER_ENABLED", true),
    }
}

// ArchiveEnabled reports whether the confirmed-booking archive is configured.
func (c Config) ArchiveEnabled() bool {
    return c.DBHost != "" && c.DBUser != ""
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// firstEnv returns the first non-empty value among the given variables.
func firstEnv(keys ...string) string {
    for _, k := range keys {
        if v := os.Getenv(k); v != "" {
            return v
        }
    }
    return ""
}
