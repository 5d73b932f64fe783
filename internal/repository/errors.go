// Package repository persists confirmed bookings to the archive database.
// Sentinel errors defined here let handlers distinguish failure scenarios,
// for example translating a missing booking reference into an HTTP 404
// instead of a generic server error.
package repository

import "errors"

// ErrBookingNotFound is returned when no archived booking exists for the
// requested reference. Handlers should translate this into an HTTP 404
// response.
var ErrBookingNotFound = errors.New("booking not found")
