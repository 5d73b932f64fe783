package utils // package utils provides helper functions for session tokens and references

import (
    "crypto/rand"  // secure random number generation
    "encoding/hex" // hex encoding functions
    "strings"      // uppercasing booking references
    "time"         // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed JWT booking-session token along with its
// expiry.  The Token field contains the JWT string.  Exp stores the
// expiration timestamp as a time.Time.  The token is sent in the
// Authorization header on every step of the booking funnel; the embedded
// session id scopes the draft state in the store.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewSessionID returns a fresh random session identifier.  Sessions are
// anonymous: the id carries no user identity, it only namespaces a draft.
func NewSessionID() (string, error) {
    return randomHex(16) // 16 bytes -> 32 hex chars
}

// NewSessionToken builds and signs an HS256 JWT for a booking session.  It
// takes the signing secret, the session id and a TTL in minutes.  The JWT
// includes the session id (sid), expiration (exp) and issued at (iat).
func NewSessionToken(secret, sessionID string, ttlMin int) (SessionToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sid": sessionID,
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// NewBookingReference returns a public booking reference of the form
// TTB-XXXXXXXX.  References are random, not sequential, so they cannot be
// enumerated.
func NewBookingReference() (string, error) {
    raw, err := randomHex(4) // 4 bytes -> 8 hex chars
    if err != nil {
        return "", err
    }
    return "TTB-" + strings.ToUpper(raw), nil
}

// randomHex returns a hex‑encoded string generated from n bytes of
// cryptographically secure random data.  If the random number generator
// fails, an error is returned.
func randomHex(n int) (string, error) {
    buf := make([]byte, n)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return hex.EncodeToString(buf), nil
}
