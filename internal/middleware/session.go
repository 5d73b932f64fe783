package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http"              // HTTP status codes for responses
    "strings"               // string utilities for prefix checking and trimming

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// sessionKey is the context key under which the session id is stored.
const sessionKey = "session_id"

// SessionAuth returns an Echo middleware that validates a Bearer session
// token and injects the token's session id claim into the request context.
// The provided secret must match the one used when issuing tokens.  This
// middleware wraps every booking-funnel route so that handlers can scope
// draft state via SessionID(c).
func SessionAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header starts with "Bearer " followed by the JWT.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Parse the token using the HS256 signing method and our secret.
            // The callback ensures the algorithm matches what we expect.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }
            sid, _ := claims["sid"].(string)
            if sid == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            c.Set(sessionKey, sid)
            return next(c)
        }
    }
}

// SessionID extracts the session id placed in the context by SessionAuth.
// It returns an empty string when the middleware did not run.
func SessionID(c echo.Context) string {
    if v, ok := c.Get(sessionKey).(string); ok {
        return v
    }
    return ""
}
