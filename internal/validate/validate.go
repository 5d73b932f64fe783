// Package validate checks the passenger and payment forms.  Failures are
// reported as a field -> message map so the UI can surface one human
// readable message next to each invalid input; validation never produces a
// Go error and never blocks anything except advancing to the next step.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/train-trip-booking/internal/model"
)

var (
	// emailRe accepts the simple local@domain.tld shape.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// phoneRe accepts an international digit pattern: optional +, 8-15 digits.
	phoneRe = regexp.MustCompile(`^\+?\d{8,15}$`)
	// nonDigits strips formatting from card numbers before counting digits.
	nonDigits = regexp.MustCompile(`\D`)
)

// Passenger validates the identity fields.  The returned map is empty when
// the form is valid.
func Passenger(f model.PassengerForm) map[string]string {
	problems := map[string]string{}

	if strings.TrimSpace(f.FirstName) == "" {
		problems["firstName"] = "first name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		problems["lastName"] = "last name is required"
	}
	if strings.TrimSpace(f.DocNumber) == "" {
		problems["docNumber"] = "document number is required"
	}
	if f.DOB == "" {
		problems["dob"] = "date of birth is required"
	} else if _, err := time.Parse("2006-01-02", f.DOB); err != nil {
		problems["dob"] = "date of birth must be a valid YYYY-MM-DD date"
	}
	if !phoneRe.MatchString(strings.ReplaceAll(f.Phone, " ", "")) {
		problems["phone"] = "phone must be 8 to 15 digits, optionally prefixed with +"
	}
	if !emailRe.MatchString(f.Email) {
		problems["email"] = "email must look like name@example.com"
	}
	return problems
}

// Payment validates the card fields.  Card data is checked and forgotten;
// nothing here is stored.
func Payment(card model.PaymentCard) map[string]string {
	problems := map[string]string{}

	if strings.TrimSpace(card.CardName) == "" {
		problems["cardName"] = "cardholder name is required"
	}
	digits := nonDigits.ReplaceAllString(card.CardNumber, "")
	if len(digits) < 12 {
		problems["cardNumber"] = "card number must contain at least 12 digits"
	}
	if month, err := strconv.Atoi(card.ExpMonth); err != nil || month < 1 || month > 12 {
		problems["expMonth"] = "expiry month must be between 1 and 12"
	}
	if !isDigits(card.ExpYear) || len(card.ExpYear) < 2 {
		problems["expYear"] = "expiry year must have at least 2 digits"
	}
	if !isDigits(card.CVV) || len(card.CVV) < 3 || len(card.CVV) > 4 {
		problems["cvv"] = "security code must be 3 or 4 digits"
	}
	return problems
}

// Seat validates a seat choice against the coach layout.
func Seat(n int) map[string]string {
	if !model.SeatAvailable(n) {
		return map[string]string{"seat": "seat is not available on this trip"}
	}
	return map[string]string{}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
