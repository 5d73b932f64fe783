package model

// SearchDraft captures the rider's search criteria before a trip is chosen.
// It is persisted per booking session; absence means no search has been
// saved yet.  Station fields accept display names or codes, and DateKey must
// be one of the catalog's canonical date keys.
type SearchDraft struct {
	FromStation string `json:"fromStation"`
	ToStation   string `json:"toStation"`
	DateKey     string `json:"dateKey"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Infants     int    `json:"infants"`
}

// PassengerTotal returns the number of travelling passengers, never less
// than one so fare totals stay meaningful for an unsaved draft.
func (d SearchDraft) PassengerTotal() int {
	n := d.Adults + d.Children + d.Infants
	if n < 1 {
		return 1
	}
	return n
}

// Fare plan identifiers.  These match the three price columns on every
// generated trip.
const (
	PlanEconomy      = "economy"
	PlanEconomySaver = "economySaver"
	PlanBusiness     = "business"
)

// ValidPlan reports whether s names one of the three fare plans.
func ValidPlan(s string) bool {
	return s == PlanEconomy || s == PlanEconomySaver || s == PlanBusiness
}

// TripSelection records the chosen trip and fare plan.  Changing either one
// restarts the extras flow, so the draft store clears seat, meals, baggage
// and lounge whenever a new selection is written.
type TripSelection struct {
	TripID uint64 `json:"tripId"`
	Plan   string `json:"plan"`
}

// PassengerForm holds the identity and contact fields collected on the
// passenger-details step.
type PassengerForm struct {
	Title     string `json:"title"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DocType   string `json:"docType"`
	DocNumber string `json:"docNumber"`
	DOB       string `json:"dob"` // YYYY-MM-DD
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// FullName joins the first and last name for display on tickets.
func (p PassengerForm) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// PaymentCard holds the card fields entered on the payment step.  Card data
// is validated and then discarded; it is never persisted anywhere.
type PaymentCard struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	ExpMonth   string `json:"expMonth"`
	ExpYear    string `json:"expYear"`
	CVV        string `json:"cvv"`
}
