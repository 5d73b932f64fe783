// Package cart computes extras and fare totals.  Every function is pure:
// totals are recomputed from the current selection on each call and the
// inputs are never mutated, so recomputation is idempotent by construction.
package cart

import (
	"math"

	"github.com/iliyamo/train-trip-booking/internal/catalog"
	"github.com/iliyamo/train-trip-booking/internal/model"
)

// Totals is the cart breakdown shown on every step and at payment.
type Totals struct {
	Meals      float64 `json:"meals"`
	Baggage    float64 `json:"baggage"`
	Lounge     float64 `json:"lounge"`
	Seat       float64 `json:"seat"`
	Extras     float64 `json:"extras"`
	Fare       float64 `json:"fare"`
	GrandTotal float64 `json:"grandTotal"`
}

// MealsTotal sums quantity × unit price over the selected meals.  Unknown
// meal ids and non-positive quantities contribute nothing.
func MealsTotal(selected map[int]int) float64 {
	total := 0.0
	for id, qty := range selected {
		if qty <= 0 {
			continue
		}
		if meal, ok := model.MealByID(id); ok {
			total += meal.Price * float64(qty)
		}
	}
	return round2(total)
}

// BaggageTotal sums quantity × unit price over the selected baggage tiers.
func BaggageTotal(selected map[int]int) float64 {
	total := 0.0
	for id, qty := range selected {
		if qty <= 0 {
			continue
		}
		if bag, ok := model.BaggageByID(id); ok {
			total += bag.Price * float64(qty)
		}
	}
	return round2(total)
}

// LoungeTotal is the flat lounge fee when selected.
func LoungeTotal(selected bool) float64 {
	if selected {
		return model.LoungePrice
	}
	return 0
}

// SeatTotal is the flat surcharge when a specific seat was chosen.
func SeatTotal(seatChosen bool) float64 {
	if seatChosen {
		return model.SeatSurcharge
	}
	return 0
}

// ExtrasTotal combines the four extras lines.
func ExtrasTotal(meals, baggage map[int]int, lounge, seatChosen bool) float64 {
	return round2(MealsTotal(meals) + BaggageTotal(baggage) + LoungeTotal(lounge) + SeatTotal(seatChosen))
}

// FarePerPassenger picks the per-passenger price of a trip for a fare plan.
func FarePerPassenger(trip catalog.Trip, plan string) float64 {
	switch plan {
	case model.PlanBusiness:
		return trip.BusinessPrice
	case model.PlanEconomySaver:
		return trip.EconomySaver
	default:
		return trip.EconomyPrice
	}
}

// Compute assembles the full breakdown: fare (per-passenger price × count)
// plus the extras total.
func Compute(trip catalog.Trip, plan string, passengers int, meals, baggage map[int]int, lounge, seatChosen bool) Totals {
	if passengers < 1 {
		passengers = 1
	}
	t := Totals{
		Meals:   MealsTotal(meals),
		Baggage: BaggageTotal(baggage),
		Lounge:  LoungeTotal(lounge),
		Seat:    SeatTotal(seatChosen),
		Fare:    round2(FarePerPassenger(trip, plan) * float64(passengers)),
	}
	t.Extras = round2(t.Meals + t.Baggage + t.Lounge + t.Seat)
	t.GrandTotal = round2(t.Fare + t.Extras)
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
