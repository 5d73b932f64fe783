package model

// Static tables for the extras step: on-board meals, checked baggage,
// lounge access and the seat-selection surcharge.  Prices are in SAR.

// Meal is an on-board meal option.
type Meal struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BaggageOption is a checked-baggage allowance tier.
type BaggageOption struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	WeightKg int     `json:"weight"`
	Price    float64 `json:"price"`
}

// Meals lists every orderable meal.
var Meals = []Meal{
	{ID: 1, Name: "ساندوتش شرائح الديك الرومي مع جبنة شيدر", Price: 25.00},
	{ID: 2, Name: "ساندوتش جبن الغاودا مع الطماطم بخبز الشيباتا", Price: 25.00},
	{ID: 3, Name: "ساندوتش الدجاج المشوي مع الخضار", Price: 25.00},
	{ID: 4, Name: "ساندوتش لحم البقر مع الجبن الأبيض", Price: 25.00},
	{ID: 5, Name: "ساندوتش التونة مع الذرة والمايونيز", Price: 25.00},
	{ID: 6, Name: "ساندوتش البيض والجبن مع الطماطم", Price: 25.00},
	{ID: 7, Name: "ساندوتش الجبن الكريمي مع الزعتر", Price: 25.00},
	{ID: 8, Name: "ساندوتش الحمص والطحينة مع الخضار", Price: 25.00},
}

// BaggageOptions lists the checked-baggage tiers.
var BaggageOptions = []BaggageOption{
	{ID: 1, Name: "كبيرة", WeightKg: 32, Price: 85.00},
	{ID: 2, Name: "كبيرة", WeightKg: 25, Price: 75.00},
	{ID: 3, Name: "كبيرة", WeightKg: 15, Price: 60.00},
}

// Flat fees applied by the cart.
const (
	LoungePrice   = 30.00 // lounge access, once per booking
	SeatSurcharge = 5.00  // charged when a specific seat was chosen
)

// SeatCount is the number of seats in a coach; seats are numbered 1..SeatCount.
const SeatCount = 60

// unavailableSeats are blocked on every trip (crew, accessibility reserve).
var unavailableSeats = map[int]bool{
	11: true, 12: true, 13: true, 14: true, 15: true,
	52: true, 53: true, 54: true, 55: true, 56: true, 57: true,
}

// SeatAvailable reports whether a seat number can be chosen.
func SeatAvailable(n int) bool {
	return n >= 1 && n <= SeatCount && !unavailableSeats[n]
}

// MealByID returns the meal with the given id.
func MealByID(id int) (Meal, bool) {
	for _, m := range Meals {
		if m.ID == id {
			return m, true
		}
	}
	return Meal{}, false
}

// BaggageByID returns the baggage option with the given id.
func BaggageByID(id int) (BaggageOption, bool) {
	for _, b := range BaggageOptions {
		if b.ID == id {
			return b, true
		}
	}
	return BaggageOption{}, false
}
