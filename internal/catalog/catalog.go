// Package catalog deterministically synthesises the trip inventory for the
// simulated railway.  The catalog is built once at startup from the static
// reference tables and is read-only afterwards; every query is a total
// function that degrades to an empty result instead of failing.
package catalog

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Trip is a single bookable departure.  Trips are created once during the
// catalog build and never mutated afterwards.  JSON field names follow the
// wire format the booking UI consumes.
type Trip struct {
	ID               uint64  `json:"id"`
	TrainNumber      string  `json:"trainNumber"`
	Departure        string  `json:"departure"` // HH:MM
	Arrival          string  `json:"arrival"`   // HH:MM, may wrap past midnight
	DepartureStation string  `json:"departureStation"`
	ArrivalStation   string  `json:"arrivalStation"`
	Stops            string  `json:"stops"`
	Duration         string  `json:"duration"` // H:MM label
	EconomyPrice     float64 `json:"economyPrice"`
	BusinessPrice    float64 `json:"businessPrice"`
	EconomySaver     float64 `json:"economySaver"`
}

// Catalog holds the full generated inventory keyed by "FROM-TO" route key,
// then by date key.  It is safe for concurrent readers once built.
type Catalog struct {
	routes map[string]map[string][]Trip
	trips  int
}

// Build generates the complete catalog.  Iteration order is fixed (origin
// in adjacency-table order, destination in list order, date in chronological
// order, trip index within date) because the single monotonic ID counter
// depends on it.
func Build() *Catalog {
	c := &Catalog{routes: make(map[string]map[string][]Trip)}
	var nextID uint64

	getNextID := func() uint64 {
		nextID++
		return nextID
	}

	for _, route := range adjacency {
		fromCode := ResolveStation(route.From)
		for _, toName := range route.To {
			toCode := ResolveStation(toName)
			routeKey := fromCode + "-" + toCode
			profile := profileFor(fromCode, toCode)
			routeDates := make(map[string][]Trip, len(dateKeys))

			total := 0
			for _, dateKey := range dateKeys {
				trips := generateTripsForDate(fromCode, toCode, profile, routeKey+"-"+dateKey, getNextID)
				routeDates[dateKey] = trips
				total += len(trips)
			}

			// A route must never be completely unbookable: when every date
			// came up empty, force one trip on the first date and first slot.
			if total == 0 {
				routeDates[dateKeys[0]] = []Trip{
					createTrip(fromCode, toCode, timeSlots[0], profile, routeKey+"-fallback", getNextID),
				}
				total = 1
			}

			c.routes[routeKey] = routeDates
			c.trips += total
		}
	}
	return c
}

// TripsForRoute resolves the origin/destination display names (inputs are
// used as codes when unrecognised) and returns the trips for the given date
// key.  Unknown routes or dates yield an empty slice, never an error.
func (c *Catalog) TripsForRoute(from, to, date string) []Trip {
	routeKey := ResolveStation(from) + "-" + ResolveStation(to)
	routeDates, ok := c.routes[routeKey]
	if !ok {
		return []Trip{}
	}
	trips, ok := routeDates[date]
	if !ok {
		return []Trip{}
	}
	out := make([]Trip, len(trips))
	copy(out, trips)
	return out
}

// FindTrip locates a trip by ID within a route/date, for validating a
// rider's selection against what the search actually showed.
func (c *Catalog) FindTrip(from, to, date string, id uint64) (Trip, bool) {
	for _, t := range c.TripsForRoute(from, to, date) {
		if t.ID == id {
			return t, true
		}
	}
	return Trip{}, false
}

// RouteCount reports the number of directed routes in the catalog.
func (c *Catalog) RouteCount() int { return len(c.routes) }

// TripCount reports the total number of generated trips.
func (c *Catalog) TripCount() int { return c.trips }

func generateTripsForDate(fromCode, toCode string, profile RouteProfile, seedKey string, getNextID func() uint64) []Trip {
	count := int(SeededRandom(seedKey+"-count") * float64(maxTripsPerDay+1))
	if count == 0 {
		return []Trip{}
	}

	slots := slotsForSeed(seedKey + "-slots")
	trips := make([]Trip, 0, count)
	for i := 0; i < count; i++ {
		trips = append(trips, createTrip(fromCode, toCode, slots[i], profile, seedKey+"-"+strconv.Itoa(i), getNextID))
	}
	return trips
}

func createTrip(fromCode, toCode, departure string, profile RouteProfile, seedKey string, getNextID func() uint64) Trip {
	arrival := addMinutesToTime(departure, profile.DurationMinutes)
	variation := math.Round(SeededRandom(seedKey+"-price") * 12)
	economy := round2(profile.EconomyBase + variation)
	business := round2(profile.BusinessBase + variation*1.5)
	saver := math.Max(30, round2(economy-15))

	stops := stopsDirect
	if SeededRandom(seedKey+"-stops") <= 0.2 {
		stops = stopsOneStop
	}

	return Trip{
		ID:               getNextID(),
		TrainNumber:      trainNumber(seedKey),
		Departure:        departure,
		Arrival:          arrival,
		DepartureStation: fromCode,
		ArrivalStation:   toCode,
		Stops:            stops,
		Duration:         durationLabel(profile.DurationMinutes),
		EconomyPrice:     economy,
		BusinessPrice:    business,
		EconomySaver:     saver,
	}
}

// slotsForSeed returns the time-slot table reordered for one date: each slot
// is weighted by a per-index hash and the table is sorted ascending by that
// weight.  The sort must be stable so that equal weights keep table order.
func slotsForSeed(seed string) []string {
	type weighted struct {
		slot   string
		weight float64
	}
	entries := make([]weighted, len(timeSlots))
	for i, slot := range timeSlots {
		entries[i] = weighted{slot: slot, weight: SeededRandom(seed + "-" + strconv.Itoa(i))}
	}
	sort.SliceStable(entries, func(a, b int) bool { return entries[a].weight < entries[b].weight })

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.slot
	}
	return out
}

func trainNumber(seed string) string {
	n := 1000 + int(SeededRandom(seed+"-number")*9000)
	return strconv.Itoa(n)
}

// addMinutesToTime adds a duration to an HH:MM clock time, wrapping past
// midnight (modulo 24h).
func addMinutesToTime(clock string, minutesToAdd int) string {
	parts := strings.SplitN(clock, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) == 2 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	total := hours*60 + minutes + minutesToAdd
	total %= 24 * 60
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// durationLabel renders minutes as an "H:MM" display label.
func durationLabel(durationMinutes int) string {
	return fmt.Sprintf("%d:%02d", durationMinutes/60, durationMinutes%60)
}

// profileFor looks up the fare/duration profile by the canonical sorted code
// pair, so both directions of a route share a single basis.
func profileFor(fromCode, toCode string) RouteProfile {
	a, b := fromCode, toCode
	if b < a {
		a, b = b, a
	}
	if p, ok := routeProfiles[a+"-"+b]; ok {
		return p
	}
	return defaultProfile
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
