package catalog

import (
	"reflect"
	"testing"
)

func TestSeededRandomIsPure(t *testing.T) {
	seeds := []string{"", "RYD-DMM-١٣ نوفمبر ٢٠٢٥-count", "HAF-RYD-fallback-price", "abc-0"}
	for _, seed := range seeds {
		a := SeededRandom(seed)
		b := SeededRandom(seed)
		if a != b {
			t.Fatalf("SeededRandom(%q) not deterministic: %v vs %v", seed, a, b)
		}
		if a < 0 || a >= 1 {
			t.Fatalf("SeededRandom(%q) = %v, want value in [0,1)", seed, a)
		}
	}
}

func TestSeededRandomDistinguishesSeeds(t *testing.T) {
	if SeededRandom("RYD-DMM-count") == SeededRandom("DMM-RYD-count") {
		t.Fatal("different seeds produced identical hashes")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first := Build()
	second := Build()
	if !reflect.DeepEqual(first.routes, second.routes) {
		t.Fatal("two builds from identical tables produced different catalogs")
	}
	if first.TripCount() != second.TripCount() {
		t.Fatalf("trip counts differ: %d vs %d", first.TripCount(), second.TripCount())
	}
}

func TestEveryRouteHasAtLeastOneTrip(t *testing.T) {
	c := Build()
	for _, route := range adjacency {
		for _, to := range route.To {
			total := 0
			for _, date := range dateKeys {
				total += len(c.TripsForRoute(route.From, to, date))
			}
			if total == 0 {
				t.Errorf("route %s -> %s has no bookable trips on any date", route.From, to)
			}
		}
	}
}

func TestTripsForRouteIsTotal(t *testing.T) {
	c := Build()

	// Unknown destination from the worked example in the product notes.
	if got := c.TripsForRoute("الرياض", "غير معروف", "١٣ نوفمبر ٢٠٢٥"); len(got) != 0 {
		t.Fatalf("unknown destination: got %d trips, want 0", len(got))
	}
	// Unknown date on a known route.
	if got := c.TripsForRoute("الرياض", "الدمام", "not-a-date"); len(got) != 0 {
		t.Fatalf("unknown date: got %d trips, want 0", len(got))
	}
	// Garbage on both ends must not panic and must return empty.
	if got := c.TripsForRoute("", "", ""); got == nil || len(got) != 0 {
		t.Fatalf("empty inputs: got %#v, want empty slice", got)
	}
}

func TestTripsForRouteAcceptsCodesDirectly(t *testing.T) {
	c := Build()
	for _, date := range dateKeys {
		byName := c.TripsForRoute("الرياض", "الدمام", date)
		byCode := c.TripsForRoute("RYD", "DMM", date)
		if !reflect.DeepEqual(byName, byCode) {
			t.Fatalf("date %s: name lookup and code lookup disagree", date)
		}
	}
}

func TestPriceDerivation(t *testing.T) {
	// The worked example: duration 60, bases 120/185, variation 5.
	profile := RouteProfile{DurationMinutes: 60, EconomyBase: 120, BusinessBase: 185}
	ids := uint64(0)
	next := func() uint64 { ids++; return ids }

	// "ex-1" hashes to a price variation of 5, which makes the example
	// exercise the real code path end to end.
	const seed = "ex-1"
	if v := int(SeededRandom(seed+"-price")*12 + 0.5); v != 5 {
		t.Fatalf("seed %q no longer hashes to variation 5 (got %d); the hash constants changed", seed, v)
	}

	trip := createTrip("ABQ", "DMM", "08:30", profile, seed, next)
	if trip.EconomyPrice != 125.00 {
		t.Errorf("economy price = %.2f, want 125.00", trip.EconomyPrice)
	}
	if trip.BusinessPrice != 192.50 {
		t.Errorf("business price = %.2f, want 192.50", trip.BusinessPrice)
	}
	if trip.EconomySaver != 110.00 {
		t.Errorf("saver price = %.2f, want 110.00", trip.EconomySaver)
	}
	if trip.Arrival != "09:30" {
		t.Errorf("arrival = %s, want 09:30", trip.Arrival)
	}
}

func TestPriceOrdering(t *testing.T) {
	c := Build()
	for routeKey, dates := range c.routes {
		for dateKey, trips := range dates {
			for _, trip := range trips {
				if trip.EconomySaver > trip.EconomyPrice {
					t.Errorf("%s %s trip %d: saver %.2f > economy %.2f",
						routeKey, dateKey, trip.ID, trip.EconomySaver, trip.EconomyPrice)
				}
				if trip.EconomyPrice > trip.BusinessPrice {
					t.Errorf("%s %s trip %d: economy %.2f > business %.2f",
						routeKey, dateKey, trip.ID, trip.EconomyPrice, trip.BusinessPrice)
				}
			}
		}
	}
}

func TestProfileLookupIsSymmetric(t *testing.T) {
	if profileFor("RYD", "DMM") != profileFor("DMM", "RYD") {
		t.Fatal("profile lookup is not order-independent")
	}
	// Pairs without an explicit profile fall back to the default in both directions.
	if p := profileFor("QUR", "MAJ"); p != defaultProfile {
		t.Fatalf("missing pair: got %+v, want default profile", p)
	}
	if profileFor("MAJ", "QUR") != profileFor("QUR", "MAJ") {
		t.Fatal("default fallback is not order-independent")
	}
}

func TestTripIDsAreUniqueAndMonotonicPerDate(t *testing.T) {
	c := Build()
	seen := make(map[uint64]bool)
	for routeKey, dates := range c.routes {
		for dateKey, trips := range dates {
			var prev uint64
			for i, trip := range trips {
				if seen[trip.ID] {
					t.Fatalf("%s %s: duplicate trip id %d", routeKey, dateKey, trip.ID)
				}
				seen[trip.ID] = true
				if i > 0 && trip.ID <= prev {
					t.Fatalf("%s %s: ids not increasing within date (%d after %d)", routeKey, dateKey, trip.ID, prev)
				}
				prev = trip.ID
			}
		}
	}
	if len(seen) != c.TripCount() {
		t.Fatalf("TripCount() = %d, but %d distinct trips were generated", c.TripCount(), len(seen))
	}
}

func TestAddMinutesWrapsPastMidnight(t *testing.T) {
	cases := []struct {
		clock string
		add   int
		want  string
	}{
		{"21:15", 300, "02:15"},
		{"05:15", 60, "06:15"},
		{"23:59", 1, "00:00"},
		{"12:45", 0, "12:45"},
	}
	for _, tc := range cases {
		if got := addMinutesToTime(tc.clock, tc.add); got != tc.want {
			t.Errorf("addMinutesToTime(%s, %d) = %s, want %s", tc.clock, tc.add, got, tc.want)
		}
	}
}

func TestDurationLabel(t *testing.T) {
	if got := durationLabel(120); got != "2:00" {
		t.Errorf("durationLabel(120) = %s, want 2:00", got)
	}
	if got := durationLabel(75); got != "1:15" {
		t.Errorf("durationLabel(75) = %s, want 1:15", got)
	}
}

func TestTripsPerDateWithinBounds(t *testing.T) {
	c := Build()
	for routeKey, dates := range c.routes {
		for dateKey, trips := range dates {
			if len(trips) > maxTripsPerDay {
				t.Errorf("%s %s: %d trips exceeds the per-day maximum %d", routeKey, dateKey, len(trips), maxTripsPerDay)
			}
		}
	}
}

func TestFindTrip(t *testing.T) {
	c := Build()
	var from, to, date string
	var want Trip
	for _, route := range adjacency {
		for _, dest := range route.To {
			for _, dk := range dateKeys {
				if trips := c.TripsForRoute(route.From, dest, dk); len(trips) > 0 {
					from, to, date, want = route.From, dest, dk, trips[0]
				}
			}
		}
	}
	got, ok := c.FindTrip(from, to, date, want.ID)
	if !ok || got != want {
		t.Fatalf("FindTrip(%s,%s,%s,%d) = %+v, %v; want %+v", from, to, date, want.ID, got, ok, want)
	}
	if _, ok := c.FindTrip(from, to, date, 0); ok {
		t.Fatal("FindTrip returned ok for a nonexistent id")
	}
}
