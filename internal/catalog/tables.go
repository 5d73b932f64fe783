package catalog

// Static reference tables for the simulated railway network.  All catalog
// generation is derived from these values; changing any entry (or the order
// of the ordered tables) changes the generated trip IDs, times and prices,
// so treat them as frozen data.

// Station pairs a display name with its 3-letter code.  Both are unique.
type Station struct {
	Name string `json:"name"` // display name
	Code string `json:"code"` // 3-letter identifier
}

// RouteProfile carries the fare and duration basis for a route.  Profiles
// are keyed by the canonical (sorted) pair of station codes, so a route and
// its reverse always share the same basis.
type RouteProfile struct {
	DurationMinutes int
	EconomyBase     float64
	BusinessBase    float64
}

// stations lists every station in table order.  The order matters: the
// adjacency table below is iterated in this declaration order when the
// catalog is built, and trip IDs depend on it.
var stations = []Station{
	{Name: "الرياض", Code: "RYD"},
	{Name: "الهفوف", Code: "HAF"},
	{Name: "بقيق", Code: "ABQ"},
	{Name: "الدمام", Code: "DMM"},
	{Name: "المجمعة", Code: "MAJ"},
	{Name: "القصيم", Code: "QSM"},
	{Name: "حائل", Code: "HAI"},
	{Name: "الجوف", Code: "JAU"},
	{Name: "القريات", Code: "QUR"},
}

// stationCodes maps display name -> code for quick resolution.
var stationCodes = func() map[string]string {
	m := make(map[string]string, len(stations))
	for _, s := range stations {
		m[s.Name] = s.Code
	}
	return m
}()

// adjacency describes which destinations are reachable from each origin.
// The table is directed: both directions of a route are enumerated and
// generated independently.  Declaration order is part of the contract
// (see the ID counter in Build).
var adjacency = []struct {
	From string
	To   []string
}{
	{From: "الرياض", To: []string{"الدمام", "القصيم", "حائل", "الجوف", "القريات", "المجمعة"}},
	{From: "الهفوف", To: []string{"الرياض", "الدمام", "بقيق"}},
	{From: "بقيق", To: []string{"الرياض", "الدمام", "الهفوف"}},
	{From: "الدمام", To: []string{"الرياض", "الهفوف", "بقيق", "القصيم"}},
	{From: "المجمعة", To: []string{"الرياض", "القصيم"}},
	{From: "القصيم", To: []string{"الرياض", "الدمام", "حائل", "المجمعة"}},
	{From: "حائل", To: []string{"الرياض", "القصيم", "الجوف"}},
	{From: "الجوف", To: []string{"الرياض", "حائل", "القريات"}},
	{From: "القريات", To: []string{"الرياض", "الجوف"}},
}

// dateKeys holds the six bookable calendar dates as display strings.
// Catalog lookups match these strings exactly; callers should take them
// from DateKeys() rather than formatting dates themselves.
var dateKeys = []string{
	"١٣ نوفمبر ٢٠٢٥",
	"١٤ نوفمبر ٢٠٢٥",
	"١٥ نوفمبر ٢٠٢٥",
	"١٦ نوفمبر ٢٠٢٥",
	"١٧ نوفمبر ٢٠٢٥",
	"١٨ نوفمبر ٢٠٢٥",
}

// timeSlots lists the nine candidate departure times (HH:MM).  Each date
// draws its departures from a deterministic shuffle of this table.
var timeSlots = []string{
	"05:15",
	"06:45",
	"08:30",
	"10:15",
	"12:45",
	"14:30",
	"16:15",
	"18:45",
	"21:15",
}

// defaultProfile is used for any station pair without an explicit entry.
var defaultProfile = RouteProfile{DurationMinutes: 120, EconomyBase: 95, BusinessBase: 150}

// routeProfiles is keyed by the canonical sorted code pair "AAA-BBB".
var routeProfiles = map[string]RouteProfile{
	"ABQ-DMM": {DurationMinutes: 60, EconomyBase: 120, BusinessBase: 185},
	"ABQ-HAF": {DurationMinutes: 40, EconomyBase: 95, BusinessBase: 145},
	"ABQ-RYD": {DurationMinutes: 150, EconomyBase: 135, BusinessBase: 205},
	"DMM-HAF": {DurationMinutes: 75, EconomyBase: 125, BusinessBase: 190},
	"DMM-QSM": {DurationMinutes: 240, EconomyBase: 150, BusinessBase: 235},
	"HAF-RYD": {DurationMinutes: 150, EconomyBase: 120, BusinessBase: 185},
	"MAJ-QSM": {DurationMinutes: 60, EconomyBase: 85, BusinessBase: 130},
	"QSM-HAI": {DurationMinutes: 120, EconomyBase: 90, BusinessBase: 145},
	"RYD-DMM": {DurationMinutes: 210, EconomyBase: 130, BusinessBase: 205},
	"RYD-QSM": {DurationMinutes: 135, EconomyBase: 110, BusinessBase: 170},
	"RYD-HAI": {DurationMinutes: 210, EconomyBase: 140, BusinessBase: 210},
	"RYD-JAU": {DurationMinutes: 300, EconomyBase: 165, BusinessBase: 240},
	"RYD-QUR": {DurationMinutes: 360, EconomyBase: 185, BusinessBase: 270},
	"RYD-MAJ": {DurationMinutes: 90, EconomyBase: 90, BusinessBase: 140},
	"HAI-JAU": {DurationMinutes: 180, EconomyBase: 125, BusinessBase: 190},
	"JAU-QUR": {DurationMinutes: 120, EconomyBase: 105, BusinessBase: 160},
}

// stops descriptors as shown to riders.
const (
	stopsDirect  = "مباشر"
	stopsOneStop = "محطة واحدة"
)

const maxTripsPerDay = 4

// Stations returns the station reference table.
func Stations() []Station {
	out := make([]Station, len(stations))
	copy(out, stations)
	return out
}

// DateKeys returns the bookable date keys in chronological order.
func DateKeys() []string {
	out := make([]string, len(dateKeys))
	copy(out, dateKeys)
	return out
}

// ResolveStation maps a display name to its station code.  Unrecognised
// input is returned unchanged so that callers may pass codes directly.
func ResolveStation(name string) string {
	if code, ok := stationCodes[name]; ok {
		return code
	}
	return name
}
