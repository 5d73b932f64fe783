package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-trip-booking/internal/catalog"
	"github.com/iliyamo/train-trip-booking/internal/model"
	"github.com/iliyamo/train-trip-booking/internal/store"
)

// The funnel handlers are exercised directly with the session id injected
// into the context, the same way SessionAuth would after verifying a token.

func newBookingHandler() *BookingHandler {
	return &BookingHandler{
		Catalog:       catalog.Build(),
		Store:         store.New(nil, time.Hour),
		SessionSecret: "test-secret",
		SessionTTLMin: 60,
	}
}

func request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_id", "sess-test")
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return out
}

func TestCreateSessionIssuesToken(t *testing.T) {
	h := newBookingHandler()
	c, rec := request(http.MethodPost, "/v1/sessions", "")
	if err := h.CreateSession(c); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	body := decode(t, rec)
	var token string
	if err := json.Unmarshal(body["token"], &token); err != nil || token == "" {
		t.Fatal("no token in response")
	}
}

func TestDraftRoundTrip(t *testing.T) {
	h := newBookingHandler()

	c, rec := request(http.MethodPut, "/v1/booking/draft",
		`{"fromStation":"الرياض","toStation":"الدمام","dateKey":"١٣ نوفمبر ٢٠٢٥","adults":2,"children":1}`)
	if err := h.PutDraft(c); err != nil {
		t.Fatalf("PutDraft: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	c, rec = request(http.MethodGet, "/v1/booking/draft", "")
	if err := h.GetDraft(c); err != nil {
		t.Fatalf("GetDraft: %v", err)
	}
	var draft model.SearchDraft
	if err := json.Unmarshal(decode(t, rec)["item"], &draft); err != nil {
		t.Fatal(err)
	}
	if draft.FromStation != "الرياض" || draft.Adults != 2 || draft.Children != 1 {
		t.Errorf("draft round trip lost data: %+v", draft)
	}
}

func TestSelectTripRequiresDraft(t *testing.T) {
	h := newBookingHandler()
	c, rec := request(http.MethodPut, "/v1/booking/trip", `{"tripId":1,"plan":"economy"}`)
	if err := h.SelectTrip(c); err != nil {
		t.Fatalf("SelectTrip: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestSelectTripRejectsUnknownPlanAndTrip(t *testing.T) {
	h := newBookingHandler()
	saveDraft(t, h)

	c, rec := request(http.MethodPut, "/v1/booking/trip", `{"tripId":1,"plan":"first-class"}`)
	if err := h.SelectTrip(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("unknown plan: status = %d, want 422", rec.Code)
	}

	c, rec = request(http.MethodPut, "/v1/booking/trip", `{"tripId":999999,"plan":"economy"}`)
	if err := h.SelectTrip(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown trip: status = %d, want 404", rec.Code)
	}
}

// saveDraft stores a draft for the Riyadh-Dammam route on the first date and
// returns the trips the catalog generated for it.
func saveDraft(t *testing.T, h *BookingHandler) []catalog.Trip {
	t.Helper()
	c, rec := request(http.MethodPut, "/v1/booking/draft",
		`{"fromStation":"الرياض","toStation":"الدمام","dateKey":"١٣ نوفمبر ٢٠٢٥","adults":1}`)
	if err := h.PutDraft(c); err != nil {
		t.Fatalf("PutDraft: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("PutDraft status = %d", rec.Code)
	}
	return h.Catalog.TripsForRoute("الرياض", "الدمام", "١٣ نوفمبر ٢٠٢٥")
}

func selectFirstTrip(t *testing.T, h *BookingHandler) catalog.Trip {
	t.Helper()
	trips := saveDraft(t, h)
	if len(trips) == 0 {
		// The first date may legitimately have no departures; fall back to
		// any date that does.
		for _, date := range catalog.DateKeys() {
			if ts := h.Catalog.TripsForRoute("الرياض", "الدمام", date); len(ts) > 0 {
				c, _ := request(http.MethodPut, "/v1/booking/draft",
					`{"fromStation":"الرياض","toStation":"الدمام","dateKey":"`+date+`","adults":1}`)
				if err := h.PutDraft(c); err != nil {
					t.Fatal(err)
				}
				trips = ts
				break
			}
		}
	}
	if len(trips) == 0 {
		t.Fatal("no trips generated for the Riyadh-Dammam route on any date")
	}
	trip := trips[0]
	c, rec := request(http.MethodPut, "/v1/booking/trip",
		`{"tripId":`+jsonUint(trip.ID)+`,"plan":"economy"}`)
	if err := h.SelectTrip(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("SelectTrip status = %d: %s", rec.Code, rec.Body.String())
	}
	return trip
}

func jsonUint(v uint64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestChangingTripClearsExtras(t *testing.T) {
	h := newBookingHandler()
	trip := selectFirstTrip(t, h)

	c, rec := request(http.MethodPut, "/v1/booking/seat", `{"seat":21}`)
	if err := h.PutSeat(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("PutSeat status = %d", rec.Code)
	}
	c, _ = request(http.MethodPut, "/v1/booking/lounge", `{"lounge":true}`)
	if err := h.PutLounge(c); err != nil {
		t.Fatal(err)
	}

	// Re-select the same trip with a different plan: extras must reset.
	c, rec = request(http.MethodPut, "/v1/booking/trip",
		`{"tripId":`+jsonUint(trip.ID)+`,"plan":"business"}`)
	if err := h.SelectTrip(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("SelectTrip status = %d", rec.Code)
	}

	c, rec = request(http.MethodGet, "/v1/booking/summary", "")
	if err := h.GetSummary(c); err != nil {
		t.Fatal(err)
	}
	body := decode(t, rec)
	if _, ok := body["seat"]; ok {
		t.Error("seat survived a plan change")
	}
}

func TestPutPassengerValidation(t *testing.T) {
	h := newBookingHandler()

	c, rec := request(http.MethodPut, "/v1/booking/passenger",
		`{"firstName":"","lastName":"منصور","docNumber":"123","dob":"1990-04-12","phone":"+966501234567","email":"x@example.com"}`)
	if err := h.PutPassenger(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var problems map[string]string
	if err := json.Unmarshal(decode(t, rec)["errors"], &problems); err != nil {
		t.Fatal(err)
	}
	if _, ok := problems["firstName"]; !ok {
		t.Errorf("expected a firstName error, got %v", problems)
	}

	c, rec = request(http.MethodPut, "/v1/booking/passenger",
		`{"firstName":"محمود","lastName":"منصور","docNumber":"123","dob":"1990-04-12","phone":"+966501234567","email":"x@example.com"}`)
	if err := h.PutPassenger(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("valid form: status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestSeatMapMarksBlockedSeats(t *testing.T) {
	h := newBookingHandler()
	c, rec := request(http.MethodGet, "/v1/booking/seats", "")
	if err := h.GetSeatMap(c); err != nil {
		t.Fatal(err)
	}
	var seats []seatState
	if err := json.Unmarshal(decode(t, rec)["items"], &seats); err != nil {
		t.Fatal(err)
	}
	if len(seats) != model.SeatCount {
		t.Fatalf("seat map size = %d, want %d", len(seats), model.SeatCount)
	}
	if seats[10].Available { // seat 11
		t.Error("seat 11 should be blocked")
	}
	if !seats[0].Available {
		t.Error("seat 1 should be available")
	}
}

func TestSummaryPricesExtras(t *testing.T) {
	h := newBookingHandler()
	selectFirstTrip(t, h)

	c, _ := request(http.MethodPut, "/v1/booking/meals", `{"1":2}`)
	if err := h.PutMeals(c); err != nil {
		t.Fatal(err)
	}
	c, _ = request(http.MethodPut, "/v1/booking/baggage", `{"1":1}`)
	if err := h.PutBaggage(c); err != nil {
		t.Fatal(err)
	}
	c, _ = request(http.MethodPut, "/v1/booking/lounge", `{"lounge":true}`)
	if err := h.PutLounge(c); err != nil {
		t.Fatal(err)
	}
	c, rec := request(http.MethodPut, "/v1/booking/seat", `{"seat":1}`)
	if err := h.PutSeat(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("PutSeat status = %d", rec.Code)
	}

	c, rec = request(http.MethodGet, "/v1/booking/summary", "")
	if err := h.GetSummary(c); err != nil {
		t.Fatal(err)
	}
	var totals struct {
		Extras float64 `json:"extras"`
	}
	if err := json.Unmarshal(decode(t, rec)["totals"], &totals); err != nil {
		t.Fatal(err)
	}
	// 2 meals at 25 + 32kg bag at 85 + lounge 30 + seat 5 = 170
	if totals.Extras != 170.00 {
		t.Errorf("extras = %.2f, want 170.00", totals.Extras)
	}
}

func TestPaymentRejectsBadCardAndIncompleteDraft(t *testing.T) {
	h := newBookingHandler()
	p := &PaymentHandler{Booking: h}

	// Invalid card fails before anything else.
	c, rec := request(http.MethodPost, "/v1/booking/payment",
		`{"cardName":"","cardNumber":"1234","expMonth":"13","expYear":"2","cvv":"12"}`)
	if err := p.SubmitPayment(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad card: status = %d, want 422", rec.Code)
	}

	// Valid card but nothing drafted.
	c, rec = request(http.MethodPost, "/v1/booking/payment",
		`{"cardName":"M M","cardNumber":"4111 1111 1111 1111","expMonth":"11","expYear":"27","cvv":"123"}`)
	if err := p.SubmitPayment(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("incomplete draft: status = %d, want 409", rec.Code)
	}
}

func TestPaymentConfirmsAndClearsDraft(t *testing.T) {
	h := newBookingHandler()
	p := &PaymentHandler{Booking: h}
	selectFirstTrip(t, h)

	c, rec := request(http.MethodPut, "/v1/booking/passenger",
		`{"firstName":"محمود","lastName":"منصور","docNumber":"123","dob":"1990-04-12","phone":"+966501234567","email":"x@example.com"}`)
	if err := h.PutPassenger(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("PutPassenger status = %d", rec.Code)
	}

	c, rec = request(http.MethodPost, "/v1/booking/payment",
		`{"cardName":"M M","cardNumber":"4111 1111 1111 1111","expMonth":"11","expYear":"27","cvv":"123"}`)
	if err := p.SubmitPayment(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var reference string
	if err := json.Unmarshal(decode(t, rec)["reference"], &reference); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(reference, "TTB-") || len(reference) != 12 {
		t.Errorf("reference = %q, want TTB-XXXXXXXX", reference)
	}

	// The draft is gone: a second payment attempt is incomplete.
	c, rec = request(http.MethodPost, "/v1/booking/payment",
		`{"cardName":"M M","cardNumber":"4111 1111 1111 1111","expMonth":"11","expYear":"27","cvv":"123"}`)
	if err := p.SubmitPayment(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("repeat payment: status = %d, want 409", rec.Code)
	}
}

// tripsTarget builds a /v1/trips request target with the query percent-encoded;
// the Arabic date keys contain spaces that a raw target would not survive.
func tripsTarget(from, to, date string) string {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	if date != "" {
		q.Set("date", date)
	}
	return "/v1/trips?" + q.Encode()
}

func TestSearchTripsHandler(t *testing.T) {
	th := &TripsHandler{Catalog: catalog.Build()}

	c, rec := request(http.MethodGet, tripsTarget("الرياض", "الدمام", "١٣ نوفمبر ٢٠٢٥"), "")
	if err := th.SearchTrips(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Unknown destination is an empty result, not an error.
	c, rec = request(http.MethodGet, tripsTarget("الرياض", "nowhere", "١٣ نوفمبر ٢٠٢٥"), "")
	if err := th.SearchTrips(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown route: status = %d, want 200", rec.Code)
	}
	var items []catalog.Trip
	if err := json.Unmarshal(decode(t, rec)["items"], &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("unknown route returned %d trips", len(items))
	}

	// Missing parameters are a 400.
	c, rec = request(http.MethodGet, tripsTarget("الرياض", "", ""), "")
	if err := th.SearchTrips(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing params: status = %d, want 400", rec.Code)
	}
}
