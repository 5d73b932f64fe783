// This file defines the session-scoped booking funnel: search draft, trip
// selection, passenger details, seat and extras, and the running summary.
// Every handler reads and writes the per-session draft store; storage
// failures degrade to an empty draft rather than a failed request.

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-trip-booking/internal/cart"
	"github.com/iliyamo/train-trip-booking/internal/catalog"
	"github.com/iliyamo/train-trip-booking/internal/middleware"
	"github.com/iliyamo/train-trip-booking/internal/model"
	"github.com/iliyamo/train-trip-booking/internal/store"
	"github.com/iliyamo/train-trip-booking/internal/utils"
	"github.com/iliyamo/train-trip-booking/internal/validate"
)

// BookingHandler carries the collaborators of the booking funnel.
type BookingHandler struct {
	Catalog       *catalog.Catalog
	Store         *store.DraftStore
	SessionSecret string
	SessionTTLMin int
}

// CreateSession issues an anonymous booking session.  The returned bearer
// token scopes all draft state; no identity is collected.
func (h *BookingHandler) CreateSession(c echo.Context) error {
	sid, err := utils.NewSessionID()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create session"})
	}
	tok, err := utils.NewSessionToken(h.SessionSecret, sid, h.SessionTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create session"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"token":      tok.Token,
		"expires_at": tok.Exp,
	})
}

// GetDraft returns the saved search draft, or an empty object when none
// has been saved yet.
func (h *BookingHandler) GetDraft(c echo.Context) error {
	var draft model.SearchDraft
	h.Store.Get(c.Request().Context(), middleware.SessionID(c), store.FieldDraft, &draft)
	return c.JSON(http.StatusOK, echo.Map{"item": draft})
}

// PutDraft saves the search criteria.  Passenger counts are clamped to
// non-negative; the date key is accepted as-is because an unknown date
// simply produces empty search results later.
func (h *BookingHandler) PutDraft(c echo.Context) error {
	var draft model.SearchDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if draft.Adults < 0 {
		draft.Adults = 0
	}
	if draft.Children < 0 {
		draft.Children = 0
	}
	if draft.Infants < 0 {
		draft.Infants = 0
	}
	h.Store.Put(c.Request().Context(), middleware.SessionID(c), store.FieldDraft, draft)
	return c.JSON(http.StatusOK, echo.Map{"item": draft})
}

// SelectTrip records the chosen trip and fare plan.  The trip must exist in
// the catalog for the drafted route and date.  Changing the selection
// clears seat, meals, baggage and lounge: extras priced against one trip
// must not carry over to another.
func (h *BookingHandler) SelectTrip(c echo.Context) error {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	var sel model.TripSelection
	if err := c.Bind(&sel); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidPlan(sel.Plan) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": map[string]string{"plan": "plan must be economy, economySaver or business"}})
	}

	var draft model.SearchDraft
	if !h.Store.Get(ctx, sid, store.FieldDraft, &draft) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no search draft saved"})
	}
	trip, ok := h.Catalog.FindTrip(draft.FromStation, draft.ToStation, draft.DateKey, sel.TripID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "trip not found for the drafted route and date"})
	}

	var prev model.TripSelection
	if h.Store.Get(ctx, sid, store.FieldTrip, &prev) && prev != sel {
		h.Store.ClearExtras(ctx, sid)
	}
	h.Store.Put(ctx, sid, store.FieldTrip, sel)
	return c.JSON(http.StatusOK, echo.Map{"item": trip, "plan": sel.Plan})
}

// GetPassenger returns the saved passenger form, empty when absent.
func (h *BookingHandler) GetPassenger(c echo.Context) error {
	var form model.PassengerForm
	h.Store.Get(c.Request().Context(), middleware.SessionID(c), store.FieldPassenger, &form)
	return c.JSON(http.StatusOK, echo.Map{"item": form})
}

// PutPassenger validates and saves the passenger details.  Validation
// failures return 422 with a field -> message map and leave the stored
// form untouched.
func (h *BookingHandler) PutPassenger(c echo.Context) error {
	var form model.PassengerForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if problems := validate.Passenger(form); len(problems) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": problems})
	}
	h.Store.Put(c.Request().Context(), middleware.SessionID(c), store.FieldPassenger, form)
	return c.JSON(http.StatusOK, echo.Map{"item": form})
}

// seatState is one cell of the seat map response.
type seatState struct {
	Number    int  `json:"number"`
	Available bool `json:"available"`
	Selected  bool `json:"selected"`
}

// GetSeatMap returns the coach layout with availability and the session's
// current selection marked.
func (h *BookingHandler) GetSeatMap(c echo.Context) error {
	var selected int
	h.Store.Get(c.Request().Context(), middleware.SessionID(c), store.FieldSeat, &selected)

	seats := make([]seatState, 0, model.SeatCount)
	for n := 1; n <= model.SeatCount; n++ {
		seats = append(seats, seatState{
			Number:    n,
			Available: model.SeatAvailable(n),
			Selected:  n == selected,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": seats})
}

// PutSeat records a seat choice.  Sending {"seat": 0} clears the choice.
func (h *BookingHandler) PutSeat(c echo.Context) error {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	var body struct {
		Seat int `json:"seat"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if body.Seat == 0 {
		h.Store.Delete(ctx, sid, store.FieldSeat)
		return c.JSON(http.StatusOK, echo.Map{"item": nil})
	}
	if problems := validate.Seat(body.Seat); len(problems) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": problems})
	}
	h.Store.Put(ctx, sid, store.FieldSeat, body.Seat)
	return c.JSON(http.StatusOK, echo.Map{"item": body.Seat})
}

// GetExtras returns the meal and baggage reference tables together with the
// flat fees, so clients render prices from the same source the cart uses.
func (h *BookingHandler) GetExtras(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"meals":         model.Meals,
		"baggage":       model.BaggageOptions,
		"loungePrice":   model.LoungePrice,
		"seatSurcharge": model.SeatSurcharge,
	})
}

// PutMeals saves the meal quantities.  Unknown ids and non-positive
// quantities are dropped rather than rejected; they price to nothing anyway.
func (h *BookingHandler) PutMeals(c echo.Context) error {
	var selected map[int]int
	if err := c.Bind(&selected); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cleaned := map[int]int{}
	for id, qty := range selected {
		if qty <= 0 {
			continue
		}
		if _, ok := model.MealByID(id); ok {
			cleaned[id] = qty
		}
	}
	h.Store.Put(c.Request().Context(), middleware.SessionID(c), store.FieldMeals, cleaned)
	return c.JSON(http.StatusOK, echo.Map{"item": cleaned})
}

// PutBaggage saves the baggage tier quantities, cleaned the same way as meals.
func (h *BookingHandler) PutBaggage(c echo.Context) error {
	var selected map[int]int
	if err := c.Bind(&selected); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cleaned := map[int]int{}
	for id, qty := range selected {
		if qty <= 0 {
			continue
		}
		if _, ok := model.BaggageByID(id); ok {
			cleaned[id] = qty
		}
	}
	h.Store.Put(c.Request().Context(), middleware.SessionID(c), store.FieldBaggage, cleaned)
	return c.JSON(http.StatusOK, echo.Map{"item": cleaned})
}

// PutLounge toggles lounge access for the booking.
func (h *BookingHandler) PutLounge(c echo.Context) error {
	var body struct {
		Lounge bool `json:"lounge"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	h.Store.Put(c.Request().Context(), middleware.SessionID(c), store.FieldLounge, body.Lounge)
	return c.JSON(http.StatusOK, echo.Map{"item": body.Lounge})
}

// draftState loads everything the summary and payment steps need.
type draftState struct {
	draft    model.SearchDraft
	hasDraft bool
	sel      model.TripSelection
	hasTrip  bool
	trip     catalog.Trip
	form     model.PassengerForm
	hasForm  bool
	seat     int
	meals    map[int]int
	baggage  map[int]int
	lounge   bool
}

func (h *BookingHandler) loadState(c echo.Context) draftState {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	var st draftState
	st.hasDraft = h.Store.Get(ctx, sid, store.FieldDraft, &st.draft)
	st.hasTrip = h.Store.Get(ctx, sid, store.FieldTrip, &st.sel)
	if st.hasTrip {
		trip, ok := h.Catalog.FindTrip(st.draft.FromStation, st.draft.ToStation, st.draft.DateKey, st.sel.TripID)
		if !ok {
			st.hasTrip = false
		}
		st.trip = trip
	}
	st.hasForm = h.Store.Get(ctx, sid, store.FieldPassenger, &st.form)
	h.Store.Get(ctx, sid, store.FieldSeat, &st.seat)
	h.Store.Get(ctx, sid, store.FieldMeals, &st.meals)
	h.Store.Get(ctx, sid, store.FieldBaggage, &st.baggage)
	h.Store.Get(ctx, sid, store.FieldLounge, &st.lounge)
	return st
}

// GetSummary returns the current cart breakdown for the session: the chosen
// trip, passengers and the priced extras.  A summary without a selected
// trip still prices the extras with a zero fare.
func (h *BookingHandler) GetSummary(c echo.Context) error {
	st := h.loadState(c)

	totals := cart.Compute(st.trip, st.sel.Plan, st.draft.PassengerTotal(), st.meals, st.baggage, st.lounge, st.seat != 0)

	resp := echo.Map{
		"draft":      st.draft,
		"plan":       st.sel.Plan,
		"passengers": st.draft.PassengerTotal(),
		"totals":     totals,
	}
	if st.hasTrip {
		resp["trip"] = st.trip
	}
	if st.seat != 0 {
		resp["seat"] = st.seat
	}
	return c.JSON(http.StatusOK, resp)
}
