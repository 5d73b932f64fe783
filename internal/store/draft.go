// Package store keeps the per-session booking draft.  Every step of the
// funnel reads and writes named fields (search draft, selected trip,
// passenger form, seat, extras) as JSON blobs.
//
// Redis is the primary backend; when no client is available the store falls
// back to an in-process map so a single instance keeps working without any
// infrastructure.  Storage failures are deliberately swallowed: a draft that
// fails to persist only costs the user a re-entry, it never fails a request.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Field names under which draft state is stored.  They mirror the keys the
// booking funnel has always used, so drafts survive a backend swap.
const (
	FieldDraft     = "bookingDraft"
	FieldTrip      = "selectedTrip"
	FieldPassenger = "passengerForm"
	FieldSeat      = "selectedSeat"
	FieldMeals     = "selectedMeals"
	FieldBaggage   = "selectedBaggage"
	FieldLounge    = "selectedLounge"
)

// ExtrasFields are the fields cleared when the selected trip or fare plan
// changes: extras priced against one trip must not carry over to another.
var ExtrasFields = []string{FieldSeat, FieldMeals, FieldBaggage, FieldLounge}

// AllFields lists every draft field, used to clear a session after payment.
var AllFields = []string{
	FieldDraft, FieldTrip, FieldPassenger,
	FieldSeat, FieldMeals, FieldBaggage, FieldLounge,
}

// DraftStore persists booking drafts keyed by session id and field name.
type DraftStore struct {
	rdb *redis.Client
	ttl time.Duration

	mu  sync.RWMutex
	mem map[string][]byte
}

// New builds a DraftStore.  rdb may be nil, in which case the in-process
// fallback is used and ttl is not enforced.
func New(rdb *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{rdb: rdb, ttl: ttl, mem: make(map[string][]byte)}
}

func key(sessionID, field string) string {
	return "booking:" + sessionID + ":" + field
}

// Put stores a field as JSON.  Marshal or backend failures are ignored.
func (s *DraftStore) Put(ctx context.Context, sessionID, field string, v any) {
	blob, err := json.Marshal(v)
	if err != nil {
		return
	}
	if s.rdb != nil {
		s.rdb.Set(ctx, key(sessionID, field), blob, s.ttl)
		return
	}
	s.mu.Lock()
	s.mem[key(sessionID, field)] = blob
	s.mu.Unlock()
}

// Get loads a field into dest.  It reports false when the field is absent
// or unreadable; dest is left untouched in that case.
func (s *DraftStore) Get(ctx context.Context, sessionID, field string, dest any) bool {
	var blob []byte
	if s.rdb != nil {
		b, err := s.rdb.Get(ctx, key(sessionID, field)).Bytes()
		if err != nil {
			return false
		}
		blob = b
	} else {
		s.mu.RLock()
		b, ok := s.mem[key(sessionID, field)]
		s.mu.RUnlock()
		if !ok {
			return false
		}
		blob = b
	}
	return json.Unmarshal(blob, dest) == nil
}

// Delete removes the given fields for a session.
func (s *DraftStore) Delete(ctx context.Context, sessionID string, fields ...string) {
	if len(fields) == 0 {
		return
	}
	if s.rdb != nil {
		keys := make([]string, len(fields))
		for i, f := range fields {
			keys[i] = key(sessionID, f)
		}
		s.rdb.Del(ctx, keys...)
		return
	}
	s.mu.Lock()
	for _, f := range fields {
		delete(s.mem, key(sessionID, f))
	}
	s.mu.Unlock()
}

// ClearExtras drops seat, meals, baggage and lounge selections.
func (s *DraftStore) ClearExtras(ctx context.Context, sessionID string) {
	s.Delete(ctx, sessionID, ExtrasFields...)
}

// Clear drops every draft field for a session.
func (s *DraftStore) Clear(ctx context.Context, sessionID string) {
	s.Delete(ctx, sessionID, AllFields...)
}
