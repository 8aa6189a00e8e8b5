package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultRecentLimit caps the feed when no limit is requested.
const DefaultRecentLimit = 10

// Service coordinates the activity feed.
type Service struct {
	store *Store
	now   func() time.Time
}

// NewService builds Service.
func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Append validates the details payload against the action's registered shape
// and appends the entry to the feed.
func (s *Service) Append(ctx context.Context, req CreateEntryRequest) (Entry, error) {
	details, err := DecodeDetails(req.Action, req.Details)
	if err != nil {
		return Entry{}, err
	}
	var raw json.RawMessage
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			return Entry{}, fmt.Errorf("activity: encode details: %w", err)
		}
		raw = b
	}
	entry := Entry{
		UserID:    req.UserID,
		Action:    req.Action,
		Entity:    req.Entity,
		EntityID:  req.EntityID,
		Details:   raw,
		Timestamp: s.now().UTC(),
	}
	return s.store.Append(ctx, entry)
}

// Recent returns the newest entries, most recent first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.store.Recent(ctx, limit)
}
