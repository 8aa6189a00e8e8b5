package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	feedKey    = "activity:feed"
	counterKey = "activity:next_id"
)

// Store keeps the feed in redis: ids via INCR, entries as JSON members of a
// sorted set scored by timestamp.
type Store struct {
	rdb *redis.Client
}

// NewStore builds Store.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Append assigns the next id and adds the entry to the feed.
func (s *Store) Append(ctx context.Context, entry Entry) (Entry, error) {
	id, err := s.rdb.Incr(ctx, counterKey).Result()
	if err != nil {
		return Entry{}, fmt.Errorf("activity: next id: %w", err)
	}
	entry.ID = id
	payload, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("activity: encode entry: %w", err)
	}
	// ids are assigned monotonically at append time, so scoring by id keeps
	// newest-first order stable even for entries in the same millisecond
	err = s.rdb.ZAdd(ctx, feedKey, redis.Z{
		Score:  float64(entry.ID),
		Member: string(payload),
	}).Err()
	if err != nil {
		return Entry{}, fmt.Errorf("activity: append entry: %w", err)
	}
	return entry, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	members, err := s.rdb.ZRevRange(ctx, feedKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("activity: read feed: %w", err)
	}
	entries := make([]Entry, 0, len(members))
	for _, member := range members {
		var entry Entry
		if err := json.Unmarshal([]byte(member), &entry); err != nil {
			return nil, fmt.Errorf("activity: decode entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
