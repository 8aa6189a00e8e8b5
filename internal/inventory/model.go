package inventory

import "time"

// Item is the stock on hand for one product at one location. One row per
// (product, location) pair by upsert convention; Create itself has no guard.
type Item struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"productId"`
	LocationID int64     `json:"locationId"`
	Quantity   int       `json:"quantity"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
