package activity

import "encoding/json"

type CreateEntryRequest struct {
	UserID   int64           `json:"userId" validate:"gt=0"`
	Action   string          `json:"action" validate:"required,max=50"`
	Entity   string          `json:"entity" validate:"required,max=50"`
	EntityID *int64          `json:"entityId,omitempty"`
	Details  json.RawMessage `json:"details,omitempty"`
}
