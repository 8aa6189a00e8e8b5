package suppliers

import "time"

// Supplier is a vendor the business purchases from.
type Supplier struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactPerson *string   `json:"contactPerson,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         string    `json:"phone"`
	Address       *string   `json:"address,omitempty"`
	GstIn         *string   `json:"gstIn,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}
