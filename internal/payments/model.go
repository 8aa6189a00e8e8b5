package payments

import "time"

// Payment records money received or paid against a transaction.
type Payment struct {
	ID            int64     `json:"id"`
	TransactionID int64     `json:"transactionId"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Reference     *string   `json:"reference,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
