package payments

import "time"

type CreatePaymentRequest struct {
	TransactionID int64      `json:"transactionId" validate:"gt=0"`
	Date          *time.Time `json:"date,omitempty"`
	Amount        float64    `json:"amount" validate:"gte=0"`
	Method        string     `json:"method" validate:"required,max=50"`
	Reference     *string    `json:"reference,omitempty" validate:"omitempty,max=100"`
	Notes         *string    `json:"notes,omitempty"`
	Status        string     `json:"status" validate:"required,max=50"`
}

type UpdatePaymentRequest struct {
	TransactionID *int64     `json:"transactionId,omitempty" validate:"omitempty,gt=0"`
	Date          *time.Time `json:"date,omitempty"`
	Amount        *float64   `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Method        *string    `json:"method,omitempty" validate:"omitempty,max=50"`
	Reference     *string    `json:"reference,omitempty" validate:"omitempty,max=100"`
	Notes         *string    `json:"notes,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,max=50"`
}
