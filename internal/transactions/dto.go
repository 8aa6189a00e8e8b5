package transactions

import "time"

type CreateTransactionRequest struct {
	Type        string     `json:"type" validate:"required,oneof=purchase sale return"`
	Date        *time.Time `json:"date,omitempty"`
	LocationID  int64      `json:"locationId" validate:"gt=0"`
	RefNumber   *string    `json:"refNumber,omitempty" validate:"omitempty,max=50"`
	SupplierID  *int64     `json:"supplierId,omitempty" validate:"omitempty,gt=0"`
	TotalAmount float64    `json:"totalAmount" validate:"gte=0"`
	GstAmount   float64    `json:"gstAmount" validate:"gte=0"`
	Status      string     `json:"status" validate:"required,oneof=pending completed cancelled"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// CreateTransactionItemRequest is one submitted line. TransactionID is
// attached by the server before validation.
type CreateTransactionItemRequest struct {
	TransactionID int64   `json:"transactionId" validate:"gt=0"`
	ProductID     int64   `json:"productId" validate:"gt=0"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice" validate:"gte=0"`
	GstRate       float64 `json:"gstRate" validate:"gte=0,lte=100"`
	GstAmount     float64 `json:"gstAmount" validate:"gte=0"`
	TotalAmount   float64 `json:"totalAmount" validate:"gte=0"`
}

type UpdateTransactionRequest struct {
	Type        *string    `json:"type,omitempty" validate:"omitempty,oneof=purchase sale return"`
	Date        *time.Time `json:"date,omitempty"`
	LocationID  *int64     `json:"locationId,omitempty" validate:"omitempty,gt=0"`
	RefNumber   *string    `json:"refNumber,omitempty" validate:"omitempty,max=50"`
	SupplierID  *int64     `json:"supplierId,omitempty" validate:"omitempty,gt=0"`
	TotalAmount *float64   `json:"totalAmount,omitempty" validate:"omitempty,gte=0"`
	GstAmount   *float64   `json:"gstAmount,omitempty" validate:"omitempty,gte=0"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=pending completed cancelled"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// CreateTransactionEnvelope is the POST /transactions body.
type CreateTransactionEnvelope struct {
	Transaction CreateTransactionRequest       `json:"transaction"`
	Items       []CreateTransactionItemRequest `json:"items"`
}

// TransactionWithItems pairs a header with its lines.
type TransactionWithItems struct {
	Transaction Transaction       `json:"transaction"`
	Items       []TransactionItem `json:"items"`
}
