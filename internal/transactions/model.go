package transactions

import "time"

// Type enumerates supported transaction kinds.
type Type string

const (
	TypePurchase Type = "purchase"
	TypeSale     Type = "sale"
	TypeReturn   Type = "return"
)

// Status is caller-supplied; no endpoint transitions it automatically.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Transaction is the header of a purchase, sale or return.
type Transaction struct {
	ID          int64      `json:"id"`
	Type        Type       `json:"type"`
	Date        time.Time  `json:"date"`
	LocationID  int64      `json:"locationId"`
	RefNumber   string     `json:"refNumber"`
	SupplierID  *int64     `json:"supplierId,omitempty"`
	TotalAmount float64    `json:"totalAmount"`
	GstAmount   float64    `json:"gstAmount"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TransactionItem is one product line of a transaction.
type TransactionItem struct {
	ID            int64   `json:"id"`
	TransactionID int64   `json:"transactionId"`
	ProductID     int64   `json:"productId"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	GstRate       float64 `json:"gstRate"`
	GstAmount     float64 `json:"gstAmount"`
	TotalAmount   float64 `json:"totalAmount"`
}
