package products

import "time"

// Product is a catalogue item. Prices are rupees as plain floats; GST rate is
// a percentage; HSN is the tax classification code.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Sku           string    `json:"sku"`
	Description   *string   `json:"description,omitempty"`
	CategoryID    int64     `json:"categoryId"`
	PurchasePrice float64   `json:"purchasePrice"`
	SellingPrice  float64   `json:"sellingPrice"`
	GstRate       float64   `json:"gstRate"`
	Hsn           *string   `json:"hsn,omitempty"`
	MinStockLevel int       `json:"minStockLevel"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
