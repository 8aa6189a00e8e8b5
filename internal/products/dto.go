package products

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Sku           string  `json:"sku" validate:"required,max=50"`
	Description   *string `json:"description,omitempty"`
	CategoryID    int64   `json:"categoryId" validate:"gt=0"`
	PurchasePrice float64 `json:"purchasePrice" validate:"gte=0"`
	SellingPrice  float64 `json:"sellingPrice" validate:"gte=0"`
	GstRate       float64 `json:"gstRate" validate:"gte=0,lte=100"`
	Hsn           *string `json:"hsn,omitempty" validate:"omitempty,max=10"`
	MinStockLevel int     `json:"minStockLevel" validate:"gte=0"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Sku           *string  `json:"sku,omitempty" validate:"omitempty,max=50"`
	Description   *string  `json:"description,omitempty"`
	CategoryID    *int64   `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty" validate:"omitempty,gte=0"`
	SellingPrice  *float64 `json:"sellingPrice,omitempty" validate:"omitempty,gte=0"`
	GstRate       *float64 `json:"gstRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Hsn           *string  `json:"hsn,omitempty" validate:"omitempty,max=10"`
	MinStockLevel *int     `json:"minStockLevel,omitempty" validate:"omitempty,gte=0"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	IsActive      *bool    `json:"isActive,omitempty"`
}
