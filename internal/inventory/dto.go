package inventory

type CreateItemRequest struct {
	ProductID  int64 `json:"productId" validate:"gt=0"`
	LocationID int64 `json:"locationId" validate:"gt=0"`
	Quantity   int   `json:"quantity"`
}

type UpdateItemRequest struct {
	ProductID  *int64 `json:"productId,omitempty" validate:"omitempty,gt=0"`
	LocationID *int64 `json:"locationId,omitempty" validate:"omitempty,gt=0"`
	Quantity   *int   `json:"quantity,omitempty"`
}
