package locations

type CreateLocationRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required,max=100"`
	State    string `json:"state" validate:"required,max=100"`
	Pincode  string `json:"pincode" validate:"required,max=10"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type UpdateLocationRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State    *string `json:"state,omitempty" validate:"omitempty,max=100"`
	Pincode  *string `json:"pincode,omitempty" validate:"omitempty,max=10"`
	IsActive *bool   `json:"isActive,omitempty"`
}
