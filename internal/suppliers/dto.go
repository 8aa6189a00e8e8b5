package suppliers

type CreateSupplierRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	ContactPerson *string `json:"contactPerson,omitempty" validate:"omitempty,max=100"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string  `json:"phone" validate:"required,max=20"`
	Address       *string `json:"address,omitempty"`
	GstIn         *string `json:"gstIn,omitempty" validate:"omitempty,max=15"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=200"`
	ContactPerson *string `json:"contactPerson,omitempty" validate:"omitempty,max=100"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address       *string `json:"address,omitempty"`
	GstIn         *string `json:"gstIn,omitempty" validate:"omitempty,max=15"`
	IsActive      *bool   `json:"isActive,omitempty"`
}
