package users

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required,max=100"`
	Role     string `json:"role" validate:"required,max=50"`
}
