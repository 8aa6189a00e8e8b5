package users

import "time"

// User is an operator account. Passwords are stored as bcrypt hashes and
// never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
