package domain

import "time"

type UserRole string

const (
	RoleOwner    UserRole = "owner"
	RoleCustomer UserRole = "customer"
)

func (r UserRole) Valid() bool {
	return r == RoleOwner || r == RoleCustomer
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
