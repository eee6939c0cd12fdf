package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleDeveloper Role = "developer"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleDeveloper
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
