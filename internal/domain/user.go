package domain

import "time"

// Роли пользователей.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User описывает учетную запись покупателя или администратора
type User struct {
	ID           string // uuid
	Email        string
	Name         string
	PasswordHash []byte // bcrypt
	Role         string
	CreatedAt    time.Time
}

func NewUser(id, email, name string, passwordHash []byte, role string) *User {
	return &User{
		ID:           id,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
}
