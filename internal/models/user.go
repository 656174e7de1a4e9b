package models

import "time"

// Роли пользователей системы.
const (
	RoleAdmin    = "admin"
	RoleBombeiro = "bombeiro"
)

// User - учетная запись; пароль хранится только как bcrypt-хэш.
type User struct {
	ID           int64     `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Grupamento   *string   `json:"grupamento,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
