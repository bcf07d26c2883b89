package domain

import "time"

type AccountRole string

const (
	AccountRoleStudent AccountRole = "STUDENT"
	AccountRoleAdmin   AccountRole = "SKS_ADMIN"
)

type Account struct {
	ID           int32       `json:"id"`
	Role         AccountRole `json:"role"`
	Name         string      `json:"name"`
	Surname      string      `json:"surname"`
	UniversityID string      `json:"university_id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (a *Account) IsAdmin() bool {
	return a.Role == AccountRoleAdmin
}
