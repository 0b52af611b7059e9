package entity

import (
	"time"

	"github.com/google/uuid"
)

// Back-office roles. Template editing, backup and restore require "admin".
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// AdminUser is a back-office account. Only staff use the system; owners and
// tenants never log in.
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
