package models

import "time"

// User is a dashboard account (admin or registrar staff).
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"` // Unique
	Password  string    `json:"-" db:"password"`  // bcrypt hash, never serialized
	FullName  string    `json:"fullName" db:"full_name"`
	RoleType  RoleType  `json:"roleType" db:"role_type"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
