package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a row of the users table. Nullable columns map to pointers.
type User struct {
	UserID               uuid.UUID  `json:"user_id"`
	Email                string     `json:"email"`
	PasswordHash         *string    `json:"password_hash,omitempty"`
	Role                 *string    `json:"role,omitempty"`
	IsVerified           *bool      `json:"is_verified,omitempty"`
	PasswordResetToken   *string    `json:"password_reset_token,omitempty"`
	PasswordResetExpires *string    `json:"password_reset_expires,omitempty"`
	IsActive             *bool      `json:"is_active,omitempty"`
	CreatedAt            *time.Time `json:"created_at,omitempty"`
	AuthUserID           *uuid.UUID `json:"auth_user_id,omitempty"`
}

// UserPublic is the projection returned to callers. It never carries the
// credential digest or reset fields.
type UserPublic struct {
	UserID     uuid.UUID  `json:"user_id"`
	Email      string     `json:"email"`
	Role       *string    `json:"role"`
	IsVerified *bool      `json:"is_verified"`
	IsActive   *bool      `json:"is_active"`
	CreatedAt  *time.Time `json:"created_at"`
}

// Public projects the user into its safe-to-return shape.
func (u User) Public() UserPublic {
	return UserPublic{
		UserID:     u.UserID,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
	}
}

type NewUser struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	IsVerified   bool   `json:"is_verified"`
	IsActive     bool   `json:"is_active"`
}

// UpdateUser is a partial patch. Only non-nil fields are sent, so an
// admin update never clobbers columns it did not mention.
type UpdateUser struct {
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	IsVerified *bool   `json:"is_verified,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}
