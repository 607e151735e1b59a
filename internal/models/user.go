// Package models defines the entities persisted by the storage backends.
//
// Conventions shared by every entity:
//   - ID is assigned by the active backend (decimal counter in memory,
//     ObjectID hex in the document store) and is immutable once set.
//   - CreatedAt/UpdatedAt are set on create; UpdatedAt advances on every
//     mutation.
//   - Geometry, tag lists and metadata are carried as opaque serialized
//     text; only the storage layer decodes them (see package geo).
//
// Each entity has a companion *Update struct with pointer fields: nil
// means "leave unchanged", following merge semantics on update.
package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Username     string     `json:"username" bson:"username"`
	Email        string     `json:"email" bson:"email"`
	Password     string     `json:"-" bson:"password"`
	FirstName    string     `json:"firstName" bson:"firstName"`
	LastName     string     `json:"lastName" bson:"lastName"`
	Role         string     `json:"role" bson:"role"`
	BadgeNumber  string     `json:"badgeNumber" bson:"badgeNumber"`
	Department   string     `json:"department" bson:"department"`
	Position     string     `json:"position" bson:"position"`
	Phone        string     `json:"phone" bson:"phone"`
	ProfileImage *string    `json:"profileImage" bson:"profileImage"`
	IsActive     bool       `json:"isActive" bson:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt" bson:"lastLoginAt"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type UserUpdate struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Role         *string `json:"role"`
	BadgeNumber  *string `json:"badgeNumber"`
	Department   *string `json:"department"`
	Position     *string `json:"position"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profileImage"`
	IsActive     *bool   `json:"isActive"`
}

// PasswordResetToken is the only entity with time-based expiry. The token
// value itself is caller-supplied and acts as the primary key.
type PasswordResetToken struct {
	Token     string    `json:"token" bson:"token"`
	UserID    string    `json:"userId" bson:"userId"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expiresAt"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// PasswordResetTokenTTL is how long a reset token stays valid.
const PasswordResetTokenTTL = time.Hour
