package entity

import (
	"time"

	"github.com/google/uuid"
)

// Column sizes of an account, counted in characters.
const (
	MaxFullNameLength = 100
	MaxEmailLength    = 255
	MaxPhoneLength    = 20
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// User is a bookstore account. Credentials are only ever stored as a bcrypt hash.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	FullName     string     // The user's display or real name.
	Email        string     // Unique login identifier.
	PasswordHash string     // bcrypt hash of the user's password; never serialized.
	Phone        string     // Optional contact number.
	Role         Role       // Authorization role.
	LocationID   *uuid.UUID // Optional reference to a node of the location tree, typically a VILLAGE.
	Location     *Location  // Populated when the repository preloads the location.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasLocation reports whether the user is attached to a location node.
func (u *User) HasLocation() bool {
	return u.LocationID != nil
}

// UserLocation pairs a user with the location node they are attached to, as returned by attribution queries.
type UserLocation struct {
	User     *User
	Location *Location
	Path     string // Full path of Location, root first.
}
