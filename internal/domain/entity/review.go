package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of a book. A user reviews a given book at most once.
type Review struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BookID    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRating reports whether r lies within [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
