package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. A user reviews a book at most once.
type ReviewModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_book,priority:1"`
	BookID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_book,priority:2;index:idx_reviews_book_id"`
	Rating  int       `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment string    `gorm:"type:text"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
