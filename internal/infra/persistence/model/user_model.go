package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PasswordHash holds a bcrypt hash, never the plaintext.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName     string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Phone        string     `gorm:"type:varchar(20)"`
	Role         string     `gorm:"type:varchar(16);not null;default:CUSTOMER;index:idx_users_role"`
	LocationID   *uuid.UUID `gorm:"type:uuid;index:idx_users_location_id"`

	Location *LocationModel `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
