package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. IDs are generated by the application.
// Deleting a node that is still referenced as a parent is refused by the store.
type LocationModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code     string     `gorm:"type:varchar(32);not null;uniqueIndex:idx_locations_code"`
	Name     string     `gorm:"type:varchar(150);not null;index:idx_locations_type_name,priority:2"`
	Type     string     `gorm:"type:varchar(16);not null;index:idx_locations_type_name,priority:1;check:chk_locations_type,type IN ('PROVINCE','DISTRICT','SECTOR','CELL','VILLAGE')"`
	ParentID *uuid.UUID `gorm:"type:uuid;index:idx_locations_parent_id"`

	Parent *LocationModel `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
