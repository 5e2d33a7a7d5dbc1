package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Category groups courses by province. Categories are created whole and
// deleted whole, never updated in place.
type Category struct {
	BaseModel
	Province      string         `gorm:"unique;not null"`
	ValidCounties pq.StringArray `gorm:"type:text[]"`

	LastUpdatedByID uuid.UUID
	LastUpdatedBy   Account `gorm:"foreignKey:LastUpdatedByID"`

	Courses []Course `gorm:"foreignKey:CategoryID"`
}
