package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Course is a golf-course point of interest. RelatedImages holds opaque
// identifiers minted by the external image store, in display order; the
// binaries themselves never touch this database.
type Course struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`

	// Optional geo-point. Both set together or both nil.
	Longitude *float64
	Latitude  *float64

	CategoryID *uuid.UUID
	Category   *Category `gorm:"foreignKey:CategoryID"`

	LastUpdatedByID uuid.UUID
	LastUpdatedBy   Account `gorm:"foreignKey:LastUpdatedByID"`

	RelatedImages pq.StringArray `gorm:"type:text[]"`
}

// HasLocation reports whether the course carries a usable coordinate pair.
func (c *Course) HasLocation() bool {
	return c.Longitude != nil && c.Latitude != nil
}
