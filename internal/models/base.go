package models

import (
	"time"

	"github.com/thrashered1/SmartSaveAI/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the columns shared by every table. IDs are time-ordered
// UUIDv7 strings so primary keys stay insert-ordered without a sequence.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate assigns a UUIDv7 when no ID was set by the caller.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
