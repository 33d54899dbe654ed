package model

import (
	"time"

	"github.com/google/uuid"
)

// CalcConfig is a named, reusable snapshot of calculation inputs for one
// marketplace. The payload is opaque at this layer; saves upsert by name
// (last writer wins).
type CalcConfig struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Platform   string    `gorm:"type:varchar(20);not null;index" json:"platform"` // ebay_usa, shopee
	ConfigData string    `gorm:"type:jsonb;not null" json:"config_data"`          // serialized request fields
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
