package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRate is one stored observation of a currency pair rate. The
// resolver always reads the most recent row for a pair; older rows are kept
// for audit, so writes are plain appends.
type ExchangeRate struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FromCurrency string          `gorm:"type:varchar(10);not null;index:idx_rate_pair" json:"from_currency"`
	ToCurrency   string          `gorm:"type:varchar(10);not null;index:idx_rate_pair" json:"to_currency"`
	Rate         decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"rate"`
	Source       string          `gorm:"type:varchar(50)" json:"source"` // e.g. manual, feed name
	CreatedAt    time.Time       `gorm:"index" json:"created_at"`
}
