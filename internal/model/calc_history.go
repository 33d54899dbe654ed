package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalculationHistory is the append-only audit record of one completed
// calculation. Rows are written as a side effect of every successful
// calculation and never mutated or deleted by the engine.
type CalculationHistory struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Platform     string    `gorm:"type:varchar(20);not null;index" json:"platform"`
	ShippingMode string    `gorm:"type:varchar(10)" json:"shipping_mode,omitempty"` // eBay: ddp/ddu
	Country      string    `gorm:"type:varchar(5)" json:"country,omitempty"`        // Shopee country code
	ItemTitle    string    `gorm:"type:varchar(255);not null" json:"item_title"`
	Category     string    `gorm:"type:varchar(100)" json:"category"`

	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"purchase_price"` // JPY
	SellPrice     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"sell_price"`     // local currency
	Shipping      decimal.Decimal `gorm:"type:decimal(18,2)" json:"shipping"`

	ProfitJPY     decimal.Decimal `gorm:"column:profit_jpy;type:decimal(18,2)" json:"profit_jpy"`
	MarginPercent decimal.Decimal `gorm:"type:decimal(10,2)" json:"margin_percent"`
	ROIPercent    decimal.Decimal `gorm:"column:roi_percent;type:decimal(10,2)" json:"roi_percent"`
	DutyLocal     decimal.Decimal `gorm:"type:decimal(18,2)" json:"duty_local"`
	FeesLocal     decimal.Decimal `gorm:"type:decimal(18,2)" json:"fees_local"`

	// Cost-adjustment inputs, kept for audit reproducibility
	OutsourceFee   decimal.Decimal `gorm:"type:decimal(18,2)" json:"outsource_fee"`
	PackagingFee   decimal.Decimal `gorm:"type:decimal(18,2)" json:"packaging_fee"`
	ExchangeMargin decimal.Decimal `gorm:"type:decimal(10,4)" json:"exchange_margin"`
	ExchangeRate   decimal.Decimal `gorm:"type:decimal(18,6)" json:"exchange_rate"` // safe rate used

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
