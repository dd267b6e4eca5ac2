package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShippingRate is a vendor's shipping configuration for one destination
// country. A row with an empty country code is the vendor-wide default used
// when no country-specific row exists.
type ShippingRate struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID         uuid.UUID       `gorm:"column:store_id;type:uuid;not null;index:idx_shipping_rates_store_country,unique"`
	CountryCode     string          `gorm:"column:country_code;not null;default:'';index:idx_shipping_rates_store_country,unique"`
	ShippingService string          `gorm:"column:shipping_service;not null;default:'International Delivery'"`
	BaseFee         decimal.Decimal `gorm:"column:base_fee;type:numeric(12,2);not null;default:0"`
	ExtraFee        decimal.Decimal `gorm:"column:extra_fee;type:numeric(12,2);not null;default:0"`
	DeliveryTimeMin int             `gorm:"column:delivery_time_min;not null;default:7"`
	DeliveryTimeMax int             `gorm:"column:delivery_time_max;not null;default:31"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
