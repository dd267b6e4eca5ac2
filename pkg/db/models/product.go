package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/goshophq/marketplace-backend/pkg/enums"
)

// Product represents the canonical vendor listing.
type Product struct {
	ID                    uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID               uuid.UUID               `gorm:"column:store_id;type:uuid;not null;index"`
	Name                  string                  `gorm:"column:name;not null"`
	Brand                 *string                 `gorm:"column:brand"`
	ShippingFeeMethod     enums.ShippingFeeMethod `gorm:"column:shipping_fee_method;type:shipping_fee_method;not null;default:'per_item'"`
	FreeShipping          bool                    `gorm:"column:free_shipping;not null;default:false"`
	FreeShippingCountries pq.StringArray          `gorm:"column:free_shipping_countries;type:text[]"`
	IsActive              bool                    `gorm:"column:is_active;not null;default:true"`
	Variants              []ProductVariant        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
