package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goshophq/marketplace-backend/pkg/enums"
)

// Coupon is a discount code scoped to exactly one vendor store.
type Coupon struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID   uuid.UUID        `gorm:"column:store_id;type:uuid;not null;index"`
	Code      string           `gorm:"column:code;not null;uniqueIndex"`
	Kind      enums.CouponKind `gorm:"column:kind;type:coupon_kind;not null"`
	Value     decimal.Decimal  `gorm:"column:value;type:numeric(12,2);not null"`
	StartsAt  time.Time        `gorm:"column:starts_at;not null"`
	ExpiresAt time.Time        `gorm:"column:expires_at;not null"`
	IsActive  bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
