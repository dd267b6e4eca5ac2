package coupons

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goshophq/marketplace-backend/pkg/enums"
)

// Coupon is the resolved view of a vendor-scoped discount code.
type Coupon struct {
	ID        uuid.UUID        `json:"id"`
	StoreID   uuid.UUID        `json:"storeId"`
	Code      string           `json:"code"`
	Kind      enums.CouponKind `json:"kind"`
	Value     decimal.Decimal  `json:"value"`
	StartsAt  time.Time        `json:"startsAt"`
	ExpiresAt time.Time        `json:"expiresAt"`
	IsActive  bool             `json:"isActive"`
}

// RedeemableAt reports whether the coupon can discount a quote at the
// given instant. An unredeemable coupon is inert, never an error.
func (c *Coupon) RedeemableAt(at time.Time) bool {
	if c == nil || !c.IsActive {
		return false
	}
	if at.Before(c.StartsAt) {
		return false
	}
	return at.Before(c.ExpiresAt)
}
