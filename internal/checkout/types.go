package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goshophq/marketplace-backend/internal/cart"
	"github.com/goshophq/marketplace-backend/internal/coupons"
	"github.com/goshophq/marketplace-backend/pkg/types"
)

// VendorGroup is the slice of a cart belonging to one store. Shipping and
// coupons are computed per group, never across groups.
type VendorGroup struct {
	StoreID   uuid.UUID
	StoreName string
	Items     []cart.Item

	Subtotal        decimal.Decimal
	ShippingFee     decimal.Decimal
	ShippingService string
	DeliveryWindow  types.DeliveryWindow

	Discount      decimal.Decimal
	AppliedCoupon *coupons.Coupon
}

// Totals is the cart-level aggregate over all vendor groups.
type Totals struct {
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalShipping decimal.Decimal
	GrandTotal    decimal.Decimal
}
