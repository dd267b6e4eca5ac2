package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goshophq/marketplace-backend/internal/coupons"
	"github.com/goshophq/marketplace-backend/pkg/enums"
)

var oneHundred = decimal.NewFromInt(100)

// ApplyCoupon sets the group's discount for the coupon, if it applies.
// A missing, expired, or wrong-vendor coupon leaves the group untouched;
// nothing here is an error. Shipping is never discounted. Returns whether
// the coupon attached to this group.
func ApplyCoupon(group *VendorGroup, coupon *coupons.Coupon, now time.Time) bool {
	if group == nil || coupon == nil {
		return false
	}
	if !coupon.RedeemableAt(now) || coupon.StoreID != group.StoreID {
		return false
	}

	group.Discount = discountAmount(group.Subtotal, coupon)
	group.AppliedCoupon = coupon
	return true
}

// discountAmount clamps the discount into [0, subtotal].
func discountAmount(subtotal decimal.Decimal, coupon *coupons.Coupon) decimal.Decimal {
	var discount decimal.Decimal
	switch coupon.Kind {
	case enums.CouponKindFixedAmount:
		discount = coupon.Value
	default:
		discount = subtotal.Mul(coupon.Value).Div(oneHundred)
	}

	if discount.IsNegative() {
		return decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}
