package enums

import "fmt"

// CouponKind distinguishes percentage coupons from fixed-amount coupons.
type CouponKind string

const (
	CouponKindPercentage  CouponKind = "percentage"
	CouponKindFixedAmount CouponKind = "fixed_amount"
)

var validCouponKinds = []CouponKind{
	CouponKindPercentage,
	CouponKindFixedAmount,
}

// String implements fmt.Stringer.
func (c CouponKind) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c CouponKind) IsValid() bool {
	for _, candidate := range validCouponKinds {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCouponKind converts raw input into a CouponKind.
func ParseCouponKind(value string) (CouponKind, error) {
	for _, candidate := range validCouponKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid coupon kind %q", value)
}
