package enums

import "fmt"

// CartItemWarningType tags non-fatal adjustments made during reconciliation.
type CartItemWarningType string

const (
	CartItemWarningTypePriceChanged CartItemWarningType = "price_changed"
	CartItemWarningTypeQtyClamped   CartItemWarningType = "qty_clamped"
)

var validCartItemWarningTypes = []CartItemWarningType{
	CartItemWarningTypePriceChanged,
	CartItemWarningTypeQtyClamped,
}

// String implements fmt.Stringer.
func (c CartItemWarningType) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c CartItemWarningType) IsValid() bool {
	for _, candidate := range validCartItemWarningTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCartItemWarningType converts raw input into a CartItemWarningType.
func ParseCartItemWarningType(value string) (CartItemWarningType, error) {
	for _, candidate := range validCartItemWarningTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart item warning type %q", value)
}
