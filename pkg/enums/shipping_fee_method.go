package enums

import "fmt"

// ShippingFeeMethod selects how a vendor's shipping fee scales with the order.
type ShippingFeeMethod string

const (
	// ShippingFeeMethodItem charges a base fee for the first unit and a
	// reduced fee for every additional unit in the vendor group.
	ShippingFeeMethodItem ShippingFeeMethod = "per_item"
	// ShippingFeeMethodWeight charges per kilogram of the group's total weight.
	ShippingFeeMethodWeight ShippingFeeMethod = "weight"
	// ShippingFeeMethodFixed charges the base fee once per vendor group.
	ShippingFeeMethodFixed ShippingFeeMethod = "fixed"
)

var validShippingFeeMethods = []ShippingFeeMethod{
	ShippingFeeMethodItem,
	ShippingFeeMethodWeight,
	ShippingFeeMethodFixed,
}

// String implements fmt.Stringer.
func (s ShippingFeeMethod) String() string {
	return string(s)
}

// IsValid reports whether the value is known.
func (s ShippingFeeMethod) IsValid() bool {
	for _, candidate := range validShippingFeeMethods {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingFeeMethod converts raw input into a ShippingFeeMethod.
func ParseShippingFeeMethod(value string) (ShippingFeeMethod, error) {
	for _, candidate := range validShippingFeeMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping fee method %q", value)
}
