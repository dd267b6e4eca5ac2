package enums

import "fmt"

// RemovalReason explains why reconciliation dropped a cart line.
type RemovalReason string

const (
	RemovalReasonNotFound     RemovalReason = "not_found"
	RemovalReasonOutOfStock   RemovalReason = "out_of_stock"
	RemovalReasonLookupFailed RemovalReason = "lookup_failed"
)

var validRemovalReasons = []RemovalReason{
	RemovalReasonNotFound,
	RemovalReasonOutOfStock,
	RemovalReasonLookupFailed,
}

// String implements fmt.Stringer.
func (r RemovalReason) String() string {
	return string(r)
}

// IsValid reports whether the value is known.
func (r RemovalReason) IsValid() bool {
	for _, candidate := range validRemovalReasons {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRemovalReason converts raw input into a RemovalReason.
func ParseRemovalReason(value string) (RemovalReason, error) {
	for _, candidate := range validRemovalReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid removal reason %q", value)
}
