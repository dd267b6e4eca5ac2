package types

import "time"

// DeliveryWindow is the calendar span a vendor group promises: the most
// optimistic minimum and the most pessimistic maximum across its items.
type DeliveryWindow struct {
	MinDate time.Time `json:"min_date"`
	MaxDate time.Time `json:"max_date"`
}
