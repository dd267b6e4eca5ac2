package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	groups := []*VendorGroup{
		{Subtotal: money("50.00"), Discount: money("10.00"), ShippingFee: money("5.00")},
		{Subtotal: money("30.00"), ShippingFee: money("9.99")},
	}

	totals := Aggregate(groups)
	require.True(t, totals.Subtotal.Equal(money("80.00")))
	require.True(t, totals.TotalDiscount.Equal(money("10.00")))
	require.True(t, totals.TotalShipping.Equal(money("14.99")))
	require.True(t, totals.GrandTotal.Equal(money("84.99")), "got %s", totals.GrandTotal)
}

func TestAggregate_GrandTotalFloor(t *testing.T) {
	// a discount recorded above the subtotal must never go negative
	groups := []*VendorGroup{
		{Subtotal: money("10.00"), Discount: money("25.00")},
	}

	totals := Aggregate(groups)
	require.True(t, totals.GrandTotal.IsZero())
}

func TestAggregate_Empty(t *testing.T) {
	totals := Aggregate(nil)
	require.True(t, totals.Subtotal.IsZero())
	require.True(t, totals.GrandTotal.IsZero())
}
