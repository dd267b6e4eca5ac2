package checkout

import "github.com/shopspring/decimal"

// Aggregate folds the vendor groups into cart-level totals. The grand
// total is floored at zero so an over-large coupon can never produce a
// negative payable amount.
func Aggregate(groups []*VendorGroup) Totals {
	totals := Totals{
		Subtotal:      decimal.Zero,
		TotalDiscount: decimal.Zero,
		TotalShipping: decimal.Zero,
	}
	for _, group := range groups {
		totals.Subtotal = totals.Subtotal.Add(group.Subtotal)
		totals.TotalDiscount = totals.TotalDiscount.Add(group.Discount)
		totals.TotalShipping = totals.TotalShipping.Add(group.ShippingFee)
	}

	totals.GrandTotal = totals.Subtotal.Sub(totals.TotalDiscount).Add(totals.TotalShipping)
	if totals.GrandTotal.IsNegative() {
		totals.GrandTotal = decimal.Zero
	}
	return totals
}
