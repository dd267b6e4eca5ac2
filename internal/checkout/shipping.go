package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goshophq/marketplace-backend/internal/cart"
	"github.com/goshophq/marketplace-backend/pkg/enums"
	"github.com/goshophq/marketplace-backend/pkg/types"
)

// ComputeShipping fills the group's fee, service name, and delivery
// window as of the given instant. Items normally share one fee method
// per vendor; a mixed group is costed item by item and summed.
func ComputeShipping(group *VendorGroup, now time.Time) {
	if group == nil || len(group.Items) == 0 {
		return
	}

	group.ShippingService = group.Items[0].ShippingService
	group.DeliveryWindow = deliveryWindow(group.Items, now)

	method, uniform := dominantMethod(group.Items)
	if !uniform {
		group.ShippingFee = mixedFee(group.Items)
		return
	}

	switch method {
	case enums.ShippingFeeMethodWeight:
		group.ShippingFee = weightFee(group.Items)
	case enums.ShippingFeeMethodFixed:
		group.ShippingFee = fixedFee(group.Items)
	default:
		group.ShippingFee = perItemFee(group.Items)
	}
}

func dominantMethod(items []cart.Item) (enums.ShippingFeeMethod, bool) {
	method := items[0].ShippingFeeMethod
	for _, item := range items[1:] {
		if item.ShippingFeeMethod != method {
			return method, false
		}
	}
	return method, true
}

// perItemFee charges the base fee for the first unit in the group and the
// extra fee for every unit after it. Free-shipping items still consume
// unit slots but contribute nothing.
func perItemFee(items []cart.Item) decimal.Decimal {
	fee := decimal.Zero
	unitsSeen := 0

	for _, item := range items {
		qty := item.Quantity
		if item.FreeShipping {
			unitsSeen += qty
			continue
		}
		billable := qty
		if unitsSeen == 0 {
			fee = fee.Add(item.BaseShippingFee)
			billable--
		}
		if billable > 0 {
			fee = fee.Add(item.ExtraShippingFee.Mul(decimal.NewFromInt(int64(billable))))
		}
		unitsSeen += qty
	}
	return fee
}

// weightFee is the per-kg base fee times the group's billable weight.
// Free-shipping items are excluded from the weight sum.
func weightFee(items []cart.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.FreeShipping {
			continue
		}
		total = total.Add(item.WeightKg.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if total.IsZero() {
		return decimal.Zero
	}
	return items[0].BaseShippingFee.Mul(total)
}

// fixedFee charges the base fee once per group, waived only when every
// item in the group ships free.
func fixedFee(items []cart.Item) decimal.Decimal {
	for _, item := range items {
		if !item.FreeShipping {
			return item.BaseShippingFee
		}
	}
	return decimal.Zero
}

// mixedFee costs each item under its own method. Defensive path for
// vendors whose products disagree on the fee method.
func mixedFee(items []cart.Item) decimal.Decimal {
	fee := decimal.Zero
	for _, item := range items {
		fee = fee.Add(standaloneItemFee(item))
	}
	return fee
}

func standaloneItemFee(item cart.Item) decimal.Decimal {
	if item.FreeShipping {
		return decimal.Zero
	}
	qty := decimal.NewFromInt(int64(item.Quantity))
	switch item.ShippingFeeMethod {
	case enums.ShippingFeeMethodWeight:
		return item.BaseShippingFee.Mul(item.WeightKg).Mul(qty)
	case enums.ShippingFeeMethodFixed:
		return item.BaseShippingFee
	default:
		extra := item.ExtraShippingFee.Mul(qty.Sub(decimal.NewFromInt(1)))
		return item.BaseShippingFee.Add(extra)
	}
}

// deliveryWindow spans the most optimistic minimum and most pessimistic
// maximum across the group, so the promise covers every item.
func deliveryWindow(items []cart.Item, now time.Time) types.DeliveryWindow {
	minDays := items[0].DeliveryTimeMin
	maxDays := items[0].DeliveryTimeMax
	for _, item := range items[1:] {
		if item.DeliveryTimeMin < minDays {
			minDays = item.DeliveryTimeMin
		}
		if item.DeliveryTimeMax > maxDays {
			maxDays = item.DeliveryTimeMax
		}
	}
	return types.DeliveryWindow{
		MinDate: now.AddDate(0, 0, minDays),
		MaxDate: now.AddDate(0, 0, maxDays),
	}
}
