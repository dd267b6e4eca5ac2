package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goshophq/marketplace-backend/internal/cart"
)

// GroupByStore partitions reconciled items by vendor. Groups appear in
// first-appearance order of their store, items keep their input order,
// and no empty group is ever produced.
func GroupByStore(items []cart.Item) []*VendorGroup {
	groups := make([]*VendorGroup, 0)
	index := make(map[uuid.UUID]*VendorGroup)

	for _, item := range items {
		group, ok := index[item.StoreID]
		if !ok {
			group = &VendorGroup{
				StoreID:   item.StoreID,
				StoreName: item.StoreName,
				Subtotal:  decimal.Zero,
			}
			index[item.StoreID] = group
			groups = append(groups, group)
		}
		group.Items = append(group.Items, item)
		group.Subtotal = group.Subtotal.Add(item.LineTotal())
	}

	return groups
}
