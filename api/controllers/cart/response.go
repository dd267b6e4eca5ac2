package cart

import (
	"time"

	"github.com/shopspring/decimal"

	cartsvc "github.com/goshophq/marketplace-backend/internal/cart"
	"github.com/goshophq/marketplace-backend/internal/checkout"
)

const dateLayout = "2006-01-02"

// QuoteResponse is the serialized quote. All money is rendered as a
// 2-decimal string, rounded half-up here and nowhere earlier.
type QuoteResponse struct {
	Currency      string                `json:"currency"`
	CountryCode   string                `json:"countryCode"`
	Groups        []GroupResponse       `json:"groups"`
	RemovedItems  []RemovedItemResponse `json:"removedItems"`
	Totals        TotalsResponse        `json:"totals"`
	CouponApplied bool                  `json:"couponApplied"`
}

type GroupResponse struct {
	StoreID         string          `json:"storeId"`
	StoreName       string          `json:"storeName"`
	Items           []ItemResponse  `json:"items"`
	Subtotal        string          `json:"subtotal"`
	ShippingFee     string          `json:"shippingFee"`
	ShippingService string          `json:"shippingService"`
	DeliveryMinDate string          `json:"deliveryMinDate"`
	DeliveryMaxDate string          `json:"deliveryMaxDate"`
	Discount        string          `json:"discount"`
	Coupon          *CouponResponse `json:"coupon,omitempty"`
}

type ItemResponse struct {
	ProductID    string            `json:"productId"`
	VariantID    string            `json:"variantId"`
	SizeID       string            `json:"sizeId"`
	Name         string            `json:"name"`
	VariantName  string            `json:"variantName"`
	Size         string            `json:"size"`
	SKU          string            `json:"sku"`
	Quantity     int               `json:"quantity"`
	Stock        int               `json:"stock"`
	UnitPrice    string            `json:"unitPrice"`
	LineTotal    string            `json:"lineTotal"`
	WeightKg     string            `json:"weightKg"`
	FreeShipping bool              `json:"freeShipping"`
	Warnings     []WarningResponse `json:"warnings,omitempty"`
}

type WarningResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type RemovedItemResponse struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	SizeID    string `json:"sizeId"`
	Reason    string `json:"reason"`
}

type CouponResponse struct {
	Code  string `json:"code"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type TotalsResponse struct {
	Subtotal      string `json:"subtotal"`
	TotalDiscount string `json:"totalDiscount"`
	TotalShipping string `json:"totalShipping"`
	GrandTotal    string `json:"grandTotal"`
}

func toQuoteResponse(result *checkout.QuoteResult) QuoteResponse {
	resp := QuoteResponse{
		Currency:      result.Currency,
		CountryCode:   result.CountryCode,
		Groups:        make([]GroupResponse, 0, len(result.Groups)),
		RemovedItems:  make([]RemovedItemResponse, 0, len(result.Removals)),
		CouponApplied: result.CouponApplied,
		Totals: TotalsResponse{
			Subtotal:      renderMoney(result.Totals.Subtotal),
			TotalDiscount: renderMoney(result.Totals.TotalDiscount),
			TotalShipping: renderMoney(result.Totals.TotalShipping),
			GrandTotal:    renderMoney(result.Totals.GrandTotal),
		},
	}

	for _, group := range result.Groups {
		resp.Groups = append(resp.Groups, toGroupResponse(group))
	}
	for _, removal := range result.Removals {
		resp.RemovedItems = append(resp.RemovedItems, RemovedItemResponse{
			ProductID: removal.ProductID.String(),
			VariantID: removal.VariantID.String(),
			SizeID:    removal.SizeID.String(),
			Reason:    removal.Reason.String(),
		})
	}
	return resp
}

func toGroupResponse(group *checkout.VendorGroup) GroupResponse {
	resp := GroupResponse{
		StoreID:         group.StoreID.String(),
		StoreName:       group.StoreName,
		Items:           make([]ItemResponse, 0, len(group.Items)),
		Subtotal:        renderMoney(group.Subtotal),
		ShippingFee:     renderMoney(group.ShippingFee),
		ShippingService: group.ShippingService,
		DeliveryMinDate: renderDate(group.DeliveryWindow.MinDate),
		DeliveryMaxDate: renderDate(group.DeliveryWindow.MaxDate),
		Discount:        renderMoney(group.Discount),
	}
	if group.AppliedCoupon != nil {
		resp.Coupon = &CouponResponse{
			Code:  group.AppliedCoupon.Code,
			Kind:  group.AppliedCoupon.Kind.String(),
			Value: renderMoney(group.AppliedCoupon.Value),
		}
	}
	for _, item := range group.Items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	return resp
}

func toItemResponse(item cartsvc.Item) ItemResponse {
	resp := ItemResponse{
		ProductID:    item.ProductID.String(),
		VariantID:    item.VariantID.String(),
		SizeID:       item.SizeID.String(),
		Name:         item.Name,
		VariantName:  item.VariantName,
		Size:         item.Size,
		SKU:          item.SKU,
		Quantity:     item.Quantity,
		Stock:        item.Stock,
		UnitPrice:    renderMoney(item.UnitPrice),
		LineTotal:    renderMoney(item.LineTotal()),
		WeightKg:     item.WeightKg.StringFixed(3),
		FreeShipping: item.FreeShipping,
	}
	for _, warning := range item.Warnings {
		resp.Warnings = append(resp.Warnings, WarningResponse{
			Type:    warning.Type.String(),
			Message: warning.Message,
		})
	}
	return resp
}

// renderMoney rounds half-up to two decimals. This is the only place
// monetary values are rounded.
func renderMoney(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func renderDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(dateLayout)
}
