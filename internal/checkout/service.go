package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/goshophq/marketplace-backend/internal/cart"
	"github.com/goshophq/marketplace-backend/internal/coupons"
	"github.com/goshophq/marketplace-backend/pkg/config"
	pkgerrors "github.com/goshophq/marketplace-backend/pkg/errors"
	"github.com/goshophq/marketplace-backend/pkg/logger"
	"github.com/goshophq/marketplace-backend/pkg/metrics"
)

// QuoteRequest is one stateless quote computation: a destination, the
// client's cart snapshot, and an optional coupon code.
type QuoteRequest struct {
	CountryCode string
	CouponCode  string
	Items       []cart.SnapshotItem
}

// QuoteResult is the fully derived cart view. Nothing in it is persisted;
// every call recomputes it from catalog truth.
type QuoteResult struct {
	Currency      string
	CountryCode   string
	Groups        []*VendorGroup
	Removals      []cart.Removal
	Totals        Totals
	CouponApplied bool
}

// Items returns the surviving reconciled lines across all groups, in
// cart order.
func (q *QuoteResult) Items() []cart.Item {
	items := make([]cart.Item, 0)
	for _, group := range q.Groups {
		items = append(items, group.Items...)
	}
	return items
}

// Service runs the quote pipeline: reconcile, group, price shipping,
// apply the coupon, aggregate.
type Service struct {
	reconciler *cart.Reconciler
	coupons    coupons.Resolver
	cfg        config.QuoteConfig
	logg       *logger.Logger
	metrics    *metrics.QuoteMetrics
	now        func() time.Time
}

// NewService wires the quote pipeline.
func NewService(reconciler *cart.Reconciler, resolver coupons.Resolver, cfg config.QuoteConfig, logg *logger.Logger, quoteMetrics *metrics.QuoteMetrics) *Service {
	return &Service{
		reconciler: reconciler,
		coupons:    resolver,
		cfg:        cfg,
		logg:       logg,
		metrics:    quoteMetrics,
		now:        time.Now,
	}
}

// Quote computes a fresh quote for the request. An empty resulting cart
// is a valid outcome, not an error; the only hard failure is the catalog
// being unreachable.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	started := s.now()

	country := strings.ToUpper(strings.TrimSpace(req.CountryCode))
	if country == "" {
		country = s.cfg.DefaultCountry
	}
	ctx = s.logg.WithCountry(ctx, country)

	if s.cfg.MaxSnapshotSize > 0 && len(req.Items) > s.cfg.MaxSnapshotSize {
		s.observe("rejected", started)
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart snapshot exceeds the allowed size")
	}

	items, removals, err := s.reconciler.Reconcile(ctx, country, req.Items)
	if err != nil {
		s.observe("error", started)
		return nil, err
	}
	if len(removals) > 0 {
		s.metrics.AddRemovedItems(len(removals))
		s.logg.Info(s.logg.WithField(ctx, "removed_items", len(removals)), "reconciliation dropped cart lines")
	}

	groups := GroupByStore(items)

	now := s.now()
	for _, group := range groups {
		ComputeShipping(group, now)
	}

	applied := s.applyCoupon(ctx, groups, req.CouponCode, now)

	result := &QuoteResult{
		Currency:      s.cfg.Currency,
		CountryCode:   country,
		Groups:        groups,
		Removals:      removals,
		Totals:        Aggregate(groups),
		CouponApplied: applied,
	}

	s.observe("success", started)
	return result, nil
}

// applyCoupon resolves the code and attaches it to the single matching
// vendor group. Every failure mode is inert: the shopper simply gets no
// discount.
func (s *Service) applyCoupon(ctx context.Context, groups []*VendorGroup, code string, now time.Time) bool {
	code = strings.TrimSpace(code)
	if code == "" || s.coupons == nil {
		return false
	}

	coupon, err := s.coupons.Resolve(ctx, code)
	if err != nil {
		s.logg.Error(ctx, "coupon resolution failed, quoting without discount", err)
		return false
	}
	if coupon == nil {
		return false
	}

	for _, group := range groups {
		if ApplyCoupon(group, coupon, now) {
			return true
		}
	}
	return false
}

func (s *Service) observe(outcome string, started time.Time) {
	s.metrics.ObserveQuote(outcome, time.Since(started))
}
