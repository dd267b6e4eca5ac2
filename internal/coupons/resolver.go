package coupons

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/goshophq/marketplace-backend/pkg/logger"
	pkgredis "github.com/goshophq/marketplace-backend/pkg/redis"
)

// Resolver maps a shopper-entered code to a coupon. A nil coupon with a
// nil error means the code does not exist.
type Resolver interface {
	Resolve(ctx context.Context, code string) (*Coupon, error)
}

// Finder is the persistence surface the cached resolver depends on.
type Finder interface {
	FindByCode(ctx context.Context, code string) (*Coupon, error)
}

type couponCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CouponCacheKey(code string) string
}

// CachedResolver fronts the coupon repository with a short-lived Redis
// cache. Cache problems degrade to a direct repository read.
type CachedResolver struct {
	finder Finder
	cache  couponCache
	ttl    time.Duration
	logg   *logger.Logger
}

// NewCachedResolver wires the resolver. A nil cache disables caching.
func NewCachedResolver(finder Finder, cache *pkgredis.Client, ttl time.Duration, logg *logger.Logger) *CachedResolver {
	resolver := &CachedResolver{finder: finder, ttl: ttl, logg: logg}
	if cache != nil {
		resolver.cache = cache
	}
	return resolver
}

// Resolve returns the coupon for the code, consulting the cache first.
// Only existing coupons are cached; unknown codes always hit the store so
// a freshly created coupon becomes usable immediately.
func (r *CachedResolver) Resolve(ctx context.Context, code string) (*Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	if r.cache != nil {
		cached, err := r.cache.Get(ctx, r.cache.CouponCacheKey(code))
		switch {
		case err == nil:
			var coupon Coupon
			if unmarshalErr := json.Unmarshal([]byte(cached), &coupon); unmarshalErr == nil {
				return &coupon, nil
			}
			// fall through on a corrupt payload
		case errors.Is(err, pkgredis.ErrCacheMiss):
		default:
			if r.logg != nil {
				r.logg.Warn(ctx, "coupon cache read failed, falling back to store")
			}
		}
	}

	coupon, err := r.finder.FindByCode(ctx, code)
	if err != nil || coupon == nil {
		return coupon, err
	}

	if r.cache != nil {
		if payload, marshalErr := json.Marshal(coupon); marshalErr == nil {
			if setErr := r.cache.Set(ctx, r.cache.CouponCacheKey(code), payload, r.ttl); setErr != nil && r.logg != nil {
				r.logg.Warn(ctx, "coupon cache write failed")
			}
		}
	}
	return coupon, nil
}
