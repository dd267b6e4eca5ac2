package coupons

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/goshophq/marketplace-backend/pkg/db/models"
	pkgerrors "github.com/goshophq/marketplace-backend/pkg/errors"
)

// Repository loads coupons from the relational store.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByCode resolves a coupon code case-insensitively. Unknown codes
// return (nil, nil); the caller treats them as inert.
func (r *Repository) FindByCode(ctx context.Context, code string) (*Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	var row models.Coupon
	err := r.db.WithContext(ctx).
		Where("LOWER(code) = LOWER(?)", code).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading coupon")
	}

	return &Coupon{
		ID:        row.ID,
		StoreID:   row.StoreID,
		Code:      row.Code,
		Kind:      row.Kind,
		Value:     row.Value,
		StartsAt:  row.StartsAt,
		ExpiresAt: row.ExpiresAt,
		IsActive:  row.IsActive,
	}, nil
}
