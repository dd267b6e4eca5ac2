package models

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a vendor storefront on the marketplace.
type Store struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	URLSlug      string     `gorm:"column:url_slug;not null;uniqueIndex"`
	Email        *string    `gorm:"column:email"`
	Phone        *string    `gorm:"column:phone"`
	ReturnPolicy *string    `gorm:"column:return_policy"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`
	LastActiveAt *time.Time `gorm:"column:last_active_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
