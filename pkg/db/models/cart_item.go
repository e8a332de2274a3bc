package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem persists one variant line of a cart with the unit price captured when it
// was last added.
type CartItem struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CartID     uuid.UUID       `gorm:"column:cart_id;type:uuid;not null;uniqueIndex:cart_items_cart_variant_key"`
	VariantID  uuid.UUID       `gorm:"column:variant_id;type:uuid;not null;uniqueIndex:cart_items_cart_variant_key"`
	Variant    *ProductVariant `gorm:"foreignKey:VariantID"`
	Quantity   int             `gorm:"column:quantity;not null"`
	PriceAtAdd decimal.Decimal `gorm:"column:price_at_add;type:numeric(12,2);not null"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (CartItem) TableName() string { return "cart_items" }
