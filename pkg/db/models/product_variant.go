package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductVariant is a purchasable SKU with its own price and stock level.
type ProductVariant struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	ProductID     uuid.UUID           `gorm:"column:product_id;type:uuid;not null;index:product_variants_product_id_idx"`
	Product       *Product            `gorm:"foreignKey:ProductID"`
	SKU           string              `gorm:"column:sku;not null;uniqueIndex:product_variants_sku_key"`
	Price         decimal.Decimal     `gorm:"column:price;type:numeric(12,2);not null"`
	SalePrice     decimal.NullDecimal `gorm:"column:sale_price;type:numeric(12,2)"`
	StockQuantity int                 `gorm:"column:stock_quantity;not null;default:0"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (ProductVariant) TableName() string { return "product_variants" }
