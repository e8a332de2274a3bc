package domain

import (
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/google/uuid"
)

// VariantSnapshot is a point-in-time read of catalog data for one variant. It is
// never owned or cached by the cart.
type VariantSnapshot struct {
	VariantID     uuid.UUID           `json:"variant_id"`
	SKU           string              `json:"sku"`
	ProductName   string              `json:"product_name"`
	ProductSlug   types.Slug          `json:"product_slug"`
	StockQuantity int                 `json:"stock_quantity"`
	Price         types.Price         `json:"price"`
	SalePrice     *types.Price        `json:"sale_price,omitempty"`
	ProductStatus enums.ProductStatus `json:"product_status"`
}

// LivePrice is the sale price when present, else the list price.
func (v VariantSnapshot) LivePrice() types.Price {
	if v.SalePrice != nil {
		return *v.SalePrice
	}
	return v.Price
}

// IsAvailable reports whether the product may be placed in a cart.
func (v VariantSnapshot) IsAvailable() bool {
	return v.ProductStatus.IsAvailable()
}

// HasStockFor reports whether quantity units can be covered by current stock.
func (v VariantSnapshot) HasStockFor(quantity int) bool {
	return quantity <= v.StockQuantity
}
