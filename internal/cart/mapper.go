package cart

import (
	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

func cartFromModel(row *models.Cart) (*domain.Cart, error) {
	items := make([]*domain.CartItem, 0, len(row.Items))
	for i := range row.Items {
		item, err := itemFromModel(&row.Items[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return domain.NewCart(row.ID, row.UserID, row.SessionID, row.CreatedAt, row.UpdatedAt, items...)
}

func itemFromModel(row *models.CartItem) (*domain.CartItem, error) {
	return domain.NewCartItem(domain.CartItemParams{
		ID:         row.ID,
		CartID:     row.CartID,
		VariantID:  row.VariantID,
		Quantity:   row.Quantity,
		PriceAtAdd: row.PriceAtAdd,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	})
}

func variantFromModel(row *models.ProductVariant) (domain.VariantSnapshot, error) {
	price, err := types.NewPrice(row.Price)
	if err != nil {
		return domain.VariantSnapshot{}, err
	}
	snapshot := domain.VariantSnapshot{
		VariantID:     row.ID,
		SKU:           row.SKU,
		StockQuantity: row.StockQuantity,
		Price:         price,
	}
	if row.SalePrice.Valid {
		sale, err := types.NewPrice(row.SalePrice.Decimal)
		if err != nil {
			return domain.VariantSnapshot{}, err
		}
		snapshot.SalePrice = &sale
	}
	if row.Product != nil {
		snapshot.ProductName = row.Product.Name
		snapshot.ProductSlug = productSlug(row.Product)
		snapshot.ProductStatus = row.Product.Status
	}
	return snapshot, nil
}

// productSlug re-derives the slug from the product name when the stored value
// is not a valid slug. Unresolvable names yield an empty slug.
func productSlug(product *models.Product) types.Slug {
	if s, err := types.NewSlug(product.Slug); err == nil {
		return s
	}
	if s, err := types.Slugify(product.Name); err == nil {
		return s
	}
	return ""
}
