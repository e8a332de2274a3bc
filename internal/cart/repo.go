package cart

import (
	"context"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart/domain"
	"github.com/angelmondragon/storefront-backend/internal/repo"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertItemSQL = `INSERT INTO cart_items (id, cart_id, variant_id, quantity, price_at_add, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (cart_id, variant_id) DO UPDATE SET
	quantity = cart_items.quantity + excluded.quantity,
	price_at_add = excluded.price_at_add,
	updated_at = excluded.updated_at`

// GormRepository persists carts through GORM. It works against Postgres and SQLite.
type GormRepository struct {
	repo.Base
}

// NewRepository constructs a cart repository bound to the provided DB.
func NewRepository(conn *gorm.DB) *GormRepository {
	return &GormRepository{Base: repo.NewBase(conn)}
}

// WithTx binds the repository to a transaction.
func (r *GormRepository) WithTx(tx *gorm.DB) *GormRepository {
	if tx == nil {
		return r
	}
	return &GormRepository{Base: r.Base.WithTx(tx)}
}

func (r *GormRepository) FindCartByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	return r.findCart(ctx, "user_id = ?", userID)
}

func (r *GormRepository) FindCartBySession(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return r.findCart(ctx, "session_id = ?", sessionID)
}

func (r *GormRepository) findCart(ctx context.Context, query string, arg any) (*domain.Cart, error) {
	row, err := loadCartRow(r.DB(ctx), query, arg)
	if err != nil || row == nil {
		return nil, err
	}
	return cartFromModel(row)
}

func loadCartRow(tx *gorm.DB, query string, arg any) (*models.Cart, error) {
	var row models.Cart
	err := tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where(query, arg).
		First(&row).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateCart inserts an empty cart for owner. A concurrent insert for the same owner
// loses on the unique index and resolves to the winner's cart.
func (r *GormRepository) CreateCart(ctx context.Context, owner domain.Owner) (*domain.Cart, error) {
	userID, sessionID := owner.Fields()
	row := models.Cart{ID: uuid.New(), UserID: userID, SessionID: sessionID}
	err := r.DB(ctx).Omit(clause.Associations).Create(&row).Error
	if err == nil {
		return cartFromModel(&row)
	}
	if !db.IsUniqueViolation(err, "") {
		return nil, err
	}

	var existing *domain.Cart
	if id, ok := owner.UserID(); ok {
		existing, err = r.FindCartByUser(ctx, id)
	} else if id, ok := owner.SessionID(); ok {
		existing, err = r.FindCartBySession(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrCartNotFound
	}
	return existing, nil
}

// MergeGuestCart folds the session cart into the user cart inside one transaction.
// Without a user cart the guest cart is reassigned to the user; otherwise lines are
// merged and the guest cart is deleted.
func (r *GormRepository) MergeGuestCart(ctx context.Context, userID, sessionID string) (*domain.Cart, error) {
	var merged *domain.Cart
	err := r.Transaction(ctx, func(tx *gorm.DB) error {
		guestRow, err := loadCartRow(forUpdate(tx), "session_id = ?", sessionID)
		if err != nil {
			return err
		}
		userRow, err := loadCartRow(forUpdate(tx), "user_id = ?", userID)
		if err != nil {
			return err
		}

		guestEmpty := guestRow == nil || len(guestRow.Items) == 0

		switch {
		case guestEmpty && userRow == nil:
			row := models.Cart{ID: uuid.New(), UserID: &userID}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return err
			}
			merged, err = cartFromModel(&row)
			return err
		case guestEmpty:
			merged, err = cartFromModel(userRow)
			return err
		case userRow == nil:
			merged, err = reassignGuestCart(tx, guestRow, userID)
			return err
		default:
			merged, err = mergeCartRows(tx, userRow, guestRow)
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// forUpdate row-locks on Postgres. SQLite serializes writers per database already.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() != "postgres" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func reassignGuestCart(tx *gorm.DB, guestRow *models.Cart, userID string) (*domain.Cart, error) {
	guest, err := cartFromModel(guestRow)
	if err != nil {
		return nil, err
	}
	if err := guest.AssignToUser(userID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	err = tx.Model(&models.Cart{}).
		Where("id = ?", guestRow.ID).
		Updates(map[string]any{"user_id": userID, "session_id": nil, "updated_at": now}).Error
	if err != nil {
		return nil, err
	}
	guestRow.UserID = &userID
	guestRow.SessionID = nil
	guestRow.UpdatedAt = now
	return cartFromModel(guestRow)
}

func mergeCartRows(tx *gorm.DB, userRow, guestRow *models.Cart) (*domain.Cart, error) {
	user, err := cartFromModel(userRow)
	if err != nil {
		return nil, err
	}
	guest, err := cartFromModel(guestRow)
	if err != nil {
		return nil, err
	}
	if err := domain.MergeGuestInto(user, guest); err != nil {
		return nil, err
	}

	existing := make(map[uuid.UUID]struct{}, len(userRow.Items))
	for _, item := range userRow.Items {
		existing[item.ID] = struct{}{}
	}

	if err := tx.Where("cart_id = ?", guestRow.ID).Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, item := range user.Items() {
		if _, ok := existing[item.ID()]; ok {
			err := tx.Model(&models.CartItem{}).
				Where("id = ?", item.ID()).
				Updates(map[string]any{
					"quantity":     item.Quantity(),
					"price_at_add": item.PriceAtAdd().Decimal(),
					"updated_at":   now,
				}).Error
			if err != nil {
				return nil, err
			}
			continue
		}
		row := models.CartItem{
			ID:         item.ID(),
			CartID:     user.ID(),
			VariantID:  item.VariantID(),
			Quantity:   item.Quantity(),
			PriceAtAdd: item.PriceAtAdd().Decimal(),
			CreatedAt:  item.CreatedAt(),
			UpdatedAt:  now,
		}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return nil, err
		}
	}

	if err := tx.Where("id = ?", guestRow.ID).Delete(&models.Cart{}).Error; err != nil {
		return nil, err
	}

	reloaded, err := loadCartRow(tx, "id = ?", userRow.ID)
	if err != nil {
		return nil, err
	}
	if reloaded == nil {
		return nil, domain.ErrCartNotFound
	}
	return cartFromModel(reloaded)
}

// GetCartWithItems loads a cart with each line's live variant data.
func (r *GormRepository) GetCartWithItems(ctx context.Context, identity CartIdentity) (*CartWithItems, error) {
	query, arg := identityFilter(identity)
	if query == "" {
		return nil, domain.ErrIdentifierRequired
	}

	var row models.Cart
	err := r.DB(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.Variant.Product").
		Where(query, arg).
		First(&row).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c, err := cartFromModel(&row)
	if err != nil {
		return nil, err
	}
	out := &CartWithItems{Cart: c, Items: make([]ItemWithVariant, 0, len(row.Items))}
	for i := range row.Items {
		entry, err := itemWithVariantFromModel(&row.Items[i])
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *entry)
	}
	return out, nil
}

func identityFilter(identity CartIdentity) (string, any) {
	switch {
	case identity.CartID != uuid.Nil:
		return "id = ?", identity.CartID
	case identity.UserID != "":
		return "user_id = ?", identity.UserID
	case identity.SessionID != "":
		return "session_id = ?", identity.SessionID
	default:
		return "", nil
	}
}

// AddOrUpdateItem upserts the line in one statement so concurrent adds of the same
// variant both land.
func (r *GormRepository) AddOrUpdateItem(ctx context.Context, params AddItemParams) (*domain.CartItem, error) {
	now := time.Now().UTC()
	err := r.DB(ctx).Exec(upsertItemSQL,
		uuid.New(),
		params.CartID,
		params.VariantID,
		params.Quantity,
		params.PriceSnapshot.Decimal(),
		now,
		now,
	).Error
	if err != nil {
		return nil, err
	}

	var row models.CartItem
	err = r.DB(ctx).
		Where("cart_id = ? AND variant_id = ?", params.CartID, params.VariantID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return itemFromModel(&row)
}

func (r *GormRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*domain.CartItem, error) {
	res := r.DB(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Updates(map[string]any{"quantity": quantity, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrItemNotFound
	}

	var row models.CartItem
	if err := r.DB(ctx).Where("id = ?", itemID).First(&row).Error; err != nil {
		return nil, err
	}
	return itemFromModel(&row)
}

func (r *GormRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	return r.DB(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{}).Error
}

func (r *GormRepository) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	return r.DB(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}

func (r *GormRepository) GetVariantInfo(ctx context.Context, variantID uuid.UUID) (*domain.VariantSnapshot, error) {
	var row models.ProductVariant
	err := r.DB(ctx).
		Preload("Product").
		Where("id = ?", variantID).
		First(&row).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	snapshot, err := variantFromModel(&row)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *GormRepository) GetCartItemWithVariant(ctx context.Context, itemID uuid.UUID) (*ItemWithVariant, error) {
	var row models.CartItem
	err := r.DB(ctx).
		Preload("Variant.Product").
		Where("id = ?", itemID).
		First(&row).Error
	if db.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return itemWithVariantFromModel(&row)
}

func itemWithVariantFromModel(row *models.CartItem) (*ItemWithVariant, error) {
	item, err := itemFromModel(row)
	if err != nil {
		return nil, err
	}
	out := &ItemWithVariant{Item: item}
	if row.Variant != nil {
		out.Variant, err = variantFromModel(row.Variant)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

var _ Repository = (*GormRepository)(nil)
