package models

import (
	"time"

	"github.com/google/uuid"
)

// Cart persists a shopping cart owned by exactly one user or one guest session.
type Cart struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID    *string    `gorm:"column:user_id;uniqueIndex:carts_user_id_key"`
	SessionID *string    `gorm:"column:session_id;uniqueIndex:carts_session_id_key"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Cart) TableName() string { return "carts" }
