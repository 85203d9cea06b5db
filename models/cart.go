package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is a single pending purchase line owned by one user. Duplicate lines
// for the same menu item are allowed and never merged. UnitPrice is always
// the menu item's price at the moment the line was added, and Price is
// recomputed server-side as quantity × unit price.
type Cart struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"not null;index"`
	User       User            `json:"-" gorm:"foreignKey:UserID"`
	MenuItemID uint            `json:"menuitem_id" gorm:"not null"`
	MenuItem   MenuItem        `json:"menuitem,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
}
