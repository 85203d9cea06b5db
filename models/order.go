package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is a two-state toggle: there is no separate terminal
// "delivered" state. Delivery crew flips the same field back and forth.
type OrderStatus int

const (
	StatusPending        OrderStatus = 0
	StatusOutForDelivery OrderStatus = 1
)

func (s OrderStatus) String() string {
	if s == StatusOutForDelivery {
		return "out_for_delivery"
	}
	return "pending"
}

type Order struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	User           User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DeliveryCrewID *uint           `json:"delivery_crew_id"`
	DeliveryCrew   *User           `json:"delivery_crew,omitempty" gorm:"foreignKey:DeliveryCrewID"`
	Status         OrderStatus     `json:"status" gorm:"not null;default:0"`
	Date           time.Time       `json:"date" gorm:"type:date;not null"`
	Total          decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Items          []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderItem is an immutable snapshot of one cart line taken at checkout.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	MenuItemID uint            `json:"menuitem_id" gorm:"not null"`
	MenuItem   MenuItem        `json:"menuitem,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}
