package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Title     string          `json:"title" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Featured  bool            `json:"featured" gorm:"default:false"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
