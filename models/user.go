package models

import "time"

// Group names mirror the two staff roles. A user in neither group is a
// plain customer.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery Crew"
)

type Group struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"uniqueIndex;not null"`
	Users []User `json:"-" gorm:"many2many:user_groups"`
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsSuperuser  bool      `json:"-" gorm:"not null;default:false"`
	Groups       []Group   `json:"-" gorm:"many2many:user_groups"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
