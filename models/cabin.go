package models

import "time"

type Cabin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name         string  `gorm:"size:255" json:"name"`
	MaxCapacity  int     `gorm:"column:max_capacity" json:"maxCapacity"`
	RegularPrice float64 `gorm:"column:regular_price" json:"regularPrice"`
	Discount     float64 `json:"discount"`
	Description  string  `gorm:"type:text" json:"description"`
	Image        string  `gorm:"size:255" json:"image"`
}
