package models

import (
	"time"

	"gorm.io/datatypes"
)

// Reservation lifecycle statuses. Status only ever moves forward:
// unconfirmed -> checked-in -> checked-out.
const (
	StatusUnconfirmed = "unconfirmed"
	StatusCheckedIn   = "checked-in"
	StatusCheckedOut  = "checked-out"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CabinID uint `gorm:"index;column:cabin_id" json:"cabinId"`
	UserID  uint `gorm:"index;column:user_id" json:"userId"`

	StartDate time.Time `gorm:"column:start_date" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date" json:"endDate"`
	NumNights int       `gorm:"column:num_nights" json:"numNights"`
	NumGuests int       `gorm:"column:num_guests" json:"numGuests"`

	HasBreakfast bool   `gorm:"column:has_breakfast" json:"hasBreakfast"`
	Observations string `gorm:"type:text" json:"observations,omitempty"`

	// Extras holds the breakdown written at check-in (breakfast price used,
	// guest count it was computed for). Not read by any query path.
	Extras datatypes.JSON `gorm:"column:extras" json:"extras,omitempty"`

	CabinPrice  float64 `gorm:"column:cabin_price" json:"cabinPrice"`
	ExtrasPrice float64 `gorm:"column:extras_price" json:"extrasPrice"`
	TotalPrice  float64 `gorm:"column:total_price" json:"totalPrice"`

	Status string `gorm:"size:32;index" json:"status"`

	Cabin Cabin `gorm:"foreignKey:CabinID;references:ID" json:"cabin,omitempty"`
	User  User  `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
