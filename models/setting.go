package models

import "time"

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = 1

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MinReservationLength    int     `gorm:"column:min_reservation_length" json:"minReservationLength"`
	MaxReservationLength    int     `gorm:"column:max_reservation_length" json:"maxReservationLength"`
	MaxGuestsPerReservation int     `gorm:"column:max_guests_per_reservation" json:"maxGuestsPerReservation"`
	BreakfastPrice          float64 `gorm:"column:breakfast_price" json:"breakfastPrice"`
}
