package models

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleGuest = "GUEST"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name     string `gorm:"size:255" json:"name"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	Role     string `gorm:"size:16;default:GUEST" json:"role"`
	Image    string `gorm:"size:255" json:"image,omitempty"`

	// Guest profile fields filled by bulk import.
	Nationality string `gorm:"size:100" json:"nationality,omitempty"`
	NationalID  string `gorm:"size:64;column:national_id" json:"nationalID,omitempty"`
	CountryFlag string `gorm:"size:16;column:country_flag" json:"countryFlag,omitempty"`
}

// UserBasic is the slim projection joined onto reservation pages.
type UserBasic struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
