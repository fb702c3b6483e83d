package services

import (
	"encoding/json"
	"errors"
	"time"

	"cabin-backoffice/models"
	"cabin-backoffice/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sortable fields exposed by the reservations table, mapped to columns.
var reservationSortColumns = map[string]string{
	"startDate":  "start_date",
	"endDate":    "end_date",
	"numNights":  "num_nights",
	"totalPrice": "total_price",
	"cabinPrice": "cabin_price",
	"createdAt":  "created_at",
	"status":     "status",
}

// ReservationListParams carries the filter/sort/page triple an incoming list
// request resolves to.
type ReservationListParams struct {
	Status string // utils.FilterAll means no filter
	Sort   utils.SortOrder
	Page   int // 1-indexed; <1 treated as 1
}

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func (s *ReservationService) filtered(params ReservationListParams) *gorm.DB {
	q := s.DB.Model(&models.Reservation{})
	if params.Status != "" && params.Status != utils.FilterAll {
		q = q.Where("status = ?", params.Status)
	}
	return q
}

// List returns one page of reservations, each carrying the owning cabin's
// name and the owning user's name and email, plus the pre-pagination count of
// records matching the filter. A store failure is returned as-is; the HTTP
// boundary decides how to degrade.
func (s *ReservationService) List(params ReservationListParams) ([]models.Reservation, int64, error) {
	var count int64
	if err := s.filtered(params).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	column, ok := reservationSortColumns[params.Sort.Field]
	if !ok {
		column = "start_date"
	}
	direction := "ASC"
	if params.Sort.Direction == "desc" {
		direction = "DESC"
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	var reservations []models.Reservation
	err := s.filtered(params).
		Order(column + " " + direction + ", id ASC"). // id breaks ties, keeps pages stable
		Offset((page - 1) * utils.PageSize).
		Limit(utils.PageSize).
		Preload("Cabin", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, err
	}

	return reservations, count, nil
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.
		Preload("Cabin").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "nationality", "national_id", "country_flag")
		}).
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, ErrNotFound
		}
		return models.Reservation{}, err
	}
	return reservation, nil
}

// Create books a cabin for a guest. Nights and prices are derived here, never
// taken from the caller; a non-positive night count rejects the booking.
func (s *ReservationService) Create(cabin models.Cabin, userID uint, start, end time.Time, numGuests int, hasBreakfast bool, breakfastPrice float64, observations string) (models.Reservation, error) {
	nights := NumNights(start, end)
	quote, err := QuoteStay(nights, cabin.RegularPrice, cabin.Discount, numGuests, hasBreakfast, breakfastPrice)
	if err != nil {
		return models.Reservation{}, fieldError("endDate", "End date must be after start date")
	}
	if numGuests <= 0 {
		return models.Reservation{}, fieldError("numGuests", "Must be at least 1")
	}

	reservation := models.Reservation{
		CabinID:      cabin.ID,
		UserID:       userID,
		StartDate:    start,
		EndDate:      end,
		NumNights:    nights,
		NumGuests:    numGuests,
		HasBreakfast: hasBreakfast,
		Observations: observations,
		CabinPrice:   quote.CabinPrice,
		ExtrasPrice:  quote.ExtrasPrice,
		TotalPrice:   quote.TotalPrice,
		Status:       models.StatusUnconfirmed,
	}
	if err := s.DB.Create(&reservation).Error; err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

// CreateMany bulk-inserts pre-built reservations (sample-data import).
func (s *ReservationService) CreateMany(reservations []models.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}
	return s.DB.Create(&reservations).Error
}

func (s *ReservationService) Delete(id uint) error {
	return s.DB.Delete(&models.Reservation{}, id).Error
}

// DeleteAll clears the reservations table (sample-data reset).
func (s *ReservationService) DeleteAll() error {
	return s.DB.Where("1 = 1").Delete(&models.Reservation{}).Error
}

type checkInExtras struct {
	HasBreakfast bool    `json:"hasBreakfast"`
	ExtrasPrice  float64 `json:"extrasPrice"`
	NumGuests    int     `json:"numGuests"`
	NumNights    int     `json:"numNights"`
}

// CheckIn marks an unconfirmed reservation as checked-in, storing the
// breakfast flag together with the extras and total price supplied at the
// desk. Reservations already checked in or out are rejected.
func (s *ReservationService) CheckIn(id uint, hasBreakfast bool, extrasPrice, totalPrice float64) (models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if reservation.Status != models.StatusUnconfirmed {
		return models.Reservation{}, ErrBackwardTransition
	}

	breakdown, _ := json.Marshal(checkInExtras{
		HasBreakfast: hasBreakfast,
		ExtrasPrice:  extrasPrice,
		NumGuests:    reservation.NumGuests,
		NumNights:    reservation.NumNights,
	})

	updates := map[string]interface{}{
		"has_breakfast": hasBreakfast,
		"extras_price":  extrasPrice,
		"total_price":   totalPrice,
		"extras":        datatypes.JSON(breakdown),
		"status":        models.StatusCheckedIn,
	}
	if err := s.DB.Model(&models.Reservation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Reservation{}, err
	}
	return s.GetByID(id)
}

// CheckOut marks a checked-in reservation as checked-out.
func (s *ReservationService) CheckOut(id uint) (models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if reservation.Status != models.StatusCheckedIn {
		return models.Reservation{}, ErrBackwardTransition
	}

	if err := s.DB.Model(&models.Reservation{}).Where("id = ?", id).
		Update("status", models.StatusCheckedOut).Error; err != nil {
		return models.Reservation{}, err
	}
	return s.GetByID(id)
}
