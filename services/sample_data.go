package services

import (
	"time"

	"cabin-backoffice/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// sampleStay describes one demo reservation relative to the upload day.
type sampleStay struct {
	startOffsetDays int
	nights          int
	numGuests       int
	hasBreakfast    bool
	observations    string
}

var sampleCabins = []models.Cabin{
	{Name: "001", MaxCapacity: 2, RegularPrice: 250, Discount: 0, Description: "Small luxury cabin in the woods"},
	{Name: "002", MaxCapacity: 2, RegularPrice: 350, Discount: 25, Description: "Cabin with a view over the valley"},
	{Name: "003", MaxCapacity: 4, RegularPrice: 300, Discount: 0, Description: "Comfortable cabin for a small family"},
	{Name: "004", MaxCapacity: 4, RegularPrice: 500, Discount: 50, Description: "Luxury cabin with private hot tub"},
	{Name: "005", MaxCapacity: 6, RegularPrice: 350, Discount: 0, Description: "Spacious cabin near the lake"},
	{Name: "006", MaxCapacity: 6, RegularPrice: 800, Discount: 100, Description: "Premium cabin for a large group"},
	{Name: "007", MaxCapacity: 8, RegularPrice: 600, Discount: 100, Description: "Cabin for a whole crew of friends"},
	{Name: "008", MaxCapacity: 10, RegularPrice: 1400, Discount: 0, Description: "The grandest cabin of them all"},
}

var sampleGuests = []GuestInput{
	{Name: "Jonas Schmedtmann", Email: "hello@jonas.io", Nationality: "Portugal", NationalID: "3525436345", CountryFlag: "pt"},
	{Name: "Jonathan Smith", Email: "johnsmith@test.eu", Nationality: "Great Britain", NationalID: "4534593454", CountryFlag: "gb"},
	{Name: "Emma Watson", Email: "emma@gmail.com", Nationality: "United Kingdom", NationalID: "1234578901", CountryFlag: "gb"},
	{Name: "Mohammed Ali", Email: "mohammedali@yahoo.com", Nationality: "Egypt", NationalID: "987543210", CountryFlag: "eg"},
	{Name: "Maria Rodriguez", Email: "maria@gmail.com", Nationality: "Spain", NationalID: "1098765321", CountryFlag: "es"},
	{Name: "Li Mei", Email: "li.mei@hotmail.com", Nationality: "China", NationalID: "102934756", CountryFlag: "cn"},
	{Name: "Khadija Ahmed", Email: "khadija@gmail.com", Nationality: "Sudan", NationalID: "1023457890", CountryFlag: "sd"},
	{Name: "Gabriel Silva", Email: "gabriel@gmail.com", Nationality: "Brazil", NationalID: "109283465", CountryFlag: "br"},
}

var sampleStays = []sampleStay{
	{startOffsetDays: -25, nights: 4, numGuests: 1, hasBreakfast: true, observations: "I have a gluten allergy"},
	{startOffsetDays: -18, nights: 5, numGuests: 2, hasBreakfast: false},
	{startOffsetDays: -12, nights: 3, numGuests: 2, hasBreakfast: true},
	{startOffsetDays: -9, nights: 7, numGuests: 4, hasBreakfast: true, observations: "We will be bringing our small dog"},
	{startOffsetDays: -3, nights: 6, numGuests: 3, hasBreakfast: false},
	{startOffsetDays: -2, nights: 4, numGuests: 2, hasBreakfast: true},
	{startOffsetDays: -1, nights: 3, numGuests: 5, hasBreakfast: false},
	{startOffsetDays: 0, nights: 2, numGuests: 2, hasBreakfast: true},
	{startOffsetDays: 2, nights: 5, numGuests: 2, hasBreakfast: false},
	{startOffsetDays: 5, nights: 4, numGuests: 6, hasBreakfast: true, observations: "Late arrival, around 23:00"},
	{startOffsetDays: 9, nights: 7, numGuests: 4, hasBreakfast: false},
	{startOffsetDays: 14, nights: 3, numGuests: 2, hasBreakfast: true},
	{startOffsetDays: 21, nights: 10, numGuests: 8, hasBreakfast: true},
	{startOffsetDays: 30, nights: 5, numGuests: 2, hasBreakfast: false},
}

// SampleDataService rebuilds the demo dataset: cabins, guest users, and
// reservations whose status and prices are derived at import time.
type SampleDataService struct {
	DB           *gorm.DB
	Cabins       *CabinService
	Users        *UserService
	Reservations *ReservationService
	Log          zerolog.Logger
}

func NewSampleDataService(db *gorm.DB, cabins *CabinService, users *UserService, reservations *ReservationService, log zerolog.Logger) *SampleDataService {
	return &SampleDataService{DB: db, Cabins: cabins, Users: users, Reservations: reservations, Log: log}
}

// UploadAll wipes existing reservations, ensures the sample cabins and guests
// exist, then inserts reservations spread round-robin across them.
func (s *SampleDataService) UploadAll(today time.Time, breakfastPrice float64) (int, error) {
	if err := s.Reservations.DeleteAll(); err != nil {
		return 0, err
	}

	for i := range sampleCabins {
		cabin := sampleCabins[i]
		var existing models.Cabin
		if err := s.DB.Where("name = ?", cabin.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := s.Cabins.Create(&cabin); err != nil {
			return 0, err
		}
	}

	if _, err := s.Users.ImportGuests(sampleGuests); err != nil {
		return 0, err
	}

	cabins, err := s.Cabins.GetAll()
	if err != nil {
		return 0, err
	}
	guests, err := s.Users.ListGuests()
	if err != nil {
		return 0, err
	}
	if len(cabins) == 0 || len(guests) == 0 {
		return 0, ErrNotFound
	}

	reservations, err := BuildSampleReservations(cabins, guests, today, breakfastPrice)
	if err != nil {
		return 0, err
	}
	if err := s.Reservations.CreateMany(reservations); err != nil {
		return 0, err
	}

	s.Log.Info().Int("reservations", len(reservations)).Msg("sample data uploaded")
	return len(reservations), nil
}

// BuildSampleReservations turns the stay templates into persistable records:
// nights and prices through the pricing calculator, status through the
// import-time status derivation.
func BuildSampleReservations(cabins []models.Cabin, guests []models.User, today time.Time, breakfastPrice float64) ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0, len(sampleStays))

	for i, stay := range sampleStays {
		cabin := cabins[i%len(cabins)]
		guest := guests[i%len(guests)]

		start := dateOnly(today).AddDate(0, 0, stay.startOffsetDays)
		end := start.AddDate(0, 0, stay.nights)

		quote, err := QuoteStay(stay.nights, cabin.RegularPrice, cabin.Discount, stay.numGuests, stay.hasBreakfast, breakfastPrice)
		if err != nil {
			return nil, err
		}

		reservations = append(reservations, models.Reservation{
			CabinID:      cabin.ID,
			UserID:       guest.ID,
			StartDate:    start,
			EndDate:      end,
			NumNights:    stay.nights,
			NumGuests:    stay.numGuests,
			HasBreakfast: stay.hasBreakfast,
			Observations: stay.observations,
			CabinPrice:   quote.CabinPrice,
			ExtrasPrice:  quote.ExtrasPrice,
			TotalPrice:   quote.TotalPrice,
			Status:       DeriveStatus(start, end, today),
		})
	}

	return reservations, nil
}
