package services

import (
	"fmt"
	"testing"

	"cabin-backoffice/models"
	"cabin-backoffice/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCabinAndGuest(t *testing.T, db *gorm.DB) (models.Cabin, models.User) {
	t.Helper()

	cabin := models.Cabin{Name: "001", MaxCapacity: 4, RegularPrice: 250, Discount: 50}
	require.NoError(t, db.Create(&cabin).Error)

	guest := models.User{Name: "Jonas Schmedtmann", Email: "hello@jonas.io", Role: models.RoleGuest}
	require.NoError(t, db.Create(&guest).Error)

	return cabin, guest
}

func seedReservations(t *testing.T, db *gorm.DB, cabin models.Cabin, guest models.User, n int, status string) {
	t.Helper()

	for i := 0; i < n; i++ {
		start := day("2024-06-01").AddDate(0, 0, i)
		r := models.Reservation{
			CabinID:    cabin.ID,
			UserID:     guest.ID,
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, 3),
			NumNights:  3,
			NumGuests:  2,
			CabinPrice: 600,
			TotalPrice: 600,
			Status:     status,
		}
		require.NoError(t, db.Create(&r).Error)
	}
}

func TestListPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	seedReservations(t, db, cabin, guest, 25, models.StatusUnconfirmed)

	page3, count, err := svc.List(ReservationListParams{
		Status: utils.FilterAll,
		Sort:   utils.SortOrder{Field: "startDate", Direction: "asc"},
		Page:   3,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 25, count)
	require.Len(t, page3, 5) // records 21–25

	// page 3 continues right after page 2
	page2, _, err := svc.List(ReservationListParams{
		Status: utils.FilterAll,
		Sort:   utils.SortOrder{Field: "startDate", Direction: "asc"},
		Page:   2,
	})
	require.NoError(t, err)
	require.Len(t, page2, utils.PageSize)
	assert.True(t, page3[0].StartDate.After(page2[len(page2)-1].StartDate))
}

func TestListDefaultsToFirstPage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	seedReservations(t, db, cabin, guest, 12, models.StatusUnconfirmed)

	records, count, err := svc.List(ReservationListParams{
		Status: utils.FilterAll,
		Sort:   utils.SortOrder{Field: "startDate", Direction: "asc"},
		Page:   0,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 12, count)
	assert.Len(t, records, utils.PageSize)
}

func TestListStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	seedReservations(t, db, cabin, guest, 2, models.StatusCheckedIn)
	seedReservations(t, db, cabin, guest, 3, models.StatusUnconfirmed)

	records, count, err := svc.List(ReservationListParams{
		Status: models.StatusCheckedIn,
		Sort:   utils.SortOrder{Field: "startDate", Direction: "asc"},
		Page:   1,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 2, count)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, models.StatusCheckedIn, r.Status)
	}
}

func TestListIncludesCabinAndUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	seedReservations(t, db, cabin, guest, 1, models.StatusUnconfirmed)

	records, _, err := svc.List(ReservationListParams{Status: utils.FilterAll, Page: 1})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "001", records[0].Cabin.Name)
	assert.Equal(t, "Jonas Schmedtmann", records[0].User.Name)
	assert.Equal(t, "hello@jonas.io", records[0].User.Email)
}

func TestListSortsByTotalPriceDesc(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	for i, price := range []float64{300, 900, 600} {
		start := day("2024-06-01").AddDate(0, 0, i)
		r := models.Reservation{
			CabinID: cabin.ID, UserID: guest.ID,
			StartDate: start, EndDate: start.AddDate(0, 0, 2),
			NumNights: 2, NumGuests: 1,
			CabinPrice: price, TotalPrice: price,
			Status: models.StatusUnconfirmed,
		}
		require.NoError(t, db.Create(&r).Error)
	}

	records, _, err := svc.List(ReservationListParams{
		Status: utils.FilterAll,
		Sort:   utils.SortOrder{Field: "totalPrice", Direction: "desc"},
		Page:   1,
	})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 900.0, records[0].TotalPrice)
	assert.Equal(t, 600.0, records[1].TotalPrice)
	assert.Equal(t, 300.0, records[2].TotalPrice)
}

func TestCreateDerivesNightsAndPrices(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	reservation, err := svc.Create(cabin, guest.ID, day("2024-07-01"), day("2024-07-05"), 2, true, 15, "")
	require.NoError(t, err)

	assert.Equal(t, 4, reservation.NumNights)
	assert.Equal(t, 800.0, reservation.CabinPrice)  // 4 × (250 − 50)
	assert.Equal(t, 120.0, reservation.ExtrasPrice) // 4 × 15 × 2
	assert.Equal(t, reservation.CabinPrice+reservation.ExtrasPrice, reservation.TotalPrice)
	assert.Equal(t, models.StatusUnconfirmed, reservation.Status)
}

func TestCreateRejectsReversedDates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	_, err := svc.Create(cabin, guest.ID, day("2024-07-05"), day("2024-07-05"), 2, false, 15, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "endDate")

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count) // no partial write
}

func TestCheckInLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	created, err := svc.Create(cabin, guest.ID, day("2024-07-01"), day("2024-07-04"), 2, false, 15, "")
	require.NoError(t, err)

	checkedIn, err := svc.CheckIn(created.ID, true, 90, created.CabinPrice+90)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, checkedIn.Status)
	assert.True(t, checkedIn.HasBreakfast)
	assert.Equal(t, 90.0, checkedIn.ExtrasPrice)
	assert.Equal(t, created.CabinPrice+90, checkedIn.TotalPrice)
	assert.NotEmpty(t, checkedIn.Extras)

	// checking in twice would move the status backward through unconfirmed
	_, err = svc.CheckIn(created.ID, true, 90, checkedIn.TotalPrice)
	assert.ErrorIs(t, err, ErrBackwardTransition)

	checkedOut, err := svc.CheckOut(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, checkedOut.Status)

	_, err = svc.CheckOut(created.ID)
	assert.ErrorIs(t, err, ErrBackwardTransition)
}

func TestCheckOutRequiresCheckedIn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	created, err := svc.Create(cabin, guest.ID, day("2024-07-01"), day("2024-07-04"), 2, false, 15, "")
	require.NoError(t, err)

	_, err = svc.CheckOut(created.ID)
	assert.ErrorIs(t, err, ErrBackwardTransition)
}

func TestDeleteAndGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	created, err := svc.Create(cabin, guest.ID, day("2024-07-01"), day("2024-07-03"), 1, false, 15, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStableOrderingAcrossPages(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	// every reservation shares the same start date, so ordering falls back
	// entirely to the insertion-order tie break
	start := day("2024-06-01")
	for i := 0; i < 15; i++ {
		r := models.Reservation{
			CabinID: cabin.ID, UserID: guest.ID,
			StartDate: start, EndDate: start.AddDate(0, 0, 2),
			NumNights: 2, NumGuests: 1,
			CabinPrice: 100, TotalPrice: 100,
			Status: models.StatusUnconfirmed,
		}
		require.NoError(t, db.Create(&r).Error)
	}

	seen := map[uint]bool{}
	var previous uint
	for page := 1; page <= 2; page++ {
		records, _, err := svc.List(ReservationListParams{
			Status: utils.FilterAll,
			Sort:   utils.SortOrder{Field: "startDate", Direction: "asc"},
			Page:   page,
		})
		require.NoError(t, err)
		for _, r := range records {
			require.False(t, seen[r.ID], fmt.Sprintf("id %d appeared twice across pages", r.ID))
			require.Greater(t, r.ID, previous)
			seen[r.ID] = true
			previous = r.ID
		}
	}
	assert.Len(t, seen, 15)
}

func TestDeleteAll(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	cabin, guest := seedCabinAndGuest(t, db)

	seedReservations(t, db, cabin, guest, 5, models.StatusUnconfirmed)
	require.NoError(t, svc.DeleteAll())

	_, count, err := svc.List(ReservationListParams{Status: utils.FilterAll, Page: 1})
	require.NoError(t, err)
	assert.Zero(t, count)
}
