package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cabin-backoffice/models"
	"cabin-backoffice/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupReservationRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}, &models.User{}, &models.Cabin{}, &models.Reservation{}))

	log := zerolog.Nop()
	cabinSvc := services.NewCabinService(db)
	reservationSvc := services.NewReservationService(db)
	settingsSvc := services.NewSettingsService(db, nil, log)
	ctrl := NewReservationController(reservationSvc, cabinSvc, settingsSvc, log)

	r := gin.New()
	r.GET("/api/reservations", ctrl.GetReservations)
	r.DELETE("/api/reservations/:id", ctrl.DeleteReservation)
	return r, db
}

func seedReservation(t *testing.T, db *gorm.DB, status string) models.Reservation {
	t.Helper()

	cabin := models.Cabin{Name: "001", MaxCapacity: 2, RegularPrice: 250}
	require.NoError(t, db.Create(&cabin).Error)
	guest := models.User{Name: "Jonas Schmedtmann", Email: fmt.Sprintf("g%d@test.io", time.Now().UnixNano()), Role: models.RoleGuest}
	require.NoError(t, db.Create(&guest).Error)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	reservation := models.Reservation{
		CabinID: cabin.ID, UserID: guest.ID,
		StartDate: start, EndDate: start.AddDate(0, 0, 3),
		NumNights: 3, NumGuests: 2,
		CabinPrice: 750, TotalPrice: 750,
		Status: status,
	}
	require.NoError(t, db.Create(&reservation).Error)
	return reservation
}

type reservationListResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Reservations []models.Reservation `json:"reservations"`
		Count        int64                `json:"count"`
		Pending      bool                 `json:"pending"`
	} `json:"data"`
}

func TestGetReservationsEndpoint(t *testing.T) {
	router, db := setupReservationRouter(t)
	seedReservation(t, db, models.StatusUnconfirmed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations?status=all&sortBy=startDate-asc&page=1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp reservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.EqualValues(t, 1, resp.Data.Count)
	require.Len(t, resp.Data.Reservations, 1)
	assert.Equal(t, "001", resp.Data.Reservations[0].Cabin.Name)
	assert.Equal(t, "Jonas Schmedtmann", resp.Data.Reservations[0].User.Name)
}

func TestGetReservationsDegradesOnStoreFailure(t *testing.T) {
	router, db := setupReservationRouter(t)
	seedReservation(t, db, models.StatusUnconfirmed)

	// break the store; the list view must degrade to an empty page, not 500
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp reservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Zero(t, resp.Data.Count)
	assert.Empty(t, resp.Data.Reservations)
}

func TestDeleteReservationIsOptimistic(t *testing.T) {
	router, db := setupReservationRouter(t)
	target := seedReservation(t, db, models.StatusUnconfirmed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/reservations/%d", target.ID), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// the response already reflects the delete
	var resp reservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Pending)
	assert.Zero(t, resp.Data.Count)
	assert.Empty(t, resp.Data.Reservations)

	// the background mutation settles shortly after
	require.Eventually(t, func() bool {
		var count int64
		db.Model(&models.Reservation{}).Where("id = ?", target.ID).Count(&count)
		return count == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDeleteMissingReservationLeavesListUnchanged(t *testing.T) {
	router, db := setupReservationRouter(t)
	seedReservation(t, db, models.StatusUnconfirmed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/999", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp reservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Pending)
	assert.EqualValues(t, 1, resp.Data.Count)
	assert.Len(t, resp.Data.Reservations, 1)
}
