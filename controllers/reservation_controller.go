package controllers

import (
	"context"
	"net/http"
	"time"

	"cabin-backoffice/listview"
	"cabin-backoffice/models"
	"cabin-backoffice/services"
	"cabin-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
	CabinSvc       *services.CabinService
	SettingsSvc    *services.SettingsService
	Log            zerolog.Logger
}

func NewReservationController(rsvc *services.ReservationService, csvc *services.CabinService, ssvc *services.SettingsService, log zerolog.Logger) *ReservationController {
	return &ReservationController{ReservationSvc: rsvc, CabinSvc: csvc, SettingsSvc: ssvc, Log: log}
}

func listParamsFrom(c *gin.Context) services.ReservationListParams {
	return services.ReservationListParams{
		Status: utils.ParseStatusFilter(c.Query("status")),
		Sort:   utils.ParseSortBy(c.Query("sortBy"), "startDate", "desc"),
		Page:   utils.ParsePage(c.Query("page")),
	}
}

// GetReservations returns one page plus the pre-pagination count. A store
// failure degrades to (empty, 0) — indistinguishable from "no matches" for
// the caller, logged here.
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	reservations, count, err := ctrl.ReservationSvc.List(listParamsFrom(c))
	if err != nil {
		ctrl.Log.Error().Err(err).Msg("reservation list fetch failed")
		utils.JSONSuccess(c, http.StatusOK, gin.H{"reservations": []models.Reservation{}, "count": 0})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reservations": reservations, "count": count})
}

func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := ctrl.ReservationSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

type createReservationPayload struct {
	CabinID      uint      `json:"cabinId" binding:"required"`
	UserID       uint      `json:"userId" binding:"required"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required"`
	NumGuests    int       `json:"numGuests" binding:"required,gt=0"`
	HasBreakfast bool      `json:"hasBreakfast"`
	Observations string    `json:"observations"`
}

func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldErrors(c, utils.BindValidationErrors(err))
		return
	}

	cabin, err := ctrl.CabinSvc.GetByID(payload.CabinID)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}

	setting, err := ctrl.SettingsSvc.Get(context.Background())
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	if payload.NumGuests > setting.MaxGuestsPerReservation {
		utils.JSONFieldErrors(c, map[string]string{"numGuests": "Exceeds the maximum guests per reservation"})
		return
	}

	reservation, err := ctrl.ReservationSvc.Create(
		cabin, payload.UserID,
		payload.StartDate, payload.EndDate,
		payload.NumGuests, payload.HasBreakfast, setting.BreakfastPrice,
		payload.Observations,
	)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

// DeleteReservation applies the delete to the currently viewed page at once
// and dispatches the real delete fire-and-forget.
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservations, count, err := ctrl.ReservationSvc.List(listParamsFrom(c))
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}

	view := listview.New(reservations, func(r models.Reservation) uint { return r.ID })
	before := len(view.Items())
	view.ApplyDelete(id)
	if len(view.Items()) < before {
		count--
	}

	go func() {
		if err := ctrl.ReservationSvc.Delete(id); err != nil {
			ctrl.Log.Error().Err(err).Uint("reservation_id", id).Msg("reservation delete failed after optimistic apply")
		}
	}()

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"reservations": view.Items(),
		"count":        count,
		"pending":      view.Pending(),
		"message":      "Reservation successfully deleted!",
	})
}

type checkInPayload struct {
	HasBreakfast bool    `json:"hasBreakfast"`
	ExtrasPrice  float64 `json:"extrasPrice" binding:"gte=0"`
	TotalPrice   float64 `json:"totalPrice" binding:"required,gt=0"`
}

func (ctrl *ReservationController) CheckIn(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload checkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldErrors(c, utils.BindValidationErrors(err))
		return
	}

	reservation, err := ctrl.ReservationSvc.CheckIn(id, payload.HasBreakfast, payload.ExtrasPrice, payload.TotalPrice)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (ctrl *ReservationController) CheckOut(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := ctrl.ReservationSvc.CheckOut(id)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}
