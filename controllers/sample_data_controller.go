package controllers

import (
	"net/http"
	"time"

	"cabin-backoffice/services"
	"cabin-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type SampleDataController struct {
	SampleSvc   *services.SampleDataService
	SettingsSvc *services.SettingsService
	Log         zerolog.Logger
}

func NewSampleDataController(sample *services.SampleDataService, settings *services.SettingsService, log zerolog.Logger) *SampleDataController {
	return &SampleDataController{SampleSvc: sample, SettingsSvc: settings, Log: log}
}

// UploadAll replaces all reservations with the demo dataset. The breakfast
// price comes from the settings singleton so derived prices match what the
// calculator would produce for a live booking.
func (ctrl *SampleDataController) UploadAll(c *gin.Context) {
	setting, err := ctrl.SettingsSvc.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}

	created, err := ctrl.SampleSvc.UploadAll(time.Now(), setting.BreakfastPrice)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"reservations": created, "message": "Sample data uploaded"})
}
