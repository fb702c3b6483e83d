package controllers

import (
	"net/http"

	"cabin-backoffice/services"
	"cabin-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type SettingsController struct {
	SettingsSvc *services.SettingsService
	Log         zerolog.Logger
}

func NewSettingsController(svc *services.SettingsService, log zerolog.Logger) *SettingsController {
	return &SettingsController{SettingsSvc: svc, Log: log}
}

type updateSettingPayload struct {
	Field string  `json:"field" binding:"required"`
	Value float64 `json:"value" binding:"required"`
}

func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	setting, err := ctrl.SettingsSvc.Get(c.Request.Context())
	if err != nil {
		// reads degrade silently; the settings view shows an empty state
		ctrl.Log.Error().Err(err).Msg("settings fetch failed")
		utils.JSONSuccess(c, http.StatusOK, gin.H{"settings": nil})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"settings": setting})
}

// UpdateSetting patches a single settings field, the way the settings form
// submits one field per blur.
func (ctrl *SettingsController) UpdateSetting(c *gin.Context) {
	var payload updateSettingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldErrors(c, utils.BindValidationErrors(err))
		return
	}

	setting, err := ctrl.SettingsSvc.UpdateField(c.Request.Context(), payload.Field, payload.Value)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"settings": setting, "message": "Setting successfully updated!"})
}
