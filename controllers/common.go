package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"cabin-backoffice/services"
	"cabin-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondServiceError converts service errors uniformly: validation failures
// carry field messages, missing records are 404, everything else is logged
// and surfaces only a generic message.
func respondServiceError(c *gin.Context, log zerolog.Logger, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		utils.JSONFieldErrors(c, verr.Fields)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Resource not found")
		return
	}
	if errors.Is(err, services.ErrBackwardTransition) {
		utils.JSONError(c, http.StatusConflict, "Reservation status cannot move backward")
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("data access failure")
	utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
