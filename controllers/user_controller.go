package controllers

import (
	"fmt"
	"net/http"

	"cabin-backoffice/middleware"
	"cabin-backoffice/models"
	"cabin-backoffice/services"
	"cabin-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type UserController struct {
	UserSvc *services.UserService
	Log     zerolog.Logger
}

func NewUserController(svc *services.UserService, log zerolog.Logger) *UserController {
	return &UserController{UserSvc: svc, Log: log}
}

type updateProfilePayload struct {
	FullName        string `json:"fullName"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Avatar          string `json:"avatar"` // base64 payload, optional
}

// UpdateMe updates the caller's own profile. The avatar is stored under a
// stable per-user name, so re-uploading simply replaces the previous file.
func (ctrl *UserController) UpdateMe(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var payload updateProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldErrors(c, utils.BindValidationErrors(err))
		return
	}

	if payload.Password != "" {
		if len(payload.Password) < 8 {
			utils.JSONFieldErrors(c, map[string]string{"password": "Must be at least 8 characters"})
			return
		}
		if payload.Password != payload.PasswordConfirm {
			utils.JSONFieldErrors(c, map[string]string{"passwordConfirm": "Passwords need to match"})
			return
		}
	}

	update := services.ProfileUpdate{
		Name:     payload.FullName,
		Password: payload.Password,
	}
	if path, stored := storeImage(payload.Avatar, "avatars", fmt.Sprintf("%d-avatar", caller.UserID)); stored {
		update.Image = path
	}

	user, err := ctrl.UserSvc.UpdateProfile(caller.UserID, update)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// GetGuests lists all guest users, oldest first. Degrades to an empty list
// on a store failure.
func (ctrl *UserController) GetGuests(c *gin.Context) {
	guests, err := ctrl.UserSvc.ListGuests()
	if err != nil {
		ctrl.Log.Error().Err(err).Msg("guest list fetch failed")
		utils.JSONSuccess(c, http.StatusOK, gin.H{"guests": []models.User{}})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"guests": guests})
}

type importGuestsPayload struct {
	Guests []services.GuestInput `json:"guests" binding:"required,min=1,dive"`
}

// ImportGuests bulk-creates guest users; duplicate emails are skipped.
func (ctrl *UserController) ImportGuests(c *gin.Context) {
	var payload importGuestsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldErrors(c, utils.BindValidationErrors(err))
		return
	}

	created, err := ctrl.UserSvc.ImportGuests(payload.Guests)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"created": created, "skipped": len(payload.Guests) - created})
}
