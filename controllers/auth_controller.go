package controllers

import (
	"errors"
	"net/http"

	"cabin-backoffice/middleware"
	"cabin-backoffice/services"
	"cabin-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AuthController struct {
	UserSvc *services.UserService
	Log     zerolog.Logger
}

func NewAuthController(svc *services.UserService, log zerolog.Logger) *AuthController {
	return &AuthController{UserSvc: svc, Log: log}
}

type signupPayload struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new administrator account.
func (ctrl *AuthController) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldErrors(c, utils.BindValidationErrors(err))
		return
	}

	user, err := ctrl.UserSvc.Signup(payload.FullName, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}

// Login verifies credentials and issues a session token.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldErrors(c, utils.BindValidationErrors(err))
		return
	}

	user, err := ctrl.UserSvc.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondServiceError(c, ctrl.Log, err)
		return
	}

	token, err := middleware.IssueToken(user)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "user": user})
}

// Me returns the caller's own record.
func (ctrl *AuthController) Me(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := ctrl.UserSvc.GetByID(caller.UserID)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
