package controllers

import (
	"net/http"

	"cabin-backoffice/listview"
	"cabin-backoffice/models"
	"cabin-backoffice/services"
	"cabin-backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type CabinController struct {
	CabinSvc *services.CabinService
	Log      zerolog.Logger
}

func NewCabinController(svc *services.CabinService, log zerolog.Logger) *CabinController {
	return &CabinController{CabinSvc: svc, Log: log}
}

type cabinPayload struct {
	Name         string  `json:"name" binding:"required"`
	MaxCapacity  int     `json:"maxCapacity" binding:"required,gt=0"`
	RegularPrice float64 `json:"regularPrice" binding:"required,gt=0"`
	Discount     float64 `json:"discount" binding:"gte=0"`
	Description  string  `json:"description"`
	Image        string  `json:"image"` // base64 payload or an already-stored path
}

func (p cabinPayload) toModel() models.Cabin {
	return models.Cabin{
		Name:         p.Name,
		MaxCapacity:  p.MaxCapacity,
		RegularPrice: p.RegularPrice,
		Discount:     p.Discount,
		Description:  p.Description,
		Image:        p.Image,
	}
}

// cabinView fetches and shapes the cabin list exactly as the table renders
// it: discount filter plus in-memory sort over the fetched set.
func (ctrl *CabinController) cabinView(c *gin.Context) ([]models.Cabin, error) {
	cabins, err := ctrl.CabinSvc.GetAll()
	if err != nil {
		return nil, err
	}

	filtered := services.FilterCabins(cabins, c.DefaultQuery("discount", services.CabinFilterAll))
	services.SortCabins(filtered, utils.ParseSortBy(c.Query("sortBy"), "name", "asc"))
	return filtered, nil
}

// GetCabins lists cabins. A store failure degrades to an empty list; the
// cause goes to the log only.
func (ctrl *CabinController) GetCabins(c *gin.Context) {
	cabins, err := ctrl.cabinView(c)
	if err != nil {
		ctrl.Log.Error().Err(err).Msg("cabin list fetch failed")
		utils.JSONSuccess(c, http.StatusOK, gin.H{"cabins": []models.Cabin{}})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cabins": cabins})
}

func (ctrl *CabinController) CreateCabin(c *gin.Context) {
	var payload cabinPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldErrors(c, utils.BindValidationErrors(err))
		return
	}

	cabin := payload.toModel()
	if path, ok := storeImage(payload.Image, "cabins", ""); ok {
		cabin.Image = path
	}

	if err := ctrl.CabinSvc.Create(&cabin); err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, cabin)
}

func (ctrl *CabinController) UpdateCabin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload cabinPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONFieldErrors(c, utils.BindValidationErrors(err))
		return
	}

	cabin := payload.toModel()
	cabin.ID = id
	if path, stored := storeImage(payload.Image, "cabins", ""); stored {
		cabin.Image = path
	}

	if err := ctrl.CabinSvc.Update(&cabin); err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cabin)
}

// DeleteCabin removes the cabin from the current view immediately and lets
// the real delete settle in the background. The next authoritative read
// supersedes the optimistic list.
func (ctrl *CabinController) DeleteCabin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	cabins, err := ctrl.cabinView(c)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}

	view := listview.New(cabins, func(cabin models.Cabin) uint { return cabin.ID })
	view.ApplyDelete(id)

	go func() {
		if err := ctrl.CabinSvc.Delete(id); err != nil {
			ctrl.Log.Error().Err(err).Uint("cabin_id", id).Msg("cabin delete failed after optimistic apply")
		}
	}()

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"cabins":  view.Items(),
		"pending": view.Pending(),
		"message": "Cabin successfully deleted!",
	})
}

// DuplicateCabin appends a "Copy of X" row immediately and dispatches the
// real insert in the background.
func (ctrl *CabinController) DuplicateCabin(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	source, err := ctrl.CabinSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}

	cabins, err := ctrl.cabinView(c)
	if err != nil {
		respondServiceError(c, ctrl.Log, err)
		return
	}

	optimistic := source
	optimistic.ID = 0
	optimistic.Name = services.CopyName(source.Name)

	view := listview.New(cabins, func(cabin models.Cabin) uint { return cabin.ID })
	view.ApplyDuplicate(optimistic)

	go func() {
		if _, err := ctrl.CabinSvc.Duplicate(id); err != nil {
			ctrl.Log.Error().Err(err).Uint("cabin_id", id).Msg("cabin duplicate failed after optimistic apply")
		}
	}()

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"cabins":  view.Items(),
		"pending": view.Pending(),
		"message": "Cabin successfully duplicated!",
	})
}

// storeImage persists a base64 image payload and reports whether anything was
// stored. Non-base64 values (already-stored paths, empty strings) pass
// through untouched.
func storeImage(payload, subdir, name string) (string, bool) {
	if len(payload) < 256 {
		// too short to be an image payload; treat as a stored path
		return "", false
	}
	path, err := services.SaveBase64Image(payload, subdir, name)
	if err != nil {
		return "", false
	}
	return path, true
}
