package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harborbay/boathouse-scheduler/internal/httperr"
	"github.com/harborbay/boathouse-scheduler/internal/httpresp"
	"github.com/harborbay/boathouse-scheduler/internal/models"
)

type BoatHandler struct {
	db *gorm.DB
}

func NewBoatHandler(db *gorm.DB) *BoatHandler {
	return &BoatHandler{db: db}
}

// --------- Requests ---------

type CreateBoatRequest struct {
	Name       string `json:"name" binding:"required"`
	Color      string `json:"color"`
	IsFacility *bool  `json:"is_facility"`
}

type UpdateBoatRequest struct {
	Name       *string `json:"name"`
	Color      *string `json:"color"`
	IsFacility *bool   `json:"is_facility"`
	Active     *bool   `json:"active"`
}

// --------- Handlers ---------

func (h *BoatHandler) List(c *gin.Context) {
	var boats []models.Boat
	if err := h.db.Order("name ASC").Find(&boats).Error; err != nil {
		httperr.Internal(c, "boat_list_failed", "Failed to list boats.")
		return
	}
	httpresp.List(c, boats)
}

func (h *BoatHandler) Create(c *gin.Context) {
	var req CreateBoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid boat payload.")
		return
	}

	boat := models.Boat{
		Name:   req.Name,
		Color:  req.Color,
		Active: true,
	}

	// The legacy trampoline name implies a facility unless the flag
	// says otherwise.
	if req.IsFacility != nil {
		boat.IsFacility = *req.IsFacility
	} else {
		boat.IsFacility = req.Name == models.LegacyFacilityName
	}

	if err := h.db.Create(&boat).Error; err != nil {
		httperr.Internal(c, "boat_create_failed", "Failed to create boat.")
		return
	}

	c.JSON(201, boat)
}

func (h *BoatHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var boat models.Boat
	if err := h.db.First(&boat, id).Error; err != nil {
		httperr.NotFound(c, "boat_not_found", "Boat not found.")
		return
	}

	var req UpdateBoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid boat payload.")
		return
	}

	if req.Name != nil {
		boat.Name = *req.Name
	}
	if req.Color != nil {
		boat.Color = *req.Color
	}
	if req.IsFacility != nil {
		boat.IsFacility = *req.IsFacility
	}
	if req.Active != nil {
		boat.Active = *req.Active
	}

	if err := h.db.Save(&boat).Error; err != nil {
		httperr.Internal(c, "boat_update_failed", "Failed to update boat.")
		return
	}

	c.JSON(200, boat)
}
