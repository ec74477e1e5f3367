package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dormhub/internal/models"
	"dormhub/internal/store"
)

// ListBuildings returns the full building→room→bed tree for UI consumption.
func (h *Handler) ListBuildings(c *gin.Context) {
	buildings, err := h.Store.ListBuildings(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildings)
}

type createBuildingInput struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) CreateBuilding(c *gin.Context) {
	var input createBuildingInput
	if !bindJSON(c, &input) {
		return
	}

	building := models.Building{Name: input.Name}
	if err := h.Store.CreateBuilding(c.Request.Context(), &building); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, building)
}

type createRoomInput struct {
	BuildingID uint   `json:"buildingId" binding:"required"`
	Floor      *int   `json:"floor" binding:"required"` // pointer so floor 0 is accepted
	Number     string `json:"number" binding:"required"`
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var input createRoomInput
	if !bindJSON(c, &input) {
		return
	}

	room := models.Room{
		BuildingID: input.BuildingID,
		Floor:      *input.Floor,
		Number:     input.Number,
	}
	if err := h.Store.CreateRoom(c.Request.Context(), &room); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			validationError(c, "buildingId", "building not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type createBedInput struct {
	RoomID uint   `json:"roomId" binding:"required"`
	Label  string `json:"label" binding:"required"`
}

func (h *Handler) CreateBed(c *gin.Context) {
	var input createBedInput
	if !bindJSON(c, &input) {
		return
	}

	bed := models.Bed{RoomID: input.RoomID, Label: input.Label}
	if err := h.Store.CreateBed(c.Request.Context(), &bed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			validationError(c, "roomId", "room not found")
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, bed)
}
