package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
)

// BusController handles bus listing and live tracking endpoints
type BusController struct {
	busService *services.BusService
	logger     zerolog.Logger
}

// NewBusController creates a new BusController
func NewBusController(busService *services.BusService, logger zerolog.Logger) *BusController {
	return &BusController{
		busService: busService,
		logger:     logger,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)))
		return 0, false
	}
	return id, true
}

// List handles GET /buses
func (c *BusController) List(ctx *gin.Context) {
	buses, err := c.busService.ListBuses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]*dto.BusResponse, 0, len(buses))
	for _, bus := range buses {
		responses = append(responses, dto.NewBusResponse(bus))
	}
	ctx.JSON(http.StatusOK, responses)
}

// Data handles GET /buses/:id/data
func (c *BusController) Data(ctx *gin.Context) {
	busID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	data, err := c.busService.GetBusData(ctx.Request.Context(), busID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// Location handles GET /buses/:id/location
func (c *BusController) Location(ctx *gin.Context) {
	busID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	location, err := c.busService.GetBusLocation(ctx.Request.Context(), busID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, location)
}
