package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
)

// CampusController handles events and directory endpoints
type CampusController struct {
	campusService *services.CampusService
	logger        zerolog.Logger
}

// NewCampusController creates a new CampusController
func NewCampusController(campusService *services.CampusService, logger zerolog.Logger) *CampusController {
	return &CampusController{
		campusService: campusService,
		logger:        logger,
	}
}

// Events handles GET /events
func (c *CampusController) Events(ctx *gin.Context) {
	events, err := c.campusService.ListEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]*dto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, dto.NewEventResponse(e))
	}
	ctx.JSON(http.StatusOK, responses)
}

// Alumni handles GET /alumni
func (c *CampusController) Alumni(ctx *gin.Context) {
	alumni, err := c.campusService.ListAlumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]*dto.AlumniResponse, 0, len(alumni))
	for _, a := range alumni {
		responses = append(responses, dto.NewAlumniResponse(a))
	}
	ctx.JSON(http.StatusOK, responses)
}

// FacultyList handles GET /faculty
func (c *CampusController) FacultyList(ctx *gin.Context) {
	faculty, err := c.campusService.ListFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]*dto.FacultyResponse, 0, len(faculty))
	for _, f := range faculty {
		responses = append(responses, dto.NewFacultyResponse(f))
	}
	ctx.JSON(http.StatusOK, responses)
}

// FacultyDetail handles GET /faculty/:id
func (c *CampusController) FacultyDetail(ctx *gin.Context) {
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	faculty, err := c.campusService.GetFaculty(ctx.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewFacultyResponse(faculty))
}
