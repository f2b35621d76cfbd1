package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
)

// ResourceController handles academic resource endpoints
type ResourceController struct {
	resourceService *services.ResourceService
	logger          zerolog.Logger
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService, logger zerolog.Logger) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		logger:          logger,
	}
}

// List handles GET /resources
func (c *ResourceController) List(ctx *gin.Context) {
	var filter dto.ResourceFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	resources, err := c.resourceService.ListResources(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]*dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		responses = append(responses, dto.NewResourceResponse(r))
	}
	ctx.JSON(http.StatusOK, responses)
}

// Upload handles POST /resources (multipart)
func (c *ResourceController) Upload(ctx *gin.Context) {
	var req dto.UploadResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is required")))
		return
	}

	resource, err := c.resourceService.UploadResource(
		ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx), req, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewResourceResponse(resource))
}

// Download handles GET /resources/:id/download
func (c *ResourceController) Download(ctx *gin.Context) {
	resourceID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resource, fullPath, err := c.resourceService.DownloadResource(ctx.Request.Context(), resourceID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	downloadName := resource.Title + filepath.Ext(fullPath)
	ctx.FileAttachment(fullPath, downloadName)
}
