package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/app/services"
	"github.com/anantsaxena14/campus-sphere/internal/middleware"
)

// TutorController handles AI tutor endpoints
type TutorController struct {
	tutorService *services.TutorService
	logger       zerolog.Logger
}

// NewTutorController creates a new TutorController
func NewTutorController(tutorService *services.TutorService, logger zerolog.Logger) *TutorController {
	return &TutorController{
		tutorService: tutorService,
		logger:       logger,
	}
}

// Chat handles POST /ai/chat
func (c *TutorController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	response, err := c.tutorService.Chat(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// GenerateQuestions handles POST /ai/questions
func (c *TutorController) GenerateQuestions(ctx *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	response, err := c.tutorService.GenerateQuestions(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// CheckAnswer handles POST /ai/check-answer
func (c *TutorController) CheckAnswer(ctx *gin.Context) {
	var req dto.CheckAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	response, err := c.tutorService.CheckAnswer(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// History handles GET /ai/history?mode=...
func (c *TutorController) History(ctx *gin.Context) {
	var mode *models.TutorMode
	if raw := ctx.Query("mode"); raw != "" {
		m := models.TutorMode(raw)
		mode = &m
	}

	entries, lastMode, err := c.tutorService.GetHistory(ctx.Request.Context(), middleware.PrincipalIDFromContext(ctx), mode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	history := make([]*dto.ChatHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, dto.NewChatHistoryEntry(entry))
	}
	ctx.JSON(http.StatusOK, dto.ChatHistoryResponse{
		LastMode: string(lastMode),
		History:  history,
	})
}
