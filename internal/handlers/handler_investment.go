package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loretops/finalproject-LPS-sub000/internal/apperrors"
	portssvc "github.com/loretops/finalproject-LPS-sub000/internal/core/ports/services"
	"github.com/loretops/finalproject-LPS-sub000/internal/dto"
	"github.com/loretops/finalproject-LPS-sub000/internal/middleware"
)

// investmentHandler handles HTTP requests related to investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

// RegisterInvestmentRoutes registers routes related to investments.
func RegisterInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", middleware.RequireManager(), h.listInvestments)
		investments.GET("/user", h.listUserInvestments)
		investments.GET("/:investmentID", h.getInvestment)
		investments.PATCH("/:investmentID/status", middleware.RequireManager(), h.updateInvestmentStatus)
		investments.POST("/:investmentID/cancel", h.cancelInvestment)
	}
}

// createInvestment godoc
// @Summary Create an investment
// @Description Registers a pending investment in a published project for the calling user
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create investment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create investment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment))
}

// listInvestments godoc
// @Summary List all investments
// @Description Retrieves a page of investments across all projects (manager only)
// @Tags investments
// @Produce json
// @Param status query string false "Filter by investment status"
// @Param projectId query string false "Filter by project"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.InvestmentListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.investmentService.ListInvestments(c.Request.Context(), listInvestmentsParamsFromQuery(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list investments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve investments"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listUserInvestments godoc
// @Summary List the caller's investments
// @Tags investments
// @Produce json
// @Param status query string false "Filter by investment status"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.InvestmentListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/user [get]
func (h *investmentHandler) listUserInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.investmentService.GetUserInvestments(c.Request.Context(), userID, listInvestmentsParamsFromQuery(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list user investments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve investments"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getInvestment godoc
// @Summary Get an investment by ID
// @Tags investments
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{investmentID} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("investmentID")

	investment, err := h.investmentService.GetInvestmentByID(c.Request.Context(), investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investment not found"})
			return
		}
		logger.Error("Failed to get investment", slog.String("error", err.Error()), slog.String("investment_id", investmentID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve investment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// updateInvestmentStatus godoc
// @Summary Update an investment's status
// @Description Applies a status transition (manager only); confirming adds the amount to the project's funding, leaving the funding set subtracts it
// @Tags investments
// @Accept json
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Param update body dto.UpdateInvestmentStatusRequest true "New status and optional fields"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{investmentID}/status [patch]
func (h *investmentHandler) updateInvestmentStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("investmentID")

	var req dto.UpdateInvestmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateInvestmentStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	investment, err := h.investmentService.UpdateInvestmentStatus(c.Request.Context(), investmentID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investment not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update investment status",
				slog.String("error", err.Error()),
				slog.String("investment_id", investmentID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update investment status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}

// cancelInvestment godoc
// @Summary Cancel an investment
// @Description Cancels the caller's own pending investment
// @Tags investments
// @Produce json
// @Param investmentID path string true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{investmentID}/cancel [post]
func (h *investmentHandler) cancelInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("investmentID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	investment, err := h.investmentService.CancelInvestment(c.Request.Context(), investmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Investment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to cancel investment",
				slog.String("error", err.Error()),
				slog.String("investment_id", investmentID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to cancel investment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(investment))
}
