package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
	"github.com/swarnaledger/swarna_erp_app/internal/middleware"
)

// returnHandler handles HTTP requests related to return documents.
type returnHandler struct {
	returnService portssvc.ReturnSvcFacade
}

// registerReturnRoutes registers routes related to returns. The finalize
// endpoint is permission-gated and rate limited.
func registerReturnRoutes(rg *gin.RouterGroup, returnService portssvc.ReturnSvcFacade, finalizeLimiter *limiter.Limiter) {
	h := &returnHandler{returnService: returnService}

	returns := rg.Group("/returns")
	{
		returns.POST("", h.createReturn)
		returns.GET("/:id", h.getReturn)
		returns.POST("/:id/finalize",
			middleware.RequirePermission("returns.finalize"),
			middleware.RateLimit(finalizeLimiter),
			h.finalizeReturn)
		returns.POST("/:id/unlock",
			middleware.RequirePermission("returns.unlock"),
			h.unlockReturn)
	}
}

func (h *returnHandler) createReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ret, err := h.returnService.CreateReturn(c.Request.Context(), req, actor.UserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create return")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReturnResponse(ret))
}

func (h *returnHandler) getReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	returnID := c.Param("id")

	ret, err := h.returnService.GetReturnByID(c.Request.Context(), returnID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve return")
		return
	}
	c.JSON(http.StatusOK, dto.ToReturnResponse(ret))
}

func (h *returnHandler) finalizeReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	returnID := c.Param("id")

	actor, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Finalize return requested", slog.String("return_id", returnID))
	result, err := h.returnService.FinalizeReturn(c.Request.Context(), returnID, actor)
	middleware.ObserveFinalize("return", finalizeOutcome(err))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to finalize return")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *returnHandler) unlockReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	returnID := c.Param("id")

	actor, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.returnService.UnlockReturn(c.Request.Context(), returnID, actor); err != nil {
		respondServiceError(c, logger, err, "Failed to unlock return")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "return unlocked"})
}
