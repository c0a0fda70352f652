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

// purchaseHandler handles HTTP requests related to purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade, finalizeLimiter *limiter.Limiter) {
	h := &purchaseHandler{purchaseService: purchaseService}

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("/:id", h.getPurchase)
		purchases.POST("/:id/finalize",
			middleware.RequirePermission("purchases.finalize"),
			middleware.RateLimit(finalizeLimiter),
			h.finalizePurchase)
	}
}

func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	p, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, actor.UserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create purchase")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(p))
}

func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	p, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(p))
}

func (h *purchaseHandler) finalizePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	actor, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	p, err := h.purchaseService.FinalizePurchase(c.Request.Context(), purchaseID, actor)
	middleware.ObserveFinalize("purchase", finalizeOutcome(err))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to finalize purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(p))
}
