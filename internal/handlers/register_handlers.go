package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
	"github.com/swarnaledger/swarna_erp_app/internal/middleware"
	"github.com/swarnaledger/swarna_erp_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	finalizeLimiter *limiter.Limiter,
) {
	// Health and metrics endpoints stay outside the authenticated group.
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services, finalizeLimiter)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	finalizeLimiter *limiter.Limiter,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(v1, services.Account, services.Ledger)
	registerLedgerRoutes(v1, services.Ledger)
	registerGoldLedgerRoutes(v1, services.GoldLedger)
	registerReturnRoutes(v1, services.Return, finalizeLimiter)
	registerInvoiceRoutes(v1, services.Invoice, finalizeLimiter)
	registerPurchaseRoutes(v1, services.Purchase, finalizeLimiter)
}

// respondServiceError maps service errors onto HTTP statuses: validation 400,
// not found 404, conflicts 409, permission 403, everything else 500. The typed
// finalize errors are checked first: a partial failure whose wrapped cause is a
// sentinel (e.g. a conflict hit mid-finalize) must still signal that a rollback
// ran server-side, not masquerade as a plain 409.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var rollbackErr *apperrors.RollbackFailureError
	var partialErr *apperrors.PartialFailureError
	switch {
	case errors.As(err, &rollbackErr):
		logger.Error("Rollback failure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed and automatic rollback also failed; manual reconciliation required"})
	case errors.As(err, &partialErr):
		// The wrapped cause decides the status when it is a caller-side kind.
		if errors.Is(partialErr.Err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": partialErr.Error()})
			return
		}
		if errors.Is(partialErr.Err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": partialErr.Error()})
			return
		}
		logger.Error("Partial failure rolled back", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": partialErr.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// finalizeOutcome classifies a finalize result for the outcome counter.
func finalizeOutcome(err error) string {
	var rollbackErr *apperrors.RollbackFailureError
	var partialErr *apperrors.PartialFailureError
	switch {
	case err == nil:
		return "finalized"
	case errors.As(err, &rollbackErr):
		return "rollback_failed"
	case errors.As(err, &partialErr):
		return "partial_failure"
	case errors.Is(err, apperrors.ErrValidation):
		return "validation_failed"
	case errors.Is(err, apperrors.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

// actorFromCtx builds the acting user identity from the authenticated context.
func actorFromCtx(c *gin.Context) (dto.Actor, bool) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		return dto.Actor{}, false
	}
	return dto.Actor{
		UserID:   userID,
		UserName: middleware.GetUserNameFromCtx(c.Request.Context()),
	}, true
}
