package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/swarnaledger/swarna_erp_app/internal/core/ports/services"
	"github.com/swarnaledger/swarna_erp_app/internal/dto"
	"github.com/swarnaledger/swarna_erp_app/internal/middleware"
)

// goldLedgerHandler handles read access to the physical gold ledger.
type goldLedgerHandler struct {
	goldLedgerService portssvc.GoldLedgerSvcFacade
}

// registerGoldLedgerRoutes registers party gold ledger routes.
func registerGoldLedgerRoutes(rg *gin.RouterGroup, goldLedgerService portssvc.GoldLedgerSvcFacade) {
	h := &goldLedgerHandler{goldLedgerService: goldLedgerService}

	parties := rg.Group("/parties")
	{
		parties.GET("/:id/gold-ledger", h.listPartyEntries)
		parties.GET("/:id/gold-position", h.getPartyGoldPosition)
	}
}

func (h *goldLedgerHandler) listPartyEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	entries, err := h.goldLedgerService.ListPartyEntries(c.Request.Context(), partyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list gold ledger entries")
		return
	}

	out := make([]dto.GoldLedgerEntryResponse, len(entries))
	for i := range entries {
		out[i] = dto.ToGoldLedgerEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, gin.H{"entries": out})
}

func (h *goldLedgerHandler) getPartyGoldPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	net, err := h.goldLedgerService.PartyGoldPosition(c.Request.Context(), partyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute gold position")
		return
	}
	c.JSON(http.StatusOK, gin.H{"partyID": partyID, "netGrams": net})
}
