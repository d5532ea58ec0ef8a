package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/interfaces/http/middleware"
	"partner-portal.backend/internal/interfaces/http/response"
	"partner-portal.backend/internal/usecases"
)

// PayoutHandler handles associate payout endpoints
type PayoutHandler struct {
	payoutUc *usecases.PayoutUsecase
}

// NewPayoutHandler creates a new payout handler
func NewPayoutHandler(payoutUc *usecases.PayoutUsecase) *PayoutHandler {
	return &PayoutHandler{
		payoutUc: payoutUc,
	}
}

// Request redeems the signed-in associate's full point balance
// POST /api/v1/payouts
func (h *PayoutHandler) Request(c *gin.Context) {
	associateID, ok := middleware.GetAssociateID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("No associate linked to this account"))
		return
	}

	payout, err := h.payoutUc.Request(c.Request.Context(), associateID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Associate not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"payout": payout,
	})
}

// List returns the signed-in associate's payout history
// GET /api/v1/payouts
func (h *PayoutHandler) List(c *gin.Context) {
	associateID, ok := middleware.GetAssociateID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("No associate linked to this account"))
		return
	}

	payouts, err := h.payoutUc.ListForAssociate(c.Request.Context(), associateID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"payouts": payouts,
		"count":   len(payouts),
	})
}
