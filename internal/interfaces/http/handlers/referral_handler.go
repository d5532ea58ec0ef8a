package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/interfaces/http/middleware"
	"partner-portal.backend/internal/interfaces/http/response"
	"partner-portal.backend/internal/usecases"
)

// ReferralHandler handles associate referral endpoints
type ReferralHandler struct {
	referralUc *usecases.ReferralUsecase
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralUc *usecases.ReferralUsecase) *ReferralHandler {
	return &ReferralHandler{
		referralUc: referralUc,
	}
}

// Submit records a new referral lead for the signed-in associate
// POST /api/v1/referrals
func (h *ReferralHandler) Submit(c *gin.Context) {
	associateID, ok := middleware.GetAssociateID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("No associate linked to this account"))
		return
	}

	var input entities.SubmitReferralInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	referral, err := h.referralUc.Submit(c.Request.Context(), associateID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Associate not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"referral": referral,
	})
}

// List returns the signed-in associate's referral log, oldest first
// GET /api/v1/referrals
func (h *ReferralHandler) List(c *gin.Context) {
	associateID, ok := middleware.GetAssociateID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("No associate linked to this account"))
		return
	}

	referrals, err := h.referralUc.ListForAssociate(c.Request.Context(), associateID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Associate not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"referrals": referrals,
		"count":     len(referrals),
	})
}
