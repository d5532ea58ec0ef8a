package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/interfaces/http/response"
	"partner-portal.backend/internal/usecases"
	"partner-portal.backend/pkg/utils"
)

// AdminHandler handles program administration endpoints
type AdminHandler struct {
	associateUc *usecases.AssociateUsecase
	referralUc  *usecases.ReferralUsecase
	payoutUc    *usecases.PayoutUsecase
	metricsUc   *usecases.MetricsUsecase
	advisorUc   *usecases.AdvisorUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	associateUc *usecases.AssociateUsecase,
	referralUc *usecases.ReferralUsecase,
	payoutUc *usecases.PayoutUsecase,
	metricsUc *usecases.MetricsUsecase,
	advisorUc *usecases.AdvisorUsecase,
) *AdminHandler {
	return &AdminHandler{
		associateUc: associateUc,
		referralUc:  referralUc,
		payoutUc:    payoutUc,
		metricsUc:   metricsUc,
		advisorUc:   advisorUc,
	}
}

// ListAssociates lists the roster with optional search and pagination
// GET /api/v1/admin/associates
func (h *AdminHandler) ListAssociates(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	params := utils.GetPaginationParams(page, limit)
	associates, total, err := h.associateUc.List(c.Request.Context(), search, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"associates": associates,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// OnboardAssociate enrolls a new associate without a portal login
// POST /api/v1/admin/associates
func (h *AdminHandler) OnboardAssociate(c *gin.Context) {
	var input entities.OnboardAssociateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	associate, err := h.associateUc.Onboard(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"associate": associate,
	})
}

// ListAssociateReferrals returns one associate's referral log
// GET /api/v1/admin/associates/:id/referrals
func (h *AdminHandler) ListAssociateReferrals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid associate ID"))
		return
	}

	referrals, err := h.referralUc.ListForAssociate(c.Request.Context(), id)
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

// ListPendingKYC lists associates awaiting KYC review
// GET /api/v1/admin/kyc/pending
func (h *AdminHandler) ListPendingKYC(c *gin.Context) {
	associates, err := h.associateUc.ListPendingKYC(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"associates": associates,
		"count":      len(associates),
	})
}

// ReviewKYC records a verification decision for a pending submission
// PUT /api/v1/admin/associates/:id/kyc
func (h *AdminHandler) ReviewKYC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid associate ID"))
		return
	}

	var input entities.ReviewKYCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	associate, err := h.associateUc.ReviewKYC(c.Request.Context(), id, input.Decision)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Associate not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"associate": associate,
	})
}

// CompleteReferral finalizes a pending referral and credits the points
// PUT /api/v1/admin/referrals/:id/complete
func (h *AdminHandler) CompleteReferral(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid referral ID"))
		return
	}

	var input entities.CompleteReferralInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	referral, err := h.referralUc.Complete(c.Request.Context(), id, input.PointsAwarded)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Referral not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"referral": referral,
	})
}

// RejectReferral finalizes a pending referral without crediting points
// PUT /api/v1/admin/referrals/:id/reject
func (h *AdminHandler) RejectReferral(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid referral ID"))
		return
	}

	referral, err := h.referralUc.Reject(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Referral not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"referral": referral,
	})
}

// GetMetrics returns the program ledger snapshot
// GET /api/v1/admin/metrics
func (h *AdminHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.metricsUc.Compute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, metrics)
}

// GetAnalysis returns a text summary of program performance
// GET /api/v1/admin/analysis
func (h *AdminHandler) GetAnalysis(c *gin.Context) {
	analysis, err := h.advisorUc.PerformanceAnalysis(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"analysis": analysis,
	})
}

// ListPayouts lists payout requests across all associates
// GET /api/v1/admin/payouts
func (h *AdminHandler) ListPayouts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	params := utils.GetPaginationParams(page, limit)
	payouts, total, err := h.payoutUc.List(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"payouts":    payouts,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdatePayoutStatus processes or cancels a pending payout request
// PUT /api/v1/admin/payouts/:id/status
func (h *AdminHandler) UpdatePayoutStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid payout ID"))
		return
	}

	var input entities.UpdatePayoutStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	payout, err := h.payoutUc.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Payout request not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"payout": payout,
	})
}
