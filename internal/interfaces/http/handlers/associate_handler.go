package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"partner-portal.backend/internal/config"
	"partner-portal.backend/internal/domain/entities"
	domainerrors "partner-portal.backend/internal/domain/errors"
	"partner-portal.backend/internal/interfaces/http/middleware"
	"partner-portal.backend/internal/interfaces/http/response"
	"partner-portal.backend/internal/usecases"
)

// AssociateHandler handles associate self-service endpoints
type AssociateHandler struct {
	associateUc *usecases.AssociateUsecase
	advisorUc   *usecases.AdvisorUsecase
	program     config.ProgramConfig
}

// NewAssociateHandler creates a new associate handler
func NewAssociateHandler(associateUc *usecases.AssociateUsecase, advisorUc *usecases.AdvisorUsecase, program config.ProgramConfig) *AssociateHandler {
	return &AssociateHandler{
		associateUc: associateUc,
		advisorUc:   advisorUc,
		program:     program,
	}
}

// GetMe returns the signed-in associate with derived standing
// GET /api/v1/associates/me
func (h *AssociateHandler) GetMe(c *gin.Context) {
	associateID, ok := middleware.GetAssociateID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("No associate linked to this account"))
		return
	}

	overview, err := h.associateUc.Overview(c.Request.Context(), associateID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Associate not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, overview)
}

// SubmitKYC handles a KYC document submission
// PUT /api/v1/associates/me/kyc
func (h *AssociateHandler) SubmitKYC(c *gin.Context) {
	associateID, ok := middleware.GetAssociateID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("No associate linked to this account"))
		return
	}

	var input entities.SubmitKYCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	associate, err := h.associateUc.SubmitKYC(c.Request.Context(), associateID, &input)
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

// WelcomeTip returns a short personalized tip for the signed-in associate
// GET /api/v1/associates/me/welcome-tip
func (h *AssociateHandler) WelcomeTip(c *gin.Context) {
	associateID, ok := middleware.GetAssociateID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("No associate linked to this account"))
		return
	}

	tip, err := h.advisorUc.WelcomeTip(c.Request.Context(), associateID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Associate not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"tip": tip,
	})
}

// Services returns the referral service catalog
// GET /api/v1/services
func (h *AssociateHandler) Services(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"services": h.program.Services,
	})
}
