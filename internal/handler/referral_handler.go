package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/leixerzzz/horizonventura/internal/service"
	"github.com/leixerzzz/horizonventura/pkg/response"
)

type ReferralHandler struct {
	referralService service.ReferralService
}

func NewReferralHandler(referralService service.ReferralService) *ReferralHandler {
	return &ReferralHandler{referralService: referralService}
}

type generateReferralRequest struct {
	UserID any `json:"userId"`
}

// Generate issues a new referral code for the requesting user.
func (h *ReferralHandler) Generate(c *gin.Context) {
	var req generateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId is required")
		return
	}
	userID, ok := stringField(req.UserID)
	if !ok {
		response.BadRequest(c, "userId is required")
		return
	}

	referral, err := h.referralService.Generate(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrCodeGeneration):
			_ = c.Error(err)
			response.InternalError(c, err.Error())
		default:
			_ = c.Error(err)
			response.InternalError(c, "Internal server error")
		}
		return
	}

	response.OK(c, referral)
}

type useReferralRequest struct {
	Code   any `json:"code"`
	UserID any `json:"userId"`
}

// Use redeems a referral code on behalf of a user.
func (h *ReferralHandler) Use(c *gin.Context) {
	var req useReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "code is required")
		return
	}
	code, ok := stringField(req.Code)
	if !ok {
		response.BadRequest(c, "code is required")
		return
	}
	userID, ok := stringField(req.UserID)
	if !ok {
		response.BadRequest(c, "userId is required")
		return
	}

	referral, err := h.referralService.Redeem(c.Request.Context(), code, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReferralNotFound), errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrReferralUsed), errors.Is(err, service.ErrSelfReferral):
			response.BadRequest(c, err.Error())
		default:
			_ = c.Error(err)
			response.InternalError(c, "Internal server error")
		}
		return
	}

	response.OK(c, referral)
}

// List returns the referral codes issued by a user, newest first.
func (h *ReferralHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.BadRequest(c, "userId is required")
		return
	}

	referrals, err := h.referralService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		_ = c.Error(err)
		response.InternalError(c, "Internal server error")
		return
	}

	response.OK(c, referrals)
}
