package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leixerzzz/horizonventura/internal/service"
	"github.com/leixerzzz/horizonventura/pkg/response"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type createReviewRequest struct {
	UserID   any `json:"userId"`
	Text     any `json:"text"`
	ImageURL any `json:"imageUrl"`
	Rating   any `json:"rating"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId is required and must be a string")
		return
	}

	userID, ok := stringField(req.UserID)
	if !ok {
		response.BadRequest(c, "userId is required and must be a string")
		return
	}
	text, ok := stringField(req.Text)
	text = strings.TrimSpace(text)
	if !ok || text == "" {
		response.BadRequest(c, "text is required")
		return
	}
	rating, ok := numberField(req.Rating)
	if !ok || !isInteger(rating) || rating < 1 || rating > 5 {
		response.BadRequest(c, "rating must be an integer between 1 and 5")
		return
	}

	var imageURL *string
	if req.ImageURL != nil {
		s, ok := req.ImageURL.(string)
		if !ok {
			response.BadRequest(c, "imageUrl must be a string")
			return
		}
		imageURL = &s
	}

	review, err := h.reviewService.Create(c.Request.Context(), service.CreateReviewInput{
		UserID:   userID,
		Text:     text,
		ImageURL: imageURL,
		Rating:   int(rating),
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		_ = c.Error(err)
		response.InternalError(c, "Internal server error")
		return
	}

	response.Created(c, review)
}

func (h *ReviewHandler) List(c *gin.Context) {
	page := queryInt(c.Query("page"), 1)
	limit := queryInt(c.Query("limit"), 0)

	result, err := h.reviewService.List(c.Request.Context(), page, limit)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c, "Internal server error")
		return
	}

	response.OK(c, result)
}
