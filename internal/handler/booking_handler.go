package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leixerzzz/horizonventura/internal/model"
	"github.com/leixerzzz/horizonventura/internal/service"
	"github.com/leixerzzz/horizonventura/pkg/response"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type createBookingRequest struct {
	UserID      any `json:"userId"`
	Destination any `json:"destination"`
	Service     any `json:"service"`
	StartDate   any `json:"startDate"`
	EndDate     any `json:"endDate"`
	Quantity    any `json:"quantity"`
	TotalPrice  any `json:"totalPrice"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId is required")
		return
	}

	userID, ok := stringField(req.UserID)
	if !ok {
		response.BadRequest(c, "userId is required")
		return
	}
	destination, ok := stringField(req.Destination)
	if !ok {
		response.BadRequest(c, "destination is required")
		return
	}
	svc, ok := stringField(req.Service)
	if !ok {
		response.BadRequest(c, "service is required")
		return
	}
	startRaw, ok := stringField(req.StartDate)
	if !ok {
		response.BadRequest(c, "startDate is required")
		return
	}
	start, ok := parseDate(startRaw)
	if !ok {
		response.BadRequest(c, "Invalid startDate")
		return
	}

	var end *time.Time
	if req.EndDate != nil && req.EndDate != "" {
		endRaw, ok := stringField(req.EndDate)
		if !ok {
			response.BadRequest(c, "Invalid endDate")
			return
		}
		parsed, ok := parseDate(endRaw)
		if !ok {
			response.BadRequest(c, "Invalid endDate")
			return
		}
		if parsed.Before(start) {
			response.BadRequest(c, "endDate must be after startDate")
			return
		}
		end = &parsed
	}

	quantity := 1.0
	if req.Quantity != nil {
		quantity, ok = numberField(req.Quantity)
		if !ok {
			response.BadRequest(c, "quantity must be an integer >= 1")
			return
		}
	}
	if !isInteger(quantity) || quantity < 1 {
		response.BadRequest(c, "quantity must be an integer >= 1")
		return
	}

	price, ok := numberField(req.TotalPrice)
	if !ok || price < 0 {
		response.BadRequest(c, "totalPrice must be a non-negative number")
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), service.CreateBookingInput{
		UserID:      userID,
		Destination: destination,
		Service:     svc,
		StartDate:   start,
		EndDate:     end,
		Quantity:    int(quantity),
		TotalPrice:  price,
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

	response.Created(c, booking)
}

func (h *BookingHandler) List(c *gin.Context) {
	page := queryInt(c.Query("page"), 1)
	limit := queryInt(c.Query("limit"), 0)

	result, err := h.bookingService.List(c.Request.Context(), page, limit, c.Query("userId"))
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c, "Internal server error")
		return
	}

	response.OK(c, result)
}

type updateBookingRequest struct {
	Status any `json:"status"`
}

// UpdateStatus transitions a booking between pending, confirmed, and cancelled.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}
	status, ok := stringField(req.Status)
	if !ok {
		response.BadRequest(c, "status is required")
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), c.Param("id"), model.BookingStatus(status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrBookingNotFound):
			response.NotFound(c, err.Error())
		default:
			_ = c.Error(err)
			response.InternalError(c, "Internal server error")
		}
		return
	}

	response.OK(c, booking)
}
