package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/leixerzzz/horizonventura/internal/service"
	"github.com/leixerzzz/horizonventura/pkg/response"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Name    any `json:"name"`
	Email   any `json:"email"`
	Country any `json:"country"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name is required")
		return
	}

	name, ok := stringField(req.Name)
	if !ok {
		response.BadRequest(c, "name is required")
		return
	}
	email, ok := stringField(req.Email)
	if !ok {
		response.BadRequest(c, "email is required")
		return
	}
	country, _ := req.Country.(string)

	user, err := h.userService.Create(c.Request.Context(), name, email, country)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Conflict(c, err.Error())
			return
		}
		_ = c.Error(err)
		response.InternalError(c, "Internal server error")
		return
	}

	response.Created(c, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		_ = c.Error(err)
		response.InternalError(c, "Internal server error")
		return
	}

	response.OK(c, user)
}
