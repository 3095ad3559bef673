package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskloop/task-tracker-api/internal/dto"
	apierrors "github.com/taskloop/task-tracker-api/internal/errors"
	"github.com/taskloop/task-tracker-api/internal/services"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registers a new user. A client-supplied id is honored when it is
// still free; without one the server generates an id.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		ID *uint64 `json:"id"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(req.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			apierrors.Conflict(c, "User already exists")
			return
		}
		apierrors.InternalError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}
