package handler

import (
	"net/http"

	"kitchen-control-backend/internal/usecase/user"
	apperrors "kitchen-control-backend/pkg/errors"
	"kitchen-control-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ListUsers handles GET /api/users.
// The body is a JSON array of users, "[]" when there are none.
func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	resp, err := h.uc.ListUsers(ctx)
	if err != nil {
		logger.WithContext(ctx, h.log).Error("ListUsers failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	users := make([]UserResponse, len(resp.Users))
	for i, u := range resp.Users {
		users[i] = UserResponse{
			ID:   u.ID,
			Name: u.Name,
		}
	}

	c.JSON(http.StatusOK, users)
}

// handleError converts usecase errors to HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	if apperrors.IsStorageUnavailable(err) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "storage_unavailable",
			Message: "The user store is currently unavailable",
		})
		return
	}

	c.JSON(apperrors.StatusOf(err), ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
