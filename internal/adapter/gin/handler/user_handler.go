package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"student-registration-service/internal/usecase/user"
	pkgerrors "student-registration-service/pkg/errors"
	"student-registration-service/pkg/logger"
)

// Messages returned as plain text by the delete endpoint.
const (
	MsgUserDeleted  = "User deleted successfully"
	MsgUserNotFound = "User not found"
)

// UserHandler handles HTTP requests for student registration
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

// RegisterUserRequest represents the HTTP request body for registering a student.
// Every field is optional; an "id" in the body is ignored.
type RegisterUserRequest struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	Course       *string  `json:"course"`
	StudentClass *string  `json:"studentClass"`
	Percentage   *float64 `json:"percentage"`
	Branch       *string  `json:"branch"`
	MobileNumber *string  `json:"mobileNumber"`
}

// UserResponse represents the HTTP response for a stored student.
// Unset fields are rendered as null.
type UserResponse struct {
	ID           int64    `json:"id"`
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	Course       *string  `json:"course"`
	StudentClass *string  `json:"studentClass"`
	Percentage   *float64 `json:"percentage"`
	Branch       *string  `json:"branch"`
	MobileNumber *string  `json:"mobileNumber"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RegisterUser handles POST /api/register
func (h *UserHandler) RegisterUser(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	req, err := bindRegisterRequest(c)
	if err != nil {
		log.Warn("Invalid register request", zap.Error(err))
		h.handleError(c, err)
		return
	}

	resp, err := h.uc.RegisterUser(c.Request.Context(), user.RegisterUserRequest{
		Name:         req.Name,
		Email:        req.Email,
		Course:       req.Course,
		StudentClass: req.StudentClass,
		Percentage:   req.Percentage,
		Branch:       req.Branch,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		log.Error("RegisterUser failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(resp.User))
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.uc.ListUsers(c.Request.Context(), user.ListUsersRequest{})
	if err != nil {
		logger.WithContext(c.Request.Context(), h.log).Error("ListUsers failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	users := make([]UserResponse, len(resp.Users))
	for i, u := range resp.Users {
		users[i] = toUserResponse(u)
	}

	c.JSON(http.StatusOK, users)
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Warn("Invalid user ID", zap.String("id", idStr), zap.Error(err))
		h.handleError(c, pkgerrors.NewValidationError("id", "User ID must be a valid number"))
		return
	}

	if _, err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id}); err != nil {
		h.handleError(c, err)
		return
	}

	c.String(http.StatusOK, MsgUserDeleted)
}

// bindRegisterRequest decodes the register body. A missing, empty or null body is rejected.
func bindRegisterRequest(c *gin.Context) (RegisterUserRequest, error) {
	var req RegisterUserRequest

	body, err := c.GetRawData()
	if err != nil {
		return req, pkgerrors.NewValidationError("body", err.Error())
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return req, pkgerrors.NewValidationError("body", "Required request body is missing")
	}
	if err := binding.JSON.BindBody(trimmed, &req); err != nil {
		return req, pkgerrors.NewValidationError("body", err.Error())
	}
	return req, nil
}

// handleError converts handler and usecase errors to HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var (
		ve *pkgerrors.ValidationError
		ie *pkgerrors.InternalError
	)
	switch {
	case pkgerrors.IsNotFound(err):
		c.String(http.StatusNotFound, MsgUserNotFound)
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_" + ve.Field,
			Message: ve.Message,
		})
	case errors.As(err, &ie):
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: ie.Message,
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: pkgerrors.ErrInternal.Message,
		})
	}
}

func toUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Course:       u.Course,
		StudentClass: u.StudentClass,
		Percentage:   u.Percentage,
		Branch:       u.Branch,
		MobileNumber: u.MobileNumber,
	}
}
