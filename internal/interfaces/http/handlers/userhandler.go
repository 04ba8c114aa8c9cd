package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=5,max=72"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=administrator manager agent customer"`
	FullName string `json:"full_name" binding:"required,max=100"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=administrator manager agent customer"`
	FullName *string `json:"full_name,omitempty" binding:"omitempty,max=100"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=5,max=72"`
}

type UserHandler struct {
	createUserUC usecases.CreateUserExecutor
	updateUserUC usecases.UpdateUserExecutor
	deleteUserUC usecases.DeleteUserExecutor
	getUserUC    usecases.GetUserExecutor
	listUsersUC  usecases.ListUsersExecutor
	logger       logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		updateUserUC: updateUserUC,
		deleteUserUC: deleteUserUC,
		getUserUC:    getUserUC,
		listUsersUC:  listUsersUC,
		logger:       log,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateUserCommand{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
		FullName: req.FullName,
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCurrentUser handles GET /user, returning the resolved principal.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateUserCommand{
		UserID:   userID,
		Email:    req.Email,
		Role:     req.Role,
		FullName: req.FullName,
		Password: req.Password,
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{UserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", gin.H{"success": true})
}
