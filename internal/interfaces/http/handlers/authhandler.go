package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=5,max=72"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required,max=100"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyResetCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=5,max=72"`
}

type AuthHandler struct {
	loginUC           usecases.LoginExecutor
	signupUC          usecases.SignupExecutor
	verifyEmailUC     usecases.VerifyEmailExecutor
	forgotPasswordUC  usecases.ForgotPasswordExecutor
	verifyResetCodeUC usecases.VerifyResetCodeExecutor
	resetPasswordUC   usecases.ResetPasswordExecutor
	logger            logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	signupUC usecases.SignupExecutor,
	verifyEmailUC usecases.VerifyEmailExecutor,
	forgotPasswordUC usecases.ForgotPasswordExecutor,
	verifyResetCodeUC usecases.VerifyResetCodeExecutor,
	resetPasswordUC usecases.ResetPasswordExecutor,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:           loginUC,
		signupUC:          signupUC,
		verifyEmailUC:     verifyEmailUC,
		forgotPasswordUC:  forgotPasswordUC,
		verifyResetCodeUC: verifyResetCodeUC,
		resetPasswordUC:   resetPasswordUC,
		logger:            log,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"user":         result.User,
		"access_token": result.AccessToken,
		"expires_at":   result.ExpiresAt,
	})
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for signup", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SignupCommand{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
	}

	result, err := h.signupUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// VerifyEmail handles POST /auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.VerifyEmailCommand{
		Email: req.Email,
		Code:  req.Code,
	}

	if err := h.verifyEmailUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email verified successfully", gin.H{"success": true})
}

// ForgotPassword handles POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.forgotPasswordUC.Execute(c.Request.Context(), usecases.ForgotPasswordCommand{Email: req.Email}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "If the address exists, a reset code has been sent", gin.H{"success": true})
}

// VerifyResetCode handles POST /auth/verify-reset-code
func (h *AuthHandler) VerifyResetCode(c *gin.Context) {
	var req VerifyResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.VerifyResetCodeCommand{
		Email: req.Email,
		Code:  req.Code,
	}

	if err := h.verifyResetCodeUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reset code verified", gin.H{"success": true})
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ResetPasswordCommand{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	}

	if err := h.resetPasswordUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", gin.H{"success": true})
}

func isStaffRole(c *gin.Context) bool {
	return vo.Role(middleware.CurrentUserRole(c)).IsStaff()
}
