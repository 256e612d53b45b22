package handlers

import (
	"errors"
	"net/http"

	request "acme_shop/internal/adapter/http/dto/request"
	response "acme_shop/internal/adapter/http/dto/response"
	"acme_shop/internal/usecase"
	"acme_shop/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)
)

// AuthHandler handles the admin account lifecycle: registration, login,
// verification polling and password resets.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register godoc
// @Summary      Register a new admin account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RegisterRequest  true  "Account details"
// @Success      201      {object}  response.UserResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

// Login godoc
// @Summary      Authenticate and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.LoginResponse
// @Failure      401      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// The dashboard reads the session from a cookie; API clients use the
	// token from the body.
	c.SetCookie("token", token, int((24 * 60 * 60)), "/", "", false, true)
	c.JSON(http.StatusOK, response.LoginResponse{Token: token, User: response.FromUser(user)})
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CheckVerification godoc
// @Summary      Check whether an account has been verified
// @Description  Rate limited per email: at most 3 checks per minute.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckVerificationRequest  true  "Account email"
// @Success      200      {object}  response.VerificationStatusResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Router       /auth/check-verification [post]
func (h *AuthHandler) CheckVerification(c *gin.Context) {
	var payload request.CheckVerificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	status, err := h.usecase.CheckVerification(c.Request.Context(), payload.Email)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.VerificationStatusResponse{
		Verified: status.Verified,
		Message:  status.Message,
	})
}

// VerifyByToken godoc
// @Summary      Mark an account verified via its emailed token
// @Tags         auth
// @Produce      json
// @Param        token  path      string  true  "Verification token"
// @Success      200    {object}  response.UserResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /auth/verify/{token} [get]
func (h *AuthHandler) VerifyByToken(c *gin.Context) {
	token := c.Param("token")

	user, err := h.usecase.VerifyByToken(c.Request.Context(), token)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

// ForgotPassword godoc
// @Summary      Request a password reset email
// @Description  Always responds 200 so account existence is not revealed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ForgotPasswordRequest  true  "Account email"
// @Success      200      {object}  map[string]string
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var payload request.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ForgotPassword(c.Request.Context(), payload.Email); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link has been sent"})
}

// ResetPassword godoc
// @Summary      Set a new password using a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ResetPasswordRequest  true  "Token and new password"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  pkg.HTTPError
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var payload request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ResetPassword(c.Request.Context(), payload.Token, payload.Password); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "An account with this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotVerified):
		return pkg.NewDomainErrorSimple("USER_NOT_VERIFIED", "Account pending verification", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRateLimited):
		return pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many verification checks. Please try again later.", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrInvalidVerificationToken):
		return pkg.NewDomainErrorSimple("INVALID_VERIFICATION_TOKEN", "Invalid verification token", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidResetToken):
		return pkg.NewDomainErrorSimple("INVALID_RESET_TOKEN", "Invalid or expired reset token", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
