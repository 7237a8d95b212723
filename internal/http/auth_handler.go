package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/dto"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/i18n"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/middleware"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// auditLogError emits an async error audit entry when a logging service is wired.
func auditLogError(c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLogError(ls, c, actionType, message, err, fields)
		}
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login operator
// @Description  Authenticates an operator and returns JWT access and refresh tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.LoginResponse "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if validationErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	tokenPair, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			auditLogError(c, "login_failed", "Failed login attempt", err, map[string]interface{}{
				"email": req.Email,
			})
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
		} else {
			auditLogError(c, "login_error", "Login internal error", err, map[string]interface{}{
				"email": req.Email,
			})
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)

	auditLog(c, "login", "Operator logged in", map[string]interface{}{
		"email": user.Email,
	})

	builder.SuccessOK(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register new operator
// @Description  Creates a new operator account and returns JWT tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration information"
// @Success      201 {object} dto.LoginResponse "Successful registration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - operator already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if validationErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	tokenPair, user, err := h.authService.Register(c.Request.Context(), req.Email, req.Username, req.Password, req.Name)
	if err != nil {
		if err == service.ErrUserExists {
			auditLogError(c, "register_failed", "Registration rejected, account exists", err, map[string]interface{}{
				"email": req.Email,
			})
			builder.Error(http.StatusConflict, i18n.ErrKeyUserExists, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)

	auditLog(c, "register", "New operator registered", map[string]interface{}{
		"email": user.Email,
		"name":  user.Name,
	})

	builder.SuccessCreated(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// RefreshToken handles POST /api/auth/refresh requests.
//
// @Summary      Refresh access token
// @Description  Generates a new token pair from the refresh token in the X-Refresh-Token header.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.LoginResponse "Successful token refresh"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid refresh token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	refreshToken := c.GetHeader("X-Refresh-Token")
	if refreshToken == "" {
		builder.ErrorWithMessage(http.StatusBadRequest, "X-Refresh-Token header is required", nil)
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		if err == service.ErrInvalidToken {
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidToken, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	})
}

// Logout handles POST /api/auth/logout requests.
//
// @Summary      Logout operator
// @Description  Invalidates the access token from the Authorization header and the refresh token from the X-Refresh-Token header.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization header string true "Bearer token" default(Bearer )
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.SuccessResponse "Successful logout"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	authHeader := c.GetHeader("Authorization")
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, errors.New("invalid authorization header format"))
		return
	}

	accessToken := strings.TrimPrefix(authHeader, bearerPrefix)
	if accessToken == "" {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, errors.New("access token required"))
		return
	}

	refreshToken := c.GetHeader("X-Refresh-Token")
	if refreshToken == "" {
		builder.ErrorWithMessage(http.StatusBadRequest, "X-Refresh-Token header is required", nil)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), accessToken, refreshToken); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditLog(c, "logout", "Operator logged out", nil)

	builder.SuccessOK(map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me requests.
//
// @Summary      Current operator
// @Description  Returns the operator identity carried by the validated access token.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse{data=dto.UserResponse} "Operator identity"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	builder := NewResponseBuilder(c)

	claims, exists := c.Get("user_claims")
	if !exists {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	userClaims, ok := claims.(*dto.Claims)
	if !ok {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, nil)
		return
	}

	builder.SuccessOK(dto.UserResponse{
		Email: userClaims.Email,
		Name:  userClaims.Name,
	})
}
