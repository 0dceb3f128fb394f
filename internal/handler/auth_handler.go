package handler

import (
	"net/http"

	"academic-attendance-backend/internal/config"
	"academic-attendance-backend/internal/middleware"
	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/internal/service"
	"academic-attendance-backend/pkg/token"
	"academic-attendance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const refreshTokenCookie = "refresh_token"

type AuthHandler struct {
	authService *service.AuthService
	tokenSvc    *token.Service
	jwtCfg      config.JWTConfig
}

func NewAuthHandler(authService *service.AuthService, tokenSvc *token.Service, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenSvc:    tokenSvc,
		jwtCfg:      jwtCfg,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	FirstName          string `json:"first_name" binding:"required,max=100"`
	LastName           string `json:"last_name" binding:"required,max=100"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required"`
	Role               string `json:"role" binding:"required,oneof=Admin Teacher Student"`
	RegistrationNumber string `json:"registration_number"`
}

type RevokeRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	pair, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		// Credential failures always come back as 401, never 403
		if service.KindOf(err) == service.KindAuthorization {
			utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	utils.SuccessResponse(c, pair)
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	pair, err := h.authService.Register(service.RegisterInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Password:           req.Password,
		Role:               models.Role(req.Role),
		RegistrationNumber: req.RegistrationNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	utils.SuccessResponse(c, pair)
}

// Refresh rotates the refresh token and issues a new pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	pair, err := h.authService.Refresh(refreshToken)
	if err != nil {
		if service.KindOf(err) == service.KindAuthorization {
			h.clearAuthCookies(c)
			utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	utils.SuccessResponse(c, pair)
}

// Logout revokes every live refresh token the caller owns. The subject is
// taken from the access token ignoring expiry, so logging out still works
// after the access token has lapsed.
func (h *AuthHandler) Logout(c *gin.Context) {
	accessToken, err := c.Cookie(middleware.AccessTokenCookie)
	if err != nil || accessToken == "" {
		h.clearAuthCookies(c)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	userID, ok := h.tokenSvc.ExtractUserIDIgnoringExpiry(accessToken)
	if !ok {
		h.clearAuthCookies(c)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	h.clearAuthCookies(c)
	utils.MessageResponse(c, "Logged out successfully")
}

// Revoke revokes one specific refresh token (admin path)
func (h *AuthHandler) Revoke(c *gin.Context) {
	var req RevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.authService.Revoke(req.RefreshToken); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Token revoked successfully")
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, pair *service.TokenPair) {
	c.SetCookie(
		middleware.AccessTokenCookie,
		pair.AccessToken,
		int(h.jwtCfg.AccessTokenExpiry.Seconds()),
		"/",
		"",
		false, // secure: set to true behind HTTPS
		true,
	)
	c.SetCookie(
		refreshTokenCookie,
		pair.RefreshToken,
		int(h.jwtCfg.RefreshTokenExpiry.Seconds()),
		"/",
		"",
		false,
		true,
	)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", false, true)
}
