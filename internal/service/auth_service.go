package service

import (
	"strings"
	"time"

	"academic-attendance-backend/internal/models"
	"academic-attendance-backend/pkg/token"
	"academic-attendance-backend/pkg/utils"
)

type AuthService struct {
	users    UserStore
	tokens   RefreshTokenStore
	tokenSvc *token.Service
}

func NewAuthService(users UserStore, tokens RefreshTokenStore, tokenSvc *token.Service) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		tokenSvc: tokenSvc,
	}
}

// TokenPair is returned by every operation that issues credentials
type TokenPair struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID                 uint   `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	RegistrationNumber string `json:"registration_number,omitempty"`
}

type RegisterInput struct {
	FirstName          string
	LastName           string
	Email              string
	Password           string
	Role               models.Role
	RegistrationNumber string
}

// Login authenticates a user by email and password and issues a token pair.
// The caller is never told whether the email or the password was wrong.
func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, internalErr("logging in", err)
	}
	if user == nil {
		return nil, authorizationErr("Invalid email or password")
	}

	if !user.IsActive() {
		return nil, authorizationErr("Account is deactivated. Please contact administrator.")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, authorizationErr("Invalid email or password")
	}

	return s.issueTokens(user)
}

// Register creates a new user account and logs it in
func (s *AuthService) Register(input RegisterInput) (*TokenPair, error) {
	// Check if email already registered
	existing, err := s.users.FindByEmail(input.Email)
	if err != nil {
		return nil, internalErr("registering", err)
	}
	if existing != nil {
		return nil, conflictErr("Email already registered")
	}

	var regNo *string
	if input.Role == models.RoleStudent {
		trimmed := strings.ToUpper(strings.TrimSpace(input.RegistrationNumber))
		if trimmed == "" {
			return nil, validationErr("Registration number is required for students")
		}

		taken, err := s.users.FindByRegistrationNumber(trimmed)
		if err != nil {
			return nil, internalErr("registering", err)
		}
		if taken != nil {
			return nil, conflictErr("Registration number already exists")
		}
		regNo = &trimmed
	}

	if !utils.ValidatePasswordStrength(input.Password) {
		return nil, validationErr(
			"Password must contain at least one uppercase letter, one lowercase letter, one number and one special character")
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, internalErr("registering", err)
	}

	user := &models.User{
		FirstName:          strings.TrimSpace(input.FirstName),
		LastName:           strings.TrimSpace(input.LastName),
		Email:              strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:       passwordHash,
		Role:               input.Role,
		RegistrationNumber: regNo,
		Status:             models.StatusActive,
	}

	if err := s.users.Create(user); err != nil {
		return nil, internalErr("registering", err)
	}

	return s.issueTokens(user)
}

// Refresh rotates a refresh token: the presented token is revoked and linked
// to its replacement, and a fresh pair is issued. Presenting a token that was
// already rotated out fails, which is what surfaces stale-token reuse.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	hash := token.HashRefreshToken(refreshToken)

	row, err := s.tokens.FindByHash(hash)
	if err != nil {
		return nil, internalErr("refreshing token", err)
	}
	if row == nil || !row.IsLive(time.Now()) {
		return nil, authorizationErr("Invalid or expired refresh token")
	}

	user, err := s.users.FindByID(row.UserID)
	if err != nil {
		return nil, internalErr("refreshing token", err)
	}
	if user == nil || !user.IsActive() {
		return nil, authorizationErr("User not found or inactive")
	}

	accessToken, newRefreshToken, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newHash := token.HashRefreshToken(newRefreshToken)

	row.Revoked = true
	row.RevokedAt = &now
	row.ReplacedByHash = newHash

	replacement := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: newHash,
		ExpiresAt: now.Add(s.tokenSvc.RefreshTokenExpiry()),
	}

	if err := s.tokens.Rotate(row, replacement); err != nil {
		return nil, internalErr("refreshing token", err)
	}

	return s.buildPair(user, accessToken, newRefreshToken), nil
}

// Logout revokes every live refresh token the user owns. Calling it again
// when nothing is live succeeds without effect.
func (s *AuthService) Logout(userID uint) error {
	if err := s.tokens.RevokeAllForUser(userID, time.Now().UTC()); err != nil {
		return internalErr("logging out", err)
	}
	return nil
}

// Revoke revokes one specific refresh token regardless of owner
func (s *AuthService) Revoke(refreshToken string) error {
	hash := token.HashRefreshToken(refreshToken)

	row, err := s.tokens.FindByHash(hash)
	if err != nil {
		return internalErr("revoking token", err)
	}
	if row == nil {
		return notFoundErr("Token not found")
	}

	now := time.Now().UTC()
	row.Revoked = true
	row.RevokedAt = &now

	if err := s.tokens.Update(row); err != nil {
		return internalErr("revoking token", err)
	}
	return nil
}

func (s *AuthService) generateTokens(user *models.User) (accessToken, refreshToken string, err error) {
	regNo := ""
	if user.RegistrationNumber != nil {
		regNo = *user.RegistrationNumber
	}

	accessToken, err = s.tokenSvc.GenerateAccessToken(user.ID, user.Email, user.FullName(), string(user.Role), regNo)
	if err != nil {
		return "", "", internalErr("generating access token", err)
	}

	refreshToken, err = s.tokenSvc.GenerateRefreshToken()
	if err != nil {
		return "", "", internalErr("generating refresh token", err)
	}

	return accessToken, refreshToken, nil
}

// issueTokens generates a pair and persists the refresh row in one step, so a
// token the caller ends up holding always has a backing row.
func (s *AuthService) issueTokens(user *models.User) (*TokenPair, error) {
	accessToken, refreshToken, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	row := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: token.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().UTC().Add(s.tokenSvc.RefreshTokenExpiry()),
	}

	if err := s.tokens.Create(row); err != nil {
		return nil, internalErr("storing refresh token", err)
	}

	return s.buildPair(user, accessToken, refreshToken), nil
}

func (s *AuthService) buildPair(user *models.User, accessToken, refreshToken string) *TokenPair {
	regNo := ""
	if user.RegistrationNumber != nil {
		regNo = *user.RegistrationNumber
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.tokenSvc.AccessTokenExpiry()),
		User: UserResponse{
			ID:                 user.ID,
			FirstName:          user.FirstName,
			LastName:           user.LastName,
			Email:              user.Email,
			Role:               string(user.Role),
			RegistrationNumber: regNo,
		},
	}
}
