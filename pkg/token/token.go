package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const refreshTokenBytes = 64

// Config holds the signing parameters for issued tokens. It is passed to
// NewService once and treated as immutable afterwards.
type Config struct {
	Secret             string
	Issuer             string
	Audience           string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// Claims represents JWT custom claims carried by access tokens
type Claims struct {
	UserID             uint   `json:"user_id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and validates bearer credentials
type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// GenerateAccessToken generates a short-lived signed JWT carrying the user's
// identity claims. registrationNumber may be empty for non-students.
func (s *Service) GenerateAccessToken(userID uint, email, name, role, registrationNumber string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:             userID,
		Email:              email,
		Name:               name,
		Role:               role,
		RegistrationNumber: registrationNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// GenerateRefreshToken generates a cryptographically random opaque token.
// It carries no claims; it is only ever used as a lookup key.
func (s *Service) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// ValidateAccessToken verifies signature, issuer, audience and expiry.
// Any failure is returned as an error; callers treat it as "no identity".
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, s.keyFunc,
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ExtractUserIDIgnoringExpiry validates everything except the lifetime and
// returns the subject user id. Used only to identify the owner of an expired
// access token during the refresh flow.
func (s *Service) ExtractUserIDIgnoringExpiry(tokenString string) (uint, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, s.keyFunc,
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, false
	}

	// Issuer and audience still have to match; only expiry is skipped
	if claims.Issuer != s.cfg.Issuer {
		return 0, false
	}
	audienceMatch := false
	for _, aud := range claims.Audience {
		if aud == s.cfg.Audience {
			audienceMatch = true
			break
		}
	}
	if !audienceMatch {
		return 0, false
	}

	return claims.UserID, true
}

// RefreshTokenExpiry returns the configured refresh token lifetime
func (s *Service) RefreshTokenExpiry() time.Duration {
	return s.cfg.RefreshTokenExpiry
}

// AccessTokenExpiry returns the configured access token lifetime
func (s *Service) AccessTokenExpiry() time.Duration {
	return s.cfg.AccessTokenExpiry
}

func (s *Service) keyFunc(token *jwt.Token) (interface{}, error) {
	// Verify signing method
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.cfg.Secret), nil
}

// HashRefreshToken creates a SHA-256 hash of the refresh token for secure storage
func HashRefreshToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
