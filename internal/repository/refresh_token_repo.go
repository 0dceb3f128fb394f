package repository

import (
	"errors"
	"time"

	"academic-attendance-backend/internal/models"

	"gorm.io/gorm"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepo(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create persists a new refresh token row
func (r *RefreshTokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// FindByHash finds a refresh token row by its hash in any state, so the
// caller can tell expired and revoked apart from missing.
// Returns (nil, nil) when absent.
func (r *RefreshTokenRepository) FindByHash(hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ?", hash).Preload("User").First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// Update saves changes to an existing refresh token row
func (r *RefreshTokenRepository) Update(token *models.RefreshToken) error {
	return r.db.Save(token).Error
}

// Rotate revokes the old row and inserts its replacement in one transaction,
// so no request can observe the new token without the old one being dead.
func (r *RefreshTokenRepository) Rotate(old *models.RefreshToken, replacement *models.RefreshToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(old).Error; err != nil {
			return err
		}
		return tx.Create(replacement).Error
	})
}

// RevokeAllForUser revokes every live token owned by the user. Revoking a
// user with no live tokens is a no-op, which makes logout idempotent.
func (r *RefreshTokenRepository) RevokeAllForUser(userID uint, now time.Time) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ? AND expires_at > ?", userID, false, now).
		Updates(map[string]interface{}{
			"revoked":    true,
			"revoked_at": now,
		}).Error
}
