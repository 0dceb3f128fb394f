package models

import "time"

// RefreshToken represents the refresh_tokens table. The raw token never hits
// storage; rows are keyed by its SHA-256 hash. ReplacedByHash links each
// rotated-out row to its successor so stale-token reuse is detectable.
type RefreshToken struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	TokenHash      string     `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt      time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt      time.Time  `json:"created_at"`
	Revoked        bool       `gorm:"default:false" json:"revoked"`
	RevokedAt      *time.Time `json:"revoked_at,omitempty"`
	ReplacedByHash string     `gorm:"size:64" json:"-"`
	User           *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// IsExpired reports whether the token's lifetime has passed at the given instant
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsLive reports whether the token can still be redeemed: not revoked, not expired
func (t *RefreshToken) IsLive(now time.Time) bool {
	return !t.Revoked && !t.IsExpired(now)
}
