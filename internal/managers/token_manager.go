package managers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"expodir/internal/models"
)

// TokenManager persists issued tokens so they can be revoked before
// expiry. Revoked or expired tokens never validate.
type TokenManager struct {
	db *gorm.DB
}

func NewTokenManager(db *gorm.DB) *TokenManager {
	return &TokenManager{db: db}
}

func (m *TokenManager) Issue(ctx context.Context, userID uint, token string, tokenType models.TokenType, expiresAt time.Time) (*models.Token, error) {
	row := &models.Token{
		UserID:    userID,
		Token:     token,
		TokenType: tokenType,
		ExpiresAt: expiresAt,
	}
	if err := m.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Validate returns the token row when it exists, is not revoked and has
// not expired; otherwise ErrInvalidCredentials.
func (m *TokenManager) Validate(ctx context.Context, token string) (*models.Token, error) {
	row, err := firstOrNil[models.Token](m.db.WithContext(ctx).Where("token = ?", token))
	if err != nil {
		return nil, err
	}
	if row == nil || row.IsRevoked || row.ExpiresAt.Before(time.Now().UTC()) {
		return nil, ErrInvalidCredentials
	}
	return row, nil
}

func (m *TokenManager) Revoke(ctx context.Context, token string) error {
	result := m.db.WithContext(ctx).Model(&models.Token{}).
		Where("token = ?", token).
		Update("is_revoked", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RevokeAllForUser revokes every live token of a user, optionally
// narrowed to one type.
func (m *TokenManager) RevokeAllForUser(ctx context.Context, userID uint, tokenType models.TokenType) error {
	q := m.db.WithContext(ctx).Model(&models.Token{}).
		Where("user_id = ? AND is_revoked = ?", userID, false)
	if tokenType != "" {
		q = q.Where("token_type = ?", tokenType)
	}
	return q.Update("is_revoked", true).Error
}
