package managers

import (
	"context"

	"gorm.io/gorm"

	"expodir/internal/models"
)

// FavoriteManager owns user favorites. Adds are idempotent per
// (user, type, target).
type FavoriteManager struct {
	db *gorm.DB
}

func NewFavoriteManager(db *gorm.DB) *FavoriteManager {
	return &FavoriteManager{db: db}
}

// AddFavorite returns the existing row when the favorite already
// exists instead of erroring or duplicating.
func (m *FavoriteManager) AddFavorite(ctx context.Context, userID uint, favoriteType models.FavoriteType, targetID uint) (*models.UserFavorite, error) {
	existing, err := firstOrNil[models.UserFavorite](
		m.db.WithContext(ctx).
			Where("user_id = ? AND favorite_type = ? AND target_id = ?", userID, favoriteType, targetID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	favorite := &models.UserFavorite{
		UserID:       userID,
		FavoriteType: favoriteType,
		TargetID:     targetID,
	}
	if err := m.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return nil, err
	}
	return favorite, nil
}

// RemoveFavorite reports whether a row was actually removed; a missing
// favorite is a no-op, not an error.
func (m *FavoriteManager) RemoveFavorite(ctx context.Context, userID uint, favoriteType models.FavoriteType, targetID uint) (bool, error) {
	result := m.db.WithContext(ctx).
		Where("user_id = ? AND favorite_type = ? AND target_id = ?", userID, favoriteType, targetID).
		Delete(&models.UserFavorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (m *FavoriteManager) GetUserFavorites(ctx context.Context, userID uint, favoriteType models.FavoriteType) ([]models.UserFavorite, error) {
	q := m.db.WithContext(ctx).Where("user_id = ?", userID)
	if favoriteType != "" {
		q = q.Where("favorite_type = ?", favoriteType)
	}
	var favorites []models.UserFavorite
	err := q.Find(&favorites).Error
	return favorites, err
}

func (m *FavoriteManager) CountFavorites(ctx context.Context, favoriteType models.FavoriteType, targetID uint) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).Model(&models.UserFavorite{}).
		Where("favorite_type = ? AND target_id = ?", favoriteType, targetID).
		Count(&count).Error
	return count, err
}
