package managers

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"expodir/internal/models"
)

// ExhibitionManager owns exhibitions with their tags and media gallery.
type ExhibitionManager struct {
	db *gorm.DB
}

func NewExhibitionManager(db *gorm.DB) *ExhibitionManager {
	return &ExhibitionManager{db: db}
}

// Create persists an exhibition for an organizer (nil for orphaned
// imports). An end date before the start date is rejected.
func (m *ExhibitionManager) Create(ctx context.Context, organizerID *uint, exhibition *models.Exhibition) (*models.Exhibition, error) {
	exhibition.OrganizerID = organizerID
	if !exhibition.StartDate.IsZero() && !exhibition.EndDate.IsZero() &&
		exhibition.EndDate.Before(exhibition.StartDate) {
		return nil, fmt.Errorf("%w: end_date before start_date", ErrValidation)
	}
	if exhibition.Status == "" {
		exhibition.Status = models.ExpoDraft
	}
	if exhibition.Year == 0 && !exhibition.StartDate.IsZero() {
		exhibition.Year = exhibition.StartDate.Year()
	}
	if err := m.db.WithContext(ctx).Create(exhibition).Error; err != nil {
		return nil, err
	}
	return exhibition, nil
}

func (m *ExhibitionManager) GetByID(ctx context.Context, id uint) (*models.Exhibition, error) {
	return firstOrNil[models.Exhibition](
		m.db.WithContext(ctx).Preload("Tags").Preload("MediaGallery").Where("id = ?", id))
}

func (m *ExhibitionManager) GetByOrganizer(ctx context.Context, organizerID uint) ([]models.Exhibition, error) {
	var exhibitions []models.Exhibition
	err := m.db.WithContext(ctx).Where("organizer_id = ?", organizerID).Find(&exhibitions).Error
	return exhibitions, err
}

// Update applies a partial field set. A status value outside the
// recognized enumeration is dropped silently instead of failing the
// whole update; an inconsistent date pair still fails.
func (m *ExhibitionManager) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Exhibition, error) {
	fields = filterColumns("exhibition", fields,
		"name", "description", "start_date", "end_date", "year", "category_level", "status", "banner_image")

	if raw, ok := fields["status"]; ok {
		if !models.ValidExpoStatus(models.ExpoStatus(fmt.Sprint(raw))) {
			delete(fields, "status")
		}
	}

	exhibition, err := firstOrNil[models.Exhibition](m.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, err
	}
	if exhibition == nil {
		return nil, ErrNotFound
	}

	start, end := exhibition.StartDate, exhibition.EndDate
	if raw, ok := fields["start_date"].(time.Time); ok {
		start = raw
	}
	if raw, ok := fields["end_date"].(time.Time); ok {
		end = raw
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, fmt.Errorf("%w: end_date before start_date", ErrValidation)
	}

	if len(fields) > 0 {
		if err := m.db.WithContext(ctx).Model(exhibition).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return m.GetByID(ctx, id)
}

// Delete removes the exhibition with its tags, media and registrations.
func (m *ExhibitionManager) Delete(ctx context.Context, id uint) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exhibition models.Exhibition
		if err := tx.First(&exhibition, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("exhibition_id = ?", id).Delete(&models.ExhibitionTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exhibition_id = ?", id).Delete(&models.ExhibitionMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exhibition_id = ?", id).Delete(&models.ExpoCompany{}).Error; err != nil {
			return err
		}
		return tx.Delete(&exhibition).Error
	})
}

func (m *ExhibitionManager) GetUpcoming(ctx context.Context) ([]models.Exhibition, error) {
	var exhibitions []models.Exhibition
	err := m.db.WithContext(ctx).
		Where("status = ? AND start_date > ?", models.ExpoDraft, time.Now().UTC()).
		Find(&exhibitions).Error
	return exhibitions, err
}

// Search combines a case-insensitive substring match over name and
// description with exact-match filters. Every filter is optional; an
// unrecognized status is ignored.
func (m *ExhibitionManager) Search(ctx context.Context, query, category string, year int, status models.ExpoStatus) ([]models.Exhibition, error) {
	q := m.db.WithContext(ctx).Model(&models.Exhibition{})
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if category != "" {
		q = q.Where("category_level = ?", category)
	}
	if year != 0 {
		q = q.Where("year = ?", year)
	}
	if status != "" && models.ValidExpoStatus(status) {
		q = q.Where("status = ?", status)
	}

	var exhibitions []models.Exhibition
	err := q.Find(&exhibitions).Error
	return exhibitions, err
}

// AddTag attaches a tag, reusing an existing row with the same name on
// the same exhibition instead of duplicating it.
func (m *ExhibitionManager) AddTag(ctx context.Context, exhibitionID uint, tag string) (*models.ExhibitionTag, error) {
	var row models.ExhibitionTag
	err := m.db.WithContext(ctx).
		Where(models.ExhibitionTag{ExhibitionID: exhibitionID, Tag: tag}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (m *ExhibitionManager) RemoveTag(ctx context.Context, exhibitionID, tagID uint) error {
	result := m.db.WithContext(ctx).
		Where("id = ? AND exhibition_id = ?", tagID, exhibitionID).
		Delete(&models.ExhibitionTag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *ExhibitionManager) AddMedia(ctx context.Context, exhibitionID uint, mediaURL string) (*models.ExhibitionMedia, error) {
	return addChild(ctx, m.db, &models.ExhibitionMedia{ExhibitionID: exhibitionID, MediaURL: mediaURL})
}

func (m *ExhibitionManager) RemoveMedia(ctx context.Context, exhibitionID, mediaID uint) error {
	result := m.db.WithContext(ctx).
		Where("id = ? AND exhibition_id = ?", mediaID, exhibitionID).
		Delete(&models.ExhibitionMedia{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListExhibitionYears returns, for every calendar year any exhibition
// spans (start to end inclusive), how many exhibitions touch it.
func (m *ExhibitionManager) ListExhibitionYears(ctx context.Context) (map[int]int, error) {
	var exhibitions []models.Exhibition
	if err := m.db.WithContext(ctx).
		Select("start_date", "end_date").
		Find(&exhibitions).Error; err != nil {
		return nil, err
	}

	years := make(map[int]int)
	for _, e := range exhibitions {
		if e.StartDate.IsZero() || e.EndDate.IsZero() {
			continue
		}
		for y := e.StartDate.Year(); y <= e.EndDate.Year(); y++ {
			years[y]++
		}
	}
	return years, nil
}

// ListCategories returns the distinct non-null category values.
func (m *ExhibitionManager) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := m.db.WithContext(ctx).Model(&models.Exhibition{}).
		Where("category_level IS NOT NULL").
		Distinct("category_level").
		Order("category_level").
		Pluck("category_level", &categories).Error
	return categories, err
}
