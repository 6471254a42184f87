package managers

import (
	"context"

	"gorm.io/gorm"

	"expodir/internal/models"
)

// OrganizerManager owns organizer profiles and the verification
// documents backing them. Profiles stay unverified until an admin
// explicitly verifies them.
type OrganizerManager struct {
	db *gorm.DB
}

func NewOrganizerManager(db *gorm.DB) *OrganizerManager {
	return &OrganizerManager{db: db}
}

func (m *OrganizerManager) Create(ctx context.Context, userID uint, organizer *models.OrganizerProfile) (*models.OrganizerProfile, error) {
	organizer.UserID = userID
	organizer.Verified = false
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(organizer).Error; err != nil {
			return err
		}
		// A verification document supplied at registration time is
		// recorded alongside the profile, pending review.
		if organizer.VerificationDoc != nil && *organizer.VerificationDoc != "" {
			doc := models.VerificationDocument{
				UserID:   userID,
				Filename: *organizer.VerificationDoc,
				FileURL:  *organizer.VerificationDoc,
				Status:   models.ApprovalPending,
			}
			return tx.Create(&doc).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return organizer, nil
}

func (m *OrganizerManager) GetByID(ctx context.Context, id uint) (*models.OrganizerProfile, error) {
	return firstOrNil[models.OrganizerProfile](m.db.WithContext(ctx).Where("id = ?", id))
}

func (m *OrganizerManager) GetByUserID(ctx context.Context, userID uint) (*models.OrganizerProfile, error) {
	return firstOrNil[models.OrganizerProfile](m.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (m *OrganizerManager) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.OrganizerProfile, error) {
	fields = filterColumns("organizer", fields,
		"organization_name", "website", "country", "responsible_person", "verification_doc")

	organizer, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if organizer == nil {
		return nil, ErrNotFound
	}
	if len(fields) > 0 {
		if err := m.db.WithContext(ctx).Model(organizer).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return m.GetByID(ctx, id)
}

func (m *OrganizerManager) Verify(ctx context.Context, id uint) (*models.OrganizerProfile, error) {
	organizer, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if organizer == nil {
		return nil, ErrNotFound
	}
	if err := m.db.WithContext(ctx).Model(organizer).Update("verified", true).Error; err != nil {
		return nil, err
	}
	return m.GetByID(ctx, id)
}

// Search matches organization names case-insensitively, optionally
// narrowed to a country.
func (m *OrganizerManager) Search(ctx context.Context, query, country string) ([]models.OrganizerProfile, error) {
	q := m.db.WithContext(ctx).Model(&models.OrganizerProfile{})
	if query != "" {
		q = q.Where("LOWER(organization_name) LIKE LOWER(?)", "%"+query+"%")
	}
	if country != "" {
		q = q.Where("country = ?", country)
	}

	var organizers []models.OrganizerProfile
	err := q.Find(&organizers).Error
	return organizers, err
}

func (m *OrganizerManager) AddVerificationDocument(ctx context.Context, userID uint, filename, fileURL string) (*models.VerificationDocument, error) {
	return addChild(ctx, m.db, &models.VerificationDocument{
		UserID:   userID,
		Filename: filename,
		FileURL:  fileURL,
		Status:   models.ApprovalPending,
	})
}

func (m *OrganizerManager) SetDocumentStatus(ctx context.Context, documentID uint, status models.ApprovalStatus) error {
	result := m.db.WithContext(ctx).Model(&models.VerificationDocument{}).
		Where("id = ?", documentID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *OrganizerManager) ListVerificationDocuments(ctx context.Context, userID uint) ([]models.VerificationDocument, error) {
	return listChildren[models.VerificationDocument](ctx, m.db, "user_id", userID)
}
