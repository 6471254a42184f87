package managers

import (
	"context"

	"gorm.io/gorm"

	"expodir/internal/models"
)

// CompanyManager owns company profiles and their child collections
// (websites, addresses, phones, tags, videos, brochures, knowledge
// files, documents). One company per user; the unique index on user_id
// surfaces duplicate creations as a storage error.
type CompanyManager struct {
	db *gorm.DB
}

func NewCompanyManager(db *gorm.DB) *CompanyManager {
	return &CompanyManager{db: db}
}

func (m *CompanyManager) Create(ctx context.Context, userID uint, company *models.CompanyProfile) (*models.CompanyProfile, error) {
	company.UserID = userID
	if company.ApprovalStatus == "" {
		company.ApprovalStatus = models.ApprovalPending
	}
	if err := m.db.WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (m *CompanyManager) withChildren(ctx context.Context) *gorm.DB {
	return m.db.WithContext(ctx).
		Preload("Documents").
		Preload("Websites").
		Preload("Addresses").
		Preload("Phones").
		Preload("Tags").
		Preload("Videos").
		Preload("Brochures").
		Preload("KnowledgeFiles")
}

func (m *CompanyManager) GetByID(ctx context.Context, id uint) (*models.CompanyProfile, error) {
	return firstOrNil[models.CompanyProfile](m.withChildren(ctx).Where("id = ?", id))
}

func (m *CompanyManager) GetByUserID(ctx context.Context, userID uint) (*models.CompanyProfile, error) {
	return firstOrNil[models.CompanyProfile](m.withChildren(ctx).Where("user_id = ?", userID))
}

// Update applies a partial field set; missing ids fail with ErrNotFound.
func (m *CompanyManager) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.CompanyProfile, error) {
	fields = filterColumns("company", fields,
		"company_name", "logo", "website", "industry_category", "description", "approval_status")

	company, err := firstOrNil[models.CompanyProfile](m.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNotFound
	}

	if len(fields) > 0 {
		if err := m.db.WithContext(ctx).Model(company).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return m.GetByID(ctx, id)
}

// Delete removes the company and everything it owns: child collections,
// products (with their own children) and exhibition registrations.
func (m *CompanyManager) Delete(ctx context.Context, id uint) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company models.CompanyProfile
		if err := tx.First(&company, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		var products []models.Product
		if err := tx.Where("company_id = ?", id).Find(&products).Error; err != nil {
			return err
		}
		for _, p := range products {
			if err := deleteProductTx(tx, &p); err != nil {
				return err
			}
		}

		for _, child := range []interface{}{
			&models.CompanyWebsite{}, &models.CompanyAddress{}, &models.CompanyPhone{},
			&models.CompanyTag{}, &models.CompanyVideo{}, &models.CompanyBrochure{},
			&models.CompanyKnowledgeFile{}, &models.CompanyDocument{},
		} {
			if err := tx.Where("company_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("company_id = ?", id).Delete(&models.ExpoCompany{}).Error; err != nil {
			return err
		}
		return tx.Delete(&company).Error
	})
}

func (m *CompanyManager) GetPendingCompanies(ctx context.Context) ([]models.CompanyProfile, error) {
	return m.byStatus(ctx, models.ApprovalPending)
}

func (m *CompanyManager) GetApprovedCompanies(ctx context.Context) ([]models.CompanyProfile, error) {
	return m.byStatus(ctx, models.ApprovalApproved)
}

func (m *CompanyManager) byStatus(ctx context.Context, status models.ApprovalStatus) ([]models.CompanyProfile, error) {
	var companies []models.CompanyProfile
	err := m.db.WithContext(ctx).Where("approval_status = ?", status).Find(&companies).Error
	return companies, err
}

// Child collections. Each group is add-row / list-by-parent /
// delete-by-id over the same generic helpers.

func (m *CompanyManager) AddDocument(ctx context.Context, companyID uint, name, url string) (*models.CompanyDocument, error) {
	return addChild(ctx, m.db, &models.CompanyDocument{CompanyID: companyID, Name: name, URL: url})
}

func (m *CompanyManager) ListDocuments(ctx context.Context, companyID uint) ([]models.CompanyDocument, error) {
	return listChildren[models.CompanyDocument](ctx, m.db, "company_id", companyID)
}

func (m *CompanyManager) DeleteDocument(ctx context.Context, id uint) error {
	return deleteChild[models.CompanyDocument](ctx, m.db, id)
}

func (m *CompanyManager) AddWebsite(ctx context.Context, companyID uint, name, url string) (*models.CompanyWebsite, error) {
	return addChild(ctx, m.db, &models.CompanyWebsite{CompanyID: companyID, Name: name, URL: url})
}

func (m *CompanyManager) ListWebsites(ctx context.Context, companyID uint) ([]models.CompanyWebsite, error) {
	return listChildren[models.CompanyWebsite](ctx, m.db, "company_id", companyID)
}

func (m *CompanyManager) DeleteWebsite(ctx context.Context, id uint) error {
	return deleteChild[models.CompanyWebsite](ctx, m.db, id)
}

func (m *CompanyManager) AddAddress(ctx context.Context, companyID uint, name, address string) (*models.CompanyAddress, error) {
	return addChild(ctx, m.db, &models.CompanyAddress{CompanyID: companyID, Name: name, Address: address})
}

func (m *CompanyManager) ListAddresses(ctx context.Context, companyID uint) ([]models.CompanyAddress, error) {
	return listChildren[models.CompanyAddress](ctx, m.db, "company_id", companyID)
}

func (m *CompanyManager) DeleteAddress(ctx context.Context, id uint) error {
	return deleteChild[models.CompanyAddress](ctx, m.db, id)
}

func (m *CompanyManager) AddPhone(ctx context.Context, companyID uint, name, phoneNumber string) (*models.CompanyPhone, error) {
	return addChild(ctx, m.db, &models.CompanyPhone{CompanyID: companyID, Name: name, PhoneNumber: phoneNumber})
}

func (m *CompanyManager) ListPhones(ctx context.Context, companyID uint) ([]models.CompanyPhone, error) {
	return listChildren[models.CompanyPhone](ctx, m.db, "company_id", companyID)
}

func (m *CompanyManager) DeletePhone(ctx context.Context, id uint) error {
	return deleteChild[models.CompanyPhone](ctx, m.db, id)
}

func (m *CompanyManager) AddTag(ctx context.Context, companyID uint, tag string) (*models.CompanyTag, error) {
	return addChild(ctx, m.db, &models.CompanyTag{CompanyID: companyID, Tag: tag})
}

func (m *CompanyManager) ListTags(ctx context.Context, companyID uint) ([]models.CompanyTag, error) {
	return listChildren[models.CompanyTag](ctx, m.db, "company_id", companyID)
}

func (m *CompanyManager) DeleteTag(ctx context.Context, id uint) error {
	return deleteChild[models.CompanyTag](ctx, m.db, id)
}

func (m *CompanyManager) AddVideo(ctx context.Context, companyID uint, title, originalName, videoURL string) (*models.CompanyVideo, error) {
	return addChild(ctx, m.db, &models.CompanyVideo{CompanyID: companyID, Title: title, OriginalName: originalName, VideoURL: videoURL})
}

func (m *CompanyManager) ListVideos(ctx context.Context, companyID uint) ([]models.CompanyVideo, error) {
	return listChildren[models.CompanyVideo](ctx, m.db, "company_id", companyID)
}

func (m *CompanyManager) DeleteVideo(ctx context.Context, id uint) error {
	return deleteChild[models.CompanyVideo](ctx, m.db, id)
}

func (m *CompanyManager) AddBrochure(ctx context.Context, companyID uint, title, originalName, fileURL string) (*models.CompanyBrochure, error) {
	return addChild(ctx, m.db, &models.CompanyBrochure{CompanyID: companyID, Title: title, OriginalName: originalName, FileURL: fileURL})
}

func (m *CompanyManager) ListBrochures(ctx context.Context, companyID uint) ([]models.CompanyBrochure, error) {
	return listChildren[models.CompanyBrochure](ctx, m.db, "company_id", companyID)
}

func (m *CompanyManager) DeleteBrochure(ctx context.Context, id uint) error {
	return deleteChild[models.CompanyBrochure](ctx, m.db, id)
}

func (m *CompanyManager) AddKnowledgeFile(ctx context.Context, companyID uint, title, fileURL string) (*models.CompanyKnowledgeFile, error) {
	return addChild(ctx, m.db, &models.CompanyKnowledgeFile{CompanyID: companyID, Title: title, FileURL: fileURL})
}

func (m *CompanyManager) ListKnowledgeFiles(ctx context.Context, companyID uint) ([]models.CompanyKnowledgeFile, error) {
	return listChildren[models.CompanyKnowledgeFile](ctx, m.db, "company_id", companyID)
}

func (m *CompanyManager) DeleteKnowledgeFile(ctx context.Context, id uint) error {
	return deleteChild[models.CompanyKnowledgeFile](ctx, m.db, id)
}
