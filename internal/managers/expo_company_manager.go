package managers

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"expodir/internal/models"
)

// DefaultCompanyLogo is substituted in exhibitor listings when a company
// has not uploaded a logo.
const DefaultCompanyLogo = "/uploads/defaults/company-logo.png"

// ExpoCompanyManager owns the registrations linking companies to
// exhibitions, including booth placement and VIP tier.
type ExpoCompanyManager struct {
	db *gorm.DB
}

func NewExpoCompanyManager(db *gorm.DB) *ExpoCompanyManager {
	return &ExpoCompanyManager{db: db}
}

// RegisterCompany creates the join row after checking both parents
// exist. The unique index on (exhibition, company) rejects a second
// registration of the same pair.
func (m *ExpoCompanyManager) RegisterCompany(ctx context.Context, exhibitionID, companyID uint, boothNumber, hallName *string, vipLevel models.VipLevel) (*models.ExpoCompany, error) {
	var registration *models.ExpoCompany
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Exhibition{}).Where("id = ?", exhibitionID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("exhibition %d: %w", exhibitionID, ErrNotFound)
		}
		if err := tx.Model(&models.CompanyProfile{}).Where("id = ?", companyID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("company %d: %w", companyID, ErrNotFound)
		}

		if vipLevel == "" {
			vipLevel = models.VipNormal
		}
		registration = &models.ExpoCompany{
			ExhibitionID: exhibitionID,
			CompanyID:    companyID,
			BoothNumber:  boothNumber,
			HallName:     hallName,
			VipLevel:     vipLevel,
		}
		return tx.Create(registration).Error
	})
	if err != nil {
		return nil, err
	}
	return registration, nil
}

func (m *ExpoCompanyManager) GetByExhibition(ctx context.Context, exhibitionID uint) ([]models.ExpoCompany, error) {
	var registrations []models.ExpoCompany
	err := m.db.WithContext(ctx).Where("exhibition_id = ?", exhibitionID).Find(&registrations).Error
	return registrations, err
}

func (m *ExpoCompanyManager) GetByCompany(ctx context.Context, companyID uint) ([]models.ExpoCompany, error) {
	var registrations []models.ExpoCompany
	err := m.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&registrations).Error
	return registrations, err
}

func (m *ExpoCompanyManager) GetCompaniesInHall(ctx context.Context, exhibitionID uint, hallName string) ([]models.ExpoCompany, error) {
	var registrations []models.ExpoCompany
	err := m.db.WithContext(ctx).
		Where("exhibition_id = ? AND hall_name = ?", exhibitionID, hallName).
		Find(&registrations).Error
	return registrations, err
}

// UpdateBoothInfo partially updates the placement fields. Nil means
// "leave unchanged"; a non-nil value always sets, so an empty booth
// number or an explicit "normal" VIP level are real assignments.
func (m *ExpoCompanyManager) UpdateBoothInfo(ctx context.Context, id uint, boothNumber, hallName *string, vipLevel *models.VipLevel) (*models.ExpoCompany, error) {
	registration, err := firstOrNil[models.ExpoCompany](m.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotFound
	}

	fields := make(map[string]interface{})
	if boothNumber != nil {
		fields["booth_number"] = *boothNumber
	}
	if hallName != nil {
		fields["hall_name"] = *hallName
	}
	if vipLevel != nil {
		fields["vip_level"] = *vipLevel
	}
	if len(fields) > 0 {
		if err := m.db.WithContext(ctx).Model(registration).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return firstOrNil[models.ExpoCompany](m.db.WithContext(ctx).Where("id = ?", id))
}

// ExhibitorDetail is the denormalized listing row shown on exhibition
// pages.
type ExhibitorDetail struct {
	RegistrationID   uint            `json:"registration_id"`
	CompanyID        uint            `json:"company_id"`
	CompanyName      string          `json:"company_name"`
	Logo             string          `json:"logo"`
	IndustryCategory *string         `json:"industry_category,omitempty"`
	BoothNumber      *string         `json:"booth_number,omitempty"`
	HallName         *string         `json:"hall_name,omitempty"`
	VipLevel         models.VipLevel `json:"vip_level"`
}

// ListCompaniesWithDetails joins registrations with company profiles.
// Companies without a logo get DefaultCompanyLogo.
func (m *ExpoCompanyManager) ListCompaniesWithDetails(ctx context.Context, exhibitionID uint) ([]ExhibitorDetail, error) {
	var registrations []models.ExpoCompany
	err := m.db.WithContext(ctx).
		Preload("Company").
		Where("exhibition_id = ?", exhibitionID).
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}

	details := make([]ExhibitorDetail, 0, len(registrations))
	for _, r := range registrations {
		detail := ExhibitorDetail{
			RegistrationID: r.ID,
			CompanyID:      r.CompanyID,
			Logo:           DefaultCompanyLogo,
			BoothNumber:    r.BoothNumber,
			HallName:       r.HallName,
			VipLevel:       r.VipLevel,
		}
		if r.Company != nil {
			detail.CompanyName = r.Company.CompanyName
			detail.IndustryCategory = r.Company.IndustryCategory
			if r.Company.Logo != nil && *r.Company.Logo != "" {
				detail.Logo = *r.Company.Logo
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
