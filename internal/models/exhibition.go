package models

import (
	"time"
)

type Exhibition struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrganizerID   *uint      `gorm:"index" json:"organizer_id,omitempty"`
	Name          string     `gorm:"not null" json:"name"`
	Description   *string    `json:"description,omitempty"`
	StartDate     time.Time  `gorm:"not null" json:"start_date"`
	EndDate       time.Time  `gorm:"not null" json:"end_date"`
	Year          int        `json:"year"`
	CategoryLevel *string    `json:"category_level,omitempty"`
	Status        ExpoStatus `gorm:"default:'draft'" json:"status"`
	BannerImage   *string    `json:"banner_image,omitempty"`

	Organizer    *OrganizerProfile `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Companies    []ExpoCompany     `gorm:"foreignKey:ExhibitionID;constraint:OnDelete:CASCADE" json:"companies,omitempty"`
	Tags         []ExhibitionTag   `gorm:"foreignKey:ExhibitionID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	MediaGallery []ExhibitionMedia `gorm:"foreignKey:ExhibitionID;constraint:OnDelete:CASCADE" json:"media_gallery,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Exhibition) TableName() string {
	return "exhibitions"
}

type ExhibitionTag struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ExhibitionID uint      `gorm:"not null;index" json:"exhibition_id"`
	Tag          string    `gorm:"not null" json:"tag"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ExhibitionTag) TableName() string {
	return "exhibition_tags"
}

type ExhibitionMedia struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ExhibitionID uint      `gorm:"not null;index" json:"exhibition_id"`
	MediaURL     string    `gorm:"not null" json:"media_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ExhibitionMedia) TableName() string {
	return "exhibition_media"
}

// ExpoCompany links a company to an exhibition it participates in.
// One row per (exhibition, company) registration.
type ExpoCompany struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	ExhibitionID uint     `gorm:"not null;uniqueIndex:idx_expo_company" json:"exhibition_id"`
	CompanyID    uint     `gorm:"not null;uniqueIndex:idx_expo_company" json:"company_id"`
	BoothNumber  *string  `json:"booth_number,omitempty"`
	HallName     *string  `json:"hall_name,omitempty"`
	VipLevel     VipLevel `gorm:"default:'normal'" json:"vip_level"`

	Exhibition *Exhibition     `gorm:"foreignKey:ExhibitionID" json:"exhibition,omitempty"`
	Company    *CompanyProfile `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ExpoCompany) TableName() string {
	return "expo_companies"
}
