package models

import (
	"time"
)

type CompanyProfile struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UserID           uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName      string         `gorm:"not null" json:"company_name"`
	Logo             *string        `json:"logo,omitempty"`
	Website          *string        `json:"website,omitempty"`
	IndustryCategory *string        `json:"industry_category,omitempty"`
	Description      *string        `json:"description,omitempty"`
	ApprovalStatus   ApprovalStatus `gorm:"default:'pending'" json:"approval_status"`

	Websites       []CompanyWebsite       `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"websites,omitempty"`
	Addresses      []CompanyAddress       `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Phones         []CompanyPhone         `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"phones,omitempty"`
	Tags           []CompanyTag           `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Videos         []CompanyVideo         `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"videos,omitempty"`
	Brochures      []CompanyBrochure      `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"brochures,omitempty"`
	KnowledgeFiles []CompanyKnowledgeFile `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"knowledge_files,omitempty"`
	Documents      []CompanyDocument      `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	Products       []Product              `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Registrations  []ExpoCompany          `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}

type CompanyDocument struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	Name      string    `gorm:"not null" json:"name"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyDocument) TableName() string {
	return "company_documents"
}

type CompanyWebsite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	Name      string    `gorm:"not null" json:"name"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyWebsite) TableName() string {
	return "company_websites"
}

type CompanyAddress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `gorm:"not null" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyAddress) TableName() string {
	return "company_addresses"
}

type CompanyPhone struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyID   uint      `gorm:"not null;index" json:"company_id"`
	Name        string    `gorm:"not null" json:"name"`
	PhoneNumber string    `gorm:"not null" json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CompanyPhone) TableName() string {
	return "company_phones"
}

type CompanyTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	Tag       string    `gorm:"not null" json:"tag"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyTag) TableName() string {
	return "company_tags"
}

type CompanyVideo struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyID    uint      `gorm:"not null;index" json:"company_id"`
	Title        string    `gorm:"not null" json:"title"`
	OriginalName string    `json:"original_name"`
	VideoURL     string    `gorm:"not null" json:"video_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (CompanyVideo) TableName() string {
	return "company_videos"
}

type CompanyBrochure struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyID    uint      `gorm:"not null;index" json:"company_id"`
	Title        string    `gorm:"not null" json:"title"`
	OriginalName string    `json:"original_name"`
	FileURL      string    `gorm:"not null" json:"file_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (CompanyBrochure) TableName() string {
	return "company_brochures"
}

type CompanyKnowledgeFile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	Title     string    `gorm:"not null" json:"title"`
	FileURL   string    `gorm:"not null" json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyKnowledgeFile) TableName() string {
	return "company_knowledge_files"
}
