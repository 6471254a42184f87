package models

import (
	"time"
)

type UserProfile struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName *string `json:"full_name,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Country  *string `json:"country,omitempty"`
	City     *string `json:"city,omitempty"`

	PreferredCategories []UserPreferredCategory `gorm:"foreignKey:UserProfileID;constraint:OnDelete:CASCADE" json:"preferred_categories,omitempty"`
	SocialLinks         []UserSocialLink        `gorm:"foreignKey:UserProfileID;constraint:OnDelete:CASCADE" json:"social_links,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

type UserPreferredCategory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserProfileID uint      `gorm:"not null;index" json:"user_profile_id"`
	CategoryName  string    `gorm:"not null" json:"category_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserPreferredCategory) TableName() string {
	return "user_preferred_categories"
}

type UserSocialLink struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserProfileID uint      `gorm:"not null;index" json:"user_profile_id"`
	Platform      string    `gorm:"not null" json:"platform"`
	URL           string    `gorm:"not null" json:"url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (UserSocialLink) TableName() string {
	return "user_social_links"
}

type OrganizerProfile struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	UserID            uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	OrganizationName  string  `gorm:"not null" json:"organization_name"`
	Website           *string `json:"website,omitempty"`
	Country           *string `json:"country,omitempty"`
	Verified          bool    `gorm:"default:false" json:"verified"`
	ResponsiblePerson *string `json:"responsible_person,omitempty"`
	VerificationDoc   *string `json:"verification_doc,omitempty"`

	Exhibitions []Exhibition `gorm:"foreignKey:OrganizerID" json:"exhibitions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrganizerProfile) TableName() string {
	return "organizers"
}

type VerificationDocument struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Filename  string         `gorm:"not null" json:"filename"`
	FileURL   string         `gorm:"not null" json:"file_url"`
	Status    ApprovalStatus `gorm:"default:'pending'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (VerificationDocument) TableName() string {
	return "verification_documents"
}
