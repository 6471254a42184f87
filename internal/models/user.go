package models

import (
	"time"
)

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Username    string     `gorm:"size:100" json:"username"`
	Email       *string    `gorm:"uniqueIndex" json:"email,omitempty"`
	MobilePhone *string    `gorm:"uniqueIndex" json:"mobile_phone,omitempty"`
	Password    string     `gorm:"not null" json:"-"`
	Role        Role       `gorm:"not null;default:'visitor'" json:"role"`
	IsActive    bool       `gorm:"default:false" json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`

	Profile          *UserProfile      `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	CompanyProfile   *CompanyProfile   `gorm:"foreignKey:UserID" json:"company_profile,omitempty"`
	OrganizerProfile *OrganizerProfile `gorm:"foreignKey:UserID" json:"organizer_profile,omitempty"`
	Tokens           []Token           `gorm:"foreignKey:UserID" json:"-"`
	Sessions         []TrackingSession `gorm:"foreignKey:UserID" json:"-"`
	Favorites        []UserFavorite    `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type Token struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	TokenType TokenType `gorm:"not null" json:"token_type"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsRevoked bool      `gorm:"default:false" json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Token) TableName() string {
	return "tokens"
}
