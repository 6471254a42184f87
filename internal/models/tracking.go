package models

import (
	"time"
)

type UserFavorite struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"not null;uniqueIndex:idx_user_favorite" json:"user_id"`
	FavoriteType FavoriteType `gorm:"not null;uniqueIndex:idx_user_favorite" json:"favorite_type"`
	TargetID     uint         `gorm:"not null;uniqueIndex:idx_user_favorite" json:"target_id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (UserFavorite) TableName() string {
	return "user_favorites"
}

// UserView records a single view event. UserID is nil for anonymous
// visitors.
type UserView struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     *uint      `gorm:"index" json:"user_id,omitempty"`
	TargetType ViewTarget `gorm:"not null;index" json:"target_type"`
	TargetID   uint       `gorm:"not null" json:"target_id"`
	ViewedAt   time.Time  `gorm:"index" json:"viewed_at"`
	UserAgent  *string    `json:"user_agent,omitempty"`
	IPAddress  *string    `json:"ip_address,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (UserView) TableName() string {
	return "user_views"
}

type TrackingSession struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         *uint      `gorm:"index" json:"user_id,omitempty"`
	SessionID      string     `gorm:"uniqueIndex;not null" json:"session_id"`
	DeviceType     *string    `json:"device_type,omitempty"`
	Browser        *string    `json:"browser,omitempty"`
	OS             *string    `json:"os,omitempty"`
	IPAddress      *string    `gorm:"size:45" json:"ip_address,omitempty"`
	Country        *string    `json:"country,omitempty"`
	City           *string    `json:"city,omitempty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	LastActivity   time.Time  `json:"last_activity"`
	PageViewsCount int        `gorm:"default:0" json:"page_views_count"`

	PageViews []TrackingPageView `gorm:"foreignKey:SessionID;references:ID;constraint:OnDelete:CASCADE" json:"page_views,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TrackingSession) TableName() string {
	return "tracking_sessions"
}

type TrackingPageView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"index" json:"session_id"`
	PageURL   string    `json:"page_url"`
	ViewedAt  time.Time `json:"viewed_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TrackingPageView) TableName() string {
	return "tracking_page_views"
}
