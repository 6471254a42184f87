package managers

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expodir/internal/models"
)

// ViewManager records view events and aggregates them for popularity
// and trend listings. It also owns tracking sessions.
type ViewManager struct {
	db *gorm.DB
}

func NewViewManager(db *gorm.DB) *ViewManager {
	return &ViewManager{db: db}
}

// AddView records one view event. userID is nil for anonymous visitors.
func (m *ViewManager) AddView(ctx context.Context, userID *uint, targetType models.ViewTarget, targetID uint, ip, userAgent *string) (*models.UserView, error) {
	view := &models.UserView{
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
		ViewedAt:   time.Now().UTC(),
		IPAddress:  ip,
		UserAgent:  userAgent,
	}
	if err := m.db.WithContext(ctx).Create(view).Error; err != nil {
		return nil, err
	}
	return view, nil
}

func (m *ViewManager) Count(ctx context.Context, targetType models.ViewTarget, targetID uint) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).Model(&models.UserView{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

func (m *ViewManager) GetRecentViews(ctx context.Context, userID *uint, limit int) ([]models.UserView, error) {
	if limit <= 0 {
		limit = 20
	}
	q := m.db.WithContext(ctx).Order("viewed_at DESC").Limit(limit)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var views []models.UserView
	err := q.Find(&views).Error
	return views, err
}

// PopularItem is one row of the most-viewed listing.
type PopularItem struct {
	TargetID  uint  `json:"target_id"`
	ViewCount int64 `json:"view_count"`
}

// GetPopularItems groups views by target and returns the most viewed
// targets of a type, descending.
func (m *ViewManager) GetPopularItems(ctx context.Context, targetType models.ViewTarget, limit int) ([]PopularItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var items []PopularItem
	err := m.db.WithContext(ctx).Model(&models.UserView{}).
		Select("target_id, COUNT(id) AS view_count").
		Where("target_type = ?", targetType).
		Group("target_id").
		Order("view_count DESC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}

// DailyViews is one day's bucket in a trend window.
type DailyViews struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// GetViewsByPeriod buckets views of a target per day over the trailing
// window. Bucketing happens in Go so the SQL stays portable across
// postgres and the sqlite test driver.
func (m *ViewManager) GetViewsByPeriod(ctx context.Context, targetType models.ViewTarget, targetID uint, days int) ([]DailyViews, error) {
	if days <= 0 {
		days = 30
	}
	start := time.Now().UTC().AddDate(0, 0, -days)

	var views []models.UserView
	err := m.db.WithContext(ctx).
		Select("viewed_at").
		Where("target_type = ? AND target_id = ? AND viewed_at >= ?", targetType, targetID, start).
		Find(&views).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]int64)
	for _, v := range views {
		buckets[v.ViewedAt.UTC().Format("2006-01-02")]++
	}
	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]DailyViews, 0, len(dates))
	for _, d := range dates {
		out = append(out, DailyViews{Date: d, Count: buckets[d]})
	}
	return out, nil
}

// StartSession opens a tracking session and returns it with a fresh
// session id.
func (m *ViewManager) StartSession(ctx context.Context, userID *uint, ip, userAgent *string) (*models.TrackingSession, error) {
	now := time.Now().UTC()
	session := &models.TrackingSession{
		UserID:       userID,
		SessionID:    uuid.New().String(),
		IPAddress:    ip,
		Browser:      userAgent,
		StartTime:    now,
		LastActivity: now,
	}
	if err := m.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// RecordPageView appends a page view to a session and bumps its
// counters atomically.
func (m *ViewManager) RecordPageView(ctx context.Context, sessionID string, pageURL string) (*models.TrackingPageView, error) {
	var pageView *models.TrackingPageView
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.TrackingSession
		if err := tx.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		pageView = &models.TrackingPageView{
			SessionID: session.ID,
			PageURL:   pageURL,
			ViewedAt:  time.Now().UTC(),
		}
		if err := tx.Create(pageView).Error; err != nil {
			return err
		}
		return tx.Model(&session).Updates(map[string]interface{}{
			"page_views_count": gorm.Expr("page_views_count + 1"),
			"last_activity":    time.Now().UTC(),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return pageView, nil
}

func (m *ViewManager) EndSession(ctx context.Context, sessionID string) error {
	now := time.Now().UTC()
	result := m.db.WithContext(ctx).Model(&models.TrackingSession{}).
		Where("session_id = ?", sessionID).
		Update("end_time", now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
