package managers

import (
	"context"
	"errors"
	"testing"
	"time"

	"expodir/internal/models"
)

func TestViewManagerAddAndCount(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewViewManager(db)
	ctx := context.Background()
	user := seedUser(t, db, "viewer@example.com")

	if _, err := m.AddView(ctx, &user.ID, models.ViewProduct, 5, nil, nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Anonymous view, no user attached.
	anon, err := m.AddView(ctx, nil, models.ViewProduct, 5, nil, nil)
	if err != nil {
		t.Fatalf("anonymous add: %v", err)
	}
	if anon.UserID != nil {
		t.Fatalf("anonymous view got a user id")
	}

	count, err := m.Count(ctx, models.ViewProduct, 5)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 views, got %d", count)
	}
}

func TestViewManagerPopularItems(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewViewManager(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := m.AddView(ctx, nil, models.ViewExhibition, 10, nil, nil); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := m.AddView(ctx, nil, models.ViewExhibition, 20, nil, nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Views of another type do not leak into the listing.
	if _, err := m.AddView(ctx, nil, models.ViewProduct, 10, nil, nil); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := m.GetPopularItems(ctx, models.ViewExhibition, 10)
	if err != nil {
		t.Fatalf("popular: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(items))
	}
	if items[0].TargetID != 10 || items[0].ViewCount != 3 {
		t.Fatalf("expected target 10 with 3 views first, got %+v", items[0])
	}
	if items[1].TargetID != 20 || items[1].ViewCount != 1 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestViewManagerViewsByPeriod(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewViewManager(db)
	ctx := context.Background()

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)
	longAgo := now.AddDate(0, 0, -90)
	for _, viewedAt := range []time.Time{now, now, yesterday, longAgo} {
		view := models.UserView{TargetType: models.ViewCompany, TargetID: 3, ViewedAt: viewedAt}
		if err := db.Create(&view).Error; err != nil {
			t.Fatalf("seed view: %v", err)
		}
	}

	buckets, err := m.GetViewsByPeriod(ctx, models.ViewCompany, 3, 30)
	if err != nil {
		t.Fatalf("period: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 daily buckets inside window, got %d", len(buckets))
	}
	// Buckets come back date ascending.
	if buckets[0].Date != yesterday.Format("2006-01-02") || buckets[0].Count != 1 {
		t.Fatalf("unexpected first bucket: %+v", buckets[0])
	}
	if buckets[1].Date != now.Format("2006-01-02") || buckets[1].Count != 2 {
		t.Fatalf("unexpected second bucket: %+v", buckets[1])
	}
}

func TestViewManagerSessions(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewViewManager(db)
	ctx := context.Background()

	session, err := m.StartSession(ctx, nil, nil, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.SessionID == "" {
		t.Fatalf("expected a generated session id")
	}

	if _, err := m.RecordPageView(ctx, session.SessionID, "/exhibitions/1"); err != nil {
		t.Fatalf("page view: %v", err)
	}
	if _, err := m.RecordPageView(ctx, session.SessionID, "/products/2"); err != nil {
		t.Fatalf("page view: %v", err)
	}
	if _, err := m.RecordPageView(ctx, "no-such-session", "/"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown session, got %v", err)
	}

	var fresh models.TrackingSession
	if err := db.Where("session_id = ?", session.SessionID).First(&fresh).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if fresh.PageViewsCount != 2 {
		t.Fatalf("expected page_views_count 2, got %d", fresh.PageViewsCount)
	}
	if fresh.EndTime != nil {
		t.Fatalf("session ended prematurely")
	}

	if err := m.EndSession(ctx, session.SessionID); err != nil {
		t.Fatalf("end: %v", err)
	}
	if err := db.Where("session_id = ?", session.SessionID).First(&fresh).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if fresh.EndTime == nil {
		t.Fatalf("end time not set")
	}
	if err := m.EndSession(ctx, "no-such-session"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestViewManagerRecentViews(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewViewManager(db)
	ctx := context.Background()
	user := seedUser(t, db, "recent@example.com")

	for i := uint(1); i <= 3; i++ {
		view := models.UserView{
			UserID:     &user.ID,
			TargetType: models.ViewProduct,
			TargetID:   i,
			ViewedAt:   time.Now().UTC().Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&view).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	views, err := m.GetRecentViews(ctx, &user.ID, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("limit not applied: %d", len(views))
	}
	if views[0].TargetID != 3 {
		t.Fatalf("expected newest view first, got target %d", views[0].TargetID)
	}
}
