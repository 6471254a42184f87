package managers

import (
	"context"
	"errors"
	"testing"
	"time"

	"expodir/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExhibitionManagerCreate(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExhibitionManager(db)
	ctx := context.Background()

	expo, err := m.Create(ctx, nil, &models.Exhibition{
		Name:      "Hannover Messe",
		StartDate: date(2026, time.April, 20),
		EndDate:   date(2026, time.April, 24),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if expo.Status != models.ExpoDraft {
		t.Fatalf("expected draft status, got %q", expo.Status)
	}
	if expo.Year != 2026 {
		t.Fatalf("expected year derived from start date, got %d", expo.Year)
	}

	_, err = m.Create(ctx, nil, &models.Exhibition{
		Name:      "Backwards",
		StartDate: date(2026, time.May, 10),
		EndDate:   date(2026, time.May, 1),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for end before start, got %v", err)
	}
}

func TestExhibitionManagerUpdateDropsInvalidStatus(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExhibitionManager(db)
	ctx := context.Background()

	expo, err := m.Create(ctx, nil, &models.Exhibition{
		Name:      "Light+Building",
		StartDate: date(2026, time.March, 8),
		EndDate:   date(2026, time.March, 13),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := m.Update(ctx, expo.ID, map[string]interface{}{
		"status": "bogus",
		"name":   "Light + Building",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.ExpoDraft {
		t.Fatalf("invalid status should be dropped, got %q", updated.Status)
	}
	if updated.Name != "Light + Building" {
		t.Fatalf("valid field not applied: %q", updated.Name)
	}

	// Every real lifecycle state must be settable.
	for _, status := range []models.ExpoStatus{models.ExpoLive, models.ExpoEnded, models.ExpoDraft} {
		updated, err = m.Update(ctx, expo.ID, map[string]interface{}{"status": string(status)})
		if err != nil {
			t.Fatalf("update status %q: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected %q, got %q", status, updated.Status)
		}
	}
}

func TestExhibitionManagerUpdateDateValidation(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExhibitionManager(db)
	ctx := context.Background()

	expo, err := m.Create(ctx, nil, &models.Exhibition{
		Name:      "IFA",
		StartDate: date(2026, time.September, 4),
		EndDate:   date(2026, time.September, 9),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Moving only the end date before the stored start date must fail.
	_, err = m.Update(ctx, expo.ID, map[string]interface{}{"end_date": date(2026, time.September, 1)})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	// Moving both dates together is fine.
	if _, err := m.Update(ctx, expo.ID, map[string]interface{}{
		"start_date": date(2027, time.September, 3),
		"end_date":   date(2027, time.September, 8),
	}); err != nil {
		t.Fatalf("update both dates: %v", err)
	}
}

func TestExhibitionManagerSearch(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExhibitionManager(db)
	ctx := context.Background()

	category := "trade"
	if _, err := m.Create(ctx, nil, &models.Exhibition{
		Name:          "Auto Expo Berlin",
		StartDate:     date(2026, time.June, 1),
		EndDate:       date(2026, time.June, 5),
		CategoryLevel: &category,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(ctx, nil, &models.Exhibition{
		Name:      "Food Fair Munich",
		StartDate: date(2027, time.June, 1),
		EndDate:   date(2027, time.June, 3),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	byName, err := m.Search(ctx, "auto", "", 0, "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Auto Expo Berlin" {
		t.Fatalf("case-insensitive name search failed: %+v", byName)
	}

	byYear, err := m.Search(ctx, "", "", 2027, "")
	if err != nil {
		t.Fatalf("search by year: %v", err)
	}
	if len(byYear) != 1 || byYear[0].Name != "Food Fair Munich" {
		t.Fatalf("year filter failed: %+v", byYear)
	}

	byCategory, err := m.Search(ctx, "", "trade", 0, "")
	if err != nil {
		t.Fatalf("search by category: %v", err)
	}
	if len(byCategory) != 1 {
		t.Fatalf("category filter failed: %+v", byCategory)
	}

	// Unrecognized status filter is ignored rather than matching nothing.
	all, err := m.Search(ctx, "", "", 0, models.ExpoStatus("bogus"))
	if err != nil {
		t.Fatalf("search with bogus status: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected bogus status to be ignored, got %d rows", len(all))
	}

	if _, err := m.Update(ctx, byName[0].ID, map[string]interface{}{"status": string(models.ExpoLive)}); err != nil {
		t.Fatalf("update status: %v", err)
	}
	live, err := m.Search(ctx, "", "", 0, models.ExpoLive)
	if err != nil {
		t.Fatalf("search by status: %v", err)
	}
	if len(live) != 1 || live[0].Name != "Auto Expo Berlin" {
		t.Fatalf("status filter failed: %+v", live)
	}
}

func TestExhibitionManagerTagDedupe(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExhibitionManager(db)
	ctx := context.Background()

	expo, err := m.Create(ctx, nil, &models.Exhibition{
		Name:      "Gamescom",
		StartDate: date(2026, time.August, 26),
		EndDate:   date(2026, time.August, 30),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := m.AddTag(ctx, expo.ID, "gaming")
	if err != nil {
		t.Fatalf("add tag: %v", err)
	}
	second, err := m.AddTag(ctx, expo.ID, "gaming")
	if err != nil {
		t.Fatalf("add tag again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("duplicate tag created a new row")
	}

	if err := m.RemoveTag(ctx, expo.ID, first.ID); err != nil {
		t.Fatalf("remove tag: %v", err)
	}
	if err := m.RemoveTag(ctx, expo.ID, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExhibitionManagerYearsAndCategories(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExhibitionManager(db)
	ctx := context.Background()

	consumer := "consumer"
	trade := "trade"
	// Spans the year boundary, so it counts for both years.
	if _, err := m.Create(ctx, nil, &models.Exhibition{
		Name:          "Winter Market",
		StartDate:     date(2026, time.December, 28),
		EndDate:       date(2027, time.January, 3),
		CategoryLevel: &consumer,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.Create(ctx, nil, &models.Exhibition{
		Name:          "Spring Fair",
		StartDate:     date(2027, time.March, 1),
		EndDate:       date(2027, time.March, 4),
		CategoryLevel: &trade,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	years, err := m.ListExhibitionYears(ctx)
	if err != nil {
		t.Fatalf("years: %v", err)
	}
	if years[2026] != 1 || years[2027] != 2 {
		t.Fatalf("unexpected year counts: %v", years)
	}

	categories, err := m.ListCategories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 || categories[0] != "consumer" || categories[1] != "trade" {
		t.Fatalf("unexpected categories: %v", categories)
	}
}

func TestExhibitionManagerDeleteCascades(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExhibitionManager(db)
	registrations := NewExpoCompanyManager(db)
	ctx := context.Background()

	expo, err := m.Create(ctx, nil, &models.Exhibition{
		Name:      "Doomed Expo",
		StartDate: date(2026, time.July, 1),
		EndDate:   date(2026, time.July, 2),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := m.AddTag(ctx, expo.ID, "short-lived"); err != nil {
		t.Fatalf("add tag: %v", err)
	}
	if _, err := m.AddMedia(ctx, expo.ID, "/uploads/hall.jpg"); err != nil {
		t.Fatalf("add media: %v", err)
	}
	user := seedUser(t, db, "exhibitor@example.com")
	company := seedCompany(t, db, user.ID, "Exhibitor Ltd")
	if _, err := registrations.RegisterCompany(ctx, expo.ID, company.ID, nil, nil, ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := m.Delete(ctx, expo.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var tags, media, regs int64
	db.Model(&models.ExhibitionTag{}).Count(&tags)
	db.Model(&models.ExhibitionMedia{}).Count(&media)
	db.Model(&models.ExpoCompany{}).Count(&regs)
	if tags != 0 || media != 0 || regs != 0 {
		t.Fatalf("cascade incomplete: tags=%d media=%d registrations=%d", tags, media, regs)
	}

	if err := m.Delete(ctx, expo.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
