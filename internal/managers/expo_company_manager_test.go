package managers

import (
	"context"
	"errors"
	"testing"
	"time"

	"expodir/internal/models"
)

func seedExpo(t *testing.T, m *ExhibitionManager, name string) *models.Exhibition {
	expo, err := m.Create(context.Background(), nil, &models.Exhibition{
		Name:      name,
		StartDate: date(2026, time.October, 1),
		EndDate:   date(2026, time.October, 5),
	})
	if err != nil {
		t.Fatalf("seed exhibition: %v", err)
	}
	return expo
}

func TestExpoCompanyManagerRegister(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExpoCompanyManager(db)
	expos := NewExhibitionManager(db)
	ctx := context.Background()

	expo := seedExpo(t, expos, "Register Expo")
	user := seedUser(t, db, "register@example.com")
	company := seedCompany(t, db, user.ID, "Register Co")

	booth := "A-12"
	registration, err := m.RegisterCompany(ctx, expo.ID, company.ID, &booth, nil, "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registration.VipLevel != models.VipNormal {
		t.Fatalf("expected normal vip level default, got %q", registration.VipLevel)
	}
	if registration.BoothNumber == nil || *registration.BoothNumber != "A-12" {
		t.Fatalf("booth number not stored: %v", registration.BoothNumber)
	}

	if _, err := m.RegisterCompany(ctx, expo.ID, company.ID, nil, nil, ""); err == nil {
		t.Fatalf("expected duplicate registration to be rejected")
	}
}

func TestExpoCompanyManagerRegisterMissingParents(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExpoCompanyManager(db)
	expos := NewExhibitionManager(db)
	ctx := context.Background()

	expo := seedExpo(t, expos, "Parent Expo")
	user := seedUser(t, db, "parent@example.com")
	company := seedCompany(t, db, user.ID, "Parent Co")

	if _, err := m.RegisterCompany(ctx, 9999, company.ID, nil, nil, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing exhibition, got %v", err)
	}
	if _, err := m.RegisterCompany(ctx, expo.ID, 9999, nil, nil, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing company, got %v", err)
	}

	var count int64
	db.Model(&models.ExpoCompany{}).Count(&count)
	if count != 0 {
		t.Fatalf("failed registrations left %d rows behind", count)
	}
}

func TestExpoCompanyManagerUpdateBoothInfo(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExpoCompanyManager(db)
	expos := NewExhibitionManager(db)
	ctx := context.Background()

	expo := seedExpo(t, expos, "Booth Expo")
	user := seedUser(t, db, "booth@example.com")
	company := seedCompany(t, db, user.ID, "Booth Co")

	booth := "B-7"
	hall := "Hall 3"
	registration, err := m.RegisterCompany(ctx, expo.ID, company.ID, &booth, &hall, models.VipGold)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Nil fields stay untouched.
	newHall := "Hall 5"
	updated, err := m.UpdateBoothInfo(ctx, registration.ID, nil, &newHall, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.BoothNumber == nil || *updated.BoothNumber != "B-7" {
		t.Fatalf("booth number changed on nil input: %v", updated.BoothNumber)
	}
	if updated.HallName == nil || *updated.HallName != "Hall 5" {
		t.Fatalf("hall name not updated: %v", updated.HallName)
	}
	if updated.VipLevel != models.VipGold {
		t.Fatalf("vip level changed on nil input: %q", updated.VipLevel)
	}

	// A non-nil empty string is a real assignment, not "unchanged".
	empty := ""
	cleared, err := m.UpdateBoothInfo(ctx, registration.ID, &empty, nil, nil)
	if err != nil {
		t.Fatalf("clear booth: %v", err)
	}
	if cleared.BoothNumber == nil || *cleared.BoothNumber != "" {
		t.Fatalf("expected empty booth number, got %v", cleared.BoothNumber)
	}

	if _, err := m.UpdateBoothInfo(ctx, 9999, nil, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExpoCompanyManagerListWithDetails(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExpoCompanyManager(db)
	expos := NewExhibitionManager(db)
	companies := NewCompanyManager(db)
	ctx := context.Background()

	expo := seedExpo(t, expos, "Detail Expo")
	u1 := seedUser(t, db, "logo@example.com")
	u2 := seedUser(t, db, "nologo@example.com")
	withLogo := seedCompany(t, db, u1.ID, "Logo Co")
	if _, err := companies.Update(ctx, withLogo.ID, map[string]interface{}{"logo": "/uploads/logo.png"}); err != nil {
		t.Fatalf("set logo: %v", err)
	}
	noLogo := seedCompany(t, db, u2.ID, "Plain Co")

	if _, err := m.RegisterCompany(ctx, expo.ID, withLogo.ID, nil, nil, models.VipGold); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := m.RegisterCompany(ctx, expo.ID, noLogo.ID, nil, nil, ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	details, err := m.ListCompaniesWithDetails(ctx, expo.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 exhibitors, got %d", len(details))
	}
	byName := make(map[string]ExhibitorDetail)
	for _, d := range details {
		byName[d.CompanyName] = d
	}
	if byName["Logo Co"].Logo != "/uploads/logo.png" {
		t.Fatalf("expected uploaded logo, got %q", byName["Logo Co"].Logo)
	}
	if byName["Plain Co"].Logo != DefaultCompanyLogo {
		t.Fatalf("expected default logo fallback, got %q", byName["Plain Co"].Logo)
	}
	if byName["Logo Co"].VipLevel != models.VipGold {
		t.Fatalf("expected gold vip level, got %q", byName["Logo Co"].VipLevel)
	}
}

func TestExpoCompanyManagerHallFilter(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewExpoCompanyManager(db)
	expos := NewExhibitionManager(db)
	ctx := context.Background()

	expo := seedExpo(t, expos, "Hall Expo")
	u1 := seedUser(t, db, "hall1@example.com")
	u2 := seedUser(t, db, "hall2@example.com")
	c1 := seedCompany(t, db, u1.ID, "Hall One Co")
	c2 := seedCompany(t, db, u2.ID, "Hall Two Co")

	hall1, hall2 := "Hall 1", "Hall 2"
	if _, err := m.RegisterCompany(ctx, expo.ID, c1.ID, nil, &hall1, ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := m.RegisterCompany(ctx, expo.ID, c2.ID, nil, &hall2, ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	inHall, err := m.GetCompaniesInHall(ctx, expo.ID, "Hall 1")
	if err != nil {
		t.Fatalf("hall filter: %v", err)
	}
	if len(inHall) != 1 || inHall[0].CompanyID != c1.ID {
		t.Fatalf("unexpected hall result: %+v", inHall)
	}
}
