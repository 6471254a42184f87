package managers

import (
	"context"
	"errors"
	"testing"

	"expodir/internal/models"
)

func TestCompanyManagerOnePerUser(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewCompanyManager(db)
	ctx := context.Background()
	user := seedUser(t, db, "owner@example.com")

	company, err := m.Create(ctx, user.ID, &models.CompanyProfile{CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if company.ApprovalStatus != models.ApprovalPending {
		t.Fatalf("expected pending status, got %q", company.ApprovalStatus)
	}

	if _, err := m.Create(ctx, user.ID, &models.CompanyProfile{CompanyName: "Second"}); err == nil {
		t.Fatalf("expected second company for same user to be rejected")
	}
}

func TestCompanyManagerGetByUserID(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewCompanyManager(db)
	ctx := context.Background()
	user := seedUser(t, db, "lookup@example.com")
	seedCompany(t, db, user.ID, "Lookup GmbH")

	company, err := m.GetByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if company == nil || company.CompanyName != "Lookup GmbH" {
		t.Fatalf("unexpected company: %+v", company)
	}

	missing, err := m.GetByUserID(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown user")
	}
}

func TestCompanyManagerUpdate(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewCompanyManager(db)
	ctx := context.Background()
	user := seedUser(t, db, "update@example.com")
	company := seedCompany(t, db, user.ID, "Before")

	updated, err := m.Update(ctx, company.ID, map[string]interface{}{
		"company_name":    "After",
		"approval_status": string(models.ApprovalApproved),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CompanyName != "After" {
		t.Fatalf("expected name After, got %q", updated.CompanyName)
	}
	if updated.ApprovalStatus != models.ApprovalApproved {
		t.Fatalf("expected approved, got %q", updated.ApprovalStatus)
	}

	if _, err := m.Update(ctx, 9999, map[string]interface{}{"company_name": "X"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompanyManagerStatusLists(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewCompanyManager(db)
	ctx := context.Background()

	u1 := seedUser(t, db, "pending@example.com")
	u2 := seedUser(t, db, "approved@example.com")
	seedCompany(t, db, u1.ID, "Pending Inc")
	approved := seedCompany(t, db, u2.ID, "Approved Inc")
	if _, err := m.Update(ctx, approved.ID, map[string]interface{}{"approval_status": string(models.ApprovalApproved)}); err != nil {
		t.Fatalf("approve: %v", err)
	}

	pending, err := m.GetPendingCompanies(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 || pending[0].CompanyName != "Pending Inc" {
		t.Fatalf("unexpected pending list: %+v", pending)
	}

	approvedList, err := m.GetApprovedCompanies(ctx)
	if err != nil {
		t.Fatalf("approved: %v", err)
	}
	if len(approvedList) != 1 || approvedList[0].CompanyName != "Approved Inc" {
		t.Fatalf("unexpected approved list: %+v", approvedList)
	}
}

func TestCompanyManagerChildCollections(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewCompanyManager(db)
	ctx := context.Background()
	user := seedUser(t, db, "children@example.com")
	company := seedCompany(t, db, user.ID, "Children Corp")

	if _, err := m.AddDocument(ctx, company.ID, "catalog", "/uploads/catalog.pdf"); err != nil {
		t.Fatalf("add document: %v", err)
	}
	website, err := m.AddWebsite(ctx, company.ID, "main", "https://children.example.com")
	if err != nil {
		t.Fatalf("add website: %v", err)
	}
	if _, err := m.AddAddress(ctx, company.ID, "HQ", "1 Main St"); err != nil {
		t.Fatalf("add address: %v", err)
	}
	if _, err := m.AddPhone(ctx, company.ID, "sales", "+49 30 123456"); err != nil {
		t.Fatalf("add phone: %v", err)
	}
	if _, err := m.AddTag(ctx, company.ID, "machinery"); err != nil {
		t.Fatalf("add tag: %v", err)
	}
	if _, err := m.AddVideo(ctx, company.ID, "intro", "intro.mp4", "/uploads/intro.mp4"); err != nil {
		t.Fatalf("add video: %v", err)
	}
	if _, err := m.AddBrochure(ctx, company.ID, "flyer", "flyer.pdf", "/uploads/flyer.pdf"); err != nil {
		t.Fatalf("add brochure: %v", err)
	}
	if _, err := m.AddKnowledgeFile(ctx, company.ID, "whitepaper", "/uploads/wp.pdf"); err != nil {
		t.Fatalf("add knowledge file: %v", err)
	}

	websites, err := m.ListWebsites(ctx, company.ID)
	if err != nil {
		t.Fatalf("list websites: %v", err)
	}
	if len(websites) != 1 {
		t.Fatalf("expected 1 website, got %d", len(websites))
	}

	if err := m.DeleteWebsite(ctx, website.ID); err != nil {
		t.Fatalf("delete website: %v", err)
	}
	if err := m.DeleteWebsite(ctx, website.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	full, err := m.GetByID(ctx, company.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(full.Documents) != 1 || len(full.Addresses) != 1 || len(full.Phones) != 1 ||
		len(full.Tags) != 1 || len(full.Videos) != 1 || len(full.Brochures) != 1 ||
		len(full.KnowledgeFiles) != 1 || len(full.Websites) != 0 {
		t.Fatalf("unexpected preloaded children: %+v", full)
	}
}

func TestCompanyManagerDeleteCascades(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewCompanyManager(db)
	products := NewProductManager(db)
	ctx := context.Background()
	user := seedUser(t, db, "cascade@example.com")
	company := seedCompany(t, db, user.ID, "Cascade AG")

	if _, err := m.AddTag(ctx, company.ID, "doomed"); err != nil {
		t.Fatalf("add tag: %v", err)
	}
	product, err := products.Create(ctx, company.ID, &models.Product{Title: "Widget"}, []string{"steel"})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := products.AddImage(ctx, product.ID, "/uploads/w.png", "w.png", false); err != nil {
		t.Fatalf("add image: %v", err)
	}

	if err := m.Delete(ctx, company.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var companyCount, tagCount, productCount, imageCount int64
	db.Model(&models.CompanyProfile{}).Count(&companyCount)
	db.Model(&models.CompanyTag{}).Count(&tagCount)
	db.Model(&models.Product{}).Count(&productCount)
	db.Model(&models.ProductImage{}).Count(&imageCount)
	if companyCount != 0 || tagCount != 0 || productCount != 0 || imageCount != 0 {
		t.Fatalf("cascade incomplete: companies=%d tags=%d products=%d images=%d",
			companyCount, tagCount, productCount, imageCount)
	}

	// The shared product tag vocabulary survives company deletion.
	var sharedTags int64
	db.Model(&models.ProductTag{}).Count(&sharedTags)
	if sharedTags != 1 {
		t.Fatalf("expected shared tag row to survive, got %d", sharedTags)
	}

	if err := m.Delete(ctx, company.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
