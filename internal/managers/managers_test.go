package managers

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"expodir/config"
	"expodir/internal/models"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.MigrateModels(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	u := &models.User{Username: email, Email: &email, Password: "hash", Role: models.RoleVisitor}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCompany(t *testing.T, db *gorm.DB, userID uint, name string) *models.CompanyProfile {
	c := &models.CompanyProfile{UserID: userID, CompanyName: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return c
}
