package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"expodir/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := MigrateModels(db); err != nil {
		return nil, err
	}

	return db, nil
}

// MigrateModels creates the schema from the entity definitions. Shared
// with tests, which run it against sqlite.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.UserProfile{},
		&models.UserPreferredCategory{},
		&models.UserSocialLink{},
		&models.OrganizerProfile{},
		&models.VerificationDocument{},
		&models.CompanyProfile{},
		&models.CompanyDocument{},
		&models.CompanyWebsite{},
		&models.CompanyAddress{},
		&models.CompanyPhone{},
		&models.CompanyTag{},
		&models.CompanyVideo{},
		&models.CompanyBrochure{},
		&models.CompanyKnowledgeFile{},
		&models.Exhibition{},
		&models.ExhibitionTag{},
		&models.ExhibitionMedia{},
		&models.ExpoCompany{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductBrochure{},
		&models.ProductTag{},
		&models.UserFavorite{},
		&models.UserView{},
		&models.TrackingSession{},
		&models.TrackingPageView{},
	)
}
