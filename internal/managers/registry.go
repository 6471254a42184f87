package managers

import (
	"context"

	"gorm.io/gorm"

	"expodir/internal/models"
)

// Registry is the composition root for the manager layer: one instance
// of every manager sharing a single database handle. The process builds
// exactly one at startup and passes it down to the HTTP layer; tests
// build throwaway ones against their own databases.
type Registry struct {
	db *gorm.DB

	Users         *UserManager
	Profiles      *UserProfileManager
	Organizers    *OrganizerManager
	Companies     *CompanyManager
	Exhibitions   *ExhibitionManager
	ExpoCompanies *ExpoCompanyManager
	Products      *ProductManager
	Favorites     *FavoriteManager
	Views         *ViewManager
	Tokens        *TokenManager
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		db:            db,
		Users:         NewUserManager(db),
		Profiles:      NewUserProfileManager(db),
		Organizers:    NewOrganizerManager(db),
		Companies:     NewCompanyManager(db),
		Exhibitions:   NewExhibitionManager(db),
		ExpoCompanies: NewExpoCompanyManager(db),
		Products:      NewProductManager(db),
		Favorites:     NewFavoriteManager(db),
		Views:         NewViewManager(db),
		Tokens:        NewTokenManager(db),
	}
}

// DB exposes the underlying handle for boundary concerns like health
// checks.
func (r *Registry) DB() *gorm.DB {
	return r.db
}

// Stats reports row counts per aggregate root.
func (r *Registry) Stats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64)
	for name, model := range map[string]interface{}{
		"total_users":       &models.User{},
		"total_companies":   &models.CompanyProfile{},
		"total_exhibitions": &models.Exhibition{},
		"total_products":    &models.Product{},
		"total_views":       &models.UserView{},
	} {
		var count int64
		if err := r.db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
			return nil, err
		}
		stats[name] = count
	}
	return stats, nil
}
