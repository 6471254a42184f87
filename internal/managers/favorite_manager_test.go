package managers

import (
	"context"
	"testing"

	"expodir/internal/models"
)

func TestFavoriteManagerIdempotentAdd(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewFavoriteManager(db)
	ctx := context.Background()
	user := seedUser(t, db, "fan@example.com")

	first, err := m.AddFavorite(ctx, user.ID, models.FavoriteProduct, 42)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := m.AddFavorite(ctx, user.ID, models.FavoriteProduct, 42)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("duplicate favorite created a new row")
	}

	var count int64
	db.Model(&models.UserFavorite{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestFavoriteManagerRemove(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewFavoriteManager(db)
	ctx := context.Background()
	user := seedUser(t, db, "remover@example.com")

	if _, err := m.AddFavorite(ctx, user.ID, models.FavoriteCompany, 7); err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, err := m.RemoveFavorite(ctx, user.ID, models.FavoriteCompany, 7)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !removed {
		t.Fatalf("expected removed=true")
	}

	removed, err = m.RemoveFavorite(ctx, user.ID, models.FavoriteCompany, 7)
	if err != nil {
		t.Fatalf("remove missing: %v", err)
	}
	if removed {
		t.Fatalf("expected removed=false for missing favorite")
	}
}

func TestFavoriteManagerListAndCount(t *testing.T) {
	db := setupTestDB(t, t.Name())
	m := NewFavoriteManager(db)
	ctx := context.Background()
	u1 := seedUser(t, db, "lister@example.com")
	u2 := seedUser(t, db, "other@example.com")

	if _, err := m.AddFavorite(ctx, u1.ID, models.FavoriteProduct, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := m.AddFavorite(ctx, u1.ID, models.FavoriteExhibition, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := m.AddFavorite(ctx, u2.ID, models.FavoriteProduct, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	all, err := m.GetUserFavorites(ctx, u1.ID, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(all))
	}

	onlyProducts, err := m.GetUserFavorites(ctx, u1.ID, models.FavoriteProduct)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(onlyProducts) != 1 || onlyProducts[0].TargetID != 1 {
		t.Fatalf("type filter failed: %+v", onlyProducts)
	}

	count, err := m.CountFavorites(ctx, models.FavoriteProduct, 1)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2 across users, got %d", count)
	}
}
