package managers

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
)

// filterColumns keeps only the keys listed in allowed. Unknown keys are
// logged and dropped rather than failing the whole update.
func filterColumns(entity string, fields map[string]interface{}, allowed ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		known := false
		for _, a := range allowed {
			if k == a {
				known = true
				break
			}
		}
		if !known {
			log.Printf("%s update: ignoring unknown field %q", entity, k)
			continue
		}
		out[k] = v
	}
	return out
}

// addChild inserts a child row and returns it with its id populated.
// Every company/product child collection follows this one pattern.
func addChild[T any](ctx context.Context, db *gorm.DB, item *T) (*T, error) {
	if err := db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// listChildren returns every child row owned by the given parent column.
func listChildren[T any](ctx context.Context, db *gorm.DB, parentColumn string, parentID uint) ([]T, error) {
	var items []T
	err := db.WithContext(ctx).Where(parentColumn+" = ?", parentID).Find(&items).Error
	return items, err
}

// deleteChild removes a child row by id, reporting ErrNotFound when the
// id does not exist.
func deleteChild[T any](ctx context.Context, db *gorm.DB, id uint) error {
	var zero T
	result := db.WithContext(ctx).Delete(&zero, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// firstOrNil runs the query and maps gorm.ErrRecordNotFound to (nil, nil).
func firstOrNil[T any](tx *gorm.DB) (*T, error) {
	var item T
	if err := tx.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
