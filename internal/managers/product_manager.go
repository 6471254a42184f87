package managers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"expodir/internal/models"
)

// ProductManager owns products with their images, brochures and the
// shared tag vocabulary.
type ProductManager struct {
	db *gorm.DB
}

func NewProductManager(db *gorm.DB) *ProductManager {
	return &ProductManager{db: db}
}

// Create persists the product together with any supplied tags, images
// and brochures in one transaction. Tag names are reused-or-created
// against the shared vocabulary.
func (m *ProductManager) Create(ctx context.Context, companyID uint, product *models.Product, tags []string) (*models.Product, error) {
	product.CompanyID = companyID
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(product).Error; err != nil {
			return err
		}
		for _, name := range tags {
			if err := attachTagTx(tx, product, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m.GetByID(ctx, product.ID)
}

func (m *ProductManager) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return firstOrNil[models.Product](
		m.db.WithContext(ctx).
			Preload("Images").
			Preload("Brochures").
			Preload("Tags").
			Where("id = ?", id))
}

func (m *ProductManager) GetByCompany(ctx context.Context, companyID uint) ([]models.Product, error) {
	var products []models.Product
	err := m.db.WithContext(ctx).
		Preload("Images").
		Where("company_id = ?", companyID).
		Find(&products).Error
	return products, err
}

// Update applies a partial field set to the scalar columns. When tags is
// non-nil the whole association set is replaced by it; the tag rows
// themselves are kept for other products. Nil tags leaves associations
// untouched.
func (m *ProductManager) Update(ctx context.Context, id uint, fields map[string]interface{}, tags []string) (*models.Product, error) {
	fields = filterColumns("product", fields,
		"title", "summary", "long_description", "video_pitch_url", "price_range")

	product, err := firstOrNil[models.Product](m.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(product).Updates(fields).Error; err != nil {
				return err
			}
		}
		if tags != nil {
			if err := tx.Model(product).Association("Tags").Clear(); err != nil {
				return err
			}
			for _, name := range tags {
				if err := attachTagTx(tx, product, name); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m.GetByID(ctx, id)
}

// Delete removes the product and cascades its images and brochures. Tag
// associations are cleared; shared tag rows stay.
func (m *ProductManager) Delete(ctx context.Context, id uint) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return deleteProductTx(tx, &product)
	})
}

func deleteProductTx(tx *gorm.DB, product *models.Product) error {
	if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductBrochure{}).Error; err != nil {
		return err
	}
	if err := tx.Model(product).Association("Tags").Clear(); err != nil {
		return err
	}
	return tx.Delete(product).Error
}

// AddImage appends an image. Marking it primary first clears the primary
// flag on every other image of the product, keeping at most one primary.
func (m *ProductManager) AddImage(ctx context.Context, productID uint, url, originalName string, isPrimary bool) (*models.ProductImage, error) {
	image := &models.ProductImage{
		ProductID:    productID,
		URL:          url,
		OriginalName: originalName,
		IsPrimary:    isPrimary,
	}
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isPrimary {
			if err := tx.Model(&models.ProductImage{}).
				Where("product_id = ?", productID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(image).Error
	})
	if err != nil {
		return nil, err
	}
	return image, nil
}

func (m *ProductManager) RemoveImage(ctx context.Context, imageID uint) error {
	return deleteChild[models.ProductImage](ctx, m.db, imageID)
}

func (m *ProductManager) ListImages(ctx context.Context, productID uint) ([]models.ProductImage, error) {
	return listChildren[models.ProductImage](ctx, m.db, "product_id", productID)
}

func (m *ProductManager) AddBrochure(ctx context.Context, productID uint, title, originalName, url string) (*models.ProductBrochure, error) {
	return addChild(ctx, m.db, &models.ProductBrochure{
		ProductID:    productID,
		Title:        title,
		OriginalName: originalName,
		URL:          url,
	})
}

func (m *ProductManager) RemoveBrochure(ctx context.Context, brochureID uint) error {
	return deleteChild[models.ProductBrochure](ctx, m.db, brochureID)
}

func (m *ProductManager) ListBrochures(ctx context.Context, productID uint) ([]models.ProductBrochure, error) {
	return listChildren[models.ProductBrochure](ctx, m.db, "product_id", productID)
}

// AddTag links a tag by name, creating the vocabulary row when it does
// not exist yet. Adding an already linked tag is a no-op.
func (m *ProductManager) AddTag(ctx context.Context, productID uint, tagName string) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return attachTagTx(tx, &product, tagName)
	})
}

// RemoveTag unlinks a tag from the product. The shared tag row is never
// deleted.
func (m *ProductManager) RemoveTag(ctx context.Context, productID uint, tagName string) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var tag models.ProductTag
		if err := tx.Where("name = ?", tagName).First(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Model(&product).Association("Tags").Delete(&tag)
	})
}

func (m *ProductManager) ListTags(ctx context.Context, productID uint) ([]models.ProductTag, error) {
	product, err := m.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product.Tags, nil
}

// Search combines a case-insensitive substring match over title, summary
// and long description with an optional company filter, newest first.
func (m *ProductManager) Search(ctx context.Context, query string, companyID uint, limit, offset int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	q := m.db.WithContext(ctx).Model(&models.Product{}).Preload("Images")
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(summary) LIKE LOWER(?) OR LOWER(long_description) LIKE LOWER(?)",
			pattern, pattern, pattern)
	}
	if companyID != 0 {
		q = q.Where("company_id = ?", companyID)
	}

	var products []models.Product
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

// attachTagTx reuses-or-creates the named tag and links it to the
// product unless already linked.
func attachTagTx(tx *gorm.DB, product *models.Product, tagName string) error {
	var tag models.ProductTag
	if err := tx.Where(models.ProductTag{Name: tagName}).FirstOrCreate(&tag).Error; err != nil {
		return err
	}
	var count int64
	if err := tx.Table("product_tag_links").
		Where("product_id = ? AND product_tag_id = ?", product.ID, tag.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Model(product).Association("Tags").Append(&tag)
}
