package models

import (
	"time"
)

type Product struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	CompanyID       uint    `gorm:"not null;index" json:"company_id"`
	Title           string  `gorm:"not null" json:"title"`
	Summary         *string `json:"summary,omitempty"`
	LongDescription *string `json:"long_description,omitempty"`
	VideoPitchURL   *string `json:"video_pitch_url,omitempty"`
	PriceRange      *string `json:"price_range,omitempty"`

	Company   *CompanyProfile   `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Images    []ProductImage    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Brochures []ProductBrochure `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"brochures,omitempty"`
	Tags      []ProductTag      `gorm:"many2many:product_tag_links;constraint:OnDelete:CASCADE" json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

type ProductImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	URL          string    `gorm:"not null" json:"url"`
	OriginalName string    `json:"original_name"`
	IsPrimary    bool      `gorm:"default:false" json:"is_primary"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

type ProductBrochure struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	Title        string    `gorm:"not null" json:"title"`
	OriginalName string    `json:"original_name"`
	URL          string    `gorm:"not null" json:"url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ProductBrochure) TableName() string {
	return "product_brochures"
}

// ProductTag rows are shared across products; removing a tag from a
// product only drops the association row, never the tag itself.
type ProductTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProductTag) TableName() string {
	return "product_tags"
}
