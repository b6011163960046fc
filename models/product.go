package models

import "time"

// MaxImageSlots is the number of positional image slots a product has.
const MaxImageSlots = 5

type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	Quantity      int            `json:"quantity"`
	Price         float64        `json:"price"`
	OfferPrice    *float64       `json:"offerPrice"`
	CategoryID    uint           `gorm:"index;not null" json:"proCategoryId"`
	SubCategoryID uint           `gorm:"index;not null" json:"proSubCategoryId"`
	BrandID       *uint          `gorm:"index" json:"proBrandId"`
	VariantTypeID *uint          `gorm:"index" json:"proVariantTypeId"`
	VariantID     *uint          `gorm:"index" json:"proVariantId"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"-"`
	SubCategory   *SubCategory   `gorm:"foreignKey:SubCategoryID" json:"-"`
	Brand         *Brand         `gorm:"foreignKey:BrandID" json:"-"`
	VariantType   *VariantType   `gorm:"foreignKey:VariantTypeID" json:"-"`
	Variant       *Variant       `gorm:"foreignKey:VariantID" json:"-"`
	Images        []ProductImage `gorm:"foreignKey:ProductID" json:"images"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ProductImage is one positional image slot. A product has at most one
// row per slot.
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	ProductID uint      `gorm:"uniqueIndex:idx_product_slot;not null" json:"-"`
	Slot      int       `gorm:"uniqueIndex:idx_product_slot;not null" json:"image"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
