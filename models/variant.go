package models

import "time"

type VariantType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name" form:"name" validate:"required"`
	Type      string    `gorm:"not null" json:"type" form:"type" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Variant struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Name          string       `gorm:"not null" json:"name" form:"name" validate:"required"`
	VariantTypeID uint         `gorm:"index;not null" json:"variantTypeId" form:"variantTypeId" validate:"required"`
	VariantType   *VariantType `gorm:"foreignKey:VariantTypeID" json:"variantType,omitempty"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}
