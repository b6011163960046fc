package models

import "time"

type Brand struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Name          string       `gorm:"not null" json:"name" form:"name" validate:"required"`
	SubCategoryID uint         `gorm:"index;not null" json:"subcategoryId" form:"subcategoryId" validate:"required"`
	SubCategory   *SubCategory `gorm:"foreignKey:SubCategoryID" json:"subcategory,omitempty"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}
