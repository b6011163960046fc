package models

import "time"

type SubCategory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name" form:"name" validate:"required"`
	CategoryID uint      `gorm:"index;not null" json:"categoryId" form:"categoryId" validate:"required"` // Foreign key to Category
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`                        // Belongs to one Category
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
