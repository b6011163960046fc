package models

import "time"

type Poster struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PosterName string    `gorm:"not null" json:"posterName"`
	ImageURL   string    `json:"imageUrl"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
