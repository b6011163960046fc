package models

import "time"

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// RefSummary is the expanded form of a product reference.
type RefSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// ProductView is a product with its references expanded.
type ProductView struct {
	ID               uint           `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Quantity         int            `json:"quantity"`
	Price            float64        `json:"price"`
	OfferPrice       *float64       `json:"offerPrice"`
	ProCategoryID    *RefSummary    `json:"proCategoryId"`
	ProSubCategoryID *RefSummary    `json:"proSubCategoryId"`
	ProBrandID       *RefSummary    `json:"proBrandId"`
	ProVariantTypeID *RefSummary    `json:"proVariantTypeId"`
	ProVariantID     *RefSummary    `json:"proVariantId"`
	Images           []ProductImage `json:"images"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}
