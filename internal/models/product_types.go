package models

import (
	"time"
)

// Product is the model for the 'products' table.
// ImageURLs lives in a JSON column and is marshalled manually in the store layer.
type Product struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Slug        string   `json:"slug" db:"slug"`
	Description string   `json:"description" db:"description"`
	Price       float64  `json:"price" db:"price"`
	ImageURLs   []string `json:"image_urls" db:"-"`
	Category    string   `json:"category" db:"category"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PrimaryImage returns the first image URL, or "" for products without media.
func (p *Product) PrimaryImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}
