package models

import (
	"slices"
	"time"
)

// SeoSettings is optional search metadata attached to products and categories.
type SeoSettings struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
}

// Review is immutable once appended to a product.
type Review struct {
	ID       ReviewID  `json:"id"`
	UserID   UserID    `json:"userId"`
	UserName string    `json:"userName"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// Product.Category holds a category name, not an id.
type Product struct {
	ID          ProductID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    string       `json:"category"`
	ImageURL    string       `json:"imageUrl"`
	Sizes       []string     `json:"sizes"`
	Colors      []string     `json:"colors"`
	Stock       int          `json:"stock"`
	Rating      float64      `json:"rating"`
	Reviews     []Review     `json:"reviews"`
	Seo         *SeoSettings `json:"seo,omitempty"`
}

// Clone returns a deep copy so callers never alias store-owned slices.
func (p Product) Clone() Product {
	out := p
	out.Sizes = slices.Clone(p.Sizes)
	out.Colors = slices.Clone(p.Colors)
	out.Reviews = slices.Clone(p.Reviews)
	if p.Seo != nil {
		seo := *p.Seo
		out.Seo = &seo
	}
	return out
}

// Category.Name is the join key used by Product.Category.
type Category struct {
	ID   CategoryID   `json:"id"`
	Name string       `json:"name"`
	Seo  *SeoSettings `json:"seo,omitempty"`
}

func (c Category) Clone() Category {
	out := c
	if c.Seo != nil {
		seo := *c.Seo
		out.Seo = &seo
	}
	return out
}
