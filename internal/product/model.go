package product

import "time"

type Category string

const (
	CategoryMen         Category = "men"
	CategoryWomen       Category = "women"
	CategoryAccessories Category = "accessories"
)

type Product struct {
	ID          uint
	Name        string
	Description string
	Price       float64
	Image       string
	Category    Category
	Sizes       []string
	Colors      []string
	Stock       int
	Ratings     float64
	NumReviews  int
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListOptions struct {
	Category Category
	Featured *bool
}
