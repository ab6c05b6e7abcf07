package cart

import "time"

// CartItem snapshots name, price and image at the time the product is added,
// so the cart view stays stable while browsing.
type CartItem struct {
	ID        uint
	UserID    uint
	ProductID uint
	Name      string
	Image     string
	Price     float64
	Quantity  int
	Size      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AddToCartParams struct {
	UserID    uint
	ProductID uint
	Quantity  int
	Size      string
}
