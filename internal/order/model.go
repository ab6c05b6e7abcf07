package order

import "time"

type Status string

const (
	StatusPlaced     Status = "Placed"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentEsewa          PaymentMethod = "eSewa"
)

// Item is a snapshot of a product at order time. Later catalog edits must not
// retroactively alter a placed order.
type Item struct {
	ID        uint
	OrderID   uint
	ProductID uint
	Name      string
	Image     string
	Price     float64
	Quantity  int
	Size      string
	Color     string
}

type ShippingAddress struct {
	Street   string
	City     string
	District string
	Phone    string
}

// PaymentResult records the gateway's view of a settled payment. Written once,
// alongside the is_paid transition, and immutable thereafter.
type PaymentResult struct {
	TransactionID string
	Status        string
	UpdateTime    string
	PayerEmail    string
}

type Order struct {
	ID     uint
	UserID uint
	// UserEmail is joined from the users table on reads.
	UserEmail string

	Items           []Item
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod

	ItemsPrice    float64
	ShippingPrice float64
	TaxPrice      float64
	TotalPrice    float64

	IsPaid        bool
	PaidAt        *time.Time
	PaymentResult *PaymentResult

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ItemInput struct {
	ProductID uint   `json:"product"`
	Quantity  int    `json:"qty"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type CreateOrderInput struct {
	Items           []ItemInput     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
}
