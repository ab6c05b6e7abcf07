package api

import (
	"time"

	"siddhartha-be/internal/cart"
	"siddhartha-be/internal/category"
	"siddhartha-be/internal/order"
	"siddhartha-be/internal/product"
)

type productResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Stock       int      `json:"countInStock"`
	Ratings     float64  `json:"ratings"`
	NumReviews  int      `json:"numReviews"`
	IsFeatured  bool     `json:"isFeatured"`
}

func toProductResponse(p product.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    string(p.Category),
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Stock:       p.Stock,
		Ratings:     p.Ratings,
		NumReviews:  p.NumReviews,
		IsFeatured:  p.IsFeatured,
	}
}

func toProductResponses(ps []product.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}

type categoryResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

func toCategoryResponses(cs []category.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, categoryResponse{ID: c.ID, Name: c.Name, Image: c.Image})
	}
	return out
}

type cartItemResponse struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"product"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"qty"`
	Size      string  `json:"size"`
}

func toCartItemResponse(i cart.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:        i.ID,
		ProductID: i.ProductID,
		Name:      i.Name,
		Image:     i.Image,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Size:      i.Size,
	}
}

type orderItemResponse struct {
	ProductID uint    `json:"product"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"qty"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

type shippingAddressResponse struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	District string `json:"district"`
	Phone    string `json:"phone"`
}

type paymentResultResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	UpdateTime    string `json:"updateTime"`
	PayerEmail    string `json:"payerEmail"`
}

type orderResponse struct {
	ID              uint                    `json:"id"`
	UserID          uint                    `json:"user"`
	Items           []orderItemResponse     `json:"orderItems"`
	ShippingAddress shippingAddressResponse `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod"`
	ItemsPrice      float64                 `json:"itemsPrice"`
	ShippingPrice   float64                 `json:"shippingPrice"`
	TaxPrice        float64                 `json:"taxPrice"`
	TotalPrice      float64                 `json:"totalPrice"`
	IsPaid          bool                    `json:"isPaid"`
	PaidAt          *time.Time              `json:"paidAt,omitempty"`
	PaymentResult   *paymentResultResponse  `json:"paymentResult,omitempty"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"createdAt"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Image:     it.Image,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
		})
	}

	resp := orderResponse{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  items,
		ShippingAddress: shippingAddressResponse{
			Street:   o.ShippingAddress.Street,
			City:     o.ShippingAddress.City,
			District: o.ShippingAddress.District,
			Phone:    o.ShippingAddress.Phone,
		},
		PaymentMethod: string(o.PaymentMethod),
		ItemsPrice:    o.ItemsPrice,
		ShippingPrice: o.ShippingPrice,
		TaxPrice:      o.TaxPrice,
		TotalPrice:    o.TotalPrice,
		IsPaid:        o.IsPaid,
		PaidAt:        o.PaidAt,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
	}
	if o.PaymentResult != nil {
		resp.PaymentResult = &paymentResultResponse{
			TransactionID: o.PaymentResult.TransactionID,
			Status:        o.PaymentResult.Status,
			UpdateTime:    o.PaymentResult.UpdateTime,
			PayerEmail:    o.PaymentResult.PayerEmail,
		}
	}
	return resp
}

func toOrderResponses(os []*order.Order) []orderResponse {
	out := make([]orderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, toOrderResponse(o))
	}
	return out
}
