package order

import (
	"context"
	"errors"
	"strings"

	"siddhartha-be/internal/config"
	"siddhartha-be/internal/logger"
	"siddhartha-be/internal/metrics"
	"siddhartha-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, userID uint, input CreateOrderInput) (*Order, error)
	GetOrder(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error)
	ListUserOrders(ctx context.Context, userID uint) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status Status) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
	pricing     config.PricingConfig
}

func NewService(repo Repository, productRepo product.Repository, pricing config.PricingConfig) Service {
	return &service{
		repo:        repo,
		productRepo: productRepo,
		pricing:     pricing,
	}
}

// CreateOrder turns a cart snapshot into an authoritative order. All prices
// are recomputed from the current catalog; any totals the client sent are
// ignored.
func (s *service) CreateOrder(ctx context.Context, userID uint, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.Uint("user_id", userID),
		zap.Int("item_count", len(input.Items)),
	)

	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateAddress(input.ShippingAddress); err != nil {
		return nil, err
	}
	if input.PaymentMethod != PaymentCashOnDelivery && input.PaymentMethod != PaymentEsewa {
		return nil, ErrInvalidPaymentMethod
	}

	items := make([]Item, 0, len(input.Items))
	var itemsPrice float64

	for _, in := range input.Items {
		if in.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		p, err := s.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				log.Warn("order references missing product", zap.Uint("product_id", in.ProductID))
			}
			return nil, err
		}
		if p.Stock < in.Quantity {
			return nil, ErrOutOfStock
		}

		itemsPrice += p.Price * float64(in.Quantity)
		items = append(items, Item{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  in.Quantity,
			Size:      in.Size,
			Color:     in.Color,
		})
	}

	itemsPrice = Round2(itemsPrice)

	shippingPrice := s.pricing.ShippingFlatFee
	if itemsPrice > s.pricing.FreeShippingThreshold {
		shippingPrice = 0
	}
	taxPrice := Round2(itemsPrice * s.pricing.TaxRate)
	totalPrice := Round2(itemsPrice + shippingPrice + taxPrice)

	o := &Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		ItemsPrice:      itemsPrice,
		ShippingPrice:   shippingPrice,
		TaxPrice:        taxPrice,
		TotalPrice:      totalPrice,
		Status:          StatusPlaced,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(o.PaymentMethod)).Inc()
	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.Float64("total_price", o.TotalPrice),
		zap.String("payment_method", string(o.PaymentMethod)),
	)

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		return nil, ErrUnauthorized
	}
	return o, nil
}

func (s *service) ListUserOrders(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus applies an operator transition. The paid flag is orthogonal and
// is never touched here.
func (s *service) UpdateStatus(ctx context.Context, orderID uint, status Status) error {
	switch status {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
	default:
		return ErrInvalidStatus
	}

	if status == StatusCancelled {
		o, err := s.repo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status != StatusPlaced {
			return ErrInvalidStatus
		}
	}

	return s.repo.UpdateStatus(ctx, orderID, status)
}

func validateAddress(a ShippingAddress) error {
	if strings.TrimSpace(a.Street) == "" ||
		strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.District) == "" ||
		strings.TrimSpace(a.Phone) == "" {
		return ErrMissingAddress
	}
	return nil
}
