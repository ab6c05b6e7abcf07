package cart

import (
	"context"

	"siddhartha-be/internal/product"
)

type Service interface {
	GetCart(ctx context.Context, userID uint) ([]CartItem, error)
	AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) GetCart(ctx context.Context, userID uint) ([]CartItem, error) {
	return s.repo.GetByUser(ctx, userID)
}

// AddToCart merges with an existing line for the same product and size,
// otherwise inserts a new line snapshotting the catalog name, image and price.
func (s *service) AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, params.ProductID)
	if err != nil {
		if err == product.ErrProductNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing, err := s.repo.GetByUserProductSize(ctx, params.UserID, params.ProductID, params.Size)
	if err != nil {
		return nil, err
	}

	finalQty := params.Quantity
	if existing != nil {
		finalQty += existing.Quantity
	}
	if finalQty > p.Stock {
		return nil, ErrInsufficientStock
	}

	if existing != nil {
		if err := s.repo.UpdateQuantity(ctx, existing.ID, finalQty); err != nil {
			return nil, err
		}
		existing.Quantity = finalQty
		return existing, nil
	}

	item := &CartItem{
		UserID:    params.UserID,
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  params.Quantity,
		Size:      params.Size,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
