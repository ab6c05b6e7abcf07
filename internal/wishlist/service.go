package wishlist

import (
	"context"

	"siddhartha-be/internal/product"
)

type Service interface {
	GetWishlist(ctx context.Context, userID uint) ([]product.Product, error)
	Add(ctx context.Context, userID, productID uint) ([]product.Product, error)
	Remove(ctx context.Context, userID, productID uint) ([]product.Product, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) GetWishlist(ctx context.Context, userID uint) ([]product.Product, error) {
	return s.repo.GetProducts(ctx, userID)
}

func (s *service) Add(ctx context.Context, userID, productID uint) ([]product.Product, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.repo.Add(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.repo.GetProducts(ctx, userID)
}

func (s *service) Remove(ctx context.Context, userID, productID uint) ([]product.Product, error) {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.repo.GetProducts(ctx, userID)
}
