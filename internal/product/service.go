package product

import "context"

type Service interface {
	List(ctx context.Context, opts ListOptions) ([]Product, error)
	Get(ctx context.Context, id uint) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) Get(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}
