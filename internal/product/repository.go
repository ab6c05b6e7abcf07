package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, image, category, sizes, colors,
	stock, ratings, num_reviews, is_featured, created_at, updated_at`

func (r *repository) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	query := "SELECT " + productColumns + " FROM products"
	var (
		conds []string
		args  []interface{}
	)

	if opts.Category != "" {
		args = append(args, opts.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if opts.Featured != nil {
		args = append(args, *opts.Featured)
		conds = append(conds, fmt.Sprintf("is_featured = $%d", len(args)))
	}

	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(s scanner) (*Product, error) {
	var p Product
	err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
		pq.Array(&p.Sizes), pq.Array(&p.Colors),
		&p.Stock, &p.Ratings, &p.NumReviews, &p.IsFeatured,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
