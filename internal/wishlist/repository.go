package wishlist

import (
	"context"
	"database/sql"
	"errors"

	"siddhartha-be/internal/product"

	"github.com/lib/pq"
)

type Repository interface {
	GetProducts(ctx context.Context, userID uint) ([]product.Product, error)
	Add(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProducts(ctx context.Context, userID uint) ([]product.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.description, p.price, p.image, p.category,
		       p.sizes, p.colors, p.stock, p.ratings, p.num_reviews, p.is_featured,
		       p.created_at, p.updated_at
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
			pq.Array(&p.Sizes), pq.Array(&p.Colors),
			&p.Stock, &p.Ratings, &p.NumReviews, &p.IsFeatured,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Add(ctx context.Context, userID, productID uint) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlist_items (user_id, product_id) VALUES ($1, $2)
	`, userID, productID)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrAlreadyInWishlist
	}
	return err
}

func (r *repository) Remove(ctx context.Context, userID, productID uint) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotInWishlist
	}
	return nil
}
