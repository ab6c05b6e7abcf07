package cart

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetByUser(ctx context.Context, userID uint) ([]CartItem, error)
	GetByUserProductSize(ctx context.Context, userID, productID uint, size string) (*CartItem, error)
	Create(ctx context.Context, item *CartItem) error
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUser(ctx context.Context, userID uint) ([]CartItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, product_id, name, image, price, quantity, size, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CartItem
	for rows.Next() {
		var it CartItem
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.ProductID, &it.Name, &it.Image,
			&it.Price, &it.Quantity, &it.Size, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) GetByUserProductSize(ctx context.Context, userID, productID uint, size string) (*CartItem, error) {
	var it CartItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, product_id, name, image, price, quantity, size, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1 AND product_id = $2 AND size = $3
	`, userID, productID, size).Scan(
		&it.ID, &it.UserID, &it.ProductID, &it.Name, &it.Image,
		&it.Price, &it.Quantity, &it.Size, &it.CreatedAt, &it.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repository) Create(ctx context.Context, item *CartItem) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, name, image, price, quantity, size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, item.UserID, item.ProductID, item.Name, item.Image, item.Price, item.Quantity, item.Size).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *repository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE cart_items SET quantity = $1, updated_at = NOW() WHERE id = $2
	`, quantity, id)
	return err
}
