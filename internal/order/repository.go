package order

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	UpdateStatus(ctx context.Context, id uint, status Status) error

	// MarkPaid performs the one-time paid transition. The write is conditioned
	// on is_paid still being false; the boolean reports whether this call won
	// the transition. A false return with nil error means another caller
	// already settled the order.
	MarkPaid(ctx context.Context, id uint, result PaymentResult, paidAt time.Time) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, street, city, district, phone, payment_method,
			items_price, shipping_price, tax_price, total_price, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, created_at, updated_at
	`,
		o.UserID,
		o.ShippingAddress.Street, o.ShippingAddress.City,
		o.ShippingAddress.District, o.ShippingAddress.Phone,
		o.PaymentMethod,
		o.ItemsPrice, o.ShippingPrice, o.TaxPrice, o.TotalPrice,
		o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, image, price, quantity, size, color)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING id
		`, o.ID, item.ProductID, item.Name, item.Image, item.Price, item.Quantity, item.Size, item.Color).
			Scan(&item.ID)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrOutOfStock
		}
	}

	return tx.Commit()
}

const orderColumns = `
	o.id, o.user_id, u.email,
	o.street, o.city, o.district, o.phone,
	o.payment_method,
	o.items_price, o.shipping_price, o.tax_price, o.total_price,
	o.is_paid, o.paid_at,
	o.payment_txn_id, o.payment_status, o.payment_update_time, o.payment_payer_email,
	o.status, o.created_at, o.updated_at`

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1
	`, id)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		items, err := r.getItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}

	return orders, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) MarkPaid(ctx context.Context, id uint, result PaymentResult, paidAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET is_paid = TRUE,
		    paid_at = $2,
		    payment_txn_id = $3,
		    payment_status = $4,
		    payment_update_time = $5,
		    payment_payer_email = $6,
		    status = $7,
		    updated_at = NOW()
		WHERE id = $1 AND is_paid = FALSE
	`, id, paidAt, result.TransactionID, result.Status, result.UpdateTime, result.PayerEmail, StatusProcessing)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *repository) getItems(ctx context.Context, orderID uint) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, image, price, quantity, size, color
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Image,
			&it.Price, &it.Quantity, &it.Size, &it.Color,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(s rowScanner) (*Order, error) {
	var (
		o          Order
		paidAt     sql.NullTime
		txnID      sql.NullString
		payStatus  sql.NullString
		updateTime sql.NullString
		payerEmail sql.NullString
	)

	err := s.Scan(
		&o.ID, &o.UserID, &o.UserEmail,
		&o.ShippingAddress.Street, &o.ShippingAddress.City,
		&o.ShippingAddress.District, &o.ShippingAddress.Phone,
		&o.PaymentMethod,
		&o.ItemsPrice, &o.ShippingPrice, &o.TaxPrice, &o.TotalPrice,
		&o.IsPaid, &paidAt,
		&txnID, &payStatus, &updateTime, &payerEmail,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paidAt.Valid {
		o.PaidAt = &paidAt.Time
	}
	if txnID.Valid {
		o.PaymentResult = &PaymentResult{
			TransactionID: txnID.String,
			Status:        payStatus.String,
			UpdateTime:    updateTime.String,
			PayerEmail:    payerEmail.String,
		}
	}

	return &o, nil
}
