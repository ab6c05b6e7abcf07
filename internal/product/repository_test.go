package product

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "price", "image", "category", "sizes", "colors",
		"stock", "ratings", "num_reviews", "is_featured", "created_at", "updated_at",
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
			WithArgs(uint(5)).
			WillReturnRows(productRows().AddRow(
				5, "Dhaka Topi", "Handwoven topi", 450.0, "/img/topi.jpg", "accessories",
				`{Universal}`, `{Red,Black}`, 12, 4.5, 8, true, now, now,
			))

		p, err := repo.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "Dhaka Topi", p.Name)
		assert.Equal(t, CategoryAccessories, p.Category)
		assert.Equal(t, []string{"Universal"}, p.Sizes)
		assert.Equal(t, 12, p.Stock)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
			WithArgs(uint(999)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 999)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("All", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products ORDER BY created_at DESC`).
			WillReturnRows(productRows().
				AddRow(1, "Kurta", "Cotton kurta", 1200.0, "/img/kurta.jpg", "women",
					`{S,M,L}`, `{Blue}`, 5, 4.0, 2, false, now, now).
				AddRow(2, "Daura Suruwal", "Formal set", 3500.0, "/img/daura.jpg", "men",
					`{M,L,XL}`, `{White}`, 3, 5.0, 1, true, now, now))

		products, err := repo.List(context.Background(), ListOptions{})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("ByCategory", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products WHERE category = \$1`).
			WithArgs(CategoryMen).
			WillReturnRows(productRows().AddRow(
				2, "Daura Suruwal", "Formal set", 3500.0, "/img/daura.jpg", "men",
				`{M,L,XL}`, `{White}`, 3, 5.0, 1, true, now, now))

		products, err := repo.List(context.Background(), ListOptions{Category: CategoryMen})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Daura Suruwal", products[0].Name)
	})
}
