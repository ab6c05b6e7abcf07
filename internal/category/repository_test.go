package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, description, image, created_at`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image", "created_at"}).
				AddRow(1, "Men", "Menswear", "/img/men.jpg", time.Now()).
				AddRow(2, "Women", "Womenswear", "/img/women.jpg", time.Now()))

		categories, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, categories, 2)
		assert.Equal(t, "Men", categories[0].Name)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, description, image, created_at`).
			WillReturnError(errors.New("db down"))

		_, err := repo.List(context.Background())
		assert.Error(t, err)
	})
}
