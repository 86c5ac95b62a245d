package repository

import (
	"context"
	"testing"

	"github.com/pingui001/Crud-y-DB/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(idn int64, name string) *model.Customer {
	return &model.Customer{
		IdentificationNumber: idn,
		CustomerName:         name,
		Address:              "Calle 1 #2-3",
		Phone:                "3001234567",
		Email:                name + "@example.com",
	}
}

func TestCustomerRepository_Create(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("successful create assigns id", func(t *testing.T) {
		created, err := repo.Create(ctx, newCustomer(1001, "ana"))
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, int64(1001), created.IdentificationNumber)
	})

	t.Run("duplicate identification number", func(t *testing.T) {
		_, err := repo.Create(ctx, newCustomer(2002, "luis"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, newCustomer(2002, "otro"))
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})
}

func TestCustomerRepository_Get(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("existing customer", func(t *testing.T) {
		created, err := repo.Create(ctx, newCustomer(1001, "ana"))
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "ana", got.CustomerName)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("missing customer", func(t *testing.T) {
		_, err := repo.Get(ctx, 999)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestCustomerRepository_List(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		customers, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, customers)
	})

	t.Run("ordered by id", func(t *testing.T) {
		_, err := repo.Create(ctx, newCustomer(1001, "ana"))
		require.NoError(t, err)
		_, err = repo.Create(ctx, newCustomer(2002, "luis"))
		require.NoError(t, err)

		customers, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Less(t, customers[0].ID, customers[1].ID)
	})
}

func TestCustomerRepository_Update(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		created, err := repo.Create(ctx, newCustomer(1001, "ana"))
		require.NoError(t, err)

		phone := "3119876543"
		err = repo.Update(ctx, created.ID, model.CustomerUpdate{Phone: &phone})
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, phone, got.Phone)
		assert.Equal(t, "ana", got.CustomerName)
		assert.Equal(t, created.Email, got.Email)
	})

	t.Run("missing customer", func(t *testing.T) {
		name := "nadie"
		err := repo.Update(ctx, 999, model.CustomerUpdate{CustomerName: &name})
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("update onto taken identification number", func(t *testing.T) {
		_, err := repo.Create(ctx, newCustomer(3003, "uno"))
		require.NoError(t, err)
		second, err := repo.Create(ctx, newCustomer(4004, "dos"))
		require.NoError(t, err)

		taken := int64(3003)
		err = repo.Update(ctx, second.ID, model.CustomerUpdate{IdentificationNumber: &taken})
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})
}

func TestCustomerRepository_Delete(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		created, err := repo.Create(ctx, newCustomer(1001, "ana"))
		require.NoError(t, err)

		err = repo.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = repo.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("missing customer", func(t *testing.T) {
		err := repo.Delete(ctx, 999)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}
