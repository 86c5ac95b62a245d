package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pingui001/Crud-y-DB/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCustomer(t *testing.T, repo *CustomerRepository, idn int64) *model.Customer {
	t.Helper()
	created, err := repo.Create(context.Background(), newCustomer(idn, "cliente"))
	require.NoError(t, err)
	return created
}

func newTransaction(customerID int64) *model.Transaction {
	return &model.Transaction{
		CustomerID:        customerID,
		DateAndTime:       time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		TransactionAmount: 150000,
		TransactionStatus: "completed",
		TransactionType:   "purchase",
	}
}

func TestTransactionRepository_Create(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewTransactionRepository(db)
	customerRepo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("successful create", func(t *testing.T) {
		customer := seedCustomer(t, customerRepo, 1001)

		created, err := repo.Create(ctx, newTransaction(customer.ID))
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, customer.ID, created.CustomerID)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := repo.Create(ctx, newTransaction(999))
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
	})
}

func TestTransactionRepository_Get(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewTransactionRepository(db)
	customerRepo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("existing transaction", func(t *testing.T) {
		customer := seedCustomer(t, customerRepo, 1001)
		created, err := repo.Create(ctx, newTransaction(customer.ID))
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(150000), got.TransactionAmount)
		assert.Equal(t, "purchase", got.TransactionType)
	})

	t.Run("missing transaction", func(t *testing.T) {
		_, err := repo.Get(ctx, 999)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestTransactionRepository_Update(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewTransactionRepository(db)
	customerRepo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		customer := seedCustomer(t, customerRepo, 1001)
		created, err := repo.Create(ctx, newTransaction(customer.ID))
		require.NoError(t, err)

		status := "refunded"
		err = repo.Update(ctx, created.ID, model.TransactionUpdate{TransactionStatus: &status})
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "refunded", got.TransactionStatus)
		assert.Equal(t, int64(150000), got.TransactionAmount)
	})

	t.Run("missing transaction", func(t *testing.T) {
		amount := int64(99)
		err := repo.Update(ctx, 999, model.TransactionUpdate{TransactionAmount: &amount})
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("update onto unknown customer", func(t *testing.T) {
		customer := seedCustomer(t, customerRepo, 2002)
		created, err := repo.Create(ctx, newTransaction(customer.ID))
		require.NoError(t, err)

		missing := int64(999)
		err = repo.Update(ctx, created.ID, model.TransactionUpdate{CustomerID: &missing})
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
	})
}

func TestTransactionRepository_Delete(t *testing.T) {
	db := setupTestDB(t).DB
	repo := NewTransactionRepository(db)
	customerRepo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		customer := seedCustomer(t, customerRepo, 1001)
		created, err := repo.Create(ctx, newTransaction(customer.ID))
		require.NoError(t, err)

		err = repo.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = repo.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("missing transaction", func(t *testing.T) {
		err := repo.Delete(ctx, 999)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestTransactionRepository_CustomerDeleteOrphans(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewTransactionRepository(tdb.DB)
	customerRepo := NewCustomerRepository(tdb.DB)
	ctx := context.Background()

	customer := seedCustomer(t, customerRepo, 1001)
	created, err := repo.Create(ctx, newTransaction(customer.ID))
	require.NoError(t, err)

	err = customerRepo.Delete(ctx, customer.ID)
	require.NoError(t, err)

	// the transaction survives with its customer reference nulled out
	var orphaned int64
	err = tdb.rawDB.Raw(
		"SELECT COUNT(*) FROM transactions WHERE id_transaction = ? AND customer_id IS NULL",
		created.ID,
	).Scan(&orphaned).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), orphaned)
}
