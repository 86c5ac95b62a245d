package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pingui001/Crud-y-DB/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTransaction(t *testing.T, db *testDB) *model.Transaction {
	t.Helper()
	customerRepo := NewCustomerRepository(db.DB)
	transactionRepo := NewTransactionRepository(db.DB)
	customer := seedCustomer(t, customerRepo, time.Now().UnixNano())
	created, err := transactionRepo.Create(context.Background(), newTransaction(customer.ID))
	require.NoError(t, err)
	return created
}

func newInvoice(transactionID int64, number string) *model.Invoice {
	period := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &model.Invoice{
		PlatformUsed:   "nequi",
		InvoiceNumber:  number,
		TransactionID:  transactionID,
		InvoicePeriod:  &period,
		InvoicedAmount: 98000,
		AmountPaid:     98000,
	}
}

func TestInvoiceRepository_Create(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewInvoiceRepository(tdb.DB)
	ctx := context.Background()

	t.Run("successful create", func(t *testing.T) {
		tr := seedTransaction(t, tdb)

		created, err := repo.Create(ctx, newInvoice(tr.ID, "FA-001"))
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		require.NotNil(t, created.InvoicePeriod)
	})

	t.Run("nil invoice period is stored as null", func(t *testing.T) {
		tr := seedTransaction(t, tdb)

		inv := newInvoice(tr.ID, "FA-002")
		inv.InvoicePeriod = nil
		created, err := repo.Create(ctx, inv)
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got.InvoicePeriod)
	})

	t.Run("duplicate invoice number", func(t *testing.T) {
		tr := seedTransaction(t, tdb)

		_, err := repo.Create(ctx, newInvoice(tr.ID, "FA-003"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, newInvoice(tr.ID, "FA-003"))
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		_, err := repo.Create(ctx, newInvoice(999, "FA-004"))
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
	})
}

func TestInvoiceRepository_Get(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewInvoiceRepository(tdb.DB)
	ctx := context.Background()

	t.Run("existing invoice", func(t *testing.T) {
		tr := seedTransaction(t, tdb)
		created, err := repo.Create(ctx, newInvoice(tr.ID, "FA-001"))
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "FA-001", got.InvoiceNumber)
		assert.Equal(t, int64(98000), got.InvoicedAmount)
	})

	t.Run("missing invoice", func(t *testing.T) {
		_, err := repo.Get(ctx, 999)
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

func TestInvoiceRepository_Update(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewInvoiceRepository(tdb.DB)
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		tr := seedTransaction(t, tdb)
		created, err := repo.Create(ctx, newInvoice(tr.ID, "FA-001"))
		require.NoError(t, err)

		paid := int64(50000)
		err = repo.Update(ctx, created.ID, model.InvoiceUpdate{AmountPaid: &paid})
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, paid, got.AmountPaid)
		assert.Equal(t, "FA-001", got.InvoiceNumber)
		assert.Equal(t, int64(98000), got.InvoicedAmount)
	})

	t.Run("missing invoice", func(t *testing.T) {
		platform := "daviplata"
		err := repo.Update(ctx, 999, model.InvoiceUpdate{PlatformUsed: &platform})
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

func TestInvoiceRepository_Delete(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewInvoiceRepository(tdb.DB)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		tr := seedTransaction(t, tdb)
		created, err := repo.Create(ctx, newInvoice(tr.ID, "FA-001"))
		require.NoError(t, err)

		err = repo.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = repo.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})

	t.Run("missing invoice", func(t *testing.T) {
		err := repo.Delete(ctx, 999)
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}
