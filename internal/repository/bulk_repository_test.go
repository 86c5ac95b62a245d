package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pingui001/Crud-y-DB/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkRepository_InsertBatch(t *testing.T) {
	tdb := setupTestDB(t)
	repo := NewBulkRepository(tdb.DB)
	ctx := context.Background()

	t.Run("customers batch", func(t *testing.T) {
		rows := []ingest.Row{
			{
				"identification_number": int64(1001),
				"customer_name":         "ana",
				"address":               "Calle 1",
				"phone":                 "3001111111",
				"email":                 "ana@example.com",
			},
			{
				"identification_number": int64(1002),
				"customer_name":         "luis",
				"address":               "Calle 2",
				"phone":                 "3002222222",
				"email":                 "luis@example.com",
			},
		}

		n, err := repo.InsertBatch(ctx, ingest.TableCustomers, rows)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		customers, err := NewCustomerRepository(tdb.DB).List(ctx)
		require.NoError(t, err)
		assert.Len(t, customers, 2)
	})

	t.Run("transactions batch", func(t *testing.T) {
		customer := seedCustomer(t, NewCustomerRepository(tdb.DB), 5005)

		rows := []ingest.Row{
			{
				"customer_id":        customer.ID,
				"date_and_time":      time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
				"transaction_amount": int64(150),
				"transaction_status": "completed",
				"transaction_type":   "purchase",
			},
		}

		n, err := repo.InsertBatch(ctx, ingest.TableTransactions, rows)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("invoices batch with null period", func(t *testing.T) {
		tr := seedTransaction(t, tdb)
		period := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		rows := []ingest.Row{
			{
				"platform_used":   "nequi",
				"invoice_number":  "FB-001",
				"transaction_id":  tr.ID,
				"invoice_period":  &period,
				"invoiced_amount": int64(98000),
				"amount_paid":     int64(98000),
			},
			{
				"platform_used":   "daviplata",
				"invoice_number":  "FB-002",
				"transaction_id":  tr.ID,
				"invoice_period":  (*time.Time)(nil),
				"invoiced_amount": int64(50000),
				"amount_paid":     int64(20000),
			},
		}

		n, err := repo.InsertBatch(ctx, ingest.TableInvoices, rows)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		var nullPeriods int64
		err = tdb.rawDB.Raw(
			"SELECT COUNT(*) FROM invoices WHERE invoice_number = ? AND invoice_period IS NULL", "FB-002",
		).Scan(&nullPeriods).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), nullPeriods)
	})

	t.Run("constraint failure refuses the whole batch", func(t *testing.T) {
		rows := []ingest.Row{
			{
				"identification_number": int64(7007),
				"customer_name":         "uno",
				"address":               "Calle 7",
				"phone":                 "3007777777",
				"email":                 "uno@example.com",
			},
			{
				"identification_number": int64(7007),
				"customer_name":         "dos",
				"address":               "Calle 8",
				"phone":                 "3008888888",
				"email":                 "dos@example.com",
			},
		}

		_, err := repo.InsertBatch(ctx, ingest.TableCustomers, rows)
		assert.ErrorIs(t, err, ErrDuplicateKey)

		var count int64
		err = tdb.rawDB.Raw(
			"SELECT COUNT(*) FROM customers WHERE identification_number = ?", 7007,
		).Scan(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		n, err := repo.InsertBatch(ctx, ingest.TableCustomers, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := repo.InsertBatch(ctx, "users", []ingest.Row{{}})
		assert.Error(t, err)
	})
}
