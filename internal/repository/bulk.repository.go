package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pingui001/Crud-y-DB/internal/ingest"
	"github.com/pingui001/Crud-y-DB/pkg/pg"
)

// BulkRepository turns a file's worth of coerced rows into one multi-row
// insert per target table. A constraint failure refuses the whole batch and
// is reported to the caller as a single error.
type BulkRepository struct {
	*pg.DB
}

func NewBulkRepository(db *pg.DB) *BulkRepository {
	return &BulkRepository{
		db,
	}
}

func (r *BulkRepository) InsertBatch(ctx context.Context, table string, rows []ingest.Row) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var batch any
	switch table {
	case ingest.TableCustomers:
		entities := make([]CustomerEntity, 0, len(rows))
		for _, row := range rows {
			entities = append(entities, CustomerEntity{
				IdentificationNumber: rowInt64(row, "identification_number"),
				CustomerName:         rowString(row, "customer_name"),
				Address:              rowString(row, "address"),
				Phone:                rowString(row, "phone"),
				Email:                rowString(row, "email"),
			})
		}
		batch = &entities

	case ingest.TableTransactions:
		entities := make([]TransactionEntity, 0, len(rows))
		for _, row := range rows {
			entities = append(entities, TransactionEntity{
				CustomerID:        rowInt64(row, "customer_id"),
				DateAndTime:       rowTime(row, "date_and_time"),
				TransactionAmount: rowInt64(row, "transaction_amount"),
				TransactionStatus: rowString(row, "transaction_status"),
				TransactionType:   rowString(row, "transaction_type"),
			})
		}
		batch = &entities

	case ingest.TableInvoices:
		entities := make([]InvoiceEntity, 0, len(rows))
		for _, row := range rows {
			entities = append(entities, InvoiceEntity{
				PlatformUsed:   rowString(row, "platform_used"),
				InvoiceNumber:  rowString(row, "invoice_number"),
				TransactionID:  rowInt64(row, "transaction_id"),
				InvoicePeriod:  rowDate(row, "invoice_period"),
				InvoicedAmount: rowInt64(row, "invoiced_amount"),
				AmountPaid:     rowInt64(row, "amount_paid"),
			})
		}
		batch = &entities

	default:
		return 0, fmt.Errorf("unknown target table %q", table)
	}

	var affected int64
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		result := r.Write(ctx).Create(batch)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, classifyWriteError(err)
	}
	return affected, nil
}

func rowInt64(row ingest.Row, key string) int64 {
	v, _ := row[key].(int64)
	return v
}

func rowString(row ingest.Row, key string) string {
	v, _ := row[key].(string)
	return v
}

func rowTime(row ingest.Row, key string) time.Time {
	v, _ := row[key].(time.Time)
	return v
}

func rowDate(row ingest.Row, key string) *time.Time {
	switch v := row[key].(type) {
	case *time.Time:
		return v
	case time.Time:
		return &v
	}
	return nil
}
