package ingest

const (
	TableCustomers    = "customers"
	TableTransactions = "transactions"
	TableInvoices     = "invoices"
)

// Kind selects the coercion applied to a CSV cell before insert.
type Kind int

const (
	KindText Kind = iota
	KindInt
	// KindSerialTime is a spreadsheet serial day count; the fractional part
	// encodes the time of day.
	KindSerialTime
	// KindNullableDate is a calendar date stored as NULL when unparseable.
	KindNullableDate
)

type Field struct {
	Name string
	Kind Kind
}

// TableSpec fixes the ordered field set expected for one target table,
// excluding the auto-assigned identifier.
type TableSpec struct {
	Table  string
	Fields []Field
}

var customersSpec = TableSpec{
	Table: TableCustomers,
	Fields: []Field{
		{Name: "identification_number", Kind: KindInt},
		{Name: "customer_name", Kind: KindText},
		{Name: "address", Kind: KindText},
		{Name: "phone", Kind: KindText},
		{Name: "email", Kind: KindText},
	},
}

var transactionsSpec = TableSpec{
	Table: TableTransactions,
	Fields: []Field{
		{Name: "customer_id", Kind: KindInt},
		{Name: "date_and_time", Kind: KindSerialTime},
		{Name: "transaction_amount", Kind: KindInt},
		{Name: "transaction_status", Kind: KindText},
		{Name: "transaction_type", Kind: KindText},
	},
}

var invoicesSpec = TableSpec{
	Table: TableInvoices,
	Fields: []Field{
		{Name: "platform_used", Kind: KindText},
		{Name: "invoice_number", Kind: KindText},
		{Name: "transaction_id", Kind: KindInt},
		{Name: "invoice_period", Kind: KindNullableDate},
		{Name: "invoiced_amount", Kind: KindInt},
		{Name: "amount_paid", Kind: KindInt},
	},
}

// SpecFor returns the spec for a target table name, rejecting anything
// outside the allowed set.
func SpecFor(table string) (TableSpec, bool) {
	switch table {
	case TableCustomers:
		return customersSpec, true
	case TableTransactions:
		return transactionsSpec, true
	case TableInvoices:
		return invoicesSpec, true
	}
	return TableSpec{}, false
}
