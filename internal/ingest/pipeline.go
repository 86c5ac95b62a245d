package ingest

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pingui001/Crud-y-DB/pkg/prom"
)

// File is one uploaded CSV, already spooled to local disk. Name carries the
// client-side filename for error reporting; Path is the temp copy.
type File struct {
	Name string
	Path string
}

// Row holds one coerced record keyed by target field name. Values are typed
// by the field kind: int64, time.Time, *time.Time or string.
type Row map[string]any

// BatchWriter inserts a file's worth of valid rows in a single statement.
type BatchWriter interface {
	InsertBatch(ctx context.Context, table string, rows []Row) (int64, error)
}

// Report is the response body of an ingestion run. Errors marshals to null
// when nothing failed, matching the API contract.
type Report struct {
	Inserted int64    `json:"insertados"`
	Errors   []string `json:"errores"`
}

type Processor struct {
	writer BatchWriter
}

func NewProcessor(writer BatchWriter) *Processor {
	return &Processor{
		writer: writer,
	}
}

// Process runs every file through a parse → coerce → batch-insert pass.
// Row-level failures are accumulated, never raised, so one bad row can not
// abort its file and one refused batch can not abort the remaining files.
// Only an unreadable file surfaces as an error for the whole request.
func (p *Processor) Process(ctx context.Context, spec TableSpec, mapping Mapping, files []File) (*Report, error) {
	report := &Report{}

	for _, f := range files {
		rows, rowErrs, err := readFile(spec, mapping, f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		if len(rowErrs) > 0 {
			report.Errors = append(report.Errors, rowErrs...)
			prom.AddRowsRejected(spec.Table, float64(len(rowErrs)))
		}
		if len(rows) == 0 {
			continue
		}

		n, err := p.writer.InsertBatch(ctx, spec.Table, rows)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("error inserting from %s: %v", f.Name, err))
			prom.IncBatchFailed(spec.Table)
			continue
		}
		report.Inserted += n
		prom.AddRowsInserted(spec.Table, float64(n))
	}

	return report, nil
}

// readFile parses one uploaded CSV into valid rows plus per-row error
// entries. The temp file is removed no matter how parsing ends.
func readFile(spec TableSpec, mapping Mapping, f File) ([]Row, []string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, nil, err
	}
	defer os.Remove(f.Path)
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	var rowErrs []string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		raw := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				raw[col] = record[i]
			}
		}

		row := make(Row, len(spec.Fields))
		valid := true
		for _, field := range spec.Fields {
			v, ok := coerceField(field, raw[mapping.SourceFor(field.Name)])
			if !ok {
				valid = false
				break
			}
			row[field.Name] = v
		}
		if !valid {
			rowErrs = append(rowErrs, invalidRowMessage(f.Name, raw))
			continue
		}
		rows = append(rows, row)
	}

	return rows, rowErrs, nil
}

func invalidRowMessage(fileName string, raw map[string]string) string {
	b, _ := json.Marshal(raw)
	return fmt.Sprintf("invalid row in %s: %s", fileName, b)
}
