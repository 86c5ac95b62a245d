package services

import (
	"context"
	"errors"

	"github.com/pingui001/Crud-y-DB/internal/ingest"
)

// ErrInvalidTable rejects ingestion targets outside the allowed table set.
var ErrInvalidTable = errors.New("invalid table")

type IngestService struct {
	processor *ingest.Processor
}

func NewIngestService(writer ingest.BatchWriter) *IngestService {
	return &IngestService{
		processor: ingest.NewProcessor(writer),
	}
}

// Ingest loads every uploaded file into the target table, inserting as many
// valid rows as possible and reporting the rest.
func (s *IngestService) Ingest(ctx context.Context, table string, columnMap map[string]string, files []ingest.File) (*ingest.Report, error) {
	spec, ok := ingest.SpecFor(table)
	if !ok {
		return nil, ErrInvalidTable
	}
	return s.processor.Process(ctx, spec, ingest.NewMapping(columnMap), files)
}
