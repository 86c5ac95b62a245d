package handlers

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/pingui001/Crud-y-DB/internal/ingest"
	xhttp "github.com/pingui001/Crud-y-DB/pkg/http"
	"github.com/valyala/fasthttp"
)

type IngestService interface {
	Ingest(ctx context.Context, table string, columnMap map[string]string, files []ingest.File) (*ingest.Report, error)
}

type UploadHandler struct {
	svc      IngestService
	dir      string
	maxFiles int
}

func RegisterUploadRoutes(r *router.Router, h *UploadHandler) {
	r.POST("/subir-csvs", h.Upload)
}

func NewUploadHandler(svc IngestService, dir string, maxFiles int) *UploadHandler {
	return &UploadHandler{
		svc:      svc,
		dir:      dir,
		maxFiles: maxFiles,
	}
}

type uploadResponse struct {
	Message  string   `json:"message"`
	Inserted int64    `json:"insertados"`
	Errors   []string `json:"errores"`
}

// Upload accepts a multipart form with one or more files under "csvFiles",
// an optional "tabla" target (customers by default) and an optional "mapeo"
// JSON object renaming source columns to table columns.
func (h *UploadHandler) Upload(ctx *xhttp.RequestCtx) {
	form, err := ctx.MultipartForm()
	if err != nil {
		writeError(ctx, xhttp.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	headers := form.File["csvFiles"]
	if len(headers) == 0 {
		writeError(ctx, xhttp.StatusBadRequest, "you must upload at least one CSV file")
		return
	}
	if len(headers) > h.maxFiles {
		writeError(ctx, xhttp.StatusBadRequest, "too many files: the limit is "+strconv.Itoa(h.maxFiles))
		return
	}

	table := "customers"
	if v := form.Value["tabla"]; len(v) > 0 && v[0] != "" {
		table = v[0]
	}

	columnMap := map[string]string{}
	if v := form.Value["mapeo"]; len(v) > 0 && v[0] != "" {
		if err := json.Unmarshal([]byte(v[0]), &columnMap); err != nil {
			writeError(ctx, xhttp.StatusBadRequest, "invalid mapeo JSON: "+err.Error())
			return
		}
	}

	files := make([]ingest.File, 0, len(headers))
	defer func() {
		// The pipeline removes every file it opens; this sweep covers the
		// ones never reached because saving or ingesting bailed early.
		for _, f := range files {
			os.Remove(f.Path)
		}
	}()

	for _, fh := range headers {
		dst := filepath.Join(h.dir, uuid.NewString()+".csv")
		if err := fasthttp.SaveMultipartFile(fh, dst); err != nil {
			writeError(ctx, xhttp.StatusInternalServerError, "saving "+fh.Filename+": "+err.Error())
			return
		}
		files = append(files, ingest.File{Name: fh.Filename, Path: dst})
	}

	report, err := h.svc.Ingest(ctx, table, columnMap, files)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	writeJSON(ctx, xhttp.StatusOK, uploadResponse{
		Message:  "files processed",
		Inserted: report.Inserted,
		Errors:   report.Errors,
	})
}
