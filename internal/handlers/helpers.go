package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/pingui001/Crud-y-DB/internal/model"
	"github.com/pingui001/Crud-y-DB/internal/repository"
	"github.com/pingui001/Crud-y-DB/internal/services"
	xhttp "github.com/pingui001/Crud-y-DB/pkg/http"
)

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := ctx.PostBody()
	return json.Unmarshal(body, dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]string{"error": msg})
}

// writeServiceError maps the error taxonomy onto statuses: validation and
// dangling-reference failures are the client's fault, missing rows are 404,
// unique-key collisions are 409, anything unclassified surfaces as 500.
func writeServiceError(ctx *xhttp.RequestCtx, err error) {
	writeError(ctx, statusForError(err), err.Error())
}

func statusForError(err error) int {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, services.ErrNoFieldsToUpdate),
		errors.Is(err, services.ErrInvalidTable),
		errors.Is(err, repository.ErrForeignKeyViolation):
		return xhttp.StatusBadRequest
	case errors.Is(err, repository.ErrCustomerNotFound),
		errors.Is(err, repository.ErrTransactionNotFound),
		errors.Is(err, repository.ErrInvoiceNotFound):
		return xhttp.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateKey):
		return xhttp.StatusConflict
	}
	return xhttp.StatusInternalServerError
}

func pathID(ctx *xhttp.RequestCtx) (int64, error) {
	v, _ := ctx.UserValue("id").(string)
	return strconv.ParseInt(v, 10, 64)
}

func parseTime(s string) (time.Time, error) {
	// Accept RFC3339, a space-separated datetime or a bare date
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func parseDate(s string) (time.Time, error) {
	t, err := parseTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
