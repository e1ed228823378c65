package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"health-scheduling-api/internal/usecase"
	"health-scheduling-api/pkg/response"

	"github.com/gorilla/mux"
)

const (
	msgInvalidPage     = "Invalid page."
	msgInvalidInteger  = "A valid integer is required."
	msgInvalidDatetime = "Datetime has wrong format. Use RFC 3339, e.g. 2026-01-31T14:30:00Z."
)

// decodeJSON reads the request body into dst. An empty body decodes to the
// zero value. Type mismatches are reported under the offending field; a
// malformed or non-string time is reported under timeField.
func decodeJSON(r *http.Request, dst interface{}, timeField string) map[string][]string {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var timeErr *time.ParseError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return map[string][]string{
			typeErr.Field: {fmt.Sprintf("Incorrect type. Expected %s, received %s.", typeErr.Type.String(), typeErr.Value)},
		}
	case timeField != "" && (errors.As(err, &timeErr) || strings.HasPrefix(err.Error(), "Time.UnmarshalJSON")):
		return map[string][]string{timeField: {msgInvalidDatetime}}
	default:
		return map[string][]string{"non_field_errors": {"JSON parse error - " + err.Error()}}
	}
}

// pathID parses a numeric route variable. Routes constrain it to digits, so
// only overflow can fail here.
func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// pageParam returns the requested page, 1 when absent.
func pageParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// writeListError answers a page past the end like a malformed page number.
func writeListError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, usecase.ErrInvalidPage) {
		response.NotFound(w, msgInvalidPage)
		return
	}
	response.InternalServerError(w, message)
}
