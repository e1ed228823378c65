package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ErrorResponse is the envelope of every failed request. Details is never null.
type ErrorResponse struct {
	Error      bool                `json:"error"`
	StatusCode int                 `json:"status_code"`
	Message    string              `json:"message"`
	Details    map[string][]string `json:"details"`
}

func NewMeta(page, pageSize int, total int64) *Meta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &Meta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, statusCode int, message string, details map[string][]string) {
	if details == nil {
		details = map[string][]string{}
	}
	JSON(w, statusCode, ErrorResponse{
		Error:      true,
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	})
}

// ValidationError writes a 400 whose message names the lexically first
// failing field and its first message.
func ValidationError(w http.ResponseWriter, details map[string][]string) {
	Error(w, http.StatusBadRequest, ValidationMessage(details), details)
}

func ValidationMessage(details map[string][]string) string {
	fields := make([]string, 0, len(details))
	for field, messages := range details {
		if len(messages) > 0 {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return "Invalid input."
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", fields[0], details[fields[0]][0])
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Authentication credentials were not provided."
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "You do not have permission to perform this action."
	}
	Error(w, http.StatusForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message, nil)
}

func TooManyRequests(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Request was throttled."
	}
	Error(w, http.StatusTooManyRequests, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}
