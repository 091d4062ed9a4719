package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordertrack/ordertrack/internal/platform/workbook"
)

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("orders: record id-1: %w", ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "validation",
			err:        fmt.Errorf("field SONo is missing or invalid: %w", ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Validation Failed",
		},
		{
			name:       "workbook held by another process",
			err:        fmt.Errorf("orders: create id-1: %w", workbook.ErrBusy),
			wantStatus: http.StatusServiceUnavailable,
			wantTitle:  "Workbook Unavailable",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("something broke"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondError(rec, tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)

			var problem ProblemDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tt.wantTitle, problem.Title)
			assert.Equal(t, tt.wantStatus, problem.Status)
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, fmt.Errorf("dial tcp: connection refused"))

	assert.NotContains(t, rec.Body.String(), "connection refused")
}
