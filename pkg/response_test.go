package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHidesWrappedDetail(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		want   string
	}{
		{"bad request", fmt.Errorf("subscribe: %w: status 409: duplicate key", ErrBadRequest), http.StatusBadRequest, "bad request"},
		{"not found", fmt.Errorf("invite clicks: %w: status 404: no row", ErrNotFound), http.StatusNotFound, "not found"},
		{"too many", fmt.Errorf("ip 1.2.3.4: %w", ErrTooManyRequests), http.StatusTooManyRequests, "too many requests"},
		{"upstream", fmt.Errorf("ranking: %w: dial tcp", ErrUpstream), http.StatusBadGateway, "upstream unavailable"},
		{"unknown", errors.New("sql: connection refused"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)

			var resp APIResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.want, resp.Error)
		})
	}
}

func TestStatusForValidation(t *testing.T) {
	err := fmt.Errorf("subscribe: %w", &ValidationError{Fields: FieldErrors{"name": "x"}})
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(err))
}
