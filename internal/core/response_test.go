// AngelaMos | 2026
// response_test.go

package core

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

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.False(t, body.Success)
	require.NotNil(t, body.Error)
	return *body.Error
}

func TestWriteError_Taxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("get category: %w", ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "duplicate is a 400 conflict",
			err:        fmt.Errorf("create: %w", &DuplicateKeyError{Constraint: "categories_slug_key"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "CONFLICT",
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("update: %w", InvalidInput("no fields to update")),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "payment verification",
			err:        fmt.Errorf("verify: %w", ErrPaymentVerification),
			wantStatus: http.StatusBadRequest,
			wantCode:   "PAYMENT_VERIFICATION_FAILED",
		},
		{
			name:       "unauthorized",
			err:        ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "unknown error is internal",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err, "category")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestWriteError_MessagesStayClientSafe(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, fmt.Errorf("update: %w", InvalidInput("no fields to update")), "banner")
	assert.Equal(t, "no fields to update", decodeError(t, rec).Message)

	rec = httptest.NewRecorder()
	WriteError(rec, errors.New("pq: password authentication failed for user"), "banner")
	assert.Equal(t, "an unexpected error occurred", decodeError(t, rec).Message)
}

func TestConstraintOf(t *testing.T) {
	err := fmt.Errorf("insert: %w", &DuplicateKeyError{Constraint: "users_phone_key"})
	assert.Equal(t, "users_phone_key", ConstraintOf(err))
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Empty(t, ConstraintOf(errors.New("other")))
}
