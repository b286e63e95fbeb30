package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRespondWithErrorStructure(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusNotFound, "no such product")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, http.StatusText(http.StatusNotFound), response.Error.Code)
	assert.Equal(t, "no such product", response.Error.Message)

	_, err := time.Parse(time.RFC3339, response.Error.Timestamp)
	assert.NoError(t, err)
}

func TestErrorHandlingMiddlewareRecoversPanics(t *testing.T) {
	handler := ErrorHandlingMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDecodeAndValidate(t *testing.T) {
	type payload struct {
		Name     string `json:"name" validate:"required"`
		Quantity int    `json:"quantity" validate:"gt=0"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"milk","quantity":3}`))
	var p payload
	require.NoError(t, DecodeAndValidate(r, &p))
	assert.Equal(t, "milk", p.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"","quantity":0}`))
	err := DecodeAndValidate(r, &payload{})
	require.Error(t, err)

	fieldErrors := FormatValidationErrors(err)
	assert.Len(t, fieldErrors, 2)
}

func TestDecodeAndValidateBadJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
	err := DecodeAndValidate(r, &struct{}{})
	require.Error(t, err)
	assert.Empty(t, FormatValidationErrors(err))
}
