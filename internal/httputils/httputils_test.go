package httputils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"http error", &HTTPError{Code: http.StatusNotFound, Message: "Summary not found"}, http.StatusNotFound, `{"error":"Summary not found"}`},
		{"wrapped http error", fmt.Errorf("outer: %w", &HTTPError{Code: http.StatusBadRequest, Message: "bad"}), http.StatusBadRequest, `{"error":"bad"}`},
		{"plain error", errors.New("database is locked"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Text string `json:"text"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hi"}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "hi", v.Text)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`text=hi`))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	var httpErr *HTTPError
	require.ErrorAs(t, DecodeJSON(r, &v), &httpErr)
	assert.Equal(t, http.StatusUnsupportedMediaType, httpErr.Code)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":`))
	r.Header.Set("Content-Type", "application/json")
	require.ErrorAs(t, DecodeJSON(r, &v), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	rec := httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"`+strings.Repeat("a", 64)+`"}`))
	r.Header.Set("Content-Type", "application/json")
	r.Body = http.MaxBytesReader(rec, r.Body, 16)
	require.ErrorAs(t, DecodeJSON(r, &v), &httpErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Code)
}

func TestMessageResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, MessageResponse(rec, "Summary deleted successfully"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Summary deleted successfully"}`, rec.Body.String())
}
