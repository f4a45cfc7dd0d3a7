package cors_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiqualify/golang_services/internal/platform/cors"
)

func assertCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", h.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "GET, POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
}

func TestPreflight(t *testing.T) {
	resp := cors.Preflight()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Body)
	assert.Len(t, resp.Header, 3)
	assertCORSHeaders(t, resp.Header)
	assert.Equal(t, resp, cors.Preflight())
}

func TestHeaders_ReturnsCopy(t *testing.T) {
	h := cors.Headers()
	h.Set("Access-Control-Allow-Origin", "https://evil.example")
	h.Set("X-Extra", "1")

	assertCORSHeaders(t, cors.Headers())
	assert.Len(t, cors.Headers(), 3)
}

func TestJSON_DefaultStatus(t *testing.T) {
	resp, err := cors.JSON(map[string]string{"status": "ok"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"status":"ok"}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assertCORSHeaders(t, resp.Header)
}

func TestJSON_RoundTripsPayload(t *testing.T) {
	payloads := []any{
		map[string]any{"status": "ok", "count": float64(3), "tags": []any{"a", "b"}},
		[]any{float64(1), "two", nil, true},
		"plain string",
		nil,
	}
	statuses := []int{http.StatusOK, http.StatusCreated, http.StatusBadRequest, http.StatusInternalServerError}

	for _, p := range payloads {
		for _, s := range statuses {
			resp, err := cors.JSON(p, s)
			require.NoError(t, err)
			assert.Equal(t, s, resp.StatusCode)

			var got any
			require.NoError(t, json.Unmarshal(resp.Body, &got))
			assert.Equal(t, p, got)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assertCORSHeaders(t, resp.Header)
		}
	}
}

func TestJSON_FirstStatusWins(t *testing.T) {
	resp, err := cors.JSON(map[string]string{}, http.StatusAccepted, http.StatusTeapot)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestJSON_MarshalErrorIsReturnedUnchanged(t *testing.T) {
	_, err := cors.JSON(map[string]any{"ch": make(chan int)})
	require.Error(t, err)

	var unsupported *json.UnsupportedTypeError
	assert.True(t, errors.As(err, &unsupported))
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	err := cors.WriteJSON(rr, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, `{"status":"ok"}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assertCORSHeaders(t, rr.Header())
}

func TestWriteJSON_NothingWrittenOnError(t *testing.T) {
	rr := httptest.NewRecorder()

	err := cors.WriteJSON(rr, func() {})
	require.Error(t, err)
	assert.Zero(t, rr.Body.Len())
	assert.Empty(t, rr.Header())
}

func TestMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	h := cors.Middleware(next)

	t.Run("preflight short-circuits", func(t *testing.T) {
		called = false
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/anything", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Zero(t, rr.Body.Len())
		assert.Len(t, rr.Header(), 3)
		assertCORSHeaders(t, rr.Header())
	})

	t.Run("headers kept on error responses", func(t *testing.T) {
		called = false
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/anything", nil))

		assert.True(t, called)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assertCORSHeaders(t, rr.Header())
	})
}

func TestJSON_DoesNotEscapeHTML(t *testing.T) {
	resp, err := cors.JSON(map[string]string{"h": "<b>&"})
	require.NoError(t, err)
	assert.Equal(t, `{"h":"<b>&"}`, string(resp.Body))
}

func TestWriteJSON_NoContentDropsBody(t *testing.T) {
	rr := httptest.NewRecorder()

	err := cors.WriteJSON(rr, map[string]string{"status": "ok"}, http.StatusNoContent)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())
	assertCORSHeaders(t, rr.Header())
}

func TestWriteJSON_InvalidStatusWritesNothing(t *testing.T) {
	for _, code := range []int{0, 99, 1000} {
		rr := httptest.NewRecorder()

		err := cors.WriteJSON(rr, map[string]string{"status": "ok"}, code)

		assert.ErrorIs(t, err, cors.ErrInvalidStatusCode)
		assert.False(t, rr.Flushed)
		assert.Empty(t, rr.Header())
		assert.Zero(t, rr.Body.Len())
	}
}
