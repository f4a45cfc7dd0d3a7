// Package cors holds the cross-origin header policy shared by every edge function.
//
// Handlers answer OPTIONS with Preflight and build successful responses with JSON,
// so no function can drift from the policy below.
package cors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	AllowOrigin  = "*"
	AllowHeaders = "authorization, x-client-info, apikey, content-type"
	AllowMethods = "GET, POST, OPTIONS"

	ContentTypeJSON = "application/json"
)

// corsHeaders is read-only after init. Use Headers to get a mutable copy.
var corsHeaders = http.Header{
	"Access-Control-Allow-Origin":  {AllowOrigin},
	"Access-Control-Allow-Headers": {AllowHeaders},
	"Access-Control-Allow-Methods": {AllowMethods},
}

// Headers returns a fresh copy of the three CORS headers.
func Headers() http.Header {
	return corsHeaders.Clone()
}

// Response is a fully built HTTP response ready to be written.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ErrInvalidStatusCode is returned by Write for codes net/http would refuse.
var ErrInvalidStatusCode = errors.New("invalid HTTP status code")

// Write copies the response onto w. Nothing is written when the status code is
// outside 100-999. The body is dropped for 1xx, 204 and 304, which carry none.
func (r Response) Write(w http.ResponseWriter) error {
	if r.StatusCode < 100 || r.StatusCode > 999 {
		return fmt.Errorf("%w: %d", ErrInvalidStatusCode, r.StatusCode)
	}

	h := w.Header()
	for k, vv := range r.Header {
		h[k] = append([]string(nil), vv...)
	}
	w.WriteHeader(r.StatusCode)
	if len(r.Body) == 0 || !bodyAllowed(r.StatusCode) {
		return nil
	}
	_, err := w.Write(r.Body)
	return err
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}

// Preflight answers a browser OPTIONS request: status 200, no body, CORS headers only.
func Preflight() Response {
	return Response{
		StatusCode: http.StatusOK,
		Header:     Headers(),
	}
}

// JSON marshals payload and attaches the CORS headers plus Content-Type.
// status defaults to 200; only the first value is used.
// HTML characters are not escaped. A marshal error is returned as is.
func JSON(payload any, status ...int) (Response, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return Response{}, err
	}
	body := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}

	h := Headers()
	h.Set("Content-Type", ContentTypeJSON)
	return Response{StatusCode: code, Header: h, Body: body}, nil
}

// WriteJSON builds a JSON response and writes it to w. Nothing is written when
// payload cannot be marshalled or status is invalid.
func WriteJSON(w http.ResponseWriter, payload any, status ...int) error {
	resp, err := JSON(payload, status...)
	if err != nil {
		return err
	}
	return resp.Write(w)
}

// Middleware answers OPTIONS with Preflight before anything else runs, and stamps
// the CORS headers on every other response, including errors written by next.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			_ = Preflight().Write(w)
			return
		}

		h := w.Header()
		for k, vv := range corsHeaders {
			h[k] = append([]string(nil), vv...)
		}
		next.ServeHTTP(w, r)
	})
}
