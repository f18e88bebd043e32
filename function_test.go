package aoc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func serve(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, solveResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(zaptest.NewLogger(t)).ServeHTTP(rec, req)

	var resp solveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHandlerSolvesBothParts(t *testing.T) {
	rec, resp := serve(t, http.MethodPost, "/?day=3", gearExample)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	want := solveResponse{Day: 3, Answers: map[string]int{"1": 4361, "2": 467835}}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerSinglePart(t *testing.T) {
	rec, resp := serve(t, http.MethodPost, "/?day=6&part=2", "Time:      7  15   30\nDistance:  9  40  200")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]int{"2": 71503}, resp.Answers)
}

func TestHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   string
	}{
		{"get", http.MethodGet, "/?day=3", "", http.StatusMethodNotAllowed, ""},
		{"no day", http.MethodPost, "/", gearExample, http.StatusBadRequest, ""},
		{"bad part", http.MethodPost, "/?day=3&part=one", gearExample, http.StatusBadRequest, ""},
		{"unknown day", http.MethodPost, "/?day=12", gearExample, http.StatusNotFound, "unknown"},
		{"unknown part", http.MethodPost, "/?day=3&part=3", gearExample, http.StatusNotFound, "unknown"},
		{"malformed", http.MethodPost, "/?day=3", "..\n.", http.StatusBadRequest, "malformed_input"},
		{"bad character", http.MethodPost, "/?day=3", ".a.", http.StatusBadRequest, "unrecognized_character"},
		{"empty", http.MethodPost, "/?day=5&part=1", "", http.StatusBadRequest, "empty_input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := serve(t, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.code, resp.Code)
			assert.Empty(t, resp.Answers)
		})
	}
}

func TestHandlerRejectsLargeBodies(t *testing.T) {
	rec, _ := serve(t, http.MethodPost, "/?day=1", strings.Repeat("1", maxInputBytes+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandlerKeepsRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/?day=1&part=1", strings.NewReader("a1b2c3d4e5f\n"))
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"day":1,"answers":{"1":15}}`, rec.Body.String())
}
