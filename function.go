package aoc

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"puzzlebox.dev/aoc/internal/config"
	"puzzlebox.dev/aoc/internal/logging"
	"puzzlebox.dev/aoc/pkg/primitives"
)

const maxInputBytes = 1 << 20

func init() {
	functions.HTTP("SolvePuzzle", SolvePuzzle)
}

var functionLogger = sync.OnceValue(func() *zap.Logger {
	cfg, err := config.Load("")
	if err != nil {
		return zap.NewNop()
	}
	logger, err := logging.New(cfg.Logging, false)
	if err != nil {
		return zap.NewNop()
	}
	return logger
})

// SolvePuzzle is the HTTP cloud function: POST /?day=N[&part=M] with the puzzle input as body.
func SolvePuzzle(w http.ResponseWriter, r *http.Request) {
	NewHandler(functionLogger()).ServeHTTP(w, r)
}

type solveResponse struct {
	Day     int            `json:"day,omitempty"`
	Answers map[string]int `json:"answers,omitempty"`
	Error   string         `json:"error,omitempty"`
	Code    string         `json:"code,omitempty"`
}

// NewHandler returns the handler behind SolvePuzzle.
func NewHandler(logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	base := logger
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)
		logger := base.With(zap.String("request_id", requestID))

		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, logger, http.StatusMethodNotAllowed, solveResponse{Error: "use POST"})
			return
		}

		day, err := strconv.Atoi(r.URL.Query().Get("day"))
		if err != nil {
			writeJSON(w, logger, http.StatusBadRequest, solveResponse{Error: "missing or invalid day"})
			return
		}
		parts := []int{1, 2}
		if s := r.URL.Query().Get("part"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				writeJSON(w, logger, http.StatusBadRequest, solveResponse{Day: day, Error: "invalid part"})
				return
			}
			parts = []int{n}
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxInputBytes))
		if err != nil {
			writeJSON(w, logger, http.StatusRequestEntityTooLarge, solveResponse{Day: day, Error: err.Error()})
			return
		}

		resp := solveResponse{Day: day, Answers: make(map[string]int, len(parts))}
		for _, part := range parts {
			answer, err := Solve(r.Context(), logger, day, part, string(body))
			if err != nil {
				writeJSON(w, logger, statusOf(err), solveResponse{
					Day:   day,
					Error: err.Error(),
					Code:  string(primitives.Classify(err)),
				})
				return
			}
			resp.Answers[strconv.Itoa(part)] = answer
		}
		writeJSON(w, logger, http.StatusOK, resp)
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrUnknownPuzzle):
		return http.StatusNotFound
	case primitives.IsInputError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, resp solveResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}
