// Command funcserver serves the SolvePuzzle cloud function locally.
package main

import (
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"go.uber.org/zap"

	// Registers SolvePuzzle.
	_ "puzzlebox.dev/aoc"
	"puzzlebox.dev/aoc/internal/config"
	"puzzlebox.dev/aoc/internal/logging"
)

const (
	defaultPort   = "8080"
	defaultTarget = "SolvePuzzle"
)

// newLogger builds the logger from the config file named by AOC_CONFIG (aoc.yaml by default)
// and the usual environment overrides.
func newLogger() (*zap.Logger, error) {
	path := os.Getenv("AOC_CONFIG")
	if path == "" {
		path = "aoc.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return logging.New(cfg.Logging, false)
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return defaultPort
}

func main() {
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if os.Getenv("FUNCTION_TARGET") == "" {
		os.Setenv("FUNCTION_TARGET", defaultTarget)
	}

	p := port()
	logger.Info("serving", zap.String("port", p), zap.String("target", os.Getenv("FUNCTION_TARGET")))
	if err := funcframework.Start(p); err != nil {
		logger.Fatal("funcframework.Start", zap.Error(err))
	}
}
