package aoc

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"puzzlebox.dev/aoc/pkg/primitives"
)

// Solve runs one part of one day on input.
func Solve(ctx context.Context, logger *zap.Logger, day, part int, input string) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	p, err := Lookup(day)
	if err != nil {
		return 0, err
	}
	fn, err := p.Part(part)
	if err != nil {
		return 0, err
	}

	log := logger.With(zap.Int("day", day), zap.Int("part", part))
	log.Debug("solving", zap.String("title", p.Title), zap.Int("input_bytes", len(input)))
	start := time.Now()
	answer, err := fn(input)
	if err != nil {
		log.Error("solve failed",
			zap.String("code", string(primitives.Classify(err))),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return 0, fmt.Errorf("day %d part %d: %w", day, part, err)
	}
	log.Info("solved", zap.Int("answer", answer), zap.Duration("duration", time.Since(start)))
	return answer, nil
}
