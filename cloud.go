package aoc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"puzzlebox.dev/aoc/internal/config"
	"puzzlebox.dev/aoc/pkg/primitives"
)

// inputRow is one stored line of a puzzle input.
type inputRow struct {
	LineNo int64  `bigquery:"line_no"`
	Text   string `bigquery:"text"`
}

// rowIterator is the part of *bigquery.RowIterator used to read inputs.
type rowIterator interface {
	Next(dst interface{}) error
}

func inputQuery(cfg config.CloudConfig) string {
	return fmt.Sprintf("SELECT line_no, text FROM %s WHERE day = @day ORDER BY line_no", cfg.TableRef())
}

// LoadInputFromCloud reads the input of day from the configured BigQuery table, one row per
// line.
func LoadInputFromCloud(ctx context.Context, logger *zap.Logger, cfg config.CloudConfig, day int) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := bigquery.NewClient(ctx, cfg.Project, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create bigquery client: %w", err)
	}
	defer client.Close()

	sql := inputQuery(cfg)
	logger.Debug("querying input", zap.Int("day", day), zap.String("query", sql))
	q := client.Query(sql)
	q.Parameters = []bigquery.QueryParameter{{Name: "day", Value: day}}
	it, err := q.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to query input of day %d: %w", day, err)
	}

	input, lines, err := readInput(it)
	if err != nil {
		return "", fmt.Errorf("day %d: %w", day, err)
	}
	logger.Info("loaded input from cloud", zap.Int("day", day), zap.Int("lines", lines))
	return input, nil
}

// readInput joins the text of every row into a newline terminated input.
func readInput(it rowIterator) (string, int, error) {
	var sb strings.Builder
	lines := 0
	for {
		var row inputRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return "", 0, fmt.Errorf("failed to read input row: %w", err)
		}
		sb.WriteString(row.Text)
		sb.WriteByte('\n')
		lines++
	}
	if lines == 0 {
		return "", 0, fmt.Errorf("no stored input: %w", primitives.ErrEmptyInput)
	}
	return sb.String(), lines, nil
}
