package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"puzzlebox.dev/aoc"
	"puzzlebox.dev/aoc/internal/config"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		part      int
		inputPath string
		cloud     bool
	)
	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve one day's puzzle",
		Long: `Reads the puzzle input of a day and prints the answer of each part.

The input is read from --input, from the BigQuery table configured under
"cloud" when --cloud is set, or else from <input_dir>/day<N>/input.txt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			puzzle, err := aoc.Lookup(day)
			if err != nil {
				return err
			}
			parts := []int{1, 2}
			if part != 0 {
				if _, err := puzzle.Part(part); err != nil {
					return err
				}
				parts = []int{part}
			}

			timeout := a.timeout
			if timeout <= 0 {
				timeout = a.cfg.GetTimeout()
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			input, err := loadInput(ctx, a.logger, a.cfg, day, inputPath, cloud)
			if err != nil {
				return err
			}

			for _, p := range parts {
				answer, err := aoc.Solve(ctx, a.logger, day, p, input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "part %d: %d\n", p, answer)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&part, "part", "p", 0, "Only solve this part (1 or 2)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read the input from this file")
	cmd.Flags().BoolVar(&cloud, "cloud", false, "Load the input from BigQuery")
	return cmd
}

func loadInput(ctx context.Context, logger *zap.Logger, cfg *config.Config, day int, path string, cloud bool) (string, error) {
	if cloud {
		if path != "" {
			return "", fmt.Errorf("cannot use both --input and --cloud")
		}
		return aoc.LoadInputFromCloud(ctx, logger, cfg.Cloud, day)
	}
	if path == "" {
		path = cfg.InputPath(day)
	}
	logger.Debug("reading input", zap.String("path", path))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
