package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/webvtt/internal/webvtt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var convertCmd = &cobra.Command{
	Use:   "convert [srt_file...]",
	Short: "Convert SRT subtitles to WebVTT",
	Long: `Convert one or more SubRip (SRT) files to WebVTT.

Timestamps are zero-padded and switched from comma to dot milliseconds,
and the WEBVTT header is added. The result is parsed before it is written,
so a file that does not convert cleanly is reported instead of saved.

Each input is written next to itself with a .vtt extension unless
--output is given (single input only) or output.dir is configured.

Examples:
  webvtt convert movie.srt
  webvtt convert movie.srt -o subs/movie.vtt
  webvtt convert season1/*.srt --concurrency 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		Int("concurrency", 0, "Number of files converted in parallel (default from config)")
	convertCmd.Flags().
		Bool("force", false, "Overwrite existing output files")
}

type convertResult struct {
	input  string
	output string
	cues   int
}

func runConvert(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	force, _ := cmd.Flags().GetBool("force")

	if outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output can only be used with a single input file")
	}
	if concurrency == 0 {
		concurrency = cfg.Convert.Concurrency
	}
	if concurrency < 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}

	logger.Infow("Starting SRT conversion",
		"files", len(args),
		"concurrency", concurrency,
	)

	outputs, err := convertOutputs(args, outputPath)
	if err != nil {
		return err
	}

	results := make([]convertResult, len(args))

	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)

	for i, srtPath := range args {
		i, srtPath := i, srtPath
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if !strings.EqualFold(filepath.Ext(srtPath), ".srt") {
				logger.Warnw("Input does not have an .srt extension",
					"input", srtPath,
				)
			}

			output := outputs[i]
			if err := checkOverwrite(output, force); err != nil {
				return err
			}

			file, err := webvtt.ConvertSRTFile(srtPath, output)
			if err != nil {
				return fmt.Errorf("failed to convert %s: %w", srtPath, err)
			}

			logger.Debugw("Converted subtitle file",
				"input", srtPath,
				"output", file.Path,
				"cues", file.Document.Len(),
			)

			results[i] = convertResult{
				input:  srtPath,
				output: file.Path,
				cues:   file.Document.Len(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	logger.Infow("Conversion complete",
		"files", len(results),
	)

	out := cmd.OutOrStdout()
	for _, result := range results {
		absOutput, _ := filepath.Abs(result.output)
		fmt.Fprintf(out, "Subtitles converted successfully: %s\n", absOutput)
		fmt.Fprintf(out, "  Entries: %d\n", result.cues)
	}

	return nil
}

// derives every output path and rejects inputs that share one
func convertOutputs(inputs []string, outputPath string) ([]string, error) {
	outputs := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))

	for i, input := range inputs {
		output := outputPath
		if output == "" {
			output = convertedPath(input)
		}

		key, err := filepath.Abs(output)
		if err != nil {
			key = filepath.Clean(output)
		}
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf(
				"inputs %s and %s would both be written to %s",
				prev,
				input,
				output,
			)
		}
		seen[key] = input
		outputs[i] = output
	}

	return outputs, nil
}
