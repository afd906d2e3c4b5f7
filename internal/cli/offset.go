package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/webvtt/internal/webvtt"
	"github.com/spf13/cobra"
)

var offsetCmd = &cobra.Command{
	Use:   "offset [subtitle_file]",
	Short: "Shift cue timings by a number of seconds",
	Long: `Shift the start and end of every cue, or of a single cue, by a
number of seconds. Negative values move cues earlier.

Cues shifted before zero are written as-is and reported as warnings.

Examples:
  webvtt offset movie.vtt --seconds 1.5
  webvtt offset movie.vtt --seconds -0.25 -o synced.vtt
  webvtt offset movie.srt --seconds 2 --index 0`,
	Args: cobra.ExactArgs(1),
	RunE: runOffset,
}

func init() {
	rootCmd.AddCommand(offsetCmd)

	offsetCmd.Flags().
		Float64P("seconds", "s", 0, "Offset in seconds (required)")
	offsetCmd.Flags().
		Int("index", -1, "Shift only the cue at this zero-based index")
	offsetCmd.Flags().
		Bool("force", false, "Overwrite an existing output file")

	_ = offsetCmd.MarkFlagRequired("seconds")
}

func runOffset(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	seconds, _ := cmd.Flags().GetFloat64("seconds")
	index, _ := cmd.Flags().GetInt("index")
	force, _ := cmd.Flags().GetBool("force")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		outputPath = suffixedPath(subtitlePath, "offset")
	}
	if err := checkOverwrite(outputPath, force); err != nil {
		return err
	}

	logger.Infow("Shifting subtitle timings",
		"input", subtitlePath,
		"output", outputPath,
		"seconds", seconds,
		"index", index,
	)

	doc, err := loadDocument(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to load subtitle file: %w", err)
	}

	if index >= 0 {
		if err := doc.OffsetCue(index, seconds); err != nil {
			return fmt.Errorf("failed to shift cue: %w", err)
		}
	} else {
		doc.OffsetBy(seconds)
	}

	for i, cue := range doc.Cues() {
		if cue.Start.Milliseconds() < 0 {
			logger.Warnw("Cue starts before zero",
				"index", i,
				"start", cue.Start.String(),
			)
		}
	}

	if err := webvtt.WriteText(outputPath, doc.String()); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Subtitles shifted successfully: %s\n", absOutput)
	fmt.Fprintf(out, "  Entries: %d\n", doc.Len())
	fmt.Fprintf(out, "  Offset: %+.3fs\n", seconds)

	return nil
}
