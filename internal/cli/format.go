package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/webvtt/internal/webvtt"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [subtitle_file]",
	Short: "Re-emit a subtitle file as normalized WebVTT",
	Long: `Parse a WebVTT (or SRT) file and write it back out in normalized
form: LF line endings, two-digit hours, NOTE blocks removed and a single
blank line between cues.

The result goes to stdout unless --output is given.

Examples:
  webvtt format movie.vtt
  webvtt format movie.srt -o movie.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().
		Bool("force", false, "Overwrite an existing output file")
}

func runFormat(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	doc, err := loadDocument(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to load subtitle file: %w", err)
	}

	if outputPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), doc.String())
		return nil
	}

	if err := checkOverwrite(outputPath, force); err != nil {
		return err
	}

	logger.Infow("Writing output file",
		"output", outputPath,
		"entries", doc.Len(),
	)
	if err := webvtt.WriteText(outputPath, doc.String()); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles written successfully: %s\n", absOutput)

	return nil
}
