package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

const maxPreviewRunes = 40

var infoCmd = &cobra.Command{
	Use:   "info [subtitle_file]",
	Short: "Print a summary of a subtitle track",
	Long: `Print the header, every cue and the track length of a WebVTT
(or SRT) file.

Examples:
  webvtt info movie.vtt
  webvtt info movie.srt --cues=false`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().
		Bool("cues", true, "List every cue in a table")
}

func runInfo(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	showCues, _ := cmd.Flags().GetBool("cues")

	doc, err := loadDocument(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to load subtitle file: %w", err)
	}

	logger.Debugw("Parsed subtitle file",
		"input", subtitlePath,
		"entries", doc.Len(),
	)

	out := cmd.OutOrStdout()
	firstLine, _, _ := strings.Cut(doc.Header(), "\n")
	fmt.Fprintf(out, "Header: %s\n", firstLine)
	fmt.Fprintf(out, "Entries: %d\n", doc.Len())

	if doc.Len() == 0 {
		return nil
	}

	fmt.Fprintf(out, "Total length: %.3fs\n", doc.TotalLength())
	fmt.Fprintf(out, "Actual length: %.3fs\n", doc.ActualTotalLength())

	if !showCues {
		return nil
	}

	cues := doc.Cues()
	rows := make([][]string, len(cues))
	for i, cue := range cues {
		rows[i] = []string{
			strconv.Itoa(i),
			cue.Identifier,
			cue.Start.String(),
			cue.End.String(),
			fmt.Sprintf("%.3f", cue.Length()),
			cue.Style.String(),
			preview(cue.Text),
		}
	}

	fmt.Fprintln(out, renderTable(
		[]string{"#", "ID", "Start", "End", "Length", "Style", "Text"},
		rows,
		0, 4,
	))

	return nil
}

// first line of text, shortened for table display
func preview(text string) string {
	line, _, more := strings.Cut(text, "\n")
	if utf8.RuneCountInString(line) > maxPreviewRunes {
		runes := []rune(line)
		return string(runes[:maxPreviewRunes-1]) + "…"
	}
	if more {
		return line + " …"
	}
	return line
}
