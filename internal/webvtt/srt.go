package webvtt

import (
	"regexp"
	"strings"
)

var (
	singleDigitFieldRegex = regexp.MustCompile(`(?m)(^|:|-->[ \t]*)(\d)([,:])`)
	srtMillisRegex        = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}),(\d{3})`)
)

// rewrites SRT text into WebVTT text that ParseDocument accepts. Only
// timestamps are rewritten; the SRT block structure is not validated.
func ConvertSRT(srt string) string {
	text := normalizeLineEndings(srt)
	text = padTimestampFields(text)
	text = convertMillisSeparator(text)
	return prependHeader(text)
}

func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// zero-pads single digit fields at line start, after a colon or after the
// timing arrow, e.g. 1:2:3,000 -> 01:02:03,000. Adjacent fields share a
// colon, so one pass can leave every other field unpadded; repeat until
// stable.
func padTimestampFields(text string) string {
	for {
		padded := singleDigitFieldRegex.ReplaceAllString(text, "${1}0${2}${3}")
		if padded == text {
			return padded
		}
		text = padded
	}
}

// HH:MM:SS,mmm -> HH:MM:SS.mmm
func convertMillisSeparator(text string) string {
	return srtMillisRegex.ReplaceAllString(text, "${1}.${2}")
}

func prependHeader(text string) string {
	return strings.TrimSpace(defaultHeader + "\n\n" + text)
}
