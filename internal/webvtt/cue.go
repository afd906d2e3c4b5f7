package webvtt

import (
	"fmt"
	"regexp"
	"strings"
)

var timingLineRegex = regexp.MustCompile(
	`^((?:\d{1,2}:)?[0-5]\d:[0-5]\d\.\d{3})[ \t]+-+>[ \t]+((?:\d{1,2}:)?[0-5]\d:[0-5]\d\.\d{3})(?:[ \t]+(.*))?$`,
)

// represents one timed subtitle entry
type Cue struct {
	Identifier string // empty when the cue has none
	Start      Timestamp
	End        Timestamp
	Style      Style
	Text       string
}

// parses a single blank-line delimited cue block. A nil cue with a nil
// error means the block carries no cue text (a NOTE comment or a block that
// ends after its identifier) and should be skipped.
func ParseCue(block string) (*Cue, error) {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil, nil
	}

	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	if isComment(lines) {
		return nil, nil
	}

	cue := &Cue{}
	if !strings.Contains(lines[0], "-->") {
		cue.Identifier = lines[0]
		lines = lines[1:]
	}

	if len(lines) == 0 {
		return nil, nil
	}

	matches := timingLineRegex.FindStringSubmatch(lines[0])
	if matches == nil {
		return nil, fmt.Errorf("%w: invalid cue timing %q", ErrMalformedFile, lines[0])
	}

	start, err := ParseTimestamp(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid start timestamp: %w", err)
	}
	end, err := ParseTimestamp(matches[2])
	if err != nil {
		return nil, fmt.Errorf("invalid end timestamp: %w", err)
	}

	cue.Start = start
	cue.End = end
	cue.Style = ParseStyle(matches[3])
	cue.Text = strings.Join(lines[1:], "\n")

	return cue, nil
}

// a block whose first line starts with NOTE is a comment, unless that line
// is really an identifier followed by a timing line (e.g. NOTEWORTHY)
func isComment(lines []string) bool {
	rest, ok := strings.CutPrefix(lines[0], "NOTE")
	if !ok || strings.Contains(rest, "-->") {
		return false
	}
	if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
		return true
	}
	return len(lines) < 2 || !strings.Contains(lines[1], "-->")
}

// serializes the cue block without a trailing blank line
func (c *Cue) String() string {
	var sb strings.Builder

	if c.Identifier != "" {
		sb.WriteString(c.Identifier)
		sb.WriteString("\n")
	}

	timing := fmt.Sprintf("%s --> %s %s", c.Start, c.End, c.Style)
	sb.WriteString(strings.TrimSpace(timing))
	sb.WriteString("\n")
	sb.WriteString(c.Text)

	return sb.String()
}

// shifts start and end in place; the offset is rounded to microseconds
// and then truncated to whole milliseconds
func (c *Cue) OffsetBy(offsetSeconds float64) {
	offsetMillis := int64(roundTo(offsetSeconds*1000, 3))

	c.Start = c.Start.Add(offsetMillis)
	c.End = c.End.Add(offsetMillis)
}

func (c *Cue) StartSeconds() float64 {
	return c.Start.Seconds()
}

func (c *Cue) EndSeconds() float64 {
	return c.End.Seconds()
}

// end minus start, in seconds
func (c *Cue) Length() float64 {
	return c.End.Seconds() - c.Start.Seconds()
}

// deep copy
func (c *Cue) Clone() Cue {
	out := *c
	out.Style = c.Style.Clone()
	return out
}

// reports whether both cues carry the same identifier, timing, style and text
func (c *Cue) Equal(other *Cue) bool {
	if c.Identifier != other.Identifier ||
		!c.Start.Equal(other.Start) ||
		!c.End.Equal(other.End) ||
		c.Text != other.Text ||
		c.Style.Len() != other.Style.Len() {
		return false
	}
	for i, e := range c.Style.entries {
		if other.Style.entries[i] != e {
			return false
		}
	}
	return true
}
