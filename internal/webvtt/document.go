package webvtt

import (
	"fmt"
	"regexp"
	"strings"
)

const defaultHeader = "WEBVTT"

var blockSeparatorRegex = regexp.MustCompile(`\n\n+`)

// represents a complete WebVTT track. The document owns its cues: they are
// stored by value, copied on the way in and out, and only mutated through
// document methods.
type Document struct {
	header string
	cues   []Cue
}

func NewDocument() *Document {
	return &Document{header: defaultHeader}
}

// parses a complete WebVTT text. Blocks that carry no cue text, such as
// NOTE comments, are dropped.
func ParseDocument(content string) (*Document, error) {
	content = normalizeLineEndings(content)
	content = strings.TrimPrefix(content, "\ufeff")

	blocks := splitBlocks(content)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedFile)
	}

	header := blocks[0]
	firstLine, _, _ := strings.Cut(header, "\n")
	if !strings.HasPrefix(strings.TrimSpace(firstLine), defaultHeader) {
		return nil, fmt.Errorf("%w: missing WEBVTT header", ErrMalformedFile)
	}

	doc := &Document{header: header}
	for i, block := range blocks[1:] {
		cue, err := ParseCue(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		if cue == nil {
			continue
		}
		doc.cues = append(doc.cues, *cue)
	}

	return doc, nil
}

// splits on runs of blank lines, discarding trailing empty blocks
func splitBlocks(content string) []string {
	blocks := blockSeparatorRegex.Split(content, -1)
	for len(blocks) > 0 && blocks[len(blocks)-1] == "" {
		blocks = blocks[:len(blocks)-1]
	}
	return blocks
}

func (d *Document) Header() string {
	return d.header
}

func (d *Document) Len() int {
	return len(d.cues)
}

// copies of all cues in presentation order
func (d *Document) Cues() []Cue {
	out := make([]Cue, len(d.cues))
	for i := range d.cues {
		out[i] = d.cues[i].Clone()
	}
	return out
}

// copy of the cue at index
func (d *Document) Cue(index int) (Cue, error) {
	if err := d.checkIndex(index); err != nil {
		return Cue{}, err
	}
	return d.cues[index].Clone(), nil
}

// appends a copy of cue
func (d *Document) Append(cue Cue) {
	d.cues = append(d.cues, cue.Clone())
}

func (d *Document) SetText(index int, text string) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.cues[index].Text = text
	return nil
}

func (d *Document) OffsetCue(index int, offsetSeconds float64) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.cues[index].OffsetBy(offsetSeconds)
	return nil
}

// shifts every cue by offsetSeconds
func (d *Document) OffsetBy(offsetSeconds float64) {
	for i := range d.cues {
		d.cues[i].OffsetBy(offsetSeconds)
	}
}

func (d *Document) checkIndex(index int) error {
	if index < 0 || index >= len(d.cues) {
		return fmt.Errorf(
			"index %d out of range (0-%d)",
			index,
			len(d.cues)-1,
		)
	}
	return nil
}

// end of the last cue in seconds; panics on a document without cues
func (d *Document) TotalLength() float64 {
	return d.cues[len(d.cues)-1].EndSeconds()
}

// span from the first cue's start to the last cue's end in seconds; panics
// on a document without cues
func (d *Document) ActualTotalLength() float64 {
	return d.cues[len(d.cues)-1].EndSeconds() - d.cues[0].StartSeconds()
}

// serializes header and cues separated by blank lines
func (d *Document) String() string {
	blocks := make([]string, 0, len(d.cues)+1)
	blocks = append(blocks, d.header)
	for i := range d.cues {
		blocks = append(blocks, d.cues[i].String())
	}
	return strings.Join(blocks, "\n\n")
}
