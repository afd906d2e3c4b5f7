package webvtt

import (
	"errors"
	"testing"
)

func TestParseCue(t *testing.T) {
	block := "intro\n00:00:01.000 --> 00:00:04.000 align:start position:10%\nHello, world!\nSecond line"

	cue, err := ParseCue(block)
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue == nil {
		t.Fatal("expected cue, got nil")
	}

	if cue.Identifier != "intro" {
		t.Errorf("expected identifier %q, got %q", "intro", cue.Identifier)
	}
	if cue.Start.Milliseconds() != 1000 {
		t.Errorf("expected start 1000ms, got %d", cue.Start.Milliseconds())
	}
	if cue.End.Milliseconds() != 4000 {
		t.Errorf("expected end 4000ms, got %d", cue.End.Milliseconds())
	}
	if v, _ := cue.Style.Get("align"); v != "start" {
		t.Errorf("expected align:start, got %q", v)
	}
	if v, _ := cue.Style.Get("position"); v != "10%" {
		t.Errorf("expected position:10%%, got %q", v)
	}
	if cue.Text != "Hello, world!\nSecond line" {
		t.Errorf("unexpected text %q", cue.Text)
	}
}

func TestParseCueWithoutIdentifier(t *testing.T) {
	cue, err := ParseCue("00:01.000 --> 00:02.500\nNo cue identifier.")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue.Identifier != "" {
		t.Errorf("expected no identifier, got %q", cue.Identifier)
	}
	if cue.End.Milliseconds() != 2500 {
		t.Errorf("expected end 2500ms, got %d", cue.End.Milliseconds())
	}
	if cue.Style.Len() != 0 {
		t.Errorf("expected empty style, got %q", cue.Style)
	}
}

func TestParseCueTrimsLines(t *testing.T) {
	cue, err := ParseCue("  1  \n  00:00:01.000 --> 00:00:02.000  \n  Hi  \n")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue.Identifier != "1" || cue.Text != "Hi" {
		t.Errorf("expected trimmed identifier and text, got %q / %q", cue.Identifier, cue.Text)
	}
}

func TestParseCueAcceptsLongArrow(t *testing.T) {
	cue, err := ParseCue("00:00:01.000 ---> 00:00:02.000\nHi")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue.End.Milliseconds() != 2000 {
		t.Errorf("expected end 2000ms, got %d", cue.End.Milliseconds())
	}
}

func TestParseCueWithoutText(t *testing.T) {
	tests := []struct {
		name  string
		block string
	}{
		{name: "note", block: "NOTE"},
		{name: "note with comment", block: "NOTE this is a comment\nspanning lines"},
		{name: "note with tab", block: "NOTE\tcomment"},
		{name: "note with colon", block: "NOTE: translator comment\nsecond line"},
		{name: "note with dash", block: "NOTE-translator\nkeep this wording"},
		{name: "identifier only", block: "chapter-1"},
		{name: "blank", block: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue, err := ParseCue(tt.block)
			if err != nil {
				t.Fatalf("ParseCue returned error: %v", err)
			}
			if cue != nil {
				t.Errorf("expected nil cue, got %+v", cue)
			}
		})
	}
}

func TestParseCueNoteLikeIdentifier(t *testing.T) {
	cue, err := ParseCue("NOTEWORTHY\n00:00:01.000 --> 00:00:02.000\nHi")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue == nil || cue.Identifier != "NOTEWORTHY" {
		t.Fatalf("expected cue with identifier NOTEWORTHY, got %+v", cue)
	}
}

func TestParseCueEmptyTextIsKept(t *testing.T) {
	cue, err := ParseCue("1\n00:00:01.000 --> 00:00:02.000")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}
	if cue == nil {
		t.Fatal("expected cue with empty text, got nil")
	}
	if cue.Text != "" {
		t.Errorf("expected empty text, got %q", cue.Text)
	}
}

func TestParseCueMalformedTiming(t *testing.T) {
	tests := []string{
		"1\nnot a timing line",
		"00:00:01 --> 00:00:02\nHi",
		"00:00:01.000 -> 00:00:02.000\nHi",
		"1\n00:00:01.000 --> 00:00:02.000x\nHi",
		"1\n00:00:01.000 --> 00:61:02.000\nHi",
	}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseCue(tt)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrMalformedFile) {
				t.Errorf("expected ErrMalformedFile, got %v", err)
			}
		})
	}
}

func TestCueString(t *testing.T) {
	tests := []struct {
		name string
		cue  Cue
		want string
	}{
		{
			name: "identifier and style",
			cue: Cue{
				Identifier: "1",
				Start:      NewTimestamp(1000),
				End:        NewTimestamp(2000),
				Style:      ParseStyle("align:start size:50%"),
				Text:       "Hello",
			},
			want: "1\n00:00:01.000 --> 00:00:02.000 align:start size:50%\nHello",
		},
		{
			name: "bare",
			cue: Cue{
				Start: NewTimestamp(1000),
				End:   NewTimestamp(2000),
				Text:  "Hello\nWorld",
			},
			want: "00:00:01.000 --> 00:00:02.000\nHello\nWorld",
		},
		{
			name: "empty text",
			cue: Cue{
				Start: NewTimestamp(0),
				End:   NewTimestamp(1),
			},
			want: "00:00:00.000 --> 00:00:00.001\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cue.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCueOffsetBy(t *testing.T) {
	cue, err := ParseCue("00:00:01.000 --> 00:00:02.000\nHi")
	if err != nil {
		t.Fatalf("ParseCue returned error: %v", err)
	}

	cue.OffsetBy(1.5)

	if cue.StartSeconds() != 2.5 {
		t.Errorf("expected start 2.5s, got %v", cue.StartSeconds())
	}
	if cue.EndSeconds() != 3.5 {
		t.Errorf("expected end 3.5s, got %v", cue.EndSeconds())
	}
	if cue.Length() != 1.0 {
		t.Errorf("expected length 1s, got %v", cue.Length())
	}
}

func TestCueOffsetByTruncatesSubMillisecond(t *testing.T) {
	cue := Cue{Start: NewTimestamp(1000), End: NewTimestamp(2000)}
	cue.OffsetBy(0.0015)

	if cue.Start.Milliseconds() != 1001 {
		t.Errorf("expected start 1001ms, got %d", cue.Start.Milliseconds())
	}
}

// Shifting before zero is not rejected or clamped.
func TestCueOffsetByNegativeResultIsUnguarded(t *testing.T) {
	cue := Cue{Start: NewTimestamp(1000), End: NewTimestamp(3000), Text: "Hi"}
	cue.OffsetBy(-2)

	if cue.Start.Milliseconds() != -1000 {
		t.Errorf("expected start -1000ms, got %d", cue.Start.Milliseconds())
	}
	if got := cue.String(); got != "-1:59:59.000 --> 00:00:01.000\nHi" {
		t.Errorf("unexpected serialization %q", got)
	}
}

func TestCueCloneIsIndependent(t *testing.T) {
	cue := Cue{
		Start: NewTimestamp(0),
		End:   NewTimestamp(1000),
		Style: ParseStyle("align:start"),
		Text:  "Hi",
	}

	clone := cue.Clone()
	clone.Style.Set("align", "end")
	clone.OffsetBy(1)

	if v, _ := cue.Style.Get("align"); v != "start" {
		t.Errorf("clone style mutation leaked: %q", v)
	}
	if cue.Start.Milliseconds() != 0 {
		t.Errorf("clone offset leaked: %d", cue.Start.Milliseconds())
	}
	if cue.Equal(&clone) {
		t.Error("expected modified clone to differ")
	}
}
