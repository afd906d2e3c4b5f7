package webvtt

import "strings"

// single key:value cue setting
type StyleEntry struct {
	Key   string
	Value string
}

// ordered key:value settings from a cue timing line. Keys keep the position
// of their first appearance; setting an existing key replaces its value.
type Style struct {
	entries []StyleEntry
}

// parses whitespace separated key:value tokens; a token without a colon
// becomes a key with an empty value
func ParseStyle(segment string) Style {
	var s Style
	for _, token := range strings.Fields(segment) {
		key, value, _ := strings.Cut(token, ":")
		s.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return s
}

func (s *Style) Set(key, value string) {
	for i := range s.entries {
		if s.entries[i].Key == key {
			s.entries[i].Value = value
			return
		}
	}
	s.entries = append(s.entries, StyleEntry{Key: key, Value: value})
}

func (s Style) Get(key string) (string, bool) {
	for _, e := range s.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

func (s *Style) Delete(key string) {
	for i := range s.entries {
		if s.entries[i].Key == key {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s Style) Len() int {
	return len(s.entries)
}

// entries in insertion order; the returned slice is a copy
func (s Style) Entries() []StyleEntry {
	if len(s.entries) == 0 {
		return nil
	}
	out := make([]StyleEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s Style) Clone() Style {
	return Style{entries: s.Entries()}
}

// space separated key:value pairs
func (s Style) String() string {
	parts := make([]string, len(s.entries))
	for i, e := range s.entries {
		parts[i] = e.Key + ":" + e.Value
	}
	return strings.Join(parts, " ")
}
