// Package ini parses EditorConfig files: an INI dialect with a global
// preamble, glob-named sections, and '#'/';' comments. Parsing is
// forgiving: unrecognizable lines are skipped and never fail the file.
package ini

import (
	"strings"
)

// LineKind discriminates the parsed line variants.
type LineKind int

const (
	LineComment LineKind = iota
	LineProperty
	LineSectionHeader
)

// Line is one recognized line of a config file. Number is 1-based and
// counts every physical line, including skipped ones.
type Line struct {
	Number int
	Kind   LineKind

	// LineProperty
	Key   string
	Value string

	// LineSectionHeader
	Name string

	// LineComment: text after the marker
	Text string

	// Raw is the line as serialized by String. For parsed lines it is
	// the source text; Set rewrites it.
	Raw string
}

// Section is a named group of properties plus the comments interleaved
// with them. The Global pseudo-section collects everything before the
// first header.
type Section struct {
	Name  string
	Lines []Line

	keyIndex map[string]int
}

// Get returns the value for a property key, case-insensitively.
func (s *Section) Get(key string) (string, bool) {
	s.buildIndex()
	i, ok := s.keyIndex[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return s.Lines[i].Value, true
}

// Set updates a property in place, or appends it when absent. Appended
// lines carry no source line number.
func (s *Section) Set(key, value string) {
	s.buildIndex()
	lower := strings.ToLower(key)
	if i, ok := s.keyIndex[lower]; ok {
		s.Lines[i].Value = value
		s.Lines[i].Raw = s.Lines[i].Key + " = " + value
		return
	}
	s.Lines = append(s.Lines, Line{
		Kind:  LineProperty,
		Key:   key,
		Value: value,
		Raw:   key + " = " + value,
	})
	s.keyIndex[lower] = len(s.Lines) - 1
}

// Keys returns the property keys in declaration order.
func (s *Section) Keys() []string {
	var keys []string
	for _, line := range s.Lines {
		if line.Kind == LineProperty {
			keys = append(keys, line.Key)
		}
	}
	return keys
}

// buildIndex constructs the key lookup lazily; later declarations of
// the same key win, matching last-writer-wins merge semantics.
func (s *Section) buildIndex() {
	if s.keyIndex != nil {
		return
	}
	s.keyIndex = make(map[string]int)
	for i, line := range s.Lines {
		if line.Kind == LineProperty {
			s.keyIndex[strings.ToLower(line.Key)] = i
		}
	}
}

// File is one parsed config file.
type File struct {
	// Path is where the file was read from; Dir is its directory with
	// forward slashes, used to anchor section globs.
	Path string
	Dir  string

	// Global collects lines before the first section header.
	Global *Section

	// Sections in declaration order.
	Sections []*Section

	// Root is set when the Global section carries "root = true".
	Root bool
}

// Section returns the named section, or nil.
func (f *File) Section(name string) *Section {
	for _, s := range f.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// String serializes the file back to config syntax. Section headers
// and comments round-trip with their source text; properties rewritten
// by Set render in canonical "key = value" form.
func (f *File) String() string {
	var b strings.Builder
	writeSection := func(s *Section) {
		for _, line := range s.Lines {
			b.WriteString(line.Raw)
			b.WriteString("\n")
		}
	}
	writeSection(f.Global)
	for _, s := range f.Sections {
		writeSection(s)
	}
	return b.String()
}
