// Package properties holds the resolved property set for a target file:
// an insertion-ordered raw key/value map plus strongly typed projections
// of the recognized keys.
package properties

import (
	"strconv"
	"strings"
)

// Recognized property keys. Any other key passes through verbatim.
const (
	KeyRoot                   = "root"
	KeyIndentStyle            = "indent_style"
	KeyIndentSize             = "indent_size"
	KeyTabWidth               = "tab_width"
	KeyEndOfLine              = "end_of_line"
	KeyCharset                = "charset"
	KeyTrimTrailingWhitespace = "trim_trailing_whitespace"
	KeyInsertFinalNewline     = "insert_final_newline"
)

// lowerValueKeys are the keys whose values are case-insensitive and get
// lower-cased during normalization.
var lowerValueKeys = map[string]bool{
	KeyRoot:                   true,
	KeyIndentStyle:            true,
	KeyIndentSize:             true,
	KeyTabWidth:               true,
	KeyEndOfLine:              true,
	KeyCharset:                true,
	KeyTrimTrailingWhitespace: true,
	KeyInsertFinalNewline:     true,
}

// IndentStyle is the indent_style projection.
type IndentStyle string

const (
	IndentStyleTab   IndentStyle = "tab"
	IndentStyleSpace IndentStyle = "space"
)

// IndentSize is the indent_size projection: either a positive column
// count or the UseTabWidth sentinel (value "tab").
type IndentSize struct {
	UseTabWidth bool
	Value       int
}

// EndOfLine is the end_of_line projection.
type EndOfLine string

const (
	EndOfLineLF   EndOfLine = "lf"
	EndOfLineCR   EndOfLine = "cr"
	EndOfLineCRLF EndOfLine = "crlf"
)

// Charset is the charset projection.
type Charset string

const (
	CharsetLatin1  Charset = "latin1"
	CharsetUTF8    Charset = "utf-8"
	CharsetUTF8BOM Charset = "utf-8-bom"
	CharsetUTF16BE Charset = "utf-16be"
	CharsetUTF16LE Charset = "utf-16le"
)

// Set is an insertion-ordered property map with lower-cased keys.
// The zero value is not usable; construct with NewSet.
type Set struct {
	keys   []string
	values map[string]string
}

// NewSet returns an empty property set.
func NewSet() *Set {
	return &Set{values: make(map[string]string)}
}

// Add inserts or overwrites a property. Keys are lower-cased; a key
// seen before keeps its original position.
func (s *Set) Add(key, value string) {
	key = strings.ToLower(key)
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the raw value for a key (lower-cased lookup).
func (s *Set) Get(key string) (string, bool) {
	v, ok := s.values[strings.ToLower(key)]
	return v, ok
}

// Keys returns the keys in insertion order.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of properties.
func (s *Set) Len() int {
	return len(s.keys)
}

func (s *Set) remove(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Normalize applies the post-merge rules: known-key values are
// lower-cased, empty keys and values are dropped, the root marker is
// stripped, and indent_style = tab without an indent_size implies
// indent_size = tab. The inference is suppressed when developVersion
// predates 0.9.0.
func (s *Set) Normalize(developVersion string) {
	for _, key := range s.Keys() {
		v := s.values[key]
		if key == "" || v == "" {
			s.remove(key)
			continue
		}
		if lowerValueKeys[key] {
			s.values[key] = strings.ToLower(v)
		}
	}

	if versionAtLeast(developVersion, 0, 9, 0) {
		if v, ok := s.values[KeyIndentStyle]; ok && v == "tab" {
			if _, ok := s.values[KeyIndentSize]; !ok {
				s.Add(KeyIndentSize, "tab")
			}
		}
	}

	s.remove(KeyRoot)
}

// IndentStyle projects indent_style. ok is false when the key is
// absent or its value is bogus.
func (s *Set) IndentStyle() (IndentStyle, bool) {
	v, ok := s.values[KeyIndentStyle]
	if !ok {
		return "", false
	}
	switch IndentStyle(v) {
	case IndentStyleTab, IndentStyleSpace:
		return IndentStyle(v), true
	}
	return "", false
}

// IndentSize projects indent_size: a positive integer, or UseTabWidth
// for the literal value "tab".
func (s *Set) IndentSize() (IndentSize, bool) {
	v, ok := s.values[KeyIndentSize]
	if !ok {
		return IndentSize{}, false
	}
	if v == "tab" {
		return IndentSize{UseTabWidth: true}, true
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return IndentSize{Value: n}, true
	}
	return IndentSize{}, false
}

// TabWidth projects tab_width as a positive integer.
func (s *Set) TabWidth() (int, bool) {
	v, ok := s.values[KeyTabWidth]
	if !ok {
		return 0, false
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return n, true
	}
	return 0, false
}

// EndOfLine projects end_of_line.
func (s *Set) EndOfLine() (EndOfLine, bool) {
	v, ok := s.values[KeyEndOfLine]
	if !ok {
		return "", false
	}
	switch EndOfLine(v) {
	case EndOfLineLF, EndOfLineCR, EndOfLineCRLF:
		return EndOfLine(v), true
	}
	return "", false
}

// Charset projects charset.
func (s *Set) Charset() (Charset, bool) {
	v, ok := s.values[KeyCharset]
	if !ok {
		return "", false
	}
	switch Charset(v) {
	case CharsetLatin1, CharsetUTF8, CharsetUTF8BOM, CharsetUTF16BE, CharsetUTF16LE:
		return Charset(v), true
	}
	return "", false
}

// TrimTrailingWhitespace projects trim_trailing_whitespace.
func (s *Set) TrimTrailingWhitespace() (bool, bool) {
	return s.boolKey(KeyTrimTrailingWhitespace)
}

// InsertFinalNewline projects insert_final_newline.
func (s *Set) InsertFinalNewline() (bool, bool) {
	return s.boolKey(KeyInsertFinalNewline)
}

func (s *Set) boolKey(key string) (bool, bool) {
	v, ok := s.values[key]
	if !ok {
		return false, false
	}
	switch v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// Bogus returns the recognized keys whose values fail to project,
// in insertion order. The raw values stay in the set.
func (s *Set) Bogus() []string {
	var bogus []string
	for _, key := range s.keys {
		parses := true
		switch key {
		case KeyIndentStyle:
			_, parses = s.IndentStyle()
		case KeyIndentSize:
			_, parses = s.IndentSize()
		case KeyTabWidth:
			_, parses = s.TabWidth()
		case KeyEndOfLine:
			_, parses = s.EndOfLine()
		case KeyCharset:
			_, parses = s.Charset()
		case KeyTrimTrailingWhitespace, KeyInsertFinalNewline:
			_, parses = s.boolKey(key)
		}
		if !parses {
			bogus = append(bogus, key)
		}
	}
	return bogus
}
