package properties

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAddAndGet(t *testing.T) {
	s := NewSet()
	s.Add("Indent_Style", "space")
	s.Add("indent_size", "4")

	v, ok := s.Get("indent_style")
	assert.True(t, ok)
	assert.Equal(t, "space", v)

	// Lookup is case-insensitive on both sides.
	v, ok = s.Get("INDENT_SIZE")
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	_, ok = s.Get("charset")
	assert.False(t, ok)
}

func TestSetInsertionOrder(t *testing.T) {
	s := NewSet()
	s.Add("b", "1")
	s.Add("a", "2")
	s.Add("c", "3")
	s.Add("a", "4") // overwrite keeps position

	assert.Equal(t, []string{"b", "a", "c"}, s.Keys())
	assert.Equal(t, 3, s.Len())

	v, _ := s.Get("a")
	assert.Equal(t, "4", v)
}

func TestNormalizeLowercasesKnownValues(t *testing.T) {
	s := NewSet()
	s.Add("indent_style", "SPACE")
	s.Add("end_of_line", "CRLF")
	s.Add("some_custom_key", "MixedCase")
	s.Normalize("")

	v, _ := s.Get("indent_style")
	assert.Equal(t, "space", v)
	v, _ = s.Get("end_of_line")
	assert.Equal(t, "crlf", v)

	// Unrecognized keys pass through verbatim.
	v, _ = s.Get("some_custom_key")
	assert.Equal(t, "MixedCase", v)
}

func TestNormalizeDropsEmpty(t *testing.T) {
	s := NewSet()
	s.Add("charset", "")
	s.Add("indent_size", "2")
	s.Normalize("")

	_, ok := s.Get("charset")
	assert.False(t, ok)
	assert.Equal(t, []string{"indent_size"}, s.Keys())
}

func TestNormalizeStripsRoot(t *testing.T) {
	s := NewSet()
	s.Add("root", "true")
	s.Add("indent_style", "tab")
	s.Normalize("")

	_, ok := s.Get("root")
	assert.False(t, ok)
}

func TestNormalizeIndentSizeInference(t *testing.T) {
	tests := []struct {
		name           string
		style          string
		size           string
		developVersion string
		wantSize       string
		wantPresent    bool
	}{
		{"tab implies indent_size tab", "tab", "", "", "tab", true},
		{"explicit size wins", "tab", "4", "", "4", true},
		{"space implies nothing", "space", "", "", "", false},
		{"old version suppresses", "tab", "", "0.8.0", "", false},
		{"gate version allows", "tab", "", "0.9.0", "tab", true},
		{"newer version allows", "tab", "", "0.13.0", "tab", true},
		{"prerelease tag ignored", "tab", "", "0.9.0-beta", "tab", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet()
			s.Add("indent_style", tt.style)
			if tt.size != "" {
				s.Add("indent_size", tt.size)
			}
			s.Normalize(tt.developVersion)

			v, ok := s.Get("indent_size")
			assert.Equal(t, tt.wantPresent, ok)
			if tt.wantPresent {
				assert.Equal(t, tt.wantSize, v)
			}
		})
	}
}

func TestIndentStyleProjection(t *testing.T) {
	s := NewSet()
	s.Add("indent_style", "tab")
	style, ok := s.IndentStyle()
	require.True(t, ok)
	assert.Equal(t, IndentStyleTab, style)

	s.Add("indent_style", "banana")
	_, ok = s.IndentStyle()
	assert.False(t, ok)

	_, ok = NewSet().IndentStyle()
	assert.False(t, ok)
}

func TestIndentSizeProjection(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  IndentSize
		ok    bool
	}{
		{"positive integer", "4", IndentSize{Value: 4}, true},
		{"tab sentinel", "tab", IndentSize{UseTabWidth: true}, true},
		{"zero", "0", IndentSize{}, false},
		{"negative", "-2", IndentSize{}, false},
		{"word", "banana", IndentSize{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet()
			s.Add("indent_size", tt.value)
			got, ok := s.IndentSize()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTabWidthProjection(t *testing.T) {
	s := NewSet()
	s.Add("tab_width", "8")
	n, ok := s.TabWidth()
	require.True(t, ok)
	assert.Equal(t, 8, n)

	s.Add("tab_width", "wide")
	_, ok = s.TabWidth()
	assert.False(t, ok)
}

func TestEndOfLineProjection(t *testing.T) {
	for _, v := range []string{"lf", "cr", "crlf"} {
		s := NewSet()
		s.Add("end_of_line", v)
		eol, ok := s.EndOfLine()
		assert.True(t, ok, v)
		assert.Equal(t, EndOfLine(v), eol)
	}

	s := NewSet()
	s.Add("end_of_line", "lfcr")
	_, ok := s.EndOfLine()
	assert.False(t, ok)
}

func TestCharsetProjection(t *testing.T) {
	for _, v := range []string{"latin1", "utf-8", "utf-8-bom", "utf-16be", "utf-16le"} {
		s := NewSet()
		s.Add("charset", v)
		cs, ok := s.Charset()
		assert.True(t, ok, v)
		assert.Equal(t, Charset(v), cs)
	}

	s := NewSet()
	s.Add("charset", "ascii")
	_, ok := s.Charset()
	assert.False(t, ok)
}

func TestBoolProjections(t *testing.T) {
	s := NewSet()
	s.Add("trim_trailing_whitespace", "true")
	s.Add("insert_final_newline", "false")

	v, ok := s.TrimTrailingWhitespace()
	require.True(t, ok)
	assert.True(t, v)

	v, ok = s.InsertFinalNewline()
	require.True(t, ok)
	assert.False(t, v)

	s.Add("insert_final_newline", "yes")
	_, ok = s.InsertFinalNewline()
	assert.False(t, ok)
}

func TestBogus(t *testing.T) {
	s := NewSet()
	s.Add("indent_size", "banana")
	s.Add("indent_style", "space")
	s.Add("charset", "ascii")
	s.Add("custom_key", "anything goes")

	assert.Equal(t, []string{"indent_size", "charset"}, s.Bogus())

	// Bogus values survive in the raw map.
	v, ok := s.Get("indent_size")
	require.True(t, ok)
	assert.Equal(t, "banana", v)
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"", true},
		{"0.9.0", true},
		{"0.9.1", true},
		{"0.10.0", true},
		{"1.0.0", true},
		{"0.8.9", false},
		{"0.8", false},
		{"garbage", true},
		{"0.9.0-rc1", true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, versionAtLeast(tt.version, 0, 9, 0))
		})
	}
}

func TestVersionAtLeastLogsUnparsable(t *testing.T) {
	var buf bytes.Buffer
	old := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = old }()
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(oldLevel)

	assert.True(t, versionAtLeast("0.banana.0", 0, 9, 0))
	assert.Contains(t, buf.String(), "unparsable develop version")
	assert.Contains(t, buf.String(), "0.banana.0")

	buf.Reset()
	assert.True(t, versionAtLeast("1.0.0", 0, 9, 0))
	assert.Empty(t, buf.String())
}
