package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandNoBraces(t *testing.T) {
	assert.Equal(t, []string{"*.cs"}, Expand("*.cs", &Options{}))
	assert.Equal(t, []string{""}, Expand("", &Options{}))
}

func TestExpandNoBraceOption(t *testing.T) {
	assert.Equal(t, []string{"{a,b}"}, Expand("{a,b}", &Options{NoBrace: true}))
}

func TestExpandChoiceSets(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"simple", "{a,b}", []string{"a", "b"}},
		{"prefix and suffix", "x{a,b}y", []string{"xay", "xby"}},
		{"three members", "*.{cs,vb,fs}", []string{"*.cs", "*.vb", "*.fs"}},
		{"nested", "a{b,c{d,e}}f", []string{"abf", "acdf", "acef"}},
		{"suffix expands too", "{a,b}{c,d}", []string{"ac", "ad", "bc", "bd"}},
		{"empty member", "{,a}x", []string{"x", "ax"}},
		{"single member keeps braces", "{single}", []string{"{single}"}},
		{"single member with suffix", "a{b}c", []string{"a{b}c"}},
		{"escaped brace is literal", `\{a,b}`, []string{`\{a,b}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.pattern, &Options{}))
		})
	}
}

func TestExpandNumericSets(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"ascending", "{0..3}", []string{"0", "1", "2", "3"}},
		{"descending", "{3..0}", []string{"3", "2", "1", "0"}},
		{"negative bounds", "{-1..1}", []string{"-1", "0", "1"}},
		{"single value", "{5..5}", []string{"5"}},
		{"with prefix and suffix", "a{1..2}b", []string{"a1b", "a2b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.pattern, &Options{}))
		})
	}
}

func TestExpandUnclosedBrace(t *testing.T) {
	// The stray brace is literalized rather than failing.
	got := Expand("a{bc", &Options{})
	assert.Equal(t, []string{`a\{bc`}, got)

	// The literalized result still matches the raw text.
	g := New("a{bc", &Options{})
	assert.True(t, g.Match("a{bc"))
	assert.False(t, g.Match("abc"))
}

func TestExpandClosedUnderPattern(t *testing.T) {
	// Every expansion of a brace-free pattern is the pattern itself.
	for _, p := range []string{"*.cs", "a/**/b", "[ab]c", "??"} {
		assert.Equal(t, []string{p}, Expand(p, &Options{}))
	}
}
