// Package glob implements the EditorConfig pattern language: shell-style
// globbing with brace expansion, numeric range sets, character classes,
// globstar (**) segment spanning and POSIX-like dot handling.
package glob

import "strings"

// Glob is a compiled pattern. A Glob is immutable and safe for
// concurrent use once compiled.
type Glob struct {
	// Pattern is the original, unexpanded pattern string.
	Pattern string

	opts    *Options
	negate  bool
	empty   bool
	comment bool
	cases   []*compiledCase
}

// New compiles a pattern under the given options. Compilation never
// fails: malformed constructs are literalized. A nil opts compiles
// with defaults.
func New(pattern string, opts *Options) *Glob {
	if opts == nil {
		opts = &Options{}
	}
	g := &Glob{Pattern: pattern, opts: opts}

	p := pattern
	if !opts.NoComment && strings.HasPrefix(p, "#") {
		g.comment = true
		return g
	}
	if !opts.NoNegate {
		for strings.HasPrefix(p, "!") {
			g.negate = !g.negate
			p = p[1:]
		}
	}
	if p == "" {
		g.empty = true
		return g
	}
	if opts.AllowWindowsPathsInPatterns {
		p = strings.ReplaceAll(p, "\\", "/")
	}
	for _, alt := range Expand(p, opts) {
		g.cases = append(g.cases, compileCase(alt, opts))
	}
	return g
}

// Match reports whether input matches the glob. Comment globs never
// match; an empty glob matches only the empty input. Negation and
// FlipNegate are accounted for.
func (g *Glob) Match(input string) bool {
	if g.comment {
		return false
	}
	if g.empty {
		return g.result(input == "")
	}
	for _, c := range g.cases {
		if c.match(input, g.opts) {
			return g.result(true)
		}
	}
	return g.result(false)
}

// MatchedPattern reports whether input matches, returning the pattern
// string that applied. Under NoNull the original pattern is returned
// even on a miss.
func (g *Glob) MatchedPattern(input string) (string, bool) {
	if g.Match(input) {
		return g.Pattern, true
	}
	if g.opts.NoNull {
		return g.Pattern, false
	}
	return "", false
}

// IsComment reports whether the pattern is a comment.
func (g *Glob) IsComment() bool { return g.comment }

// IsNegated reports whether the pattern carries an odd number of
// leading negations.
func (g *Glob) IsNegated() bool { return g.negate }

func (g *Glob) result(hit bool) bool {
	if hit {
		if g.opts.FlipNegate {
			return true
		}
		return !g.negate
	}
	return g.negate && !g.opts.FlipNegate
}
