package glob

// Options control how patterns are parsed and how inputs are matched.
// A zero Options value gives the default behavior. Options are treated
// as immutable once a Glob has been compiled against them.
type Options struct {
	// AllowWindowsPaths treats backslashes in inputs as path separators.
	AllowWindowsPaths bool

	// AllowWindowsPathsInPatterns replaces backslashes with forward
	// slashes in patterns before parsing. This disables backslash
	// escaping inside patterns.
	AllowWindowsPathsInPatterns bool

	// Dot allows dot-prefixed names to match *, ? and **. The lone
	// components "." and ".." are never matched by wildcards.
	Dot bool

	// FlipNegate treats a raw pattern hit as success regardless of
	// leading negation.
	FlipNegate bool

	// IgnoreCase compares characters with simple case folding.
	IgnoreCase bool

	// MatchBase matches a pattern without separators against the
	// basename of a slashed input.
	MatchBase bool

	// NoBrace disables brace expansion.
	NoBrace bool

	// NoComment disables treating a leading '#' as a comment pattern.
	NoComment bool

	// NoGlobstar downgrades ** to a plain *.
	NoGlobstar bool

	// NoNegate disables leading '!' negation.
	NoNegate bool

	// NoNull makes MatchedPattern return the pattern itself when no
	// match is found.
	NoNull bool
}
