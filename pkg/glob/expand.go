package glob

import (
	"regexp"
	"strconv"
	"strings"
)

// numericSetRe recognizes a numeric range set at the start of a brace
// group, e.g. {1..5} or {3..-2}.
var numericSetRe = regexp.MustCompile(`^\{(-?\d+)\.\.(-?\d+)\}`)

// Expand performs brace expansion on a pattern, returning one pattern
// string per alternation. A pattern without braces (or with NoBrace
// set) expands to itself. Expansion never fails: a stray unclosed
// brace is literalized with a backslash and the pattern is expanded
// again.
func Expand(pattern string, opts *Options) []string {
	if opts != nil && opts.NoBrace {
		return []string{pattern}
	}
	if !strings.ContainsRune(pattern, '{') {
		return []string{pattern}
	}

	i := indexUnescapedBrace(pattern)
	if i < 0 {
		return []string{pattern}
	}
	prefix := pattern[:i]

	if m := numericSetRe.FindStringSubmatch(pattern[i:]); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		suffixes := Expand(pattern[i+len(m[0]):], opts)
		step := 1
		if start > end {
			step = -1
		}
		var out []string
		for n := start; ; n += step {
			for _, suffix := range suffixes {
				out = append(out, prefix+strconv.Itoa(n)+suffix)
			}
			if n == end {
				break
			}
		}
		return out
	}

	members, closeIdx := splitChoiceSet(pattern, i)
	if closeIdx < 0 {
		// No closing brace: literalize the stray '{' and retry.
		return Expand(pattern[:i]+`\`+pattern[i:], opts)
	}

	suffixes := Expand(pattern[closeIdx+1:], opts)
	var out []string
	if len(members) == 1 {
		// A single-member set {x} keeps its braces.
		for _, expanded := range Expand(members[0], opts) {
			for _, suffix := range suffixes {
				out = append(out, prefix+"{"+expanded+"}"+suffix)
			}
		}
		return out
	}
	for _, member := range members {
		for _, expanded := range Expand(member, opts) {
			for _, suffix := range suffixes {
				out = append(out, prefix+expanded+suffix)
			}
		}
	}
	return out
}

// indexUnescapedBrace returns the index of the first '{' that is not
// preceded by a backslash escape, or -1.
func indexUnescapedBrace(pattern string) int {
	escaping := false
	for i := 0; i < len(pattern); i++ {
		if escaping {
			escaping = false
			continue
		}
		switch pattern[i] {
		case '\\':
			escaping = true
		case '{':
			return i
		}
	}
	return -1
}

// splitChoiceSet splits the brace group opening at index open into its
// comma-separated members, honoring escapes and nested groups. It
// returns the member list and the index of the closing brace, or -1
// when the group is never closed.
func splitChoiceSet(pattern string, open int) ([]string, int) {
	depth := 0
	memberStart := open + 1
	var members []string
	escaping := false
	for j := open; j < len(pattern); j++ {
		if escaping {
			escaping = false
			continue
		}
		switch pattern[j] {
		case '\\':
			escaping = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				members = append(members, pattern[memberStart:j])
				return members, j
			}
		case ',':
			if depth == 1 {
				members = append(members, pattern[memberStart:j])
				memberStart = j + 1
			}
		}
	}
	return nil, -1
}
