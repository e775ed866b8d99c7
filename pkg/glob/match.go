package glob

import (
	"unicode"
	"unicode/utf8"
)

// matcher holds the stack-local state for matching one input string
// against one compiled case. The input window is [startOff, endOff)
// and the pattern window is [startItem, endItem].
type matcher struct {
	c     *compiledCase
	opts  *Options
	input string

	startOff, endOff   int
	startItem, endItem int

	// sepAfterGlobstar records that the backward sweep skipped a path
	// separator that directly trails a globstar, so the globstar must
	// absorb either nothing or a span ending in a separator.
	sepAfterGlobstar bool
}

// match reports whether input matches the case, retrying once with
// trailing path separators stripped so that "a/b/" can match "a/b".
func (c *compiledCase) match(input string, opts *Options) bool {
	if matchCase(c, input, opts) {
		return true
	}
	trimmed := trimTrailingSeps(input, opts)
	if trimmed != input {
		return matchCase(c, trimmed, opts)
	}
	return false
}

func matchCase(c *compiledCase, input string, opts *Options) bool {
	if len(c.elems) == 0 {
		return input == ""
	}
	m := &matcher{
		c:       c,
		opts:    opts,
		input:   input,
		endOff:  len(input),
		endItem: len(c.elems) - 1,
	}
	if opts.MatchBase && !c.hasPathSeparators {
		// Match against the basename only.
		for m.endOff > m.startOff && m.isSepByte(m.input[m.endOff-1]) {
			m.endOff--
		}
		for i := m.endOff - 1; i >= 0; i-- {
			if m.isSepByte(m.input[i]) {
				m.startOff = i + 1
				break
			}
		}
		m.input = m.input[:m.endOff]
	}
	return m.run()
}

func (m *matcher) run() bool {
	// Backward sweep: greedily discharge the fixed tail until the
	// last asterisk (the cursor) is reached.
	for m.endItem >= m.startItem {
		e := &m.c.elems[m.endItem]
		if e.isAsterisk() {
			break
		}
		switch e.kind {
		case kindLiteral:
			n := m.suffixLen(e.text)
			if n < 0 {
				return false
			}
			m.endOff -= n
		case kindPathSeparator:
			if m.endItem > m.startItem && m.c.elems[m.endItem-1].kind == kindDoubleAsterisk {
				// The globstar may absorb this separator along with
				// zero or more whole segments.
				m.sepAfterGlobstar = true
				m.endItem--
				continue
			}
			if m.endOff <= m.startOff || !m.isSepByte(m.input[m.endOff-1]) {
				return false
			}
			m.endOff--
			for m.endOff > m.startOff && m.isSepByte(m.input[m.endOff-1]) {
				m.endOff--
			}
		case kindOneChar:
			if m.endOff <= m.startOff {
				return false
			}
			r, size := utf8.DecodeLastRuneInString(m.input[m.startOff:m.endOff])
			if !m.oneCharMatch(e, r) {
				return false
			}
			pos := m.endOff - size
			if r == '.' && !m.dotAllowed(pos) {
				return false
			}
			m.endOff = pos
		}
		m.endItem--
	}
	if m.endItem < m.startItem {
		// The whole pattern was fixed; the input must be spent.
		return m.startOff == m.endOff
	}
	return m.matchFrom(m.startItem, m.startOff)
}

// matchFrom runs the forward sweep from the given pattern item and
// input offset up to the cursor asterisk.
func (m *matcher) matchFrom(item, off int) bool {
	for item <= m.endItem {
		e := &m.c.elems[item]
		switch e.kind {
		case kindLiteral:
			n := m.prefixLen(e.text, off)
			if n < 0 {
				return false
			}
			off += n
		case kindPathSeparator:
			if off >= m.endOff || !m.isSepByte(m.input[off]) {
				return false
			}
			off++
			for off < m.endOff && m.isSepByte(m.input[off]) {
				off++
			}
		case kindOneChar:
			if off >= m.endOff {
				return false
			}
			r, size := utf8.DecodeRuneInString(m.input[off:m.endOff])
			if !m.oneCharMatch(e, r) {
				return false
			}
			if r == '.' && !m.dotAllowed(off) {
				return false
			}
			off += size
		case kindSimpleAsterisk, kindDoubleAsterisk:
			return m.matchAsterisk(item, off)
		}
		item++
	}
	return off == m.endOff
}

// matchAsterisk tries the candidate absorption spans for the asterisk
// at item. Candidates advance one rune at a time: between a globstar
// and a following plain asterisk the globstar may have swallowed
// separators the asterisk cannot, so positions must be retried
// individually. For the remaining configurations the stepping search
// subsumes the anchored fast-forward and costs the same on path-sized
// inputs; the fixed byte budget still prunes hopeless tails early.
func (m *matcher) matchAsterisk(item, off int) bool {
	e := &m.c.elems[item]
	if item == m.endItem {
		return m.absorbTail(e, off)
	}
	if e.kind == kindDoubleAsterisk && m.c.elems[item+1].kind == kindPathSeparator {
		// "a/**/b" matches "a/b": the globstar and its separator
		// absorb nothing.
		if m.spanOK(e, off, off) && m.matchFrom(item+2, off) {
			return true
		}
	}
	if !m.anchorReachable(e, off) {
		return false
	}
	// The cursor's own budget covers fixed elements the backward sweep
	// already discharged, so only the difference still needs room.
	budget := e.fixedBudget - m.c.elems[m.endItem].fixedBudget
	for p := off; ; {
		if m.endOff-p < budget {
			return false
		}
		if m.spanOK(e, off, p) && m.matchFrom(item+1, p) {
			return true
		}
		if p >= m.endOff {
			return false
		}
		r, size := utf8.DecodeRuneInString(m.input[p:m.endOff])
		if e.kind == kindSimpleAsterisk && m.isSep(r) {
			// A plain asterisk never crosses a segment boundary.
			return false
		}
		p += size
	}
}

// anchorReachable fails fast when the asterisk's anchor element cannot
// occur anywhere in the remaining window.
func (m *matcher) anchorReachable(e *element, off int) bool {
	if e.anchor < 0 || e.anchor > m.endItem {
		// No anchor, or the anchor was already discharged by the
		// backward sweep.
		return true
	}
	a := &m.c.elems[e.anchor]
	switch a.kind {
	case kindPathSeparator:
		for i := off; i < m.endOff; i++ {
			if m.isSepByte(m.input[i]) {
				return true
			}
		}
		return false
	case kindLiteral:
		for i := off; i <= m.endOff; i++ {
			if m.prefixLen(a.text, i) >= 0 {
				return true
			}
		}
		return false
	}
	return true
}

// absorbTail matches a cursor asterisk against the whole remaining
// window.
func (m *matcher) absorbTail(e *element, off int) bool {
	if e.kind == kindSimpleAsterisk {
		for i := off; i < m.endOff; i++ {
			if m.isSepByte(m.input[i]) {
				return false
			}
		}
		return m.spanOK(e, off, m.endOff)
	}
	if m.sepAfterGlobstar && m.endOff > off && !m.isSepByte(m.input[m.endOff-1]) {
		// The skipped separator means the globstar must swallow
		// whole segments or nothing at all.
		return false
	}
	return m.spanOK(e, off, m.endOff)
}

// spanOK applies the dot policy and the empty-span edge policy to the
// candidate span [off, p) absorbed by an asterisk.
func (m *matcher) spanOK(e *element, off, p int) bool {
	if e.kind == kindSimpleAsterisk {
		if p == off {
			// An asterisk spanning a whole empty segment matches
			// nothing: "a/b/" is not matched by "a/b/*".
			return !(m.atSegStart(off) && m.atSegEnd(p))
		}
		if m.input[off] == '.' && !m.dotAllowed(off) {
			return false
		}
		return true
	}
	// A globstar checks the swallowed span plus one character past it,
	// so "**.hidden" does not match a segment starting with a dot.
	limit := p
	if limit < len(m.input) {
		limit++
	}
	for q := off; q < limit; q++ {
		if m.input[q] == '.' && !m.dotAllowed(q) {
			return false
		}
	}
	return true
}

// dotAllowed reports whether a '.' at pos may be consumed by a
// wildcard. Dots in the middle of a segment always may; dots opening a
// segment require the Dot option, and the lone components "." and ".."
// never match.
func (m *matcher) dotAllowed(pos int) bool {
	if !m.atSegStart(pos) {
		return true
	}
	end := pos
	for end < len(m.input) && !m.isSepByte(m.input[end]) {
		end++
	}
	switch m.input[pos:end] {
	case ".", "..":
		return false
	}
	return m.opts.Dot
}

func (m *matcher) atSegStart(pos int) bool {
	return pos == 0 || m.isSepByte(m.input[pos-1])
}

func (m *matcher) atSegEnd(pos int) bool {
	return pos >= len(m.input) || m.isSepByte(m.input[pos])
}

// oneCharMatch tests a single rune against a OneChar element. A
// separator is never matched, regardless of class.
func (m *matcher) oneCharMatch(e *element, r rune) bool {
	if m.isSep(r) {
		return false
	}
	if !e.hasClass {
		return true
	}
	in := false
	for _, c := range e.class {
		if m.runeEq(c, r) {
			in = true
			break
		}
	}
	return in != e.negate
}

// prefixLen returns the byte length of text matched at off, or -1.
func (m *matcher) prefixLen(text string, off int) int {
	i := off
	for _, pr := range text {
		if i >= m.endOff {
			return -1
		}
		r, size := utf8.DecodeRuneInString(m.input[i:m.endOff])
		if !m.runeEq(pr, r) {
			return -1
		}
		i += size
	}
	return i - off
}

// suffixLen returns the byte length of text matched against the end of
// the window, or -1.
func (m *matcher) suffixLen(text string) int {
	i := m.endOff
	rs := []rune(text)
	for j := len(rs) - 1; j >= 0; j-- {
		if i <= m.startOff {
			return -1
		}
		r, size := utf8.DecodeLastRuneInString(m.input[m.startOff:i])
		if !m.runeEq(rs[j], r) {
			return -1
		}
		i -= size
	}
	return m.endOff - i
}

func (m *matcher) runeEq(a, b rune) bool {
	if a == b {
		return true
	}
	return m.opts.IgnoreCase && unicode.ToLower(a) == unicode.ToLower(b)
}

func (m *matcher) isSep(r rune) bool {
	return r == '/' || (m.opts.AllowWindowsPaths && r == '\\')
}

func (m *matcher) isSepByte(b byte) bool {
	return b == '/' || (m.opts.AllowWindowsPaths && b == '\\')
}

func trimTrailingSeps(input string, opts *Options) string {
	end := len(input)
	for end > 0 && (input[end-1] == '/' || (opts.AllowWindowsPaths && input[end-1] == '\\')) {
		end--
	}
	return input[:end]
}
