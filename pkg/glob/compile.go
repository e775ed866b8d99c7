package glob

type elementKind int

const (
	kindLiteral elementKind = iota
	kindOneChar
	kindSimpleAsterisk
	kindDoubleAsterisk
	kindPathSeparator
)

// element is one tagged variant in a compiled pattern case.
type element struct {
	kind elementKind

	// kindLiteral
	text string

	// kindOneChar: class is nil for a plain '?'. negate is set for
	// [!...] and [^...] classes.
	class    []rune
	hasClass bool
	negate   bool

	// Fast-forward fields, filled in by the build pass for asterisks
	// and consulted by the match engine.
	fixedBudget  int // byte length of fixed-width elements that follow
	anchor       int // index of the next literal or separator, -1 when none
	nextAsterisk int // index of the next asterisk, -1 when none
}

func (e *element) isAsterisk() bool {
	return e.kind == kindSimpleAsterisk || e.kind == kindDoubleAsterisk
}

// compiledCase is one brace-expanded alternation compiled to an element
// sequence. It is immutable after compileCase returns.
type compiledCase struct {
	elems             []element
	hasPathSeparators bool
}

// compileCase turns a single brace-expanded pattern string into an
// element sequence. The scanner never fails: malformed input (an open
// character class, a trailing backslash) is recovered by literalizing
// the offending character and rescanning.
func compileCase(pattern string, opts *Options) *compiledCase {
	rs := []rune(pattern)

	var elems []element
	var lit []rune
	var class []rune
	inClass := false
	rangeOn := false
	classNegate := false
	classStart := -1
	escaping := false

	flushLit := func() {
		if len(lit) == 0 {
			return
		}
		if n := len(elems); n > 0 && elems[n-1].kind == kindLiteral {
			elems[n-1].text += string(lit)
		} else {
			elems = append(elems, element{kind: kindLiteral, text: string(lit)})
		}
		lit = nil
	}

	// classChar appends one character to the open class, filling the
	// inclusive interval (last+1 .. c) when a range is pending.
	classChar := func(c rune) {
		if rangeOn {
			last := class[len(class)-1]
			for ch := last + 1; ch <= c; ch++ {
				class = append(class, ch)
			}
			rangeOn = false
			return
		}
		class = append(class, c)
	}

	// reopenClass recovers from a class that can never close: the '['
	// becomes a literal and scanning restarts just past it.
	reopenClass := func() int {
		lit = append(lit, '[')
		restart := classStart
		inClass = false
		rangeOn = false
		classNegate = false
		class = nil
		classStart = -1
		return restart
	}

	for i := 0; i < len(rs) || escaping || inClass; i++ {
		if i >= len(rs) {
			if escaping {
				// Trailing backslash is kept literally.
				if inClass {
					class = append(class, '\\')
				} else {
					lit = append(lit, '\\')
				}
				escaping = false
				i--
				continue
			}
			// Unterminated class: same recovery as '/', then the
			// class body is rescanned as plain pattern text.
			i = reopenClass()
			continue
		}
		c := rs[i]

		if escaping {
			escaping = false
			if c != '/' {
				if inClass {
					class = append(class, c)
				} else {
					lit = append(lit, c)
				}
				continue
			}
			// An escaped '/' keeps its separator meaning.
		}

		switch c {
		case '\\':
			escaping = true
		case '/':
			if inClass {
				i = reopenClass()
				continue
			}
			flushLit()
			if n := len(elems); n == 0 || elems[n-1].kind != kindPathSeparator {
				elems = append(elems, element{kind: kindPathSeparator})
			}
		case '?':
			if inClass {
				classChar(c)
				break
			}
			flushLit()
			elems = append(elems, element{kind: kindOneChar})
		case '*':
			if inClass {
				classChar(c)
				break
			}
			flushLit()
			if n := len(elems); n > 0 && elems[n-1].kind == kindSimpleAsterisk && !opts.NoGlobstar {
				elems[n-1].kind = kindDoubleAsterisk
			} else if n > 0 && elems[n-1].isAsterisk() {
				// Runs of asterisks collapse.
			} else {
				elems = append(elems, element{kind: kindSimpleAsterisk})
			}
		case '[':
			if inClass {
				classChar(c)
				break
			}
			flushLit()
			inClass = true
			rangeOn = false
			classNegate = false
			class = nil
			classStart = i
		case ']':
			if !inClass {
				lit = append(lit, c)
				break
			}
			bodyStart := classStart + 1
			if classNegate {
				bodyStart++
			}
			if i == bodyStart {
				// ']' as the first character of the class body is
				// a class member.
				classChar(c)
				break
			}
			elems = append(elems, element{
				kind:     kindOneChar,
				hasClass: true,
				class:    class,
				negate:   classNegate,
			})
			inClass = false
			rangeOn = false
			classNegate = false
			class = nil
			classStart = -1
		case '!', '^':
			if inClass && i == classStart+1 {
				classNegate = true
			} else if inClass {
				classChar(c)
			} else {
				lit = append(lit, c)
			}
		case '-':
			if !inClass {
				lit = append(lit, c)
				break
			}
			if len(class) == 0 || rangeOn || i+1 >= len(rs) || rs[i+1] == ']' {
				// A dash at the class edges, or a second dash in a
				// row, is a class member.
				class = append(class, '-')
				rangeOn = false
				break
			}
			rangeOn = true
		default:
			if inClass {
				classChar(c)
			} else {
				lit = append(lit, c)
			}
		}
	}
	flushLit()

	c := &compiledCase{elems: elems}
	c.build()
	return c
}

// build computes the derived fast-forward fields: per-asterisk fixed
// byte budgets, anchors and next-asterisk links, and the case-level
// hasPathSeparators flag.
func (c *compiledCase) build() {
	for i := range c.elems {
		e := &c.elems[i]
		if e.kind == kindPathSeparator || e.kind == kindDoubleAsterisk {
			c.hasPathSeparators = true
		}
		if !e.isAsterisk() {
			continue
		}
		e.anchor = -1
		e.nextAsterisk = -1
		budget := 0
		for j := i + 1; j < len(c.elems); j++ {
			f := &c.elems[j]
			switch f.kind {
			case kindLiteral:
				budget += len(f.text)
			case kindOneChar:
				budget++
			case kindPathSeparator:
				// A separator directly after a globstar can be
				// absorbed together with it and costs nothing.
				if c.elems[j-1].kind != kindDoubleAsterisk {
					budget++
				}
			case kindSimpleAsterisk, kindDoubleAsterisk:
				if e.nextAsterisk < 0 {
					e.nextAsterisk = j
				}
			}
			if e.anchor < 0 && (f.kind == kindLiteral || f.kind == kindPathSeparator) {
				e.anchor = j
			}
		}
		e.fixedBudget = budget
	}
}
