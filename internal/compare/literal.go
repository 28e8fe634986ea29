package compare

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxLiteralDepth bounds nesting during parsing. Untrusted program output
// can open brackets forever; past this depth parsing fails and the strategy
// abstains instead of exhausting the stack.
const maxLiteralDepth = 64

// literal is a parsed language-agnostic value: a number, string, boolean,
// null, ordered sequence, unordered set, or key-unique mapping. Python-style
// and JSON-style spellings both parse; tuples are treated as sequences.
type literal struct {
	kind    litKind
	num     float64
	str     string
	boolean bool
	items   []literal  // sequence elements or set members
	entries []litEntry // mapping entries
}

type litEntry struct {
	key   literal
	value literal
}

type litKind int

const (
	litNull litKind = iota
	litBool
	litNumber
	litString
	litSequence
	litSet
	litMapping
)

var errBadLiteral = errors.New("not a literal")

// parseLiteral parses s as a single literal value. The whole input must be
// consumed apart from surrounding whitespace.
func parseLiteral(s string) (literal, error) {
	p := &litParser{input: s}
	p.skipSpace()
	v, err := p.value(0)
	if err != nil {
		return literal{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return literal{}, errBadLiteral
	}
	return v, nil
}

type litParser struct {
	input string
	pos   int
}

func (p *litParser) skipSpace() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *litParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *litParser) value(depth int) (literal, error) {
	if depth > maxLiteralDepth {
		return literal{}, errBadLiteral
	}
	switch c := p.peek(); {
	case c == '[':
		return p.sequence(depth, '[', ']')
	case c == '(':
		return p.sequence(depth, '(', ')')
	case c == '{':
		return p.setOrMapping(depth)
	case c == '\'' || c == '"':
		return p.quotedString()
	default:
		return p.scalar()
	}
}

// sequence parses [a, b, c] or (a, b, c). A trailing comma is tolerated,
// matching tuple spellings like (1,).
func (p *litParser) sequence(depth int, open, close byte) (literal, error) {
	p.pos++ // consume open
	seq := literal{kind: litSequence}
	for {
		p.skipSpace()
		if p.peek() == close {
			p.pos++
			return seq, nil
		}
		item, err := p.value(depth + 1)
		if err != nil {
			return literal{}, err
		}
		seq.items = append(seq.items, item)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case close:
			p.pos++
			return seq, nil
		default:
			return literal{}, errBadLiteral
		}
	}
}

// setOrMapping parses {...}: a mapping when the first element is followed by
// a colon, a set otherwise. {} is the empty mapping, as in Python. Duplicate
// mapping keys resolve last-write-wins.
func (p *litParser) setOrMapping(depth int) (literal, error) {
	p.pos++ // consume '{'
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return literal{kind: litMapping}, nil
	}

	first, err := p.value(depth + 1)
	if err != nil {
		return literal{}, err
	}
	p.skipSpace()

	if p.peek() == ':' {
		m := literal{kind: litMapping}
		p.pos++
		p.skipSpace()
		val, err := p.value(depth + 1)
		if err != nil {
			return literal{}, err
		}
		m.entries = upsertEntry(m.entries, first, val)
		for {
			p.skipSpace()
			switch p.peek() {
			case '}':
				p.pos++
				return m, nil
			case ',':
				p.pos++
			default:
				return literal{}, errBadLiteral
			}
			p.skipSpace()
			if p.peek() == '}' {
				p.pos++
				return m, nil
			}
			key, err := p.value(depth + 1)
			if err != nil {
				return literal{}, err
			}
			p.skipSpace()
			if p.peek() != ':' {
				return literal{}, errBadLiteral
			}
			p.pos++
			p.skipSpace()
			val, err := p.value(depth + 1)
			if err != nil {
				return literal{}, err
			}
			m.entries = upsertEntry(m.entries, key, val)
		}
	}

	set := literal{kind: litSet, items: []literal{first}}
	for {
		p.skipSpace()
		switch p.peek() {
		case '}':
			p.pos++
			return set, nil
		case ',':
			p.pos++
		default:
			return literal{}, errBadLiteral
		}
		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return set, nil
		}
		item, err := p.value(depth + 1)
		if err != nil {
			return literal{}, err
		}
		set.items = append(set.items, item)
	}
}

func upsertEntry(entries []litEntry, key, value literal) []litEntry {
	for i := range entries {
		if literalEqual(entries[i].key, key, 0) {
			entries[i].value = value
			return entries
		}
	}
	return append(entries, litEntry{key: key, value: value})
}

func (p *litParser) quotedString() (literal, error) {
	quote := p.input[p.pos]
	p.pos++
	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case quote:
			p.pos++
			return literal{kind: litString, str: b.String()}, nil
		case '\\':
			p.pos++
			if p.pos >= len(p.input) {
				return literal{}, errBadLiteral
			}
			esc := p.input[p.pos]
			p.pos++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '0':
				b.WriteByte(0)
			case '\\', '\'', '"':
				b.WriteByte(esc)
			case 'x':
				if p.pos+2 > len(p.input) {
					return literal{}, errBadLiteral
				}
				n, err := strconv.ParseUint(p.input[p.pos:p.pos+2], 16, 8)
				if err != nil {
					return literal{}, errBadLiteral
				}
				b.WriteByte(byte(n))
				p.pos += 2
			case 'u':
				if p.pos+4 > len(p.input) {
					return literal{}, errBadLiteral
				}
				n, err := strconv.ParseUint(p.input[p.pos:p.pos+4], 16, 32)
				if err != nil {
					return literal{}, errBadLiteral
				}
				b.WriteRune(rune(n))
				p.pos += 4
			default:
				return literal{}, errBadLiteral
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return literal{}, errBadLiteral // unterminated
}

// scalar parses an unquoted token: a number (including inf/nan spellings),
// boolean, or null.
func (p *litParser) scalar() (literal, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ',' || c == ':' || c == ']' || c == ')' || c == '}' {
			break
		}
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if unicode.IsSpace(r) {
			break
		}
		p.pos += size
	}
	tok := p.input[start:p.pos]
	if tok == "" {
		return literal{}, errBadLiteral
	}

	switch tok {
	case "true", "True":
		return literal{kind: litBool, boolean: true}, nil
	case "false", "False":
		return literal{kind: litBool, boolean: false}, nil
	case "null", "None":
		return literal{kind: litNull}, nil
	}

	// ParseFloat accepts inf, infinity and nan spellings case-insensitively,
	// but also hex floats and underscore separators, which are not literal
	// output; restrict to the plain forms.
	if !plainNumberToken(tok) {
		return literal{}, errBadLiteral
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return literal{}, errBadLiteral
	}
	return literal{kind: litNumber, num: f}, nil
}

func plainNumberToken(tok string) bool {
	body := strings.TrimLeft(tok, "+-")
	switch strings.ToLower(body) {
	case "inf", "infinity", "nan":
		return true
	}
	for i := 0; i < len(body); i++ {
		switch c := body[i]; {
		case c >= '0' && c <= '9':
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-':
		default:
			return false
		}
	}
	return body != ""
}

// literalEqual performs deep structural equality. Numeric leaves compare
// under the float epsilon rule; sequences compare element-wise in order;
// mappings compare by key set then recursive value equality, ignoring entry
// order; sets compare by set equality. A kind mismatch between corresponding
// nodes is unequal.
func literalEqual(a, b literal, eps float64) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case litNull:
		return true
	case litBool:
		return a.boolean == b.boolean
	case litNumber:
		return floatsEqual(a.num, b.num, eps)
	case litString:
		return a.str == b.str
	case litSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !literalEqual(a.items[i], b.items[i], eps) {
				return false
			}
		}
		return true
	case litSet:
		return unorderedEqual(a.items, b.items, eps)
	case litMapping:
		if len(a.entries) != len(b.entries) {
			return false
		}
		for _, ea := range a.entries {
			eb, ok := findEntry(b.entries, ea.key, eps)
			if !ok || !literalEqual(ea.value, eb.value, eps) {
				return false
			}
		}
		return true
	}
	return false
}

// unorderedEqual matches every element of a against a distinct element of b.
// Quadratic, but set literals in graded output are small.
func unorderedEqual(a, b []literal, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ea := range a {
		found := false
		for i := range b {
			if !used[i] && literalEqual(ea, b[i], eps) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func findEntry(entries []litEntry, key literal, eps float64) (litEntry, bool) {
	for _, e := range entries {
		if literalEqual(e.key, key, eps) {
			return e, true
		}
	}
	return litEntry{}, false
}

// floatsEqual implements the combined absolute/relative tolerance rule.
// IEEE-754 special values require exact identity; otherwise values within
// eps are equal, and for magnitudes above 1 the tolerance degrades to
// relative error so large results behave sensibly.
func floatsEqual(a, b, eps float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}
	if math.Abs(a) > 1 {
		return diff/math.Abs(a) <= eps
	}
	return false
}
