package automaton

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	REGEXP_UNION         = Kind(iota) // The union of two expressions
	REGEXP_CONCATENATION              // A sequence of two expressions
	REGEXP_REPEAT                     // An expression that repeats zero or more times
	REGEXP_CHAR                       // A Character
	REGEXP_EMPTY                      // The empty string
)

const (
	// STRICT_ALPHABET rejects unescaped literals that are not part of the alphabet. Without it such a
	// literal is compiled as is and can never be matched by an automaton built over the alphabet.
	STRICT_ALPHABET = 0x0001
	ALL             = 0xff
	NONE            = 0x0000
)

// operators the parser treats specially unless escaped
const metaChars = `\()|*`

// RegExp is a parsed regular expression over literals, implicit concatenation, union ('|'), Kleene
// star ('*') and parenthesized grouping. A backslash makes the next character a literal.
type RegExp struct {
	kind           Kind
	exp1, exp2     *RegExp
	c              rune
	originalString []rune
	flags          int
}

type regExpOption struct {
	syntaxFlags int
}

type RegExpOption func(*regExpOption)

func WithSyntaxFlags(flags int) RegExpOption {
	return func(o *regExpOption) {
		o.syntaxFlags = flags
	}
}

// NewRegExp parses s. alphabet lists the characters that may appear as input symbols.
func NewRegExp(s string, alphabet []rune, options ...RegExpOption) (*RegExp, error) {
	opts := &regExpOption{
		syntaxFlags: NONE,
	}
	for _, fn := range options {
		fn(opts)
	}
	if opts.syntaxFlags > ALL || opts.syntaxFlags < 0 {
		return nil, errors.New("illegal syntax flag")
	}

	p := newRegExpParser(s, alphabet, opts.syntaxFlags)
	e, err := p.parse()
	if err != nil {
		return nil, err
	}

	return &RegExp{
		kind:           e.kind,
		exp1:           e.exp1,
		exp2:           e.exp2,
		c:              e.c,
		originalString: p.originalString,
		flags:          opts.syntaxFlags,
	}, nil
}

// Compile parses s and builds its Thompson NFA.
func Compile(s string, alphabet []rune, options ...RegExpOption) (*Automaton, error) {
	r, err := NewRegExp(s, alphabet, options...)
	if err != nil {
		return nil, err
	}
	return r.ToAutomaton()
}

func newContainerNode(flags int, kind Kind, exp1, exp2 *RegExp) *RegExp {
	return &RegExp{kind: kind, exp1: exp1, exp2: exp2, flags: flags}
}

func makeUnion(flags int, exp1, exp2 *RegExp) *RegExp {
	return newContainerNode(flags, REGEXP_UNION, exp1, exp2)
}

func makeConcatenation(flags int, exp1, exp2 *RegExp) *RegExp {
	return newContainerNode(flags, REGEXP_CONCATENATION, exp1, exp2)
}

func makeRepeat(flags int, exp *RegExp) *RegExp {
	return newContainerNode(flags, REGEXP_REPEAT, exp, nil)
}

func makeChar(flags int, c rune) *RegExp {
	return &RegExp{kind: REGEXP_CHAR, c: c, flags: flags}
}

func makeEmpty(flags int) *RegExp {
	return newContainerNode(flags, REGEXP_EMPTY, nil, nil)
}

// Kind Returns the node type of the expression root.
func (r *RegExp) Kind() Kind {
	return r.kind
}

// ToAutomaton Builds the Thompson NFA for this expression. The result has a single accept state,
// its last one.
func (r *RegExp) ToAutomaton() (*Automaton, error) {
	switch r.kind {
	case REGEXP_UNION:
		a1, err := r.exp1.ToAutomaton()
		if err != nil {
			return nil, err
		}
		a2, err := r.exp2.ToAutomaton()
		if err != nil {
			return nil, err
		}
		return union(a1, a2), nil
	case REGEXP_CONCATENATION:
		a1, err := r.exp1.ToAutomaton()
		if err != nil {
			return nil, err
		}
		a2, err := r.exp2.ToAutomaton()
		if err != nil {
			return nil, err
		}
		return concatenate(a1, a2), nil
	case REGEXP_REPEAT:
		a1, err := r.exp1.ToAutomaton()
		if err != nil {
			return nil, err
		}
		return repeat(a1), nil
	case REGEXP_CHAR:
		return defaultAutomata.MakeChar(r.c)
	case REGEXP_EMPTY:
		return defaultAutomata.MakeEmptyString(), nil
	}
	return nil, fmt.Errorf("%w: unknown expression kind %d", ErrInvariantViolation, r.kind)
}

// String renders the expression fully parenthesized: "ab|c*" becomes "((ab)|c*)".
func (r *RegExp) String() string {
	b := new(strings.Builder)
	r.toStringBuilder(b)
	return b.String()
}

func (r *RegExp) toStringBuilder(b *strings.Builder) {
	switch r.kind {
	case REGEXP_UNION:
		b.WriteByte('(')
		r.exp1.toStringBuilder(b)
		b.WriteByte('|')
		r.exp2.toStringBuilder(b)
		b.WriteByte(')')
	case REGEXP_CONCATENATION:
		b.WriteByte('(')
		r.exp1.toStringBuilder(b)
		r.exp2.toStringBuilder(b)
		b.WriteByte(')')
	case REGEXP_REPEAT:
		r.exp1.toStringBuilder(b)
		b.WriteByte('*')
	case REGEXP_CHAR:
		if strings.ContainsRune(metaChars, r.c) {
			b.WriteByte('\\')
		}
		b.WriteRune(r.c)
	case REGEXP_EMPTY:
		b.WriteString("()")
	}
}

type operator int

const (
	opUnion operator = iota
	opConcat
	opGroup
)

func (o operator) precedence() int {
	switch o {
	case opConcat:
		return 2
	case opUnion:
		return 1
	}
	return 0
}

type pendingOp struct {
	op  operator
	pos int
}

// regExpParser is an operator-precedence parser over two stacks: finished operands, and the
// operators and open groups still waiting for their right-hand side. Postfix '*' applies at once to
// the top operand. Concatenation is implicit, left associative, and binds tighter than '|', which
// associates to the right.
type regExpParser struct {
	originalString []rune
	alphabet       map[rune]struct{}
	flags          int
	pos            int

	operands  []*RegExp
	operators []pendingOp

	// True when the last token closed an operand, so a following operand is concatenated to it.
	operandEnded bool
}

func newRegExpParser(s string, alphabet []rune, flags int) *regExpParser {
	set := make(map[rune]struct{}, len(alphabet))
	for _, c := range alphabet {
		set[c] = struct{}{}
	}
	return &regExpParser{
		originalString: []rune(s),
		alphabet:       set,
		flags:          flags,
	}
}

func (p *regExpParser) more() bool {
	return p.pos < len(p.originalString)
}

func (p *regExpParser) next() rune {
	ch := p.originalString[p.pos]
	p.pos++
	return ch
}

func (p *regExpParser) check(flags int) bool {
	return p.flags&flags != 0
}

func (p *regExpParser) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{
		Pattern: string(p.originalString),
		Pos:     pos,
		Msg:     fmt.Sprintf(format, args...),
	}
}

func (p *regExpParser) topOperator() (pendingOp, bool) {
	if len(p.operators) == 0 {
		return pendingOp{}, false
	}
	return p.operators[len(p.operators)-1], true
}

func (p *regExpParser) parse() (*RegExp, error) {
	for p.more() {
		start := p.pos
		c := p.next()

		switch c {
		case '\\':
			if !p.more() {
				return nil, p.errorf(start, "dangling escape")
			}
			if err := p.pushOperand(start, makeChar(p.flags, p.next())); err != nil {
				return nil, err
			}
		case '(':
			if p.operandEnded {
				if err := p.pushOperator(opConcat, start); err != nil {
					return nil, err
				}
			}
			p.operators = append(p.operators, pendingOp{op: opGroup, pos: start})
			p.operandEnded = false
		case ')':
			if err := p.closeGroup(start); err != nil {
				return nil, err
			}
		case '|':
			if !p.operandEnded {
				return nil, p.errorf(start, "missing operand before '|'")
			}
			if err := p.pushOperator(opUnion, start); err != nil {
				return nil, err
			}
			p.operandEnded = false
		case '*':
			if !p.operandEnded {
				return nil, p.errorf(start, "missing operand before '*'")
			}
			top := len(p.operands) - 1
			p.operands[top] = makeRepeat(p.flags, p.operands[top])
		default:
			if _, ok := p.alphabet[c]; !ok && p.check(STRICT_ALPHABET) {
				return nil, p.errorf(start, "character %q is not in the alphabet", c)
			}
			if err := p.pushOperand(start, makeChar(p.flags, c)); err != nil {
				return nil, err
			}
		}
	}

	return p.finish()
}

func (p *regExpParser) pushOperand(pos int, e *RegExp) error {
	if p.operandEnded {
		if err := p.pushOperator(opConcat, pos); err != nil {
			return err
		}
	}
	p.operands = append(p.operands, e)
	p.operandEnded = true
	return nil
}

// pushOperator first applies every pending operator that binds at least as tightly as op.
func (p *regExpParser) pushOperator(op operator, pos int) error {
	for {
		top, ok := p.topOperator()
		if !ok || top.op == opGroup {
			break
		}
		tighter := top.op.precedence() > op.precedence()
		leftAssoc := top.op.precedence() == op.precedence() && op == opConcat
		if !tighter && !leftAssoc {
			break
		}
		if err := p.reduce(); err != nil {
			return err
		}
	}
	p.operators = append(p.operators, pendingOp{op: op, pos: pos})
	return nil
}

// reduce pops one binary operator and combines the two topmost operands with it.
func (p *regExpParser) reduce() error {
	top := p.operators[len(p.operators)-1]
	p.operators = p.operators[:len(p.operators)-1]

	if len(p.operands) < 2 {
		return p.errorf(top.pos, "operator without sufficient operands")
	}
	exp2 := p.operands[len(p.operands)-1]
	exp1 := p.operands[len(p.operands)-2]
	p.operands = p.operands[:len(p.operands)-2]

	switch top.op {
	case opUnion:
		p.operands = append(p.operands, makeUnion(p.flags, exp1, exp2))
	case opConcat:
		p.operands = append(p.operands, makeConcatenation(p.flags, exp1, exp2))
	default:
		return p.errorf(top.pos, "unexpected group marker")
	}
	return nil
}

func (p *regExpParser) closeGroup(pos int) error {
	if !p.operandEnded {
		top, ok := p.topOperator()
		switch {
		case !ok:
			return p.errorf(pos, "unmatched ')'")
		case top.op == opGroup:
			// "()" denotes the empty string
			p.operands = append(p.operands, makeEmpty(p.flags))
		default:
			return p.errorf(pos, "missing operand before ')'")
		}
	}

	for {
		top, ok := p.topOperator()
		if !ok {
			return p.errorf(pos, "unmatched ')'")
		}
		if top.op == opGroup {
			p.operators = p.operators[:len(p.operators)-1]
			break
		}
		if err := p.reduce(); err != nil {
			return err
		}
	}
	p.operandEnded = true
	return nil
}

func (p *regExpParser) finish() (*RegExp, error) {
	if !p.operandEnded {
		top, ok := p.topOperator()
		switch {
		case !ok && len(p.operands) == 0:
			// empty pattern
			return makeEmpty(p.flags), nil
		case ok && top.op == opGroup:
			return nil, p.errorf(top.pos, "missing ')'")
		default:
			return nil, p.errorf(len(p.originalString), "missing operand at end of expression")
		}
	}

	for len(p.operators) > 0 {
		top, _ := p.topOperator()
		if top.op == opGroup {
			return nil, p.errorf(top.pos, "missing ')'")
		}
		if err := p.reduce(); err != nil {
			return nil, err
		}
	}

	if len(p.operands) != 1 {
		return nil, p.errorf(len(p.originalString), "operator without sufficient operands")
	}
	return p.operands[0], nil
}
