package coderep

// A CodeRep is the intermediate form between the syntax tree and the output
// text. Reduction rules build CodeReps bottom-up and decide everything that
// depends on the shape of the children (parentheses, braces, separators)
// using the synthesized attributes below. Emission then walks the finished
// tree once, left to right, into a TokenStream which handles the remaining
// character-level concerns.
//
// CodeReps are never mutated after they are returned by a rule. Rules that
// need different attributes build a new node.

type Attrs struct {
	// An unparenthesized "in" operator appears somewhere in this subtree
	ContainsIn bool

	// This is an unparenthesized comma expression
	ContainsGroup bool

	StartsWithCurly            bool
	StartsWithFunctionOrClass  bool
	StartsWithLet              bool
	StartsWithLetSquareBracket bool

	// The last reachable sub-statement is an "if" without an "else"
	EndsWithMissingElse bool
}

func (a *Attrs) Attributes() *Attrs { return a }

// CopyStart copies the attributes that describe the first emitted token
func (a *Attrs) CopyStart(from *Attrs) {
	a.StartsWithCurly = from.StartsWithCurly
	a.StartsWithFunctionOrClass = from.StartsWithFunctionOrClass
	a.StartsWithLet = from.StartsWithLet
	a.StartsWithLetSquareBracket = from.StartsWithLetSquareBracket
}

// StartsWithRestricted reports whether an expression statement made of this
// CodeRep would be misread as something else
func (a *Attrs) StartsWithRestricted() bool {
	return a.StartsWithCurly || a.StartsWithFunctionOrClass || a.StartsWithLetSquareBracket
}

type CodeRep interface {
	Attributes() *Attrs

	// Emits this subtree. When "noIn" is set, the subtree is inside the head of
	// a "for" statement where a bare "in" operator would be misparsed.
	Emit(ts *TokenStream, noIn bool)

	// Calls "visit" for every direct child in emission order
	ForEach(visit func(CodeRep))
}

// A Wrapper decorates another CodeRep without changing its output. Rules that
// need to restructure an already-built child look through wrappers with
// Unwrap and put the result back with Rewrap.
type Wrapper interface {
	CodeRep
	Unwrap() CodeRep
	Rewrap(inner CodeRep) CodeRep
}

type Empty struct{ Attrs }

type TokenKind uint8

const (
	TokenPlain TokenKind = iota

	// Regular expression literals may need a space before a following
	// identifier character so the flags don't grow
	TokenRegExp

	// Template chunks are written verbatim without any spacing decisions
	TokenRaw
)

type Token struct {
	Attrs
	Text      string
	TokenKind TokenKind
}

type Number struct {
	Attrs
	Value float64
}

type Paren struct {
	Attrs
	Expr CodeRep
}

type Bracket struct {
	Attrs
	Expr CodeRep
}

type Brace struct {
	Attrs
	Expr CodeRep
}

type Seq struct {
	Attrs
	Children []CodeRep
}

// After is emitted after every comma. It is nil when there is no formatting.
type CommaSep struct {
	Attrs
	Children []CodeRep
	After    CodeRep
}

type NoIn struct {
	Attrs
	Expr CodeRep
}

type ContainsIn struct {
	Attrs
	Expr CodeRep
}

type OptionalSemicolon struct{ Attrs }

// Init is nil when there is no initializer
type Init struct {
	Attrs
	Binding CodeRep
	Init    CodeRep
}

type Linebreak struct{ Attrs }

// Indent raises the indentation of every Linebreak inside it by Unit
type Indent struct {
	Attrs
	Expr CodeRep
	Unit string
}

func NewEmpty() *Empty { return &Empty{} }

func NewToken(text string) *Token { return &Token{Text: text} }

func NewRegExp(text string) *Token { return &Token{Text: text, TokenKind: TokenRegExp} }

func NewRaw(text string) *Token { return &Token{Text: text, TokenKind: TokenRaw} }

func NewNumber(value float64) *Number { return &Number{Value: value} }

func NewParen(expr CodeRep) *Paren { return &Paren{Expr: expr} }

func NewBracket(expr CodeRep) *Bracket { return &Bracket{Expr: expr} }

func NewBrace(expr CodeRep) *Brace { return &Brace{Expr: expr} }

func NewSeq(children ...CodeRep) *Seq { return &Seq{Children: children} }

func NewCommaSep(children []CodeRep, after CodeRep) *CommaSep {
	return &CommaSep{Children: children, After: after}
}

func NewNoIn(expr CodeRep) *NoIn { return &NoIn{Expr: expr} }

// The child's start attributes carry over since the wrapper emits nothing
// unless it ends up in a "for" head
func NewContainsIn(expr CodeRep) *ContainsIn {
	c := &ContainsIn{Expr: expr}
	c.CopyStart(expr.Attributes())
	return c
}

func NewOptionalSemicolon() *OptionalSemicolon { return &OptionalSemicolon{} }

func NewInit(binding CodeRep, init CodeRep) *Init { return &Init{Binding: binding, Init: init} }

func NewLinebreak() *Linebreak { return &Linebreak{} }

func NewIndent(expr CodeRep, unit string) *Indent { return &Indent{Expr: expr, Unit: unit} }

func (*Empty) Emit(*TokenStream, bool) {}

func (t *Token) Emit(ts *TokenStream, noIn bool) {
	switch t.TokenKind {
	case TokenRegExp:
		ts.PutRegExp(t.Text)
	case TokenRaw:
		ts.PutRaw(t.Text)
	default:
		ts.Put(t.Text)
	}
}

func (n *Number) Emit(ts *TokenStream, noIn bool) {
	ts.PutNumber(n.Value)
}

func (p *Paren) Emit(ts *TokenStream, noIn bool) {
	ts.Put("(")
	p.Expr.Emit(ts, false)
	ts.Put(")")
}

func (b *Bracket) Emit(ts *TokenStream, noIn bool) {
	ts.Put("[")
	b.Expr.Emit(ts, false)
	ts.Put("]")
}

func (b *Brace) Emit(ts *TokenStream, noIn bool) {
	ts.Put("{")
	b.Expr.Emit(ts, false)
	ts.Put("}")
}

func (s *Seq) Emit(ts *TokenStream, noIn bool) {
	for _, child := range s.Children {
		child.Emit(ts, noIn)
	}
}

func (c *CommaSep) Emit(ts *TokenStream, noIn bool) {
	for i, child := range c.Children {
		if i > 0 {
			ts.Put(",")
			if c.After != nil {
				c.After.Emit(ts, noIn)
			}
		}
		child.Emit(ts, noIn)
	}
}

func (n *NoIn) Emit(ts *TokenStream, noIn bool) {
	n.Expr.Emit(ts, true)
}

func (c *ContainsIn) Emit(ts *TokenStream, noIn bool) {
	if noIn {
		ts.Put("(")
		c.Expr.Emit(ts, false)
		ts.Put(")")
	} else {
		c.Expr.Emit(ts, false)
	}
}

func (*OptionalSemicolon) Emit(ts *TokenStream, noIn bool) {
	ts.PutOptionalSemicolon()
}

func (i *Init) Emit(ts *TokenStream, noIn bool) {
	i.Binding.Emit(ts, false)
	if i.Init != nil {
		ts.Put("=")
		i.Init.Emit(ts, noIn)
	}
}

func (*Linebreak) Emit(ts *TokenStream, noIn bool) {
	ts.PutLinebreak()
}

func (i *Indent) Emit(ts *TokenStream, noIn bool) {
	ts.PushIndent(i.Unit)
	i.Expr.Emit(ts, noIn)
	ts.PopIndent()
}

func (*Empty) ForEach(func(CodeRep))              {}
func (*Token) ForEach(func(CodeRep))              {}
func (*Number) ForEach(func(CodeRep))             {}
func (*OptionalSemicolon) ForEach(func(CodeRep))  {}
func (*Linebreak) ForEach(func(CodeRep))          {}
func (p *Paren) ForEach(visit func(CodeRep))      { visit(p.Expr) }
func (b *Bracket) ForEach(visit func(CodeRep))    { visit(b.Expr) }
func (b *Brace) ForEach(visit func(CodeRep))      { visit(b.Expr) }
func (n *NoIn) ForEach(visit func(CodeRep))       { visit(n.Expr) }
func (c *ContainsIn) ForEach(visit func(CodeRep)) { visit(c.Expr) }
func (i *Indent) ForEach(visit func(CodeRep))     { visit(i.Expr) }

func (s *Seq) ForEach(visit func(CodeRep)) {
	for _, child := range s.Children {
		visit(child)
	}
}

func (c *CommaSep) ForEach(visit func(CodeRep)) {
	for _, child := range c.Children {
		visit(child)
	}
}

func (i *Init) ForEach(visit func(CodeRep)) {
	visit(i.Binding)
	if i.Init != nil {
		visit(i.Init)
	}
}

// Emit renders a CodeRep into source text with a fresh token stream
func Emit(rep CodeRep) string {
	ts := NewTokenStream()
	rep.Emit(ts, false)
	return ts.String()
}
