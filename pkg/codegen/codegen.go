package codegen

// The code generator is a reducer from syntax trees to CodeReps. Each rule
// receives the node and the CodeReps of its children and decides, using
// only the synthesized attributes of those children, where parentheses,
// braces and semicolons are needed. Nothing is decided by looking at the
// output text, so every rule is local.
//
// The same rules serve three output styles. "Minimal" has no hooks and emits
// no separators at all. "Extensible" calls a hook at every point where
// whitespace could go, and "Formatted" is an Extensible generator whose hooks
// come from a table of separator keys (see "separator.go").

import (
	"math"
	"strconv"

	"github.com/esgen/esgen/pkg/coderep"
	"github.com/esgen/esgen/pkg/js_ast"
)

type CodeRep = coderep.CodeRep

// Hooks customize the whitespace of an Extensible generator. A nil hook uses
// the default, and the defaults produce the same text as Minimal.
type Hooks struct {
	// Called at every place a separator may appear. The default is Empty.
	Separator func(sep Sep) CodeRep

	// Builds the braces of a block, function body, class body or switch body
	// from its items. The dangling else fix uses this too (with KindBlock).
	Brace func(kind js_ast.Kind, items []CodeRep) CodeRep

	// Joins the statements of a script, module, switch case or switch default
	Statements func(kind js_ast.Kind, items []CodeRep) CodeRep
}

// CodeGen implements js_ast.Reducer[CodeRep]. It has no mutable state so a
// single value can be shared by concurrent calls to Generate.
//
// Types that embed *CodeGen can override individual Reduce methods. The
// reduction engine calls the outermost method for every node, so an override
// sees the CodeReps that the other rules built for its children.
type CodeGen struct {
	hooks *Hooks
}

var _ js_ast.Reducer[CodeRep] = (*CodeGen)(nil)

func NewMinimal() *CodeGen {
	return &CodeGen{}
}

func NewExtensible(hooks Hooks) *CodeGen {
	if hooks.Separator == nil {
		hooks.Separator = func(Sep) CodeRep { return coderep.NewEmpty() }
	}
	if hooks.Brace == nil {
		hooks.Brace = func(kind js_ast.Kind, items []CodeRep) CodeRep {
			return coderep.NewBrace(coderep.NewSeq(items...))
		}
	}
	if hooks.Statements == nil {
		hooks.Statements = func(kind js_ast.Kind, items []CodeRep) CodeRep {
			return coderep.NewSeq(items...)
		}
	}
	return &CodeGen{hooks: &hooks}
}

////////////////////////////////////////////////////////////////////////////////
// Helpers

func t(text string) CodeRep {
	return coderep.NewToken(text)
}

func paren(rep CodeRep) *coderep.Paren {
	return coderep.NewParen(rep)
}

func bracket(rep CodeRep) *coderep.Bracket {
	return coderep.NewBracket(rep)
}

func semiOp() CodeRep {
	return coderep.NewOptionalSemicolon()
}

// Absent children (such as separators in Minimal mode) are passed as nil
func seq(items ...CodeRep) *coderep.Seq {
	n := 0
	for _, item := range items {
		if item != nil {
			n++
		}
	}
	if n == len(items) {
		return coderep.NewSeq(items...)
	}
	children := make([]CodeRep, 0, n)
	for _, item := range items {
		if item != nil {
			children = append(children, item)
		}
	}
	return coderep.NewSeq(children...)
}

// Parenthesizes "rep" if "node" binds more loosely than "level"
func p(node js_ast.Node, level js_ast.L, rep CodeRep) CodeRep {
	if js_ast.PrecedenceOf(node) < level {
		return paren(rep)
	}
	return rep
}

// Comma expressions can't appear unparenthesized in a single-item slot such
// as an array element or a call argument
func getAssignmentExpr(rep CodeRep) CodeRep {
	if rep == nil {
		return coderep.NewEmpty()
	}
	if rep.Attributes().ContainsGroup {
		return paren(rep)
	}
	return rep
}

func markContainsIn(rep CodeRep) CodeRep {
	if rep.Attributes().ContainsIn {
		return coderep.NewContainsIn(rep)
	}
	return rep
}

func startsWith(rep CodeRep) *coderep.Attrs {
	return rep.Attributes()
}

func (g *CodeGen) sep(kind js_ast.Kind, field string, side Side) CodeRep {
	if g.hooks == nil {
		return nil
	}
	return g.hooks.Separator(Sep{Kind: kind, Field: field, Side: side})
}

func (g *CodeGen) sepOp(kind js_ast.Kind, field string, side Side, op string) CodeRep {
	if g.hooks == nil {
		return nil
	}
	return g.hooks.Separator(Sep{Kind: kind, Field: field, Side: side, Op: op})
}

// Only asks for the separator when "cond" holds
func (g *CodeGen) sepIf(cond bool, kind js_ast.Kind, field string, side Side) CodeRep {
	if !cond {
		return nil
	}
	return g.sep(kind, field, side)
}

func (g *CodeGen) brace(kind js_ast.Kind, items []CodeRep) CodeRep {
	if g.hooks == nil {
		return coderep.NewBrace(coderep.NewSeq(items...))
	}
	return g.hooks.Brace(kind, items)
}

func (g *CodeGen) statements(kind js_ast.Kind, items []CodeRep) CodeRep {
	if g.hooks == nil {
		return coderep.NewSeq(items...)
	}
	return g.hooks.Statements(kind, items)
}

func (g *CodeGen) commaSep(kind js_ast.Kind, items []CodeRep) *coderep.CommaSep {
	return coderep.NewCommaSep(items, g.sep(kind, ",", After))
}

// Inline braces for object literals, patterns and import/export lists
func (g *CodeGen) inlineBrace(kind js_ast.Kind, items []CodeRep) *coderep.Brace {
	if len(items) == 0 {
		return coderep.NewBrace(coderep.NewEmpty())
	}
	return coderep.NewBrace(seq(g.sep(kind, "{", After), g.commaSep(kind, items), g.sep(kind, "}", Before)))
}

// Builds "[a, , b, ...c]" for array literals and array patterns. A trailing
// hole needs an extra comma since "[a,]" only has one element.
func (g *CodeGen) arrayLike(kind js_ast.Kind, holes []bool, elements []CodeRep, rest CodeRep) *coderep.Bracket {
	items := make([]CodeRep, 0, len(elements)+1)
	for _, el := range elements {
		items = append(items, getAssignmentExpr(el))
	}
	if rest != nil {
		items = append(items, seq(t("..."), rest))
	}
	content := CodeRep(g.commaSep(kind, items))
	if rest == nil && len(holes) > 0 && holes[len(holes)-1] {
		content = seq(content, t(","))
	}
	return bracket(content)
}

func holesOf[N js_ast.Node](nodes []N) []bool {
	holes := make([]bool, len(nodes))
	for i, node := range nodes {
		holes[i] = js_ast.Node(node) == nil
	}
	return holes
}

// The first statement of a program or function body would be read as a
// directive if it's an expression statement of a string literal. Its
// expression is parenthesized and given a hard semicolon instead.
func isDirectiveLike(node js_ast.Node) bool {
	if stmt, ok := node.(*js_ast.ExpressionStatement); ok {
		_, ok := stmt.Expression.(*js_ast.LiteralStringExpression)
		return ok
	}
	return false
}

func avoidDirective(rep CodeRep) CodeRep {
	if w, ok := rep.(coderep.Wrapper); ok {
		return w.Rewrap(avoidDirective(w.Unwrap()))
	}
	if s, ok := rep.(*coderep.Seq); ok && len(s.Children) > 0 {
		if _, ok := s.Children[len(s.Children)-1].(*coderep.OptionalSemicolon); ok {
			return seq(paren(seq(s.Children[:len(s.Children)-1]...)), t(";"))
		}
	}
	panic("Internal error: unexpected expression statement shape")
}

func withoutDirectiveHazard[N js_ast.Node](nodes []N, items []CodeRep) []CodeRep {
	if len(nodes) > 0 && isDirectiveLike(js_ast.Node(nodes[0])) {
		items = append([]CodeRep{}, items...)
		items[0] = avoidDirective(items[0])
	}
	return items
}

func prologue(directives []CodeRep, statements []CodeRep) []CodeRep {
	items := make([]CodeRep, 0, len(directives)+len(statements))
	items = append(items, directives...)
	return append(items, statements...)
}

func (g *CodeGen) functionHeader(kind js_ast.Kind, isAsync bool, isGenerator bool, nameNode *js_ast.BindingIdentifier, name CodeRep) []CodeRep {
	var parts []CodeRep
	if isAsync {
		parts = append(parts, t("async"))
	}
	parts = append(parts, t("function"))
	if isGenerator {
		parts = append(parts, t("*"), g.sep(kind, "*", After))
	}
	if nameNode != nil && nameNode.Name != "*default*" {
		parts = append(parts, name)
	}
	return parts
}

func (g *CodeGen) class(kind js_ast.Kind, nameNode *js_ast.BindingIdentifier, name CodeRep, superNode js_ast.Expr, super CodeRep, elements []CodeRep) *coderep.Seq {
	parts := []CodeRep{t("class")}
	if nameNode != nil && nameNode.Name != "*default*" {
		parts = append(parts, g.sep(kind, "class", After), name)
	}
	if superNode != nil {
		parts = append(parts, g.sep(kind, "extends", Before), t("extends"), g.sep(kind, "extends", After), p(superNode, js_ast.LNew, super))
	}
	parts = append(parts, g.sep(kind, "body", Before), g.brace(kind, elements))
	return seq(parts...)
}

func (g *CodeGen) memberObject(node js_ast.Node, object js_ast.Node, rep CodeRep) CodeRep {
	return p(object, js_ast.PrecedenceOf(node), rep)
}

func isLetIdentifier(node js_ast.Node) bool {
	id, ok := node.(*js_ast.IdentifierExpression)
	return ok && id.Name == "let"
}

func checkIdentifier(kind js_ast.Kind, name string) {
	if !js_ast.IsIdentifier(name) {
		js_ast.Malformed(kind, "invalid identifier %q", name)
	}
}

func (g *CodeGen) keyword(kind js_ast.Kind, word string, rest ...CodeRep) *coderep.Seq {
	return seq(append([]CodeRep{t(word), g.sep(kind, word, After)}, rest...)...)
}

////////////////////////////////////////////////////////////////////////////////
// Programs and bodies

func (g *CodeGen) ReduceScript(node *js_ast.Script, directives []CodeRep, statements []CodeRep) CodeRep {
	statements = withoutDirectiveHazard(node.Statements, statements)
	return g.statements(js_ast.KindScript, prologue(directives, statements))
}

func (g *CodeGen) ReduceModule(node *js_ast.Module, directives []CodeRep, items []CodeRep) CodeRep {
	items = withoutDirectiveHazard(node.Items, items)
	return g.statements(js_ast.KindModule, prologue(directives, items))
}

func (g *CodeGen) ReduceDirective(node *js_ast.Directive) CodeRep {
	raw := node.RawValue
	quote := "\""
	if hasUnescaped(raw, '"') {
		if hasUnescaped(raw, '\'') {
			js_ast.Malformed(js_ast.KindDirective, "raw value %q contains both kinds of unescaped quotes", raw)
		}
		quote = "'"
	}
	return seq(t(quote+raw+quote), semiOp())
}

// Reports whether "quote" appears in "raw" without an odd number of
// backslashes before it
func hasUnescaped(raw string, quote byte) bool {
	backslashes := 0
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case c == '\\':
			backslashes++
			continue
		case c == quote && backslashes%2 == 0:
			return true
		}
		backslashes = 0
	}
	return false
}

func (g *CodeGen) ReduceFunctionBody(node *js_ast.FunctionBody, directives []CodeRep, statements []CodeRep) CodeRep {
	statements = withoutDirectiveHazard(node.Statements, statements)
	return g.brace(js_ast.KindFunctionBody, prologue(directives, statements))
}

func (g *CodeGen) ReduceBlock(node *js_ast.Block, statements []CodeRep) CodeRep {
	return g.brace(js_ast.KindBlock, statements)
}

func (g *CodeGen) ReduceFormalParameters(node *js_ast.FormalParameters, items []CodeRep, rest CodeRep) CodeRep {
	if rest != nil {
		items = append(append([]CodeRep{}, items...), seq(t("..."), rest))
	}
	return paren(g.commaSep(js_ast.KindFormalParameters, items))
}

////////////////////////////////////////////////////////////////////////////////
// Bindings

func (g *CodeGen) ReduceBindingIdentifier(node *js_ast.BindingIdentifier) CodeRep {
	if node.Name != "*default*" {
		checkIdentifier(js_ast.KindBindingIdentifier, node.Name)
	}
	rep := coderep.NewToken(node.Name)
	rep.StartsWithLet = node.Name == "let"
	return rep
}

func (g *CodeGen) ReduceArrayBinding(node *js_ast.ArrayBinding, elements []CodeRep, rest CodeRep) CodeRep {
	return g.arrayLike(js_ast.KindArrayBinding, holesOf(node.Elements), elements, rest)
}

func (g *CodeGen) ReduceObjectBinding(node *js_ast.ObjectBinding, properties []CodeRep) CodeRep {
	rep := g.inlineBrace(js_ast.KindObjectBinding, properties)
	rep.StartsWithCurly = true
	return rep
}

func (g *CodeGen) ReduceBindingPropertyIdentifier(node *js_ast.BindingPropertyIdentifier, binding CodeRep, init CodeRep) CodeRep {
	if init == nil {
		return binding
	}
	return g.withDefault(js_ast.KindBindingPropertyIdentifier, binding, node.Init, init)
}

func (g *CodeGen) ReduceBindingPropertyProperty(node *js_ast.BindingPropertyProperty, name CodeRep, binding CodeRep) CodeRep {
	return seq(name, t(":"), g.sep(js_ast.KindBindingPropertyProperty, ":", After), binding)
}

func (g *CodeGen) ReduceBindingWithDefault(node *js_ast.BindingWithDefault, binding CodeRep, init CodeRep) CodeRep {
	return g.withDefault(js_ast.KindBindingWithDefault, binding, node.Init, init)
}

func (g *CodeGen) withDefault(kind js_ast.Kind, binding CodeRep, initNode js_ast.Expr, init CodeRep) CodeRep {
	rep := seq(binding, g.sep(kind, "=", Before), t("="), g.sep(kind, "=", After), p(initNode, js_ast.LAssignment, init))
	rep.CopyStart(startsWith(binding))
	return rep
}

////////////////////////////////////////////////////////////////////////////////
// Assignment targets

func (g *CodeGen) ReduceAssignmentTargetIdentifier(node *js_ast.AssignmentTargetIdentifier) CodeRep {
	checkIdentifier(js_ast.KindAssignmentTargetIdentifier, node.Name)
	rep := coderep.NewToken(node.Name)
	rep.StartsWithLet = node.Name == "let"
	return rep
}

func (g *CodeGen) ReduceStaticMemberAssignmentTarget(node *js_ast.StaticMemberAssignmentTarget, object CodeRep) CodeRep {
	return g.staticMember(js_ast.KindStaticMemberAssignmentTarget, node, node.Object, object, node.Property)
}

func (g *CodeGen) ReduceComputedMemberAssignmentTarget(node *js_ast.ComputedMemberAssignmentTarget, object CodeRep, expression CodeRep) CodeRep {
	return g.computedMember(node, node.Object, object, expression)
}

func (g *CodeGen) ReduceArrayAssignmentTarget(node *js_ast.ArrayAssignmentTarget, elements []CodeRep, rest CodeRep) CodeRep {
	return g.arrayLike(js_ast.KindArrayAssignmentTarget, holesOf(node.Elements), elements, rest)
}

func (g *CodeGen) ReduceObjectAssignmentTarget(node *js_ast.ObjectAssignmentTarget, properties []CodeRep) CodeRep {
	rep := g.inlineBrace(js_ast.KindObjectAssignmentTarget, properties)
	rep.StartsWithCurly = true
	return rep
}

func (g *CodeGen) ReduceAssignmentTargetPropertyIdentifier(node *js_ast.AssignmentTargetPropertyIdentifier, binding CodeRep, init CodeRep) CodeRep {
	if init == nil {
		return binding
	}
	return g.withDefault(js_ast.KindAssignmentTargetPropertyIdentifier, binding, node.Init, init)
}

func (g *CodeGen) ReduceAssignmentTargetPropertyProperty(node *js_ast.AssignmentTargetPropertyProperty, name CodeRep, binding CodeRep) CodeRep {
	return seq(name, t(":"), g.sep(js_ast.KindAssignmentTargetPropertyProperty, ":", After), binding)
}

func (g *CodeGen) ReduceAssignmentTargetWithDefault(node *js_ast.AssignmentTargetWithDefault, binding CodeRep, init CodeRep) CodeRep {
	return g.withDefault(js_ast.KindAssignmentTargetWithDefault, binding, node.Init, init)
}

////////////////////////////////////////////////////////////////////////////////
// Classes, functions and object members

func (g *CodeGen) ReduceClassDeclaration(node *js_ast.ClassDeclaration, name CodeRep, super CodeRep, elements []CodeRep) CodeRep {
	return g.class(js_ast.KindClassDeclaration, node.Name, name, node.Super, super, elements)
}

func (g *CodeGen) ReduceClassExpression(node *js_ast.ClassExpression, name CodeRep, super CodeRep, elements []CodeRep) CodeRep {
	rep := g.class(js_ast.KindClassExpression, node.Name, name, node.Super, super, elements)
	rep.StartsWithFunctionOrClass = true
	return rep
}

func (g *CodeGen) ReduceClassElement(node *js_ast.ClassElement, method CodeRep) CodeRep {
	if !node.IsStatic {
		return method
	}
	return g.keyword(js_ast.KindClassElement, "static", method)
}

func (g *CodeGen) ReduceFunctionDeclaration(node *js_ast.FunctionDeclaration, name CodeRep, params CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindFunctionDeclaration
	parts := g.functionHeader(kind, node.IsAsync, node.IsGenerator, node.Name, name)
	return seq(append(parts, params, g.sep(kind, "body", Before), body)...)
}

func (g *CodeGen) ReduceFunctionExpression(node *js_ast.FunctionExpression, name CodeRep, params CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindFunctionExpression
	parts := g.functionHeader(kind, node.IsAsync, node.IsGenerator, node.Name, name)
	rep := seq(append(parts, params, g.sep(kind, "body", Before), body)...)
	rep.StartsWithFunctionOrClass = true
	return rep
}

func (g *CodeGen) ReduceArrowExpression(node *js_ast.ArrowExpression, params CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindArrowExpression
	containsIn := false
	if _, ok := node.Body.(*js_ast.FunctionBody); !ok {
		body = p(node.Body, js_ast.LAssignment, body)
		if body.Attributes().StartsWithCurly {
			body = paren(body)
		}
		containsIn = body.Attributes().ContainsIn
	}

	var parts []CodeRep
	if node.IsAsync {
		parts = append(parts, t("async"), g.sep(kind, "async", After))
	}
	parts = append(parts, params, g.sep(kind, "=>", Before), t("=>"), g.sep(kind, "=>", After), body)
	rep := seq(parts...)
	rep.ContainsIn = containsIn
	return rep
}

func (g *CodeGen) ReduceMethod(node *js_ast.Method, name CodeRep, params CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindMethod
	var parts []CodeRep
	if node.IsAsync {
		parts = append(parts, t("async"), g.sep(kind, "async", After))
	}
	if node.IsGenerator {
		parts = append(parts, t("*"))
	}
	return seq(append(parts, name, params, g.sep(kind, "body", Before), body)...)
}

func (g *CodeGen) ReduceGetter(node *js_ast.Getter, name CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindGetter
	return g.keyword(kind, "get", name, t("("), t(")"), g.sep(kind, "body", Before), body)
}

func (g *CodeGen) ReduceSetter(node *js_ast.Setter, name CodeRep, param CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindSetter
	return g.keyword(kind, "set", name, paren(param), g.sep(kind, "body", Before), body)
}

func (g *CodeGen) ReduceDataProperty(node *js_ast.DataProperty, name CodeRep, expression CodeRep) CodeRep {
	kind := js_ast.KindDataProperty
	return seq(name, t(":"), g.sep(kind, ":", After), p(node.Expression, js_ast.LAssignment, expression))
}

func (g *CodeGen) ReduceShorthandProperty(node *js_ast.ShorthandProperty, name CodeRep) CodeRep {
	return seq(name)
}

func (g *CodeGen) ReduceComputedPropertyName(node *js_ast.ComputedPropertyName, expression CodeRep) CodeRep {
	return bracket(p(node.Expression, js_ast.LAssignment, expression))
}

func (g *CodeGen) ReduceStaticPropertyName(node *js_ast.StaticPropertyName) CodeRep {
	value := node.Value
	if js_ast.IsIdentifier(value) {
		return t(value)
	}

	// Names that are the canonical text of a number can be written as one
	if n, err := strconv.ParseFloat(value, 64); err == nil && n >= 0 && coderep.NumberToString(n) == value {
		return coderep.NewNumber(n)
	}

	return t(EscapeStringLiteral(value))
}

////////////////////////////////////////////////////////////////////////////////
// Modules

func (g *CodeGen) moduleSpecifier(specifier string) CodeRep {
	return t(EscapeStringLiteral(specifier))
}

func (g *CodeGen) from(kind js_ast.Kind, specifier string) []CodeRep {
	return []CodeRep{g.sep(kind, "from", Before), t("from"), g.sep(kind, "from", After), g.moduleSpecifier(specifier), semiOp()}
}

func (g *CodeGen) ReduceImport(node *js_ast.Import, defaultBinding CodeRep, namedImports []CodeRep) CodeRep {
	kind := js_ast.KindImport
	var bindings []CodeRep
	if defaultBinding != nil {
		bindings = append(bindings, defaultBinding)
	}
	if len(namedImports) > 0 {
		bindings = append(bindings, g.inlineBrace(kind, namedImports))
	}
	if len(bindings) == 0 {
		return g.keyword(kind, "import", g.moduleSpecifier(node.ModuleSpecifier), semiOp())
	}
	return g.keyword(kind, "import", append([]CodeRep{g.commaSep(kind, bindings)}, g.from(kind, node.ModuleSpecifier)...)...)
}

func (g *CodeGen) ReduceImportNamespace(node *js_ast.ImportNamespace, defaultBinding CodeRep, namespaceBinding CodeRep) CodeRep {
	kind := js_ast.KindImportNamespace
	var parts []CodeRep
	if defaultBinding != nil {
		parts = append(parts, defaultBinding, t(","), g.sep(kind, ",", After))
	}
	parts = append(parts, t("*"), g.sep(kind, "*", After), t("as"), namespaceBinding)
	return g.keyword(kind, "import", append(parts, g.from(kind, node.ModuleSpecifier)...)...)
}

func (g *CodeGen) ReduceImportSpecifier(node *js_ast.ImportSpecifier, binding CodeRep) CodeRep {
	if node.Name == "" {
		return binding
	}
	checkIdentifier(js_ast.KindImportSpecifier, node.Name)
	return seq(t(node.Name), t("as"), binding)
}

func (g *CodeGen) ReduceExportAllFrom(node *js_ast.ExportAllFrom) CodeRep {
	kind := js_ast.KindExportAllFrom
	return g.keyword(kind, "export", append([]CodeRep{t("*")}, g.from(kind, node.ModuleSpecifier)...)...)
}

func (g *CodeGen) ReduceExportFrom(node *js_ast.ExportFrom, namedExports []CodeRep) CodeRep {
	kind := js_ast.KindExportFrom
	return g.keyword(kind, "export", append([]CodeRep{g.inlineBrace(kind, namedExports)}, g.from(kind, node.ModuleSpecifier)...)...)
}

func (g *CodeGen) ReduceExportLocals(node *js_ast.ExportLocals, namedExports []CodeRep) CodeRep {
	kind := js_ast.KindExportLocals
	return g.keyword(kind, "export", g.inlineBrace(kind, namedExports), semiOp())
}

func (g *CodeGen) ReduceExport(node *js_ast.Export, declaration CodeRep) CodeRep {
	kind := js_ast.KindExport
	if _, ok := node.Declaration.(*js_ast.VariableDeclaration); ok {
		return g.keyword(kind, "export", declaration, semiOp())
	}
	return g.keyword(kind, "export", declaration)
}

func (g *CodeGen) ReduceExportDefault(node *js_ast.ExportDefault, body CodeRep) CodeRep {
	kind := js_ast.KindExportDefault
	switch node.Body.(type) {
	case *js_ast.FunctionDeclaration, *js_ast.ClassDeclaration:
		return g.keyword(kind, "export", t("default"), g.sep(kind, "default", After), body)
	}
	body = p(node.Body, js_ast.LAssignment, body)
	if body.Attributes().StartsWithFunctionOrClass {
		body = paren(body)
	}
	return g.keyword(kind, "export", t("default"), g.sep(kind, "default", After), body, semiOp())
}

func (g *CodeGen) ReduceExportFromSpecifier(node *js_ast.ExportFromSpecifier) CodeRep {
	checkIdentifier(js_ast.KindExportFromSpecifier, node.Name)
	if node.ExportedName == "" {
		return t(node.Name)
	}
	checkIdentifier(js_ast.KindExportFromSpecifier, node.ExportedName)
	return seq(t(node.Name), t("as"), t(node.ExportedName))
}

func (g *CodeGen) ReduceExportLocalSpecifier(node *js_ast.ExportLocalSpecifier, name CodeRep) CodeRep {
	if node.ExportedName == "" {
		return seq(name)
	}
	checkIdentifier(js_ast.KindExportLocalSpecifier, node.ExportedName)
	return seq(name, t("as"), t(node.ExportedName))
}

////////////////////////////////////////////////////////////////////////////////
// Expressions

func (g *CodeGen) ReduceLiteralBooleanExpression(node *js_ast.LiteralBooleanExpression) CodeRep {
	if node.Value {
		return t("true")
	}
	return t("false")
}

func (g *CodeGen) ReduceLiteralInfinityExpression(node *js_ast.LiteralInfinityExpression) CodeRep {
	return coderep.NewNumber(math.Inf(1))
}

func (g *CodeGen) ReduceLiteralNullExpression(node *js_ast.LiteralNullExpression) CodeRep {
	return t("null")
}

func (g *CodeGen) ReduceLiteralNumericExpression(node *js_ast.LiteralNumericExpression) CodeRep {
	if math.IsNaN(node.Value) || node.Value < 0 {
		js_ast.Malformed(js_ast.KindLiteralNumericExpression, "numeric literals must be non-negative numbers, got %v", node.Value)
	}
	return coderep.NewNumber(node.Value)
}

func (g *CodeGen) ReduceLiteralRegExpExpression(node *js_ast.LiteralRegExpExpression) CodeRep {
	flags := make([]byte, 0, 6)
	for _, flag := range []struct {
		set  bool
		char byte
	}{
		{node.Global, 'g'},
		{node.IgnoreCase, 'i'},
		{node.Multiline, 'm'},
		{node.DotAll, 's'},
		{node.Unicode, 'u'},
		{node.Sticky, 'y'},
	} {
		if flag.set {
			flags = append(flags, flag.char)
		}
	}
	return coderep.NewRegExp("/" + node.Pattern + "/" + string(flags))
}

func (g *CodeGen) ReduceLiteralStringExpression(node *js_ast.LiteralStringExpression) CodeRep {
	return t(EscapeStringLiteral(node.Value))
}

func (g *CodeGen) ReduceArrayExpression(node *js_ast.ArrayExpression, elements []CodeRep) CodeRep {
	return g.arrayLike(js_ast.KindArrayExpression, holesOf(node.Elements), elements, nil)
}

func (g *CodeGen) ReduceObjectExpression(node *js_ast.ObjectExpression, properties []CodeRep) CodeRep {
	rep := g.inlineBrace(js_ast.KindObjectExpression, properties)
	rep.StartsWithCurly = true
	return rep
}

func (g *CodeGen) ReduceAssignmentExpression(node *js_ast.AssignmentExpression, binding CodeRep, expression CodeRep) CodeRep {
	return g.assignment(js_ast.KindAssignmentExpression, "=", binding, node.Expression, expression)
}

func (g *CodeGen) ReduceCompoundAssignmentExpression(node *js_ast.CompoundAssignmentExpression, binding CodeRep, expression CodeRep) CodeRep {
	if !node.Operator.IsValid() {
		js_ast.Malformed(js_ast.KindCompoundAssignmentExpression, "unknown operator %q", node.Operator)
	}
	return g.assignment(js_ast.KindCompoundAssignmentExpression, string(node.Operator), binding, node.Expression, expression)
}

// The right side is marked so that an "in" inside it is parenthesized in a
// "for" head. The parentheses then only surround the right side.
func (g *CodeGen) assignment(kind js_ast.Kind, op string, binding CodeRep, right js_ast.Expr, expression CodeRep) CodeRep {
	rightCode := markContainsIn(p(right, js_ast.LAssignment, expression))
	rep := seq(binding, g.sepOp(kind, "operator", Before, op), t(op), g.sepOp(kind, "operator", After, op), rightCode)
	rep.ContainsIn = rightCode.Attributes().ContainsIn
	rep.CopyStart(startsWith(binding))
	return rep
}

func (g *CodeGen) ReduceAwaitExpression(node *js_ast.AwaitExpression, expression CodeRep) CodeRep {
	kind := js_ast.KindAwaitExpression
	return g.keyword(kind, "await", p(node.Expression, js_ast.PrecedenceOf(node), expression))
}

func (g *CodeGen) ReduceBinaryExpression(node *js_ast.BinaryExpression, left CodeRep, right CodeRep) CodeRep {
	kind := js_ast.KindBinaryExpression
	level := js_ast.PrecedenceOf(node)
	op := string(node.Operator)

	leftCode := left
	if js_ast.PrecedenceOf(node.Left) < level {
		leftCode = paren(left)
	}
	rightCode := right
	if js_ast.PrecedenceOf(node.Right) <= level {
		rightCode = paren(right)
	}

	rep := seq(leftCode, g.sepOp(kind, "operator", Before, op), t(op), g.sepOp(kind, "operator", After, op), rightCode)
	rep.ContainsIn = leftCode.Attributes().ContainsIn || rightCode.Attributes().ContainsIn || node.Operator == js_ast.BinOpIn
	rep.ContainsGroup = node.Operator == js_ast.BinOpComma
	rep.CopyStart(startsWith(leftCode))
	return rep
}

func (g *CodeGen) ReduceCallExpression(node *js_ast.CallExpression, callee CodeRep, arguments []CodeRep) CodeRep {
	calleeCode := p(node.Callee, js_ast.LCall, callee)
	args := make([]CodeRep, len(arguments))
	for i, arg := range arguments {
		args[i] = getAssignmentExpr(arg)
	}
	rep := seq(calleeCode, paren(g.commaSep(js_ast.KindCallExpression, args)))
	rep.CopyStart(startsWith(calleeCode))
	return rep
}

func (g *CodeGen) ReduceNewExpression(node *js_ast.NewExpression, callee CodeRep, arguments []CodeRep) CodeRep {
	kind := js_ast.KindNewExpression
	calleeCode := callee
	if js_ast.PrecedenceOf(node.Callee) < js_ast.LMember {
		calleeCode = paren(callee)
	}
	if len(arguments) == 0 {
		return g.keyword(kind, "new", calleeCode)
	}
	args := make([]CodeRep, len(arguments))
	for i, arg := range arguments {
		args[i] = getAssignmentExpr(arg)
	}
	return g.keyword(kind, "new", calleeCode, paren(g.commaSep(kind, args)))
}

func (g *CodeGen) ReduceNewTargetExpression(node *js_ast.NewTargetExpression) CodeRep {
	return t("new.target")
}

func (g *CodeGen) ReduceSuper(node *js_ast.Super) CodeRep {
	return t("super")
}

func (g *CodeGen) ReduceThisExpression(node *js_ast.ThisExpression) CodeRep {
	return t("this")
}

func (g *CodeGen) ReduceIdentifierExpression(node *js_ast.IdentifierExpression) CodeRep {
	checkIdentifier(js_ast.KindIdentifierExpression, node.Name)
	rep := coderep.NewToken(node.Name)
	rep.StartsWithLet = node.Name == "let"
	return rep
}

func (g *CodeGen) ReduceStaticMemberExpression(node *js_ast.StaticMemberExpression, object CodeRep) CodeRep {
	return g.staticMember(js_ast.KindStaticMemberExpression, node, node.Object, object, node.Property)
}

func (g *CodeGen) staticMember(kind js_ast.Kind, node js_ast.Node, objectNode js_ast.Node, object CodeRep, property string) CodeRep {
	checkIdentifier(kind, property)
	objectCode := g.memberObject(node, objectNode, object)
	rep := seq(objectCode, t("."), t(property))
	rep.CopyStart(startsWith(objectCode))
	return rep
}

func (g *CodeGen) ReduceComputedMemberExpression(node *js_ast.ComputedMemberExpression, object CodeRep, expression CodeRep) CodeRep {
	return g.computedMember(node, node.Object, object, expression)
}

func (g *CodeGen) computedMember(node js_ast.Node, objectNode js_ast.Node, object CodeRep, expression CodeRep) CodeRep {
	objectCode := g.memberObject(node, objectNode, object)
	rep := seq(objectCode, bracket(expression))
	rep.CopyStart(startsWith(objectCode))
	if isLetIdentifier(objectNode) {
		rep.StartsWithLetSquareBracket = true
	}
	return rep
}

func (g *CodeGen) ReduceConditionalExpression(node *js_ast.ConditionalExpression, test CodeRep, consequent CodeRep, alternate CodeRep) CodeRep {
	kind := js_ast.KindConditionalExpression
	testCode := p(node.Test, js_ast.LLogicalOr, test)
	consequentCode := p(node.Consequent, js_ast.LAssignment, consequent)
	alternateCode := p(node.Alternate, js_ast.LAssignment, alternate)
	rep := seq(
		testCode, g.sep(kind, "?", Before), t("?"), g.sep(kind, "?", After),
		consequentCode, g.sep(kind, ":", Before), t(":"), g.sep(kind, ":", After),
		alternateCode,
	)
	rep.ContainsIn = testCode.Attributes().ContainsIn || alternateCode.Attributes().ContainsIn
	rep.CopyStart(startsWith(testCode))
	return rep
}

func (g *CodeGen) ReduceTemplateExpression(node *js_ast.TemplateExpression, tag CodeRep, elements []CodeRep) CodeRep {
	var parts []CodeRep
	var tagCode CodeRep
	if node.Tag != nil {
		tagCode = p(node.Tag, js_ast.PrecedenceOf(node), tag)
		parts = append(parts, tagCode)
	}
	parts = append(parts, t("`"))
	for i, element := range node.Elements {
		if _, ok := element.(*js_ast.TemplateElement); ok {
			parts = append(parts, elements[i])
		} else {
			parts = append(parts, coderep.NewRaw("${"), elements[i], t("}"))
		}
	}
	parts = append(parts, coderep.NewRaw("`"))
	rep := seq(parts...)
	if tagCode != nil {
		rep.CopyStart(startsWith(tagCode))
	}
	return rep
}

func (g *CodeGen) ReduceTemplateElement(node *js_ast.TemplateElement) CodeRep {
	return coderep.NewRaw(node.RawValue)
}

func (g *CodeGen) ReduceUnaryExpression(node *js_ast.UnaryExpression, operand CodeRep) CodeRep {
	kind := js_ast.KindUnaryExpression
	if !node.Operator.IsValid() {
		js_ast.Malformed(kind, "unknown operator %q", node.Operator)
	}
	op := string(node.Operator)
	return seq(t(op), g.sepOp(kind, "operator", After, op), p(node.Operand, js_ast.PrecedenceOf(node), operand))
}

func (g *CodeGen) ReduceUpdateExpression(node *js_ast.UpdateExpression, operand CodeRep) CodeRep {
	if !node.Operator.IsValid() {
		js_ast.Malformed(js_ast.KindUpdateExpression, "unknown operator %q", node.Operator)
	}
	op := string(node.Operator)
	if node.IsPrefix {
		return seq(t(op), p(node.Operand, js_ast.PrecedenceOf(node), operand))
	}
	operandCode := p(node.Operand, js_ast.LNew, operand)
	rep := seq(operandCode, t(op))
	rep.CopyStart(startsWith(operandCode))
	return rep
}

func (g *CodeGen) ReduceYieldExpression(node *js_ast.YieldExpression, expression CodeRep) CodeRep {
	if expression == nil {
		return t("yield")
	}
	expressionCode := p(node.Expression, js_ast.LYield, expression)
	rep := g.keyword(js_ast.KindYieldExpression, "yield", expressionCode)
	rep.ContainsIn = expressionCode.Attributes().ContainsIn
	return rep
}

func (g *CodeGen) ReduceYieldGeneratorExpression(node *js_ast.YieldGeneratorExpression, expression CodeRep) CodeRep {
	kind := js_ast.KindYieldGeneratorExpression
	expressionCode := p(node.Expression, js_ast.LYield, expression)
	rep := seq(t("yield"), t("*"), g.sep(kind, "*", After), expressionCode)
	rep.ContainsIn = expressionCode.Attributes().ContainsIn
	return rep
}

func (g *CodeGen) ReduceSpreadElement(node *js_ast.SpreadElement, expression CodeRep) CodeRep {
	return seq(t("..."), p(node.Expression, js_ast.LAssignment, expression))
}

////////////////////////////////////////////////////////////////////////////////
// Statements

func (g *CodeGen) ReduceBlockStatement(node *js_ast.BlockStatement, block CodeRep) CodeRep {
	return block
}

func (g *CodeGen) ReduceBreakStatement(node *js_ast.BreakStatement) CodeRep {
	return g.jump(js_ast.KindBreakStatement, "break", node.Label)
}

func (g *CodeGen) ReduceContinueStatement(node *js_ast.ContinueStatement) CodeRep {
	return g.jump(js_ast.KindContinueStatement, "continue", node.Label)
}

func (g *CodeGen) jump(kind js_ast.Kind, keyword string, label string) CodeRep {
	if label == "" {
		return seq(t(keyword), semiOp())
	}
	checkIdentifier(kind, label)
	return g.keyword(kind, keyword, t(label), semiOp())
}

func (g *CodeGen) ReduceDebuggerStatement(node *js_ast.DebuggerStatement) CodeRep {
	return seq(t("debugger"), semiOp())
}

func (g *CodeGen) ReduceEmptyStatement(node *js_ast.EmptyStatement) CodeRep {
	return t(";")
}

func (g *CodeGen) ReduceExpressionStatement(node *js_ast.ExpressionStatement, expression CodeRep) CodeRep {
	if startsWith(expression).StartsWithRestricted() {
		expression = paren(expression)
	}
	return seq(expression, semiOp())
}

func (g *CodeGen) ReduceDoWhileStatement(node *js_ast.DoWhileStatement, body CodeRep, test CodeRep) CodeRep {
	kind := js_ast.KindDoWhileStatement
	return g.keyword(kind, "do", body, g.sep(kind, "while", Before), t("while"), g.sep(kind, "while", After), paren(test), semiOp())
}

func (g *CodeGen) ReduceForInStatement(node *js_ast.ForInStatement, left CodeRep, right CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindForInStatement
	leftCode := left
	if _, ok := node.Left.(*js_ast.VariableDeclaration); ok {
		leftCode = coderep.NewNoIn(markContainsIn(left))
	} else if startsWith(left).StartsWithLet {
		// Both "for(let in a)" and "for(let[a] in b)" would start a declaration
		leftCode = paren(left)
	}
	head := paren(seq(leftCode, g.sep(kind, "in", Before), t("in"), g.sep(kind, "in", After), right))
	rep := g.keyword(kind, "for", head, g.sep(kind, "body", Before), body)
	rep.EndsWithMissingElse = startsWith(body).EndsWithMissingElse
	return rep
}

func (g *CodeGen) ReduceForOfStatement(node *js_ast.ForOfStatement, left CodeRep, right CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindForOfStatement
	leftCode := left
	if _, ok := node.Left.(*js_ast.VariableDeclaration); ok {
		leftCode = coderep.NewNoIn(markContainsIn(left))
	} else if id, ok := node.Left.(*js_ast.AssignmentTargetIdentifier); (ok && id.Name == "async") || startsWith(left).StartsWithLet {
		leftCode = paren(left)
	}
	rightCode := p(node.Right, js_ast.LAssignment, right)
	head := paren(seq(leftCode, g.sep(kind, "of", Before), t("of"), g.sep(kind, "of", After), rightCode))
	rep := g.keyword(kind, "for", head, g.sep(kind, "body", Before), body)
	rep.EndsWithMissingElse = startsWith(body).EndsWithMissingElse
	return rep
}

func (g *CodeGen) ReduceForStatement(node *js_ast.ForStatement, init CodeRep, test CodeRep, update CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindForStatement
	var initCode CodeRep
	if init != nil {
		initCode = init
		if startsWith(init).StartsWithLetSquareBracket {
			initCode = paren(init)
		}
		initCode = coderep.NewNoIn(markContainsIn(initCode))
	}
	head := paren(seq(
		initCode, t(";"),
		g.sepIf(test != nil, kind, ";", After), test, t(";"),
		g.sepIf(update != nil, kind, ";", After), update,
	))
	rep := g.keyword(kind, "for", head, g.sep(kind, "body", Before), body)
	rep.EndsWithMissingElse = startsWith(body).EndsWithMissingElse
	return rep
}

func (g *CodeGen) ReduceIfStatement(node *js_ast.IfStatement, test CodeRep, consequent CodeRep, alternate CodeRep) CodeRep {
	kind := js_ast.KindIfStatement
	consequentCode := consequent
	if alternate != nil && startsWith(consequent).EndsWithMissingElse {
		consequentCode = g.brace(js_ast.KindBlock, []CodeRep{consequent})
	}
	parts := []CodeRep{paren(test), g.sep(kind, "consequent", Before), consequentCode}
	if alternate != nil {
		parts = append(parts, g.sep(kind, "else", Before), t("else"), g.sep(kind, "else", After), alternate)
	}
	rep := g.keyword(kind, "if", parts...)
	if alternate != nil {
		rep.EndsWithMissingElse = startsWith(alternate).EndsWithMissingElse
	} else {
		rep.EndsWithMissingElse = true
	}
	return rep
}

func (g *CodeGen) ReduceLabeledStatement(node *js_ast.LabeledStatement, body CodeRep) CodeRep {
	kind := js_ast.KindLabeledStatement
	checkIdentifier(kind, node.Label)
	rep := seq(t(node.Label), t(":"), g.sep(kind, ":", After), body)
	rep.EndsWithMissingElse = startsWith(body).EndsWithMissingElse
	return rep
}

func (g *CodeGen) ReduceReturnStatement(node *js_ast.ReturnStatement, expression CodeRep) CodeRep {
	if expression == nil {
		return seq(t("return"), semiOp())
	}
	return g.keyword(js_ast.KindReturnStatement, "return", expression, semiOp())
}

func (g *CodeGen) ReduceThrowStatement(node *js_ast.ThrowStatement, expression CodeRep) CodeRep {
	return g.keyword(js_ast.KindThrowStatement, "throw", expression, semiOp())
}

func (g *CodeGen) ReduceSwitchStatement(node *js_ast.SwitchStatement, discriminant CodeRep, cases []CodeRep) CodeRep {
	kind := js_ast.KindSwitchStatement
	return g.keyword(kind, "switch", paren(discriminant), g.sep(kind, "body", Before), g.brace(kind, cases))
}

func (g *CodeGen) ReduceSwitchStatementWithDefault(node *js_ast.SwitchStatementWithDefault, discriminant CodeRep, preDefaultCases []CodeRep, defaultCase CodeRep, postDefaultCases []CodeRep) CodeRep {
	kind := js_ast.KindSwitchStatementWithDefault
	cases := make([]CodeRep, 0, len(preDefaultCases)+1+len(postDefaultCases))
	cases = append(cases, preDefaultCases...)
	cases = append(cases, defaultCase)
	cases = append(cases, postDefaultCases...)
	return g.keyword(kind, "switch", paren(discriminant), g.sep(kind, "body", Before), g.brace(kind, cases))
}

func (g *CodeGen) ReduceSwitchCase(node *js_ast.SwitchCase, test CodeRep, consequent []CodeRep) CodeRep {
	kind := js_ast.KindSwitchCase
	return g.keyword(kind, "case", test, t(":"), g.statements(kind, consequent))
}

func (g *CodeGen) ReduceSwitchDefault(node *js_ast.SwitchDefault, consequent []CodeRep) CodeRep {
	kind := js_ast.KindSwitchDefault
	return seq(t("default"), t(":"), g.statements(kind, consequent))
}

func (g *CodeGen) ReduceTryCatchStatement(node *js_ast.TryCatchStatement, body CodeRep, catchClause CodeRep) CodeRep {
	kind := js_ast.KindTryCatchStatement
	return g.keyword(kind, "try", body, g.sep(kind, "catch", Before), catchClause)
}

func (g *CodeGen) ReduceTryFinallyStatement(node *js_ast.TryFinallyStatement, body CodeRep, catchClause CodeRep, finalizer CodeRep) CodeRep {
	kind := js_ast.KindTryFinallyStatement
	parts := []CodeRep{body}
	if catchClause != nil {
		parts = append(parts, g.sep(kind, "catch", Before), catchClause)
	}
	parts = append(parts, g.sep(kind, "finally", Before), t("finally"), g.sep(kind, "finally", After), finalizer)
	return g.keyword(kind, "try", parts...)
}

func (g *CodeGen) ReduceCatchClause(node *js_ast.CatchClause, binding CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindCatchClause
	return g.keyword(kind, "catch", paren(binding), g.sep(kind, "body", Before), body)
}

func (g *CodeGen) ReduceVariableDeclarationStatement(node *js_ast.VariableDeclarationStatement, declaration CodeRep) CodeRep {
	return seq(declaration, semiOp())
}

func (g *CodeGen) ReduceVariableDeclaration(node *js_ast.VariableDeclaration, declarators []CodeRep) CodeRep {
	kind := js_ast.KindVariableDeclaration
	if !node.DeclKind.IsValid() {
		js_ast.Malformed(kind, "unknown declaration kind %q", node.DeclKind)
	}
	return seq(t(string(node.DeclKind)), g.sep(kind, "kind", After), g.commaSep(kind, declarators))
}

func (g *CodeGen) ReduceVariableDeclarator(node *js_ast.VariableDeclarator, binding CodeRep, init CodeRep) CodeRep {
	kind := js_ast.KindVariableDeclarator
	if init == nil {
		return coderep.NewInit(binding, nil)
	}
	initCode := markContainsIn(p(node.Init, js_ast.LAssignment, init))
	return coderep.NewInit(seq(binding, g.sep(kind, "=", Before)), seq(g.sep(kind, "=", After), initCode))
}

func (g *CodeGen) ReduceWhileStatement(node *js_ast.WhileStatement, test CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindWhileStatement
	rep := g.keyword(kind, "while", paren(test), g.sep(kind, "body", Before), body)
	rep.EndsWithMissingElse = startsWith(body).EndsWithMissingElse
	return rep
}

func (g *CodeGen) ReduceWithStatement(node *js_ast.WithStatement, object CodeRep, body CodeRep) CodeRep {
	kind := js_ast.KindWithStatement
	rep := g.keyword(kind, "with", paren(object), g.sep(kind, "body", Before), body)
	rep.EndsWithMissingElse = startsWith(body).EndsWithMissingElse
	return rep
}
