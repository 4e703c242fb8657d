package codegen

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/esgen/esgen/internal/test"
	"github.com/esgen/esgen/pkg/coderep"
	"github.com/esgen/esgen/pkg/js_ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectMalformed(t *testing.T, root js_ast.Node, contains string) {
	t.Helper()
	t.Run(contains, func(t *testing.T) {
		t.Helper()
		js, err := Generate(root, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedInput), "unexpected error: %v", err)
		assert.Contains(t, err.Error(), contains)
		assert.Equal(t, "", js)

		js, locations, err := GenerateWithLocation(root, NewFormatted(FormatOptions{}))
		assert.True(t, errors.Is(err, ErrMalformedInput), "unexpected error: %v", err)
		assert.Equal(t, "", js)
		assert.Nil(t, locations)
	})
}

func TestMalformedInput(t *testing.T) {
	expectMalformed(t, nil, "missing root node")
	expectMalformed(t, (*js_ast.Script)(nil), "missing root node")
	expectMalformed(t, script(expr(num(-1))), "non-negative")
	expectMalformed(t, script(expr(&js_ast.LiteralNumericExpression{Value: math.NaN()})), "non-negative")
	expectMalformed(t, script(expr(id("a b"))), "invalid identifier \"a b\"")
	expectMalformed(t, script(expr(dot(id("a"), "1"))), "invalid identifier \"1\"")
	expectMalformed(t, script(expr(bin(id("a"), "**", id("b")))), "unknown binary operator \"**\"")
	expectMalformed(t, script(expr(&js_ast.UnaryExpression{Operator: "~~", Operand: id("a")})), "unknown operator \"~~\"")
	expectMalformed(t, script(expr(&js_ast.CompoundAssignmentExpression{Binding: tid("a"), Operator: "**=", Expression: id("b")})), "unknown operator \"**=\"")
	expectMalformed(t, script(expr(&js_ast.UpdateExpression{Operator: "+-", Operand: tid("a")})), "unknown operator \"+-\"")
	expectMalformed(t, script(&js_ast.VariableDeclarationStatement{Declaration: decl("using", "a", nil)}), "unknown declaration kind \"using\"")
	expectMalformed(t, script(&js_ast.ExpressionStatement{}), "ExpressionStatement: missing required field")
	expectMalformed(t, script(nil), "Script: unexpected hole")
	expectMalformed(t, &js_ast.Script{Directives: []*js_ast.Directive{{RawValue: "a\"'"}}}, "both kinds of unescaped quotes")
	expectMalformed(t, script(&js_ast.VariableDeclarationStatement{Declaration: &js_ast.VariableDeclaration{DeclKind: js_ast.VarKind}}), "no declarators")
}

func TestMalformedMessageNamesKind(t *testing.T) {
	_, err := Generate(script(expr(id("a b"))), nil)
	require.Error(t, err)
	test.AssertEqual(t, err.Error(), "malformed input: IdentifierExpression: invalid identifier \"a b\"")
}

type panickingGen struct {
	*CodeGen
}

func (panickingGen) ReduceThisExpression(*js_ast.ThisExpression) CodeRep {
	panic("boom")
}

func TestInternalError(t *testing.T) {
	js, err := Generate(script(expr(&js_ast.ThisExpression{})), panickingGen{NewMinimal()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
	assert.False(t, errors.Is(err, ErrMalformedInput))
	assert.True(t, strings.HasPrefix(err.Error(), "internal error: boom\n"), err.Error())
	assert.Equal(t, "", js)
}

type upperCaseIdentifiers struct {
	*CodeGen
}

func (upperCaseIdentifiers) ReduceIdentifierExpression(node *js_ast.IdentifierExpression) CodeRep {
	return coderep.NewToken(strings.ToUpper(node.Name))
}

func TestExtensibleOverride(t *testing.T) {
	gen := upperCaseIdentifiers{NewExtensible(Hooks{})}
	js, err := Generate(script(expr(call(dot(id("console"), "log"), id("a"), str("b")))), gen)
	require.NoError(t, err)
	test.AssertEqual(t, js, "CONSOLE.log(A,\"b\")")
}

func TestExtensibleSeparatorHook(t *testing.T) {
	var seen []Sep
	gen := NewExtensible(Hooks{
		Separator: func(sep Sep) CodeRep {
			seen = append(seen, sep)
			if sep.Field == "operator" && sep.Side == After {
				return coderep.NewToken(" ")
			}
			return coderep.NewEmpty()
		},
	})
	js, err := Generate(script(expr(bin(id("a"), "-", id("b")))), gen)
	require.NoError(t, err)
	test.AssertEqual(t, js, "a- b")
	assert.Equal(t, []Sep{
		{Kind: js_ast.KindBinaryExpression, Field: "operator", Side: Before, Op: "-"},
		{Kind: js_ast.KindBinaryExpression, Field: "operator", Side: After, Op: "-"},
	}, seen)
}

func TestExtensibleBraceHook(t *testing.T) {
	var kinds []js_ast.Kind
	gen := NewExtensible(Hooks{
		Brace: func(kind js_ast.Kind, items []CodeRep) CodeRep {
			kinds = append(kinds, kind)
			return coderep.NewBrace(coderep.NewSeq(items...))
		},
	})
	js, err := Generate(script(ifStmt(id("a"), ifStmt(id("b"), expr(id("c")), nil), expr(id("d")))), gen)
	require.NoError(t, err)
	test.AssertEqual(t, js, "if(a){if(b)c}else d")
	assert.Equal(t, []js_ast.Kind{js_ast.KindBlock}, kinds)
}

func TestGenerateConcurrently(t *testing.T) {
	gen := NewFormatted(FormatOptions{})
	root := script(&js_ast.FunctionDeclaration{
		Name:   bid("f"),
		Params: params(bid("a")),
		Body:   body(&js_ast.ReturnStatement{Expression: bin(id("a"), "+", num(1))}),
	})

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Generate(root, gen)
		}(i)
	}
	wg.Wait()
	for _, js := range results {
		test.AssertEqual(t, js, "function f(a) {\n  return a + 1;\n}\n")
	}
}
