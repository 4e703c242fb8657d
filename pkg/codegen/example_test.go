package codegen_test

import (
	"fmt"

	"github.com/esgen/esgen/pkg/codegen"
	"github.com/esgen/esgen/pkg/js_ast"
)

func ExampleGenerate() {
	tree := &js_ast.Script{Statements: []js_ast.Stmt{
		&js_ast.ExpressionStatement{Expression: &js_ast.CallExpression{
			Callee: &js_ast.StaticMemberExpression{
				Object:   &js_ast.IdentifierExpression{Name: "console"},
				Property: "log",
			},
			Arguments: []js_ast.ExprOrSpread{&js_ast.LiteralStringExpression{Value: "hi"}},
		}},
	}}

	js, err := codegen.Generate(tree, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(js)
	// Output: console.log("hi")
}

func ExampleNewFormatted() {
	tree := &js_ast.Script{Statements: []js_ast.Stmt{
		&js_ast.FunctionDeclaration{
			Name:   &js_ast.BindingIdentifier{Name: "double"},
			Params: &js_ast.FormalParameters{Items: []js_ast.Parameter{&js_ast.BindingIdentifier{Name: "a"}}},
			Body: &js_ast.FunctionBody{Statements: []js_ast.Stmt{
				&js_ast.ReturnStatement{Expression: &js_ast.BinaryExpression{
					Left:     &js_ast.IdentifierExpression{Name: "a"},
					Operator: js_ast.BinOpMul,
					Right:    &js_ast.LiteralNumericExpression{Value: 2},
				}},
			}},
		},
	}}

	js, err := codegen.Generate(tree, codegen.NewFormatted(codegen.FormatOptions{Indent: "    "}))
	if err != nil {
		panic(err)
	}
	fmt.Print(js)
	// Output:
	// function double(a) {
	//     return a * 2;
	// }
}

func ExampleGenerateWithLocation() {
	b := &js_ast.IdentifierExpression{Name: "b"}
	tree := &js_ast.Script{Statements: []js_ast.Stmt{
		&js_ast.ExpressionStatement{Expression: &js_ast.BinaryExpression{
			Left:     &js_ast.IdentifierExpression{Name: "a"},
			Operator: js_ast.BinOpAdd,
			Right:    b,
		}},
	}}

	_, locations, err := codegen.GenerateWithLocation(tree, nil)
	if err != nil {
		panic(err)
	}
	span, _ := locations.Get(b)
	fmt.Printf("%d:%d-%d:%d\n", span.Start.Line, span.Start.Column, span.End.Line, span.End.Column)
	// Output: 1:2-1:3
}
