package codegen

import (
	"github.com/esgen/esgen/pkg/js_ast"
)

// Shorthands for building trees in tests

func id(name string) *js_ast.IdentifierExpression {
	return &js_ast.IdentifierExpression{Name: name}
}

func bid(name string) *js_ast.BindingIdentifier {
	return &js_ast.BindingIdentifier{Name: name}
}

func tid(name string) *js_ast.AssignmentTargetIdentifier {
	return &js_ast.AssignmentTargetIdentifier{Name: name}
}

func num(value float64) *js_ast.LiteralNumericExpression {
	return &js_ast.LiteralNumericExpression{Value: value}
}

func str(value string) *js_ast.LiteralStringExpression {
	return &js_ast.LiteralStringExpression{Value: value}
}

func prop(name string) *js_ast.StaticPropertyName {
	return &js_ast.StaticPropertyName{Value: name}
}

func expr(e js_ast.Expr) *js_ast.ExpressionStatement {
	return &js_ast.ExpressionStatement{Expression: e}
}

func script(stmts ...js_ast.Stmt) *js_ast.Script {
	return &js_ast.Script{Statements: stmts}
}

func module(items ...js_ast.ModuleItem) *js_ast.Module {
	return &js_ast.Module{Items: items}
}

func block(stmts ...js_ast.Stmt) *js_ast.BlockStatement {
	return &js_ast.BlockStatement{Block: &js_ast.Block{Statements: stmts}}
}

func body(stmts ...js_ast.Stmt) *js_ast.FunctionBody {
	return &js_ast.FunctionBody{Statements: stmts}
}

func bin(left js_ast.Expr, op js_ast.BinaryOperator, right js_ast.Expr) *js_ast.BinaryExpression {
	return &js_ast.BinaryExpression{Left: left, Operator: op, Right: right}
}

func assign(target js_ast.AssignmentTarget, value js_ast.Expr) *js_ast.AssignmentExpression {
	return &js_ast.AssignmentExpression{Binding: target, Expression: value}
}

func call(callee js_ast.ExprOrSuper, args ...js_ast.ExprOrSpread) *js_ast.CallExpression {
	return &js_ast.CallExpression{Callee: callee, Arguments: args}
}

func dot(object js_ast.ExprOrSuper, property string) *js_ast.StaticMemberExpression {
	return &js_ast.StaticMemberExpression{Object: object, Property: property}
}

func params(items ...js_ast.Parameter) *js_ast.FormalParameters {
	return &js_ast.FormalParameters{Items: items}
}

func decl(kind js_ast.VariableDeclarationKind, name string, init js_ast.Expr) *js_ast.VariableDeclaration {
	return &js_ast.VariableDeclaration{
		DeclKind:    kind,
		Declarators: []*js_ast.VariableDeclarator{{Binding: bid(name), Init: init}},
	}
}

func ifStmt(test js_ast.Expr, consequent js_ast.Stmt, alternate js_ast.Stmt) *js_ast.IfStatement {
	return &js_ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}
