package codegen

import (
	"math"
	"testing"

	"github.com/esgen/esgen/internal/test"
	"github.com/esgen/esgen/pkg/js_ast"
)

func expectPrinted(t *testing.T, node js_ast.Node, expected string) {
	t.Helper()
	t.Run(expected, func(t *testing.T) {
		t.Helper()
		js, err := Generate(node, nil)
		if err != nil {
			t.Fatal(err)
		}
		test.AssertEqualWithDiff(t, js, expected)

		// Extensible generation with the default hooks must match exactly
		js, err = Generate(node, NewExtensible(Hooks{}))
		if err != nil {
			t.Fatal(err)
		}
		test.AssertEqualWithDiff(t, js, expected)
	})
}

func expectPrintedExpr(t *testing.T, e js_ast.Expr, expected string) {
	t.Helper()
	expectPrinted(t, script(expr(e)), expected)
}

func TestBinaryPrecedence(t *testing.T) {
	a, b, c, d := id("a"), id("b"), id("c"), id("d")

	expectPrintedExpr(t, bin(a, "+", bin(b, "*", c)), "a+b*c")
	expectPrintedExpr(t, bin(bin(a, "*", b), "+", bin(c, "/", d)), "a*b+c/d")
	expectPrintedExpr(t, bin(bin(a, "+", b), "*", c), "(a+b)*c")
	expectPrintedExpr(t, bin(a, "-", bin(b, "-", c)), "a-(b-c)")
	expectPrintedExpr(t, bin(bin(a, "-", b), "-", c), "a-b-c")
	expectPrintedExpr(t, bin(bin(a, ",", b), ",", c), "a,b,c")
	expectPrintedExpr(t, bin(a, ",", bin(b, ",", c)), "a,(b,c)")
	expectPrintedExpr(t, bin(a, "||", bin(b, "&&", c)), "a||b&&c")
	expectPrintedExpr(t, bin(bin(a, "||", b), "&&", c), "(a||b)&&c")
	expectPrintedExpr(t, bin(a, "in", b), "a in b")
	expectPrintedExpr(t, bin(a, "instanceof", b), "a instanceof b")
	expectPrintedExpr(t, bin(assign(tid("a"), b), "+", c), "(a=b)+c")
}

func TestAssignmentAndConditional(t *testing.T) {
	a, b, c, d, e := id("a"), id("b"), id("c"), id("d"), id("e")
	cond := func(test, consequent, alternate js_ast.Expr) js_ast.Expr {
		return &js_ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
	}

	expectPrintedExpr(t, assign(tid("a"), assign(tid("b"), c)), "a=b=c")
	expectPrintedExpr(t, assign(tid("a"), bin(b, ",", c)), "a=(b,c)")
	expectPrintedExpr(t, &js_ast.CompoundAssignmentExpression{Binding: tid("a"), Operator: "+=", Expression: b}, "a+=b")
	expectPrintedExpr(t, cond(cond(a, b, c), d, e), "(a?b:c)?d:e")
	expectPrintedExpr(t, cond(a, b, cond(c, d, e)), "a?b:c?d:e")
	expectPrintedExpr(t, cond(a, bin(b, ",", c), d), "a?(b,c):d")
	expectPrintedExpr(t, cond(a, assign(tid("b"), c), d), "a?b=c:d")
}

func TestUnaryAndUpdate(t *testing.T) {
	a, b := id("a"), id("b")
	unary := func(op js_ast.UnaryOperator, operand js_ast.Expr) js_ast.Expr {
		return &js_ast.UnaryExpression{Operator: op, Operand: operand}
	}

	expectPrintedExpr(t, unary("-", unary("-", a)), "- -a")
	expectPrintedExpr(t, unary("-", unary("+", a)), "-+a")
	expectPrintedExpr(t, unary("!", bin(a, "+", b)), "!(a+b)")
	expectPrintedExpr(t, unary("typeof", a), "typeof a")
	expectPrintedExpr(t, unary("void", num(0)), "void 0")
	expectPrintedExpr(t, bin(a, "+", unary("+", b)), "a+ +b")
	expectPrintedExpr(t, bin(a, "-", &js_ast.UpdateExpression{IsPrefix: true, Operator: "--", Operand: tid("b")}), "a- --b")
	expectPrintedExpr(t, bin(&js_ast.UpdateExpression{Operator: "++", Operand: tid("a")}, "+", b), "a++ +b")
	expectPrintedExpr(t, &js_ast.UpdateExpression{Operator: "--", Operand: &js_ast.StaticMemberAssignmentTarget{Object: a, Property: "b"}}, "a.b--")
}

func TestCallsAndMembers(t *testing.T) {
	a, b, c := id("a"), id("b"), id("c")
	newExpr := func(callee js_ast.Expr, args ...js_ast.ExprOrSpread) *js_ast.NewExpression {
		return &js_ast.NewExpression{Callee: callee, Arguments: args}
	}

	expectPrintedExpr(t, newExpr(a), "new a")
	expectPrintedExpr(t, newExpr(a, b), "new a(b)")
	expectPrintedExpr(t, newExpr(call(id("f"))), "new(f())")
	expectPrintedExpr(t, newExpr(dot(call(id("f")), "x")), "new(f().x)")
	expectPrintedExpr(t, newExpr(newExpr(a)), "new(new a)")
	expectPrintedExpr(t, dot(newExpr(a), "b"), "(new a).b")
	expectPrintedExpr(t, dot(newExpr(a, b), "c"), "new a(b).c")
	expectPrintedExpr(t, call(newExpr(a)), "(new a)()")
	expectPrintedExpr(t, dot(call(a), "b"), "a().b")
	expectPrintedExpr(t, call(dot(a, "b"), c), "a.b(c)")
	expectPrintedExpr(t, &js_ast.ComputedMemberExpression{Object: a, Expression: bin(b, ",", c)}, "a[b,c]")
	expectPrintedExpr(t, call(id("f"), bin(a, ",", b), &js_ast.SpreadElement{Expression: c}), "f((a,b),...c)")
	expectPrintedExpr(t, call(&js_ast.Super{}), "super()")
	expectPrintedExpr(t, dot(&js_ast.Super{}, "a"), "super.a")
	expectPrintedExpr(t, &js_ast.NewTargetExpression{}, "new.target")
	expectPrintedExpr(t, dot(num(1), "a"), "1..a")
	expectPrintedExpr(t, dot(num(1.5), "a"), "1.5.a")
	expectPrintedExpr(t, dot(num(1000), "a"), "1e3.a")
	expectPrintedExpr(t, dot(&js_ast.LiteralInfinityExpression{}, "a"), "2e308.a")
}

func TestTemplates(t *testing.T) {
	element := func(raw string) *js_ast.TemplateElement { return &js_ast.TemplateElement{RawValue: raw} }

	expectPrintedExpr(t, &js_ast.TemplateExpression{Elements: []js_ast.TemplatePart{element("a"), id("b"), element("c")}}, "`a${b}c`")
	expectPrintedExpr(t, &js_ast.TemplateExpression{Tag: id("f"), Elements: []js_ast.TemplatePart{element("a")}}, "f`a`")
	expectPrintedExpr(t, &js_ast.TemplateExpression{Tag: dot(id("a"), "b"), Elements: []js_ast.TemplatePart{element("")}}, "a.b``")
	expectPrintedExpr(t, &js_ast.TemplateExpression{Tag: &js_ast.NewExpression{Callee: id("a")}, Elements: []js_ast.TemplatePart{element("x")}}, "(new a)`x`")
	expectPrintedExpr(t, &js_ast.TemplateExpression{Elements: []js_ast.TemplatePart{element("in"), id("in"), element("")}}, "`in${in}`")
}

func TestArrowFunctions(t *testing.T) {
	a, b := id("a"), id("b")
	arrow := func(p *js_ast.FormalParameters, body js_ast.ArrowBody) *js_ast.ArrowExpression {
		return &js_ast.ArrowExpression{Params: p, Body: body}
	}

	expectPrintedExpr(t, assign(tid("f"), arrow(params(bid("x")), bin(id("x"), "*", num(2)))), "f=(x)=>x*2")
	expectPrintedExpr(t, arrow(params(), &js_ast.ObjectExpression{}), "()=>({})")
	expectPrintedExpr(t, arrow(params(), bin(a, ",", b)), "()=>(a,b)")
	expectPrintedExpr(t, call(arrow(params(), a)), "(()=>a)()")
	expectPrintedExpr(t, arrow(params(), arrow(params(), a)), "()=>()=>a")
	expectPrintedExpr(t, arrow(&js_ast.FormalParameters{Items: []js_ast.Parameter{bid("a")}, Rest: bid("b")}, a), "(a,...b)=>a")
	expectPrintedExpr(t, &js_ast.ArrowExpression{IsAsync: true, Params: params(bid("a")), Body: body()}, "async(a)=>{}")
	expectPrintedExpr(t, bin(arrow(params(), a), "||", b), "(()=>a)||b")
}

func TestLiterals(t *testing.T) {
	expectPrintedExpr(t, num(1500000), "15e5")
	expectPrintedExpr(t, num(1e20), "1e20")
	expectPrintedExpr(t, num(1000), "1e3")
	expectPrintedExpr(t, num(0.5), ".5")
	expectPrintedExpr(t, num(0), "0")
	expectPrintedExpr(t, &js_ast.LiteralInfinityExpression{}, "2e308")
	expectPrintedExpr(t, &js_ast.LiteralBooleanExpression{Value: true}, "true")
	expectPrintedExpr(t, &js_ast.LiteralNullExpression{}, "null")
	expectPrintedExpr(t, &js_ast.ThisExpression{}, "this")
	expectPrintedExpr(t, &js_ast.LiteralRegExpExpression{Pattern: "a", Global: true, IgnoreCase: true, Sticky: true}, "/a/giy")
	expectPrintedExpr(t, &js_ast.LiteralRegExpExpression{Pattern: "[/]", DotAll: true, Unicode: true, Multiline: true}, "/[/]/msu")
	expectPrintedExpr(t, bin(str("a"), "+", str("b")), "\"a\"+\"b\"")
	expectPrintedExpr(t, bin(id("a"), "+", str("a\"b")), "a+'a\"b'")
	expectPrintedExpr(t, bin(id("a"), "+", str("a\nb")), "a+\"a\\nb\"")
}

func TestObjectsAndProperties(t *testing.T) {
	a, b := id("a"), id("b")
	object := func(properties ...js_ast.ObjectProperty) *js_ast.ObjectExpression {
		return &js_ast.ObjectExpression{Properties: properties}
	}
	data := func(name js_ast.PropertyName, value js_ast.Expr) *js_ast.DataProperty {
		return &js_ast.DataProperty{Name: name, Expression: value}
	}

	expectPrintedExpr(t, object(), "({})")
	expectPrintedExpr(t, object(data(prop("a"), num(1)), &js_ast.ShorthandProperty{Name: b}), "({a:1,b})")
	expectPrintedExpr(t, object(data(prop("a b"), a)), "({\"a b\":a})")
	expectPrintedExpr(t, object(data(prop("1"), a)), "({1:a})")
	expectPrintedExpr(t, object(data(prop("1000"), a)), "({1e3:a})")
	expectPrintedExpr(t, object(data(prop("0.5"), a)), "({.5:a})")
	expectPrintedExpr(t, object(data(prop("01"), a)), "({\"01\":a})")
	expectPrintedExpr(t, object(data(prop(""), a)), "({\"\":a})")
	expectPrintedExpr(t, object(data(&js_ast.ComputedPropertyName{Expression: bin(a, ",", b)}, a)), "({[(a,b)]:a})")
	expectPrintedExpr(t, object(data(prop("a"), bin(a, ",", b))), "({a:(a,b)})")
	expectPrintedExpr(t, assign(tid("x"), object(
		&js_ast.Getter{Name: prop("a"), Body: body()},
		&js_ast.Setter{Name: prop("a"), Param: bid("v"), Body: body()},
		&js_ast.Method{IsGenerator: true, Name: prop("b"), Params: params(), Body: body()},
		&js_ast.Method{IsAsync: true, Name: prop("c"), Params: params(bid("d")), Body: body()},
	)), "x={get a(){},set a(v){},*b(){},async c(d){}}")
}

func TestArraysAndPatterns(t *testing.T) {
	a, b := id("a"), id("b")
	array := func(elements ...js_ast.ExprOrSpread) *js_ast.ArrayExpression {
		return &js_ast.ArrayExpression{Elements: elements}
	}

	expectPrintedExpr(t, array(), "[]")
	expectPrintedExpr(t, array(a, nil, b), "[a,,b]")
	expectPrintedExpr(t, array(a, nil), "[a,,]")
	expectPrintedExpr(t, array(nil), "[,]")
	expectPrintedExpr(t, array(bin(a, ",", b)), "[(a,b)]")
	expectPrintedExpr(t, array(&js_ast.SpreadElement{Expression: a}), "[...a]")

	expectPrinted(t, script(&js_ast.VariableDeclarationStatement{Declaration: &js_ast.VariableDeclaration{
		DeclKind: js_ast.VarKind,
		Declarators: []*js_ast.VariableDeclarator{{
			Binding: &js_ast.ArrayBinding{Elements: []js_ast.Parameter{bid("a"), nil, bid("b")}, Rest: bid("c")},
			Init:    id("d"),
		}},
	}}), "var[a,,b,...c]=d")

	expectPrinted(t, script(&js_ast.VariableDeclarationStatement{Declaration: &js_ast.VariableDeclaration{
		DeclKind: js_ast.LetKind,
		Declarators: []*js_ast.VariableDeclarator{{
			Binding: &js_ast.ObjectBinding{Properties: []js_ast.BindingProperty{
				&js_ast.BindingPropertyIdentifier{Binding: bid("a")},
				&js_ast.BindingPropertyProperty{Name: prop("b"), Binding: bid("c")},
				&js_ast.BindingPropertyIdentifier{Binding: bid("d"), Init: num(1)},
			}},
			Init: id("e"),
		}},
	}}), "let{a,b:c,d=1}=e")

	expectPrintedExpr(t, assign(&js_ast.ObjectAssignmentTarget{Properties: []js_ast.AssignmentTargetProperty{
		&js_ast.AssignmentTargetPropertyIdentifier{Binding: tid("a")},
		&js_ast.AssignmentTargetPropertyProperty{Name: prop("b"), Binding: &js_ast.AssignmentTargetWithDefault{Binding: tid("c"), Init: num(1)}},
	}}, b), "({a,b:c=1}=b)")
	expectPrintedExpr(t, assign(&js_ast.ArrayAssignmentTarget{Elements: []js_ast.AssignmentTargetElement{tid("a"), nil}}, b), "[a,,]=b")
	expectPrintedExpr(t, assign(&js_ast.ArrayAssignmentTarget{Rest: tid("a")}, b), "[...a]=b")
}

func TestClassesAndFunctions(t *testing.T) {
	method := func(name string) *js_ast.Method {
		return &js_ast.Method{Name: prop(name), Params: params(), Body: body()}
	}

	expectPrinted(t, script(&js_ast.ClassDeclaration{
		Name:     bid("A"),
		Super:    id("B"),
		Elements: []*js_ast.ClassElement{{IsStatic: true, Method: method("m")}, {Method: method("n")}},
	}), "class A extends B{static m(){}n(){}}")
	expectPrinted(t, script(&js_ast.ClassDeclaration{Name: bid("A"), Super: bin(id("a"), "||", id("b"))}), "class A extends(a||b){}")
	expectPrinted(t, script(&js_ast.ClassDeclaration{Name: bid("A"), Super: call(id("f"))}), "class A extends f(){}")
	expectPrintedExpr(t, &js_ast.ClassExpression{}, "(class{})")
	expectPrintedExpr(t, assign(tid("a"), &js_ast.ClassExpression{Name: bid("A")}), "a=class A{}")

	expectPrinted(t, script(&js_ast.FunctionDeclaration{
		IsAsync:     true,
		IsGenerator: true,
		Name:        bid("f"),
		Params:      params(bid("a"), &js_ast.BindingWithDefault{Binding: bid("b"), Init: num(1)}),
		Body:        body(&js_ast.ReturnStatement{Expression: id("a")}),
	}), "async function*f(a,b=1){return a}")
	expectPrintedExpr(t, &js_ast.FunctionExpression{Params: params(), Body: body()}, "(function(){})")
	expectPrintedExpr(t, call(&js_ast.FunctionExpression{Params: params(), Body: body()}), "(function(){}())")
	expectPrintedExpr(t, dot(&js_ast.FunctionExpression{Params: params(), Body: body()}, "call"), "(function(){}.call)")

	fn := func(b *js_ast.FunctionBody) js_ast.Node {
		return script(&js_ast.FunctionDeclaration{Name: bid("f"), Params: params(), Body: b})
	}
	expectPrinted(t, fn(body(expr(str("a")))), "function f(){(\"a\");}")
	expectPrinted(t, fn(&js_ast.FunctionBody{
		Directives: []*js_ast.Directive{{RawValue: "use strict"}},
		Statements: []js_ast.Stmt{expr(id("a"))},
	}), "function f(){\"use strict\";a}")
	expectPrinted(t, fn(body(&js_ast.ReturnStatement{}, &js_ast.ReturnStatement{Expression: id("a")})), "function f(){return;return a}")

	generator := func(stmts ...js_ast.Stmt) js_ast.Node {
		return script(&js_ast.FunctionDeclaration{IsGenerator: true, Name: bid("g"), Params: params(), Body: body(stmts...)})
	}
	expectPrinted(t, generator(
		expr(&js_ast.YieldExpression{}),
		expr(&js_ast.YieldGeneratorExpression{Expression: id("a")}),
		expr(&js_ast.YieldExpression{Expression: bin(id("b"), ",", id("c"))}),
	), "function*g(){yield;yield*a;yield(b,c)}")

	expectPrinted(t, script(&js_ast.FunctionDeclaration{IsAsync: true, Name: bid("f"), Params: params(), Body: body(
		expr(&js_ast.AwaitExpression{Expression: bin(id("a"), "+", id("b"))}),
		expr(&js_ast.AwaitExpression{Expression: call(id("c"))}),
	)}), "async function f(){await(a+b);await c()}")
}

func TestExpressionStatementHazards(t *testing.T) {
	expectPrintedExpr(t, assign(&js_ast.ObjectAssignmentTarget{}, id("a")), "({}=a)")
	expectPrintedExpr(t, assign(&js_ast.ComputedMemberAssignmentTarget{Object: id("let"), Expression: num(0)}, num(1)), "(let[0]=1)")
	expectPrintedExpr(t, &js_ast.ComputedMemberExpression{Object: id("let"), Expression: id("a")}, "(let[a])")
	expectPrintedExpr(t, dot(id("let"), "a"), "let.a")
	expectPrintedExpr(t, bin(&js_ast.ObjectExpression{}, "+", id("a")), "({}+a)")
	expectPrintedExpr(t, &js_ast.ConditionalExpression{Test: &js_ast.FunctionExpression{Params: params(), Body: body()}, Consequent: id("a"), Alternate: id("b")}, "(function(){}?a:b)")

	// Strings at the start of a program would be read as directives
	expectPrinted(t, script(expr(str("use strict"))), "(\"use strict\");")
	expectPrinted(t, script(expr(str("a")), expr(str("b"))), "(\"a\");\"b\"")
	expectPrinted(t, &js_ast.Script{
		Directives: []*js_ast.Directive{{RawValue: "use strict"}},
		Statements: []js_ast.Stmt{expr(str("x"))},
	}, "\"use strict\";(\"x\");")
	expectPrinted(t, script(expr(bin(str("a"), "+", id("b")))), "\"a\"+b")
	expectPrinted(t, module(expr(str("a"))), "(\"a\");")
}

func TestDirectives(t *testing.T) {
	directives := func(raw ...string) js_ast.Node {
		s := &js_ast.Script{}
		for _, value := range raw {
			s.Directives = append(s.Directives, &js_ast.Directive{RawValue: value})
		}
		return s
	}

	expectPrinted(t, directives("use strict"), "\"use strict\"")
	expectPrinted(t, directives("a", "b"), "\"a\";\"b\"")
	expectPrinted(t, directives("a\"b"), "'a\"b'")
	expectPrinted(t, directives("a\\\"b"), "\"a\\\"b\"")
	expectPrinted(t, directives("a'b"), "\"a'b\"")
}

func TestStatements(t *testing.T) {
	a, b, c, d, e := id("a"), id("b"), id("c"), id("d"), id("e")
	empty := &js_ast.EmptyStatement{}

	expectPrinted(t, script(&js_ast.WhileStatement{Test: num(1), Body: block(&js_ast.BreakStatement{}, &js_ast.BreakStatement{})}), "while(1){break;break}")
	expectPrinted(t, script(&js_ast.DoWhileStatement{Body: expr(a), Test: b}), "do a;while(b)")
	expectPrinted(t, script(&js_ast.DoWhileStatement{Body: expr(a), Test: b}, expr(c)), "do a;while(b);c")
	expectPrinted(t, script(&js_ast.DoWhileStatement{Body: block(), Test: b}), "do{}while(b)")
	expectPrinted(t, script(empty, empty), ";;")
	expectPrinted(t, script(expr(a), empty), "a;;")
	expectPrinted(t, script(block(empty)), "{;}")
	expectPrinted(t, script(block(expr(a)), expr(b)), "{a}b")
	expectPrinted(t, script(&js_ast.DebuggerStatement{}, expr(a)), "debugger;a")
	expectPrinted(t, script(&js_ast.WithStatement{Object: a, Body: empty}), "with(a);")
	expectPrinted(t, script(&js_ast.ThrowStatement{Expression: a}), "throw a")
	expectPrinted(t, script(&js_ast.LabeledStatement{Label: "a", Body: &js_ast.WhileStatement{Test: num(1), Body: &js_ast.ContinueStatement{Label: "a"}}}), "a:while(1)continue a")
	expectPrinted(t, script(&js_ast.LabeledStatement{Label: "a", Body: block(&js_ast.BreakStatement{Label: "a"})}), "a:{break a}")
	expectPrinted(t, script(&js_ast.VariableDeclarationStatement{Declaration: &js_ast.VariableDeclaration{
		DeclKind:    js_ast.VarKind,
		Declarators: []*js_ast.VariableDeclarator{{Binding: bid("a")}, {Binding: bid("b"), Init: num(1)}},
	}}), "var a,b=1")
	expectPrinted(t, script(&js_ast.VariableDeclarationStatement{Declaration: decl(js_ast.ConstKind, "a", bin(b, ",", c))}), "const a=(b,c)")

	// Try statements
	catch := &js_ast.CatchClause{Binding: bid("e"), Body: &js_ast.Block{}}
	expectPrinted(t, script(&js_ast.TryCatchStatement{Body: &js_ast.Block{}, CatchClause: catch}), "try{}catch(e){}")
	expectPrinted(t, script(&js_ast.TryFinallyStatement{Body: &js_ast.Block{}, Finalizer: &js_ast.Block{}}), "try{}finally{}")
	expectPrinted(t, script(&js_ast.TryFinallyStatement{Body: &js_ast.Block{}, CatchClause: catch, Finalizer: &js_ast.Block{}}), "try{}catch(e){}finally{}")

	// Switch statements
	expectPrinted(t, script(&js_ast.SwitchStatement{Discriminant: a, Cases: []*js_ast.SwitchCase{
		{Test: num(1), Consequent: []js_ast.Stmt{&js_ast.BreakStatement{}}},
		{Test: num(2)},
	}}), "switch(a){case 1:break;case 2:}")
	expectPrinted(t, script(&js_ast.SwitchStatementWithDefault{
		Discriminant:     a,
		DefaultCase:      &js_ast.SwitchDefault{Consequent: []js_ast.Stmt{expr(b)}},
		PostDefaultCases: []*js_ast.SwitchCase{{Test: num(2)}},
	}), "switch(a){default:b;case 2:}")
	expectPrinted(t, script(&js_ast.SwitchStatementWithDefault{
		Discriminant:    a,
		PreDefaultCases: []*js_ast.SwitchCase{{Test: str("x"), Consequent: []js_ast.Stmt{expr(c)}}},
		DefaultCase:     &js_ast.SwitchDefault{},
	}), "switch(a){case\"x\":c;default:}")

	// Dangling else
	expectPrinted(t, script(ifStmt(a, ifStmt(b, expr(c), nil), expr(d))), "if(a){if(b)c}else d")
	expectPrinted(t, script(ifStmt(a, ifStmt(b, expr(c), expr(d)), expr(e))), "if(a)if(b)c;else d;else e")
	expectPrinted(t, script(ifStmt(a, &js_ast.WhileStatement{Test: b, Body: ifStmt(c, expr(d), nil)}, expr(e))), "if(a){while(b)if(c)d}else e")
	expectPrinted(t, script(ifStmt(a, &js_ast.LabeledStatement{Label: "l", Body: ifStmt(c, expr(d), nil)}, expr(e))), "if(a){l:if(c)d}else e")
	expectPrinted(t, script(ifStmt(a, ifStmt(b, expr(c), ifStmt(d, expr(e), nil)), expr(a))), "if(a){if(b)c;else if(d)e}else a")
	expectPrinted(t, script(ifStmt(a, expr(b), nil), expr(c)), "if(a)b;c")
	expectPrinted(t, script(ifStmt(a, block(), block())), "if(a){}else{}")
}

func TestForStatements(t *testing.T) {
	a, b, c := id("a"), id("b"), id("c")
	empty := &js_ast.EmptyStatement{}

	expectPrinted(t, script(&js_ast.ForStatement{Body: empty}), "for(;;);")
	expectPrinted(t, script(&js_ast.ForStatement{
		Init:   decl(js_ast.LetKind, "i", num(0)),
		Test:   bin(id("i"), "<", id("n")),
		Update: &js_ast.UpdateExpression{Operator: "++", Operand: tid("i")},
		Body:   expr(call(id("f"), id("i"))),
	}), "for(let i=0;i<n;i++)f(i)")

	// "in" inside the head of a "for" statement
	expectPrinted(t, script(&js_ast.ForStatement{Init: assign(tid("a"), bin(b, "in", c)), Body: empty}), "for(a=(b in c);;);")
	expectPrinted(t, script(&js_ast.ForStatement{Init: decl(js_ast.VarKind, "a", bin(b, "in", c)), Body: empty}), "for(var a=(b in c);;);")
	expectPrinted(t, script(&js_ast.ForStatement{Init: bin(a, "in", b), Body: empty}), "for((a in b);;);")
	expectPrinted(t, script(&js_ast.ForStatement{Init: call(id("f"), bin(a, "in", b)), Body: empty}), "for(f(a in b);;);")
	expectPrinted(t, script(&js_ast.ForStatement{Init: &js_ast.ArrayExpression{Elements: []js_ast.ExprOrSpread{bin(a, "in", b)}}, Body: empty}), "for([a in b];;);")
	expectPrinted(t, script(&js_ast.ForStatement{Init: &js_ast.ComputedMemberExpression{Object: id("let"), Expression: a}, Body: empty}), "for((let[a]);;);")
	expectPrinted(t, script(&js_ast.ForStatement{Test: bin(a, "in", b), Body: empty}), "for(;a in b;);")

	// "for-in" and "for-of"
	expectPrinted(t, script(&js_ast.ForInStatement{Left: tid("a"), Right: b, Body: empty}), "for(a in b);")
	expectPrinted(t, script(&js_ast.ForInStatement{Left: decl(js_ast.VarKind, "a", nil), Right: b, Body: empty}), "for(var a in b);")
	expectPrinted(t, script(&js_ast.ForInStatement{Left: tid("let"), Right: b, Body: empty}), "for((let)in b);")
	expectPrinted(t, script(&js_ast.ForInStatement{Left: &js_ast.ComputedMemberAssignmentTarget{Object: id("let"), Expression: a}, Right: b, Body: empty}), "for((let[a])in b);")
	expectPrinted(t, script(&js_ast.ForOfStatement{Left: tid("async"), Right: b, Body: empty}), "for((async)of b);")
	expectPrinted(t, script(&js_ast.ForOfStatement{Left: decl(js_ast.LetKind, "a", nil), Right: bin(b, ",", c), Body: empty}), "for(let a of(b,c));")
	expectPrinted(t, script(&js_ast.ForOfStatement{Left: tid("a"), Right: b, Body: block()}), "for(a of b){}")
}

func TestModules(t *testing.T) {
	expectPrinted(t, module(&js_ast.Import{ModuleSpecifier: "m"}), "import\"m\"")
	expectPrinted(t, module(&js_ast.Import{
		DefaultBinding:  bid("a"),
		NamedImports:    []*js_ast.ImportSpecifier{{Name: "b", Binding: bid("c")}, {Binding: bid("d")}},
		ModuleSpecifier: "m",
	}), "import a,{b as c,d}from\"m\"")
	expectPrinted(t, module(&js_ast.Import{DefaultBinding: bid("a"), ModuleSpecifier: "m"}, &js_ast.Import{ModuleSpecifier: "n"}), "import a from\"m\";import\"n\"")
	expectPrinted(t, module(&js_ast.ImportNamespace{NamespaceBinding: bid("ns"), ModuleSpecifier: "m"}), "import*as ns from\"m\"")
	expectPrinted(t, module(&js_ast.ImportNamespace{DefaultBinding: bid("a"), NamespaceBinding: bid("ns"), ModuleSpecifier: "m"}), "import a,*as ns from\"m\"")

	expectPrinted(t, module(&js_ast.ExportAllFrom{ModuleSpecifier: "m"}), "export*from\"m\"")
	expectPrinted(t, module(&js_ast.ExportFrom{
		NamedExports:    []*js_ast.ExportFromSpecifier{{Name: "a", ExportedName: "b"}, {Name: "c"}},
		ModuleSpecifier: "m",
	}), "export{a as b,c}from\"m\"")
	expectPrinted(t, module(&js_ast.ExportLocals{NamedExports: []*js_ast.ExportLocalSpecifier{{Name: id("a"), ExportedName: "b"}}}), "export{a as b}")
	expectPrinted(t, module(&js_ast.ExportLocals{}), "export{}")
	expectPrinted(t, module(&js_ast.Export{Declaration: decl(js_ast.LetKind, "a", num(1))}, expr(id("b"))), "export let a=1;b")
	expectPrinted(t, module(&js_ast.Export{Declaration: &js_ast.FunctionDeclaration{Name: bid("f"), Params: params(), Body: body()}}, expr(id("b"))), "export function f(){}b")

	fn := &js_ast.FunctionDeclaration{Name: bid("*default*"), Params: params(), Body: body()}
	expectPrinted(t, module(&js_ast.ExportDefault{Body: fn}), "export default function(){}")
	expectPrinted(t, module(&js_ast.ExportDefault{Body: &js_ast.ClassDeclaration{Name: bid("*default*")}}), "export default class{}")
	expectPrinted(t, module(&js_ast.ExportDefault{Body: &js_ast.FunctionExpression{Params: params(), Body: body()}}), "export default(function(){})")
	expectPrinted(t, module(&js_ast.ExportDefault{Body: bin(id("a"), ",", id("b"))}), "export default(a,b)")
	expectPrinted(t, module(&js_ast.ExportDefault{Body: id("a")}, expr(id("b"))), "export default a;b")
}

func expectFormatted(t *testing.T, node js_ast.Node, expected string) {
	t.Helper()
	expectFormattedWithOptions(t, node, FormatOptions{}, expected)
}

func expectFormattedWithOptions(t *testing.T, node js_ast.Node, options FormatOptions, expected string) {
	t.Helper()
	t.Run(expected, func(t *testing.T) {
		t.Helper()
		js, err := Generate(node, NewFormatted(options))
		if err != nil {
			t.Fatal(err)
		}
		test.AssertEqualWithDiff(t, js, expected)
	})
}

func TestFormatted(t *testing.T) {
	a, b, c, d := id("a"), id("b"), id("c"), id("d")

	expectFormatted(t, script(), "")
	expectFormatted(t, script(expr(bin(a, "+", b))), "a + b;\n")
	expectFormatted(t, script(expr(bin(a, ",", b))), "a, b;\n")
	expectFormatted(t, script(expr(a), expr(b)), "a;\nb;\n")
	expectFormatted(t, script(expr(str("use strict"))), "(\"use strict\");\n")
	expectFormatted(t, &js_ast.Script{
		Directives: []*js_ast.Directive{{RawValue: "use strict"}},
		Statements: []js_ast.Stmt{expr(a)},
	}, "\"use strict\";\na;\n")

	expectFormatted(t, script(ifStmt(a, block(expr(b)), block(expr(c)))), "if (a) {\n  b;\n} else {\n  c;\n}\n")
	expectFormatted(t, script(ifStmt(a, ifStmt(b, expr(c), nil), expr(d))), "if (a) {\n  if (b) c;\n} else d;\n")
	expectFormatted(t, script(&js_ast.FunctionDeclaration{
		Name:   bid("f"),
		Params: params(bid("a"), bid("b")),
		Body:   body(&js_ast.ReturnStatement{Expression: a}),
	}), "function f(a, b) {\n  return a;\n}\n")
	expectFormatted(t, script(&js_ast.FunctionDeclaration{Name: bid("f"), Params: params(), Body: body()}), "function f() {}\n")
	expectFormatted(t, script(&js_ast.VariableDeclarationStatement{Declaration: &js_ast.VariableDeclaration{
		DeclKind:    js_ast.VarKind,
		Declarators: []*js_ast.VariableDeclarator{{Binding: bid("a"), Init: num(1)}, {Binding: bid("b")}},
	}}), "var a = 1, b;\n")
	expectFormatted(t, script(expr(assign(tid("x"), &js_ast.ObjectExpression{Properties: []js_ast.ObjectProperty{
		&js_ast.DataProperty{Name: prop("a"), Expression: num(1)},
		&js_ast.ShorthandProperty{Name: b},
	}}))), "x = { a: 1, b };\n")
	expectFormatted(t, script(expr(assign(tid("x"), &js_ast.ObjectExpression{}))), "x = {};\n")
	expectFormatted(t, script(&js_ast.ForStatement{
		Init:   decl(js_ast.LetKind, "i", num(0)),
		Test:   bin(id("i"), "<", id("n")),
		Update: &js_ast.UpdateExpression{Operator: "++", Operand: tid("i")},
		Body:   block(expr(call(id("f"), id("i")))),
	}), "for (let i = 0; i < n; i++) {\n  f(i);\n}\n")
	expectFormatted(t, script(&js_ast.ForStatement{Body: &js_ast.EmptyStatement{}}), "for (;;) ;\n")
	expectFormatted(t, script(&js_ast.SwitchStatementWithDefault{
		Discriminant:    a,
		PreDefaultCases: []*js_ast.SwitchCase{{Test: num(1), Consequent: []js_ast.Stmt{expr(call(id("f"))), &js_ast.BreakStatement{}}}},
		DefaultCase:     &js_ast.SwitchDefault{Consequent: []js_ast.Stmt{expr(call(id("g")))}},
	}), "switch (a) {\n  case 1:\n    f();\n    break;\n  default:\n    g();\n}\n")
	expectFormatted(t, script(&js_ast.ClassDeclaration{
		Name:     bid("A"),
		Super:    b,
		Elements: []*js_ast.ClassElement{{IsStatic: true, Method: &js_ast.Method{Name: prop("m"), Params: params(), Body: body()}}},
	}), "class A extends b {\n  static m() {}\n}\n")
	expectFormatted(t, script(expr(assign(tid("f"), &js_ast.ArrowExpression{
		Params: params(bid("x")),
		Body:   bin(id("x"), "*", num(2)),
	}))), "f = (x) => x * 2;\n")
	expectFormatted(t, script(expr(&js_ast.ConditionalExpression{Test: a, Consequent: b, Alternate: c})), "a ? b : c;\n")
	expectFormatted(t, script(&js_ast.DoWhileStatement{Body: block(expr(a)), Test: b}), "do {\n  a;\n} while (b);\n")
	expectFormatted(t, script(&js_ast.TryFinallyStatement{
		Body:        &js_ast.Block{Statements: []js_ast.Stmt{expr(a)}},
		CatchClause: &js_ast.CatchClause{Binding: bid("e"), Body: &js_ast.Block{}},
		Finalizer:   &js_ast.Block{},
	}), "try {\n  a;\n} catch (e) {} finally {}\n")
	expectFormatted(t, script(&js_ast.WhileStatement{Test: a, Body: block(ifStmt(b, block(&js_ast.BreakStatement{}), nil))}),
		"while (a) {\n  if (b) {\n    break;\n  }\n}\n")
	expectFormatted(t, module(&js_ast.Import{
		DefaultBinding:  bid("a"),
		NamedImports:    []*js_ast.ImportSpecifier{{Binding: bid("b")}},
		ModuleSpecifier: "m",
	}, &js_ast.ExportLocals{NamedExports: []*js_ast.ExportLocalSpecifier{{Name: a}}}), "import a, { b } from \"m\";\nexport { a };\n")
	expectFormatted(t, module(&js_ast.ImportNamespace{NamespaceBinding: bid("ns"), ModuleSpecifier: "m"}), "import * as ns from \"m\";\n")
	expectFormatted(t, module(&js_ast.ExportAllFrom{ModuleSpecifier: "m"}), "export * from \"m\";\n")
}

func TestFormattedOptions(t *testing.T) {
	a, b := id("a"), id("b")
	fn := script(&js_ast.FunctionDeclaration{Name: bid("f"), Params: params(), Body: body(&js_ast.ReturnStatement{Expression: a})})

	expectFormattedWithOptions(t, fn, FormatOptions{Indent: "\t"}, "function f() {\n\treturn a;\n}\n")

	// Operator-specific keys take precedence over the generic key
	expectFormattedWithOptions(t, script(expr(bin(bin(a, "+", b), "-", a))), FormatOptions{Separators: map[Sep]Space{
		{Kind: js_ast.KindBinaryExpression, Field: "operator", Side: Before, Op: "+"}: NoSpace,
	}}, "a+ b - a;\n")

	// A line break after "return" would change the meaning of the program
	expectFormattedWithOptions(t, fn, FormatOptions{Separators: map[Sep]Space{
		{Kind: js_ast.KindReturnStatement, Field: "return", Side: After}: Newline,
	}}, "function f() {\n  return a;\n}\n")

	expectFormattedWithOptions(t, script(ifStmt(a, expr(b), nil)), FormatOptions{Separators: map[Sep]Space{
		{Kind: js_ast.KindIfStatement, Field: "consequent", Side: Before}: Newline,
	}}, "if (a)\nb;\n")
}

func TestEscapeStringLiteral(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"", `""`},
		{"a", `"a"`},
		{`"`, `'"'`},
		{`'`, `"'"`},
		{`"'`, `"\"'"`},
		{`""'`, `'""\''`},
		{"\x00", `"\0"`},
		{"\x001", `"\x001"`},
		{"\x00a", `"\0a"`},
		{"\x01", `"\x01"`},
		{"\x1f", `"\x1F"`},
		{"\x7f", "\"\x7f\""},
		{"\b\t\n\v\f\r", `"\b\t\n\v\f\r"`},
		{`\`, `"\\"`},
		{"\u2028\u2029", `"\u2028\u2029"`},
		{"\uFEFF", `"\uFEFF"`},
		{"é", `"é"`},
		{"😀", `"😀"`},
		{"\xED\xA0\x80", `"\uD800"`},
		{"\xED\xB0\x80x", `"\uDC00x"`},
		{"\xff", `"\uFFFD"`},
		{"a\xe2\x80", `"a\uFFFD\uFFFD"`},
		{"\uFFFD", "\"\uFFFD\""},
		{"</script>", `"</script>"`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			test.AssertEqualWithDiff(t, EscapeStringLiteral(tt.text), tt.expected)
		})
	}
}

func TestNumbersRoundTripThroughGenerate(t *testing.T) {
	for _, value := range []float64{0, 1, 0.1, 123456789, 1e21, 5e-324, math.MaxFloat64, 0.000001} {
		js, err := Generate(script(expr(num(value))), nil)
		if err != nil {
			t.Fatal(err)
		}
		if js == "" || js[0] == '-' {
			t.Fatalf("unexpected output %q for %v", js, value)
		}
	}
}
