package js_ast

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Trees can be loaded from the JSON format used by the Shift parser family.
// Every node is an object with a "type" field naming its kind and one field
// per child using the Shift field names ("rawValue", "isPrefix", ...).

type DecodeError struct {
	Path string
	Text string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Text)
}

func ParseJSON(data []byte) (Node, error) {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return FromValue(value)
}

// FromValue converts a generic tree of maps and slices (as produced by
// "encoding/json" or "gopkg.in/yaml.v3" when decoding into an interface{})
// into a syntax tree.
func FromValue(value interface{}) (node Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if decodeErr, ok := r.(*DecodeError); ok {
				node = nil
				err = decodeErr
				return
			}
			panic(r)
		}
	}()

	d := decoder{}
	node = d.node(value, "$")
	if node == nil {
		d.fail("$", "expected a node, found null")
	}
	return
}

type object = map[string]interface{}

type decoder struct{}

func (d *decoder) fail(path string, format string, args ...interface{}) {
	panic(&DecodeError{Path: path, Text: fmt.Sprintf(format, args...)})
}

func typeName[N any]() string {
	return strings.ReplaceAll(reflect.TypeOf((*N)(nil)).Elem().String(), "js_ast.", "")
}

func as[N any](d *decoder, node Node, path string) N {
	var zero N
	if node == nil {
		return zero
	}
	result, ok := any(node).(N)
	if !ok {
		d.fail(path, "expected %s, found %s", strings.TrimPrefix(typeName[N](), "*"), node.Kind())
	}
	return result
}

func field[N any](d *decoder, m object, name string, path string) N {
	path = path + "." + name
	return as[N](d, d.node(m[name], path), path)
}

func list[N any](d *decoder, m object, name string, path string) []N {
	path = path + "." + name
	raw, ok := m[name]
	if !ok || raw == nil {
		return nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		d.fail(path, "expected an array, found %T", raw)
	}
	result := make([]N, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		result[i] = as[N](d, d.node(item, itemPath), itemPath)
	}
	return result
}

func (d *decoder) str(m object, name string, path string) string {
	switch v := m[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		d.fail(path+"."+name, "expected a string, found %T", v)
		return ""
	}
}

func (d *decoder) boolean(m object, name string, path string) bool {
	switch v := m[name].(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		d.fail(path+"."+name, "expected a boolean, found %T", v)
		return false
	}
}

func (d *decoder) number(m object, name string, path string) float64 {
	switch v := m[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			d.fail(path+"."+name, "invalid number %q", v.String())
		}
		return f
	default:
		d.fail(path+"."+name, "expected a number, found %T", v)
		return 0
	}
}

func (d *decoder) node(value interface{}, path string) Node {
	if value == nil {
		return nil
	}
	m, ok := value.(object)
	if !ok {
		d.fail(path, "expected an object, found %T", value)
	}
	typ, _ := m["type"].(string)
	kind, ok := KindFromString(typ)
	if !ok {
		d.fail(path, "unknown node type %q", typ)
	}

	switch kind {
	case KindArrayAssignmentTarget:
		return &ArrayAssignmentTarget{
			Elements: list[AssignmentTargetElement](d, m, "elements", path),
			Rest:     field[AssignmentTarget](d, m, "rest", path),
		}
	case KindArrayBinding:
		return &ArrayBinding{
			Elements: list[Parameter](d, m, "elements", path),
			Rest:     field[Binding](d, m, "rest", path),
		}
	case KindArrayExpression:
		return &ArrayExpression{Elements: list[ExprOrSpread](d, m, "elements", path)}
	case KindArrowExpression:
		return &ArrowExpression{
			IsAsync: d.boolean(m, "isAsync", path),
			Params:  field[*FormalParameters](d, m, "params", path),
			Body:    field[ArrowBody](d, m, "body", path),
		}
	case KindAssignmentExpression:
		return &AssignmentExpression{
			Binding:    field[AssignmentTarget](d, m, "binding", path),
			Expression: field[Expr](d, m, "expression", path),
		}
	case KindAssignmentTargetIdentifier:
		return &AssignmentTargetIdentifier{Name: d.str(m, "name", path)}
	case KindAssignmentTargetPropertyIdentifier:
		return &AssignmentTargetPropertyIdentifier{
			Binding: field[*AssignmentTargetIdentifier](d, m, "binding", path),
			Init:    field[Expr](d, m, "init", path),
		}
	case KindAssignmentTargetPropertyProperty:
		return &AssignmentTargetPropertyProperty{
			Name:    field[PropertyName](d, m, "name", path),
			Binding: field[AssignmentTargetElement](d, m, "binding", path),
		}
	case KindAssignmentTargetWithDefault:
		return &AssignmentTargetWithDefault{
			Binding: field[AssignmentTarget](d, m, "binding", path),
			Init:    field[Expr](d, m, "init", path),
		}
	case KindAwaitExpression:
		return &AwaitExpression{Expression: field[Expr](d, m, "expression", path)}
	case KindBinaryExpression:
		return &BinaryExpression{
			Left:     field[Expr](d, m, "left", path),
			Operator: BinaryOperator(d.str(m, "operator", path)),
			Right:    field[Expr](d, m, "right", path),
		}
	case KindBindingIdentifier:
		return &BindingIdentifier{Name: d.str(m, "name", path)}
	case KindBindingPropertyIdentifier:
		return &BindingPropertyIdentifier{
			Binding: field[*BindingIdentifier](d, m, "binding", path),
			Init:    field[Expr](d, m, "init", path),
		}
	case KindBindingPropertyProperty:
		return &BindingPropertyProperty{
			Name:    field[PropertyName](d, m, "name", path),
			Binding: field[Parameter](d, m, "binding", path),
		}
	case KindBindingWithDefault:
		return &BindingWithDefault{
			Binding: field[Binding](d, m, "binding", path),
			Init:    field[Expr](d, m, "init", path),
		}
	case KindBlock:
		return &Block{Statements: list[Stmt](d, m, "statements", path)}
	case KindBlockStatement:
		return &BlockStatement{Block: field[*Block](d, m, "block", path)}
	case KindBreakStatement:
		return &BreakStatement{Label: d.str(m, "label", path)}
	case KindCallExpression:
		return &CallExpression{
			Callee:    field[ExprOrSuper](d, m, "callee", path),
			Arguments: list[ExprOrSpread](d, m, "arguments", path),
		}
	case KindCatchClause:
		return &CatchClause{
			Binding: field[Binding](d, m, "binding", path),
			Body:    field[*Block](d, m, "body", path),
		}
	case KindClassDeclaration:
		return &ClassDeclaration{
			Name:     field[*BindingIdentifier](d, m, "name", path),
			Super:    field[Expr](d, m, "super", path),
			Elements: list[*ClassElement](d, m, "elements", path),
		}
	case KindClassElement:
		return &ClassElement{
			IsStatic: d.boolean(m, "isStatic", path),
			Method:   field[MethodDefinition](d, m, "method", path),
		}
	case KindClassExpression:
		return &ClassExpression{
			Name:     field[*BindingIdentifier](d, m, "name", path),
			Super:    field[Expr](d, m, "super", path),
			Elements: list[*ClassElement](d, m, "elements", path),
		}
	case KindCompoundAssignmentExpression:
		return &CompoundAssignmentExpression{
			Binding:    field[SimpleAssignmentTarget](d, m, "binding", path),
			Operator:   CompoundAssignmentOperator(d.str(m, "operator", path)),
			Expression: field[Expr](d, m, "expression", path),
		}
	case KindComputedMemberAssignmentTarget:
		return &ComputedMemberAssignmentTarget{
			Object:     field[ExprOrSuper](d, m, "object", path),
			Expression: field[Expr](d, m, "expression", path),
		}
	case KindComputedMemberExpression:
		return &ComputedMemberExpression{
			Object:     field[ExprOrSuper](d, m, "object", path),
			Expression: field[Expr](d, m, "expression", path),
		}
	case KindComputedPropertyName:
		return &ComputedPropertyName{Expression: field[Expr](d, m, "expression", path)}
	case KindConditionalExpression:
		return &ConditionalExpression{
			Test:       field[Expr](d, m, "test", path),
			Consequent: field[Expr](d, m, "consequent", path),
			Alternate:  field[Expr](d, m, "alternate", path),
		}
	case KindContinueStatement:
		return &ContinueStatement{Label: d.str(m, "label", path)}
	case KindDataProperty:
		return &DataProperty{
			Name:       field[PropertyName](d, m, "name", path),
			Expression: field[Expr](d, m, "expression", path),
		}
	case KindDebuggerStatement:
		return &DebuggerStatement{}
	case KindDirective:
		return &Directive{RawValue: d.str(m, "rawValue", path)}
	case KindDoWhileStatement:
		return &DoWhileStatement{
			Body: field[Stmt](d, m, "body", path),
			Test: field[Expr](d, m, "test", path),
		}
	case KindEmptyStatement:
		return &EmptyStatement{}
	case KindExport:
		return &Export{Declaration: field[ExportableDeclaration](d, m, "declaration", path)}
	case KindExportAllFrom:
		return &ExportAllFrom{ModuleSpecifier: d.str(m, "moduleSpecifier", path)}
	case KindExportDefault:
		return &ExportDefault{Body: field[ExportDefaultBody](d, m, "body", path)}
	case KindExportFrom:
		return &ExportFrom{
			NamedExports:    list[*ExportFromSpecifier](d, m, "namedExports", path),
			ModuleSpecifier: d.str(m, "moduleSpecifier", path),
		}
	case KindExportFromSpecifier:
		return &ExportFromSpecifier{
			Name:         d.str(m, "name", path),
			ExportedName: d.str(m, "exportedName", path),
		}
	case KindExportLocalSpecifier:
		return &ExportLocalSpecifier{
			Name:         field[*IdentifierExpression](d, m, "name", path),
			ExportedName: d.str(m, "exportedName", path),
		}
	case KindExportLocals:
		return &ExportLocals{NamedExports: list[*ExportLocalSpecifier](d, m, "namedExports", path)}
	case KindExpressionStatement:
		return &ExpressionStatement{Expression: field[Expr](d, m, "expression", path)}
	case KindForInStatement:
		return &ForInStatement{
			Left:  field[ForInOfLeft](d, m, "left", path),
			Right: field[Expr](d, m, "right", path),
			Body:  field[Stmt](d, m, "body", path),
		}
	case KindForOfStatement:
		return &ForOfStatement{
			Left:  field[ForInOfLeft](d, m, "left", path),
			Right: field[Expr](d, m, "right", path),
			Body:  field[Stmt](d, m, "body", path),
		}
	case KindForStatement:
		return &ForStatement{
			Init:   field[ForInit](d, m, "init", path),
			Test:   field[Expr](d, m, "test", path),
			Update: field[Expr](d, m, "update", path),
			Body:   field[Stmt](d, m, "body", path),
		}
	case KindFormalParameters:
		return &FormalParameters{
			Items: list[Parameter](d, m, "items", path),
			Rest:  field[Binding](d, m, "rest", path),
		}
	case KindFunctionBody:
		return &FunctionBody{
			Directives: list[*Directive](d, m, "directives", path),
			Statements: list[Stmt](d, m, "statements", path),
		}
	case KindFunctionDeclaration:
		return &FunctionDeclaration{
			IsAsync:     d.boolean(m, "isAsync", path),
			IsGenerator: d.boolean(m, "isGenerator", path),
			Name:        field[*BindingIdentifier](d, m, "name", path),
			Params:      field[*FormalParameters](d, m, "params", path),
			Body:        field[*FunctionBody](d, m, "body", path),
		}
	case KindFunctionExpression:
		return &FunctionExpression{
			IsAsync:     d.boolean(m, "isAsync", path),
			IsGenerator: d.boolean(m, "isGenerator", path),
			Name:        field[*BindingIdentifier](d, m, "name", path),
			Params:      field[*FormalParameters](d, m, "params", path),
			Body:        field[*FunctionBody](d, m, "body", path),
		}
	case KindGetter:
		return &Getter{
			Name: field[PropertyName](d, m, "name", path),
			Body: field[*FunctionBody](d, m, "body", path),
		}
	case KindIdentifierExpression:
		return &IdentifierExpression{Name: d.str(m, "name", path)}
	case KindIfStatement:
		return &IfStatement{
			Test:       field[Expr](d, m, "test", path),
			Consequent: field[Stmt](d, m, "consequent", path),
			Alternate:  field[Stmt](d, m, "alternate", path),
		}
	case KindImport:
		return &Import{
			DefaultBinding:  field[*BindingIdentifier](d, m, "defaultBinding", path),
			NamedImports:    list[*ImportSpecifier](d, m, "namedImports", path),
			ModuleSpecifier: d.str(m, "moduleSpecifier", path),
		}
	case KindImportNamespace:
		return &ImportNamespace{
			DefaultBinding:   field[*BindingIdentifier](d, m, "defaultBinding", path),
			NamespaceBinding: field[*BindingIdentifier](d, m, "namespaceBinding", path),
			ModuleSpecifier:  d.str(m, "moduleSpecifier", path),
		}
	case KindImportSpecifier:
		return &ImportSpecifier{
			Name:    d.str(m, "name", path),
			Binding: field[*BindingIdentifier](d, m, "binding", path),
		}
	case KindLabeledStatement:
		return &LabeledStatement{
			Label: d.str(m, "label", path),
			Body:  field[Stmt](d, m, "body", path),
		}
	case KindLiteralBooleanExpression:
		return &LiteralBooleanExpression{Value: d.boolean(m, "value", path)}
	case KindLiteralInfinityExpression:
		return &LiteralInfinityExpression{}
	case KindLiteralNullExpression:
		return &LiteralNullExpression{}
	case KindLiteralNumericExpression:
		return &LiteralNumericExpression{Value: d.number(m, "value", path)}
	case KindLiteralRegExpExpression:
		return &LiteralRegExpExpression{
			Pattern:    d.str(m, "pattern", path),
			Global:     d.boolean(m, "global", path),
			IgnoreCase: d.boolean(m, "ignoreCase", path),
			Multiline:  d.boolean(m, "multiLine", path),
			DotAll:     d.boolean(m, "dotAll", path),
			Unicode:    d.boolean(m, "unicode", path),
			Sticky:     d.boolean(m, "sticky", path),
		}
	case KindLiteralStringExpression:
		return &LiteralStringExpression{Value: d.str(m, "value", path)}
	case KindMethod:
		return &Method{
			IsAsync:     d.boolean(m, "isAsync", path),
			IsGenerator: d.boolean(m, "isGenerator", path),
			Name:        field[PropertyName](d, m, "name", path),
			Params:      field[*FormalParameters](d, m, "params", path),
			Body:        field[*FunctionBody](d, m, "body", path),
		}
	case KindModule:
		return &Module{
			Directives: list[*Directive](d, m, "directives", path),
			Items:      list[ModuleItem](d, m, "items", path),
		}
	case KindNewExpression:
		return &NewExpression{
			Callee:    field[Expr](d, m, "callee", path),
			Arguments: list[ExprOrSpread](d, m, "arguments", path),
		}
	case KindNewTargetExpression:
		return &NewTargetExpression{}
	case KindObjectAssignmentTarget:
		return &ObjectAssignmentTarget{Properties: list[AssignmentTargetProperty](d, m, "properties", path)}
	case KindObjectBinding:
		return &ObjectBinding{Properties: list[BindingProperty](d, m, "properties", path)}
	case KindObjectExpression:
		return &ObjectExpression{Properties: list[ObjectProperty](d, m, "properties", path)}
	case KindReturnStatement:
		return &ReturnStatement{Expression: field[Expr](d, m, "expression", path)}
	case KindScript:
		return &Script{
			Directives: list[*Directive](d, m, "directives", path),
			Statements: list[Stmt](d, m, "statements", path),
		}
	case KindSetter:
		return &Setter{
			Name:  field[PropertyName](d, m, "name", path),
			Param: field[Parameter](d, m, "param", path),
			Body:  field[*FunctionBody](d, m, "body", path),
		}
	case KindShorthandProperty:
		return &ShorthandProperty{Name: field[*IdentifierExpression](d, m, "name", path)}
	case KindSpreadElement:
		return &SpreadElement{Expression: field[Expr](d, m, "expression", path)}
	case KindStaticMemberAssignmentTarget:
		return &StaticMemberAssignmentTarget{
			Object:   field[ExprOrSuper](d, m, "object", path),
			Property: d.str(m, "property", path),
		}
	case KindStaticMemberExpression:
		return &StaticMemberExpression{
			Object:   field[ExprOrSuper](d, m, "object", path),
			Property: d.str(m, "property", path),
		}
	case KindStaticPropertyName:
		return &StaticPropertyName{Value: d.str(m, "value", path)}
	case KindSuper:
		return &Super{}
	case KindSwitchCase:
		return &SwitchCase{
			Test:       field[Expr](d, m, "test", path),
			Consequent: list[Stmt](d, m, "consequent", path),
		}
	case KindSwitchDefault:
		return &SwitchDefault{Consequent: list[Stmt](d, m, "consequent", path)}
	case KindSwitchStatement:
		return &SwitchStatement{
			Discriminant: field[Expr](d, m, "discriminant", path),
			Cases:        list[*SwitchCase](d, m, "cases", path),
		}
	case KindSwitchStatementWithDefault:
		return &SwitchStatementWithDefault{
			Discriminant:     field[Expr](d, m, "discriminant", path),
			PreDefaultCases:  list[*SwitchCase](d, m, "preDefaultCases", path),
			DefaultCase:      field[*SwitchDefault](d, m, "defaultCase", path),
			PostDefaultCases: list[*SwitchCase](d, m, "postDefaultCases", path),
		}
	case KindTemplateElement:
		return &TemplateElement{RawValue: d.str(m, "rawValue", path)}
	case KindTemplateExpression:
		return &TemplateExpression{
			Tag:      field[Expr](d, m, "tag", path),
			Elements: list[TemplatePart](d, m, "elements", path),
		}
	case KindThisExpression:
		return &ThisExpression{}
	case KindThrowStatement:
		return &ThrowStatement{Expression: field[Expr](d, m, "expression", path)}
	case KindTryCatchStatement:
		return &TryCatchStatement{
			Body:        field[*Block](d, m, "body", path),
			CatchClause: field[*CatchClause](d, m, "catchClause", path),
		}
	case KindTryFinallyStatement:
		return &TryFinallyStatement{
			Body:        field[*Block](d, m, "body", path),
			CatchClause: field[*CatchClause](d, m, "catchClause", path),
			Finalizer:   field[*Block](d, m, "finalizer", path),
		}
	case KindUnaryExpression:
		return &UnaryExpression{
			Operator: UnaryOperator(d.str(m, "operator", path)),
			Operand:  field[Expr](d, m, "operand", path),
		}
	case KindUpdateExpression:
		return &UpdateExpression{
			IsPrefix: d.boolean(m, "isPrefix", path),
			Operator: UpdateOperator(d.str(m, "operator", path)),
			Operand:  field[SimpleAssignmentTarget](d, m, "operand", path),
		}
	case KindVariableDeclaration:
		return &VariableDeclaration{
			DeclKind:    VariableDeclarationKind(d.str(m, "kind", path)),
			Declarators: list[*VariableDeclarator](d, m, "declarators", path),
		}
	case KindVariableDeclarationStatement:
		return &VariableDeclarationStatement{Declaration: field[*VariableDeclaration](d, m, "declaration", path)}
	case KindVariableDeclarator:
		return &VariableDeclarator{
			Binding: field[Binding](d, m, "binding", path),
			Init:    field[Expr](d, m, "init", path),
		}
	case KindWhileStatement:
		return &WhileStatement{
			Test: field[Expr](d, m, "test", path),
			Body: field[Stmt](d, m, "body", path),
		}
	case KindWithStatement:
		return &WithStatement{
			Object: field[Expr](d, m, "object", path),
			Body:   field[Stmt](d, m, "body", path),
		}
	case KindYieldExpression:
		return &YieldExpression{Expression: field[Expr](d, m, "expression", path)}
	case KindYieldGeneratorExpression:
		return &YieldGeneratorExpression{Expression: field[Expr](d, m, "expression", path)}
	}

	panic("Internal error")
}
