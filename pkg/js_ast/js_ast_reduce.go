package js_ast

// Reducer folds a tree bottom-up. Each method receives the node and the
// already-reduced values of its children. Absent optional children and array
// holes are passed as the zero value of T; the node itself tells whether the
// child was present.
type Reducer[T any] interface {
	ReduceArrayAssignmentTarget(node *ArrayAssignmentTarget, elements []T, rest T) T
	ReduceArrayBinding(node *ArrayBinding, elements []T, rest T) T
	ReduceArrayExpression(node *ArrayExpression, elements []T) T
	ReduceArrowExpression(node *ArrowExpression, params T, body T) T
	ReduceAssignmentExpression(node *AssignmentExpression, binding T, expression T) T
	ReduceAssignmentTargetIdentifier(node *AssignmentTargetIdentifier) T
	ReduceAssignmentTargetPropertyIdentifier(node *AssignmentTargetPropertyIdentifier, binding T, init T) T
	ReduceAssignmentTargetPropertyProperty(node *AssignmentTargetPropertyProperty, name T, binding T) T
	ReduceAssignmentTargetWithDefault(node *AssignmentTargetWithDefault, binding T, init T) T
	ReduceAwaitExpression(node *AwaitExpression, expression T) T
	ReduceBinaryExpression(node *BinaryExpression, left T, right T) T
	ReduceBindingIdentifier(node *BindingIdentifier) T
	ReduceBindingPropertyIdentifier(node *BindingPropertyIdentifier, binding T, init T) T
	ReduceBindingPropertyProperty(node *BindingPropertyProperty, name T, binding T) T
	ReduceBindingWithDefault(node *BindingWithDefault, binding T, init T) T
	ReduceBlock(node *Block, statements []T) T
	ReduceBlockStatement(node *BlockStatement, block T) T
	ReduceBreakStatement(node *BreakStatement) T
	ReduceCallExpression(node *CallExpression, callee T, arguments []T) T
	ReduceCatchClause(node *CatchClause, binding T, body T) T
	ReduceClassDeclaration(node *ClassDeclaration, name T, super T, elements []T) T
	ReduceClassElement(node *ClassElement, method T) T
	ReduceClassExpression(node *ClassExpression, name T, super T, elements []T) T
	ReduceCompoundAssignmentExpression(node *CompoundAssignmentExpression, binding T, expression T) T
	ReduceComputedMemberAssignmentTarget(node *ComputedMemberAssignmentTarget, object T, expression T) T
	ReduceComputedMemberExpression(node *ComputedMemberExpression, object T, expression T) T
	ReduceComputedPropertyName(node *ComputedPropertyName, expression T) T
	ReduceConditionalExpression(node *ConditionalExpression, test T, consequent T, alternate T) T
	ReduceContinueStatement(node *ContinueStatement) T
	ReduceDataProperty(node *DataProperty, name T, expression T) T
	ReduceDebuggerStatement(node *DebuggerStatement) T
	ReduceDirective(node *Directive) T
	ReduceDoWhileStatement(node *DoWhileStatement, body T, test T) T
	ReduceEmptyStatement(node *EmptyStatement) T
	ReduceExport(node *Export, declaration T) T
	ReduceExportAllFrom(node *ExportAllFrom) T
	ReduceExportDefault(node *ExportDefault, body T) T
	ReduceExportFrom(node *ExportFrom, namedExports []T) T
	ReduceExportFromSpecifier(node *ExportFromSpecifier) T
	ReduceExportLocalSpecifier(node *ExportLocalSpecifier, name T) T
	ReduceExportLocals(node *ExportLocals, namedExports []T) T
	ReduceExpressionStatement(node *ExpressionStatement, expression T) T
	ReduceForInStatement(node *ForInStatement, left T, right T, body T) T
	ReduceForOfStatement(node *ForOfStatement, left T, right T, body T) T
	ReduceForStatement(node *ForStatement, init T, test T, update T, body T) T
	ReduceFormalParameters(node *FormalParameters, items []T, rest T) T
	ReduceFunctionBody(node *FunctionBody, directives []T, statements []T) T
	ReduceFunctionDeclaration(node *FunctionDeclaration, name T, params T, body T) T
	ReduceFunctionExpression(node *FunctionExpression, name T, params T, body T) T
	ReduceGetter(node *Getter, name T, body T) T
	ReduceIdentifierExpression(node *IdentifierExpression) T
	ReduceIfStatement(node *IfStatement, test T, consequent T, alternate T) T
	ReduceImport(node *Import, defaultBinding T, namedImports []T) T
	ReduceImportNamespace(node *ImportNamespace, defaultBinding T, namespaceBinding T) T
	ReduceImportSpecifier(node *ImportSpecifier, binding T) T
	ReduceLabeledStatement(node *LabeledStatement, body T) T
	ReduceLiteralBooleanExpression(node *LiteralBooleanExpression) T
	ReduceLiteralInfinityExpression(node *LiteralInfinityExpression) T
	ReduceLiteralNullExpression(node *LiteralNullExpression) T
	ReduceLiteralNumericExpression(node *LiteralNumericExpression) T
	ReduceLiteralRegExpExpression(node *LiteralRegExpExpression) T
	ReduceLiteralStringExpression(node *LiteralStringExpression) T
	ReduceMethod(node *Method, name T, params T, body T) T
	ReduceModule(node *Module, directives []T, items []T) T
	ReduceNewExpression(node *NewExpression, callee T, arguments []T) T
	ReduceNewTargetExpression(node *NewTargetExpression) T
	ReduceObjectAssignmentTarget(node *ObjectAssignmentTarget, properties []T) T
	ReduceObjectBinding(node *ObjectBinding, properties []T) T
	ReduceObjectExpression(node *ObjectExpression, properties []T) T
	ReduceReturnStatement(node *ReturnStatement, expression T) T
	ReduceScript(node *Script, directives []T, statements []T) T
	ReduceSetter(node *Setter, name T, param T, body T) T
	ReduceShorthandProperty(node *ShorthandProperty, name T) T
	ReduceSpreadElement(node *SpreadElement, expression T) T
	ReduceStaticMemberAssignmentTarget(node *StaticMemberAssignmentTarget, object T) T
	ReduceStaticMemberExpression(node *StaticMemberExpression, object T) T
	ReduceStaticPropertyName(node *StaticPropertyName) T
	ReduceSuper(node *Super) T
	ReduceSwitchCase(node *SwitchCase, test T, consequent []T) T
	ReduceSwitchDefault(node *SwitchDefault, consequent []T) T
	ReduceSwitchStatement(node *SwitchStatement, discriminant T, cases []T) T
	ReduceSwitchStatementWithDefault(node *SwitchStatementWithDefault, discriminant T, preDefaultCases []T, defaultCase T, postDefaultCases []T) T
	ReduceTemplateElement(node *TemplateElement) T
	ReduceTemplateExpression(node *TemplateExpression, tag T, elements []T) T
	ReduceThisExpression(node *ThisExpression) T
	ReduceThrowStatement(node *ThrowStatement, expression T) T
	ReduceTryCatchStatement(node *TryCatchStatement, body T, catchClause T) T
	ReduceTryFinallyStatement(node *TryFinallyStatement, body T, catchClause T, finalizer T) T
	ReduceUnaryExpression(node *UnaryExpression, operand T) T
	ReduceUpdateExpression(node *UpdateExpression, operand T) T
	ReduceVariableDeclaration(node *VariableDeclaration, declarators []T) T
	ReduceVariableDeclarationStatement(node *VariableDeclarationStatement, declaration T) T
	ReduceVariableDeclarator(node *VariableDeclarator, binding T, init T) T
	ReduceWhileStatement(node *WhileStatement, test T, body T) T
	ReduceWithStatement(node *WithStatement, object T, body T) T
	ReduceYieldExpression(node *YieldExpression, expression T) T
	ReduceYieldGeneratorExpression(node *YieldGeneratorExpression, expression T) T
}

func Reduce[T any](r Reducer[T], node Node) T {
	return ReduceWith(r, node, nil)
}

// ReduceWith is like Reduce but passes every produced value through "wrap"
// together with the node it was produced for, children before parents.
func ReduceWith[T any](r Reducer[T], node Node, wrap func(Node, T) T) T {
	red := reduction[T]{r: r, wrap: wrap}
	return red.visit(node)
}

type reduction[T any] struct {
	r    Reducer[T]
	wrap func(Node, T) T
}

// Converts a typed nil pointer into a nil interface
func asNode[P interface {
	*E
	Node
}, E any](p P) Node {
	if p == nil {
		return nil
	}
	return p
}

func (red *reduction[T]) visit(node Node) T {
	result := red.dispatch(node)
	if red.wrap != nil {
		result = red.wrap(node, result)
	}
	return result
}

func (red *reduction[T]) required(parent Kind, field string, node Node) T {
	if node == nil {
		Malformed(parent, "missing required field %q", field)
	}
	return red.visit(node)
}

func (red *reduction[T]) optional(node Node) (result T) {
	if node != nil {
		result = red.visit(node)
	}
	return
}

func visitList[N Node, T any](red *reduction[T], parent Kind, field string, nodes []N) []T {
	results := make([]T, len(nodes))
	for i, node := range nodes {
		if Node(node) == nil {
			Malformed(parent, "unexpected hole in %q", field)
		}
		results[i] = red.visit(node)
	}
	return results
}

func visitHoles[N Node, T any](red *reduction[T], nodes []N) []T {
	results := make([]T, len(nodes))
	for i, node := range nodes {
		if Node(node) != nil {
			results[i] = red.visit(node)
		}
	}
	return results
}

func (red *reduction[T]) dispatch(node Node) T {
	r := red.r
	switch n := node.(type) {
	case *ArrayAssignmentTarget:
		return r.ReduceArrayAssignmentTarget(n, visitHoles(red, n.Elements), red.optional(n.Rest))

	case *ArrayBinding:
		return r.ReduceArrayBinding(n, visitHoles(red, n.Elements), red.optional(n.Rest))

	case *ArrayExpression:
		return r.ReduceArrayExpression(n, visitHoles(red, n.Elements))

	case *ArrowExpression:
		params := red.required(KindArrowExpression, "params", asNode(n.Params))
		return r.ReduceArrowExpression(n, params, red.required(KindArrowExpression, "body", n.Body))

	case *AssignmentExpression:
		binding := red.required(KindAssignmentExpression, "binding", n.Binding)
		return r.ReduceAssignmentExpression(n, binding, red.required(KindAssignmentExpression, "expression", n.Expression))

	case *AssignmentTargetIdentifier:
		return r.ReduceAssignmentTargetIdentifier(n)

	case *AssignmentTargetPropertyIdentifier:
		binding := red.required(KindAssignmentTargetPropertyIdentifier, "binding", asNode(n.Binding))
		return r.ReduceAssignmentTargetPropertyIdentifier(n, binding, red.optional(n.Init))

	case *AssignmentTargetPropertyProperty:
		name := red.required(KindAssignmentTargetPropertyProperty, "name", n.Name)
		return r.ReduceAssignmentTargetPropertyProperty(n, name, red.required(KindAssignmentTargetPropertyProperty, "binding", n.Binding))

	case *AssignmentTargetWithDefault:
		binding := red.required(KindAssignmentTargetWithDefault, "binding", n.Binding)
		return r.ReduceAssignmentTargetWithDefault(n, binding, red.required(KindAssignmentTargetWithDefault, "init", n.Init))

	case *AwaitExpression:
		return r.ReduceAwaitExpression(n, red.required(KindAwaitExpression, "expression", n.Expression))

	case *BinaryExpression:
		left := red.required(KindBinaryExpression, "left", n.Left)
		return r.ReduceBinaryExpression(n, left, red.required(KindBinaryExpression, "right", n.Right))

	case *BindingIdentifier:
		return r.ReduceBindingIdentifier(n)

	case *BindingPropertyIdentifier:
		binding := red.required(KindBindingPropertyIdentifier, "binding", asNode(n.Binding))
		return r.ReduceBindingPropertyIdentifier(n, binding, red.optional(n.Init))

	case *BindingPropertyProperty:
		name := red.required(KindBindingPropertyProperty, "name", n.Name)
		return r.ReduceBindingPropertyProperty(n, name, red.required(KindBindingPropertyProperty, "binding", n.Binding))

	case *BindingWithDefault:
		binding := red.required(KindBindingWithDefault, "binding", n.Binding)
		return r.ReduceBindingWithDefault(n, binding, red.required(KindBindingWithDefault, "init", n.Init))

	case *Block:
		return r.ReduceBlock(n, visitList(red, KindBlock, "statements", n.Statements))

	case *BlockStatement:
		return r.ReduceBlockStatement(n, red.required(KindBlockStatement, "block", asNode(n.Block)))

	case *BreakStatement:
		return r.ReduceBreakStatement(n)

	case *CallExpression:
		callee := red.required(KindCallExpression, "callee", n.Callee)
		return r.ReduceCallExpression(n, callee, visitList(red, KindCallExpression, "arguments", n.Arguments))

	case *CatchClause:
		binding := red.required(KindCatchClause, "binding", n.Binding)
		return r.ReduceCatchClause(n, binding, red.required(KindCatchClause, "body", asNode(n.Body)))

	case *ClassDeclaration:
		name := red.optional(asNode(n.Name))
		super := red.optional(n.Super)
		return r.ReduceClassDeclaration(n, name, super, visitList(red, KindClassDeclaration, "elements", n.Elements))

	case *ClassElement:
		return r.ReduceClassElement(n, red.required(KindClassElement, "method", n.Method))

	case *ClassExpression:
		name := red.optional(asNode(n.Name))
		super := red.optional(n.Super)
		return r.ReduceClassExpression(n, name, super, visitList(red, KindClassExpression, "elements", n.Elements))

	case *CompoundAssignmentExpression:
		if !n.Operator.IsValid() {
			Malformed(KindCompoundAssignmentExpression, "unknown operator %q", n.Operator)
		}
		binding := red.required(KindCompoundAssignmentExpression, "binding", n.Binding)
		return r.ReduceCompoundAssignmentExpression(n, binding, red.required(KindCompoundAssignmentExpression, "expression", n.Expression))

	case *ComputedMemberAssignmentTarget:
		object := red.required(KindComputedMemberAssignmentTarget, "object", n.Object)
		return r.ReduceComputedMemberAssignmentTarget(n, object, red.required(KindComputedMemberAssignmentTarget, "expression", n.Expression))

	case *ComputedMemberExpression:
		object := red.required(KindComputedMemberExpression, "object", n.Object)
		return r.ReduceComputedMemberExpression(n, object, red.required(KindComputedMemberExpression, "expression", n.Expression))

	case *ComputedPropertyName:
		return r.ReduceComputedPropertyName(n, red.required(KindComputedPropertyName, "expression", n.Expression))

	case *ConditionalExpression:
		test := red.required(KindConditionalExpression, "test", n.Test)
		consequent := red.required(KindConditionalExpression, "consequent", n.Consequent)
		return r.ReduceConditionalExpression(n, test, consequent, red.required(KindConditionalExpression, "alternate", n.Alternate))

	case *ContinueStatement:
		return r.ReduceContinueStatement(n)

	case *DataProperty:
		name := red.required(KindDataProperty, "name", n.Name)
		return r.ReduceDataProperty(n, name, red.required(KindDataProperty, "expression", n.Expression))

	case *DebuggerStatement:
		return r.ReduceDebuggerStatement(n)

	case *Directive:
		return r.ReduceDirective(n)

	case *DoWhileStatement:
		body := red.required(KindDoWhileStatement, "body", n.Body)
		return r.ReduceDoWhileStatement(n, body, red.required(KindDoWhileStatement, "test", n.Test))

	case *EmptyStatement:
		return r.ReduceEmptyStatement(n)

	case *Export:
		return r.ReduceExport(n, red.required(KindExport, "declaration", n.Declaration))

	case *ExportAllFrom:
		return r.ReduceExportAllFrom(n)

	case *ExportDefault:
		return r.ReduceExportDefault(n, red.required(KindExportDefault, "body", n.Body))

	case *ExportFrom:
		return r.ReduceExportFrom(n, visitList(red, KindExportFrom, "namedExports", n.NamedExports))

	case *ExportFromSpecifier:
		return r.ReduceExportFromSpecifier(n)

	case *ExportLocalSpecifier:
		return r.ReduceExportLocalSpecifier(n, red.required(KindExportLocalSpecifier, "name", asNode(n.Name)))

	case *ExportLocals:
		return r.ReduceExportLocals(n, visitList(red, KindExportLocals, "namedExports", n.NamedExports))

	case *ExpressionStatement:
		return r.ReduceExpressionStatement(n, red.required(KindExpressionStatement, "expression", n.Expression))

	case *ForInStatement:
		left := red.required(KindForInStatement, "left", n.Left)
		right := red.required(KindForInStatement, "right", n.Right)
		return r.ReduceForInStatement(n, left, right, red.required(KindForInStatement, "body", n.Body))

	case *ForOfStatement:
		left := red.required(KindForOfStatement, "left", n.Left)
		right := red.required(KindForOfStatement, "right", n.Right)
		return r.ReduceForOfStatement(n, left, right, red.required(KindForOfStatement, "body", n.Body))

	case *ForStatement:
		init := red.optional(n.Init)
		test := red.optional(n.Test)
		update := red.optional(n.Update)
		return r.ReduceForStatement(n, init, test, update, red.required(KindForStatement, "body", n.Body))

	case *FormalParameters:
		items := visitList(red, KindFormalParameters, "items", n.Items)
		return r.ReduceFormalParameters(n, items, red.optional(n.Rest))

	case *FunctionBody:
		directives := visitList(red, KindFunctionBody, "directives", n.Directives)
		return r.ReduceFunctionBody(n, directives, visitList(red, KindFunctionBody, "statements", n.Statements))

	case *FunctionDeclaration:
		name := red.optional(asNode(n.Name))
		params := red.required(KindFunctionDeclaration, "params", asNode(n.Params))
		return r.ReduceFunctionDeclaration(n, name, params, red.required(KindFunctionDeclaration, "body", asNode(n.Body)))

	case *FunctionExpression:
		name := red.optional(asNode(n.Name))
		params := red.required(KindFunctionExpression, "params", asNode(n.Params))
		return r.ReduceFunctionExpression(n, name, params, red.required(KindFunctionExpression, "body", asNode(n.Body)))

	case *Getter:
		name := red.required(KindGetter, "name", n.Name)
		return r.ReduceGetter(n, name, red.required(KindGetter, "body", asNode(n.Body)))

	case *IdentifierExpression:
		return r.ReduceIdentifierExpression(n)

	case *IfStatement:
		test := red.required(KindIfStatement, "test", n.Test)
		consequent := red.required(KindIfStatement, "consequent", n.Consequent)
		return r.ReduceIfStatement(n, test, consequent, red.optional(n.Alternate))

	case *Import:
		defaultBinding := red.optional(asNode(n.DefaultBinding))
		return r.ReduceImport(n, defaultBinding, visitList(red, KindImport, "namedImports", n.NamedImports))

	case *ImportNamespace:
		defaultBinding := red.optional(asNode(n.DefaultBinding))
		return r.ReduceImportNamespace(n, defaultBinding, red.required(KindImportNamespace, "namespaceBinding", asNode(n.NamespaceBinding)))

	case *ImportSpecifier:
		return r.ReduceImportSpecifier(n, red.required(KindImportSpecifier, "binding", asNode(n.Binding)))

	case *LabeledStatement:
		return r.ReduceLabeledStatement(n, red.required(KindLabeledStatement, "body", n.Body))

	case *LiteralBooleanExpression:
		return r.ReduceLiteralBooleanExpression(n)

	case *LiteralInfinityExpression:
		return r.ReduceLiteralInfinityExpression(n)

	case *LiteralNullExpression:
		return r.ReduceLiteralNullExpression(n)

	case *LiteralNumericExpression:
		return r.ReduceLiteralNumericExpression(n)

	case *LiteralRegExpExpression:
		return r.ReduceLiteralRegExpExpression(n)

	case *LiteralStringExpression:
		return r.ReduceLiteralStringExpression(n)

	case *Method:
		name := red.required(KindMethod, "name", n.Name)
		params := red.required(KindMethod, "params", asNode(n.Params))
		return r.ReduceMethod(n, name, params, red.required(KindMethod, "body", asNode(n.Body)))

	case *Module:
		directives := visitList(red, KindModule, "directives", n.Directives)
		return r.ReduceModule(n, directives, visitList(red, KindModule, "items", n.Items))

	case *NewExpression:
		callee := red.required(KindNewExpression, "callee", n.Callee)
		return r.ReduceNewExpression(n, callee, visitList(red, KindNewExpression, "arguments", n.Arguments))

	case *NewTargetExpression:
		return r.ReduceNewTargetExpression(n)

	case *ObjectAssignmentTarget:
		return r.ReduceObjectAssignmentTarget(n, visitList(red, KindObjectAssignmentTarget, "properties", n.Properties))

	case *ObjectBinding:
		return r.ReduceObjectBinding(n, visitList(red, KindObjectBinding, "properties", n.Properties))

	case *ObjectExpression:
		return r.ReduceObjectExpression(n, visitList(red, KindObjectExpression, "properties", n.Properties))

	case *ReturnStatement:
		return r.ReduceReturnStatement(n, red.optional(n.Expression))

	case *Script:
		directives := visitList(red, KindScript, "directives", n.Directives)
		return r.ReduceScript(n, directives, visitList(red, KindScript, "statements", n.Statements))

	case *Setter:
		name := red.required(KindSetter, "name", n.Name)
		param := red.required(KindSetter, "param", n.Param)
		return r.ReduceSetter(n, name, param, red.required(KindSetter, "body", asNode(n.Body)))

	case *ShorthandProperty:
		return r.ReduceShorthandProperty(n, red.required(KindShorthandProperty, "name", asNode(n.Name)))

	case *SpreadElement:
		return r.ReduceSpreadElement(n, red.required(KindSpreadElement, "expression", n.Expression))

	case *StaticMemberAssignmentTarget:
		return r.ReduceStaticMemberAssignmentTarget(n, red.required(KindStaticMemberAssignmentTarget, "object", n.Object))

	case *StaticMemberExpression:
		return r.ReduceStaticMemberExpression(n, red.required(KindStaticMemberExpression, "object", n.Object))

	case *StaticPropertyName:
		return r.ReduceStaticPropertyName(n)

	case *Super:
		return r.ReduceSuper(n)

	case *SwitchCase:
		test := red.required(KindSwitchCase, "test", n.Test)
		return r.ReduceSwitchCase(n, test, visitList(red, KindSwitchCase, "consequent", n.Consequent))

	case *SwitchDefault:
		return r.ReduceSwitchDefault(n, visitList(red, KindSwitchDefault, "consequent", n.Consequent))

	case *SwitchStatement:
		discriminant := red.required(KindSwitchStatement, "discriminant", n.Discriminant)
		return r.ReduceSwitchStatement(n, discriminant, visitList(red, KindSwitchStatement, "cases", n.Cases))

	case *SwitchStatementWithDefault:
		discriminant := red.required(KindSwitchStatementWithDefault, "discriminant", n.Discriminant)
		pre := visitList(red, KindSwitchStatementWithDefault, "preDefaultCases", n.PreDefaultCases)
		defaultCase := red.required(KindSwitchStatementWithDefault, "defaultCase", asNode(n.DefaultCase))
		post := visitList(red, KindSwitchStatementWithDefault, "postDefaultCases", n.PostDefaultCases)
		return r.ReduceSwitchStatementWithDefault(n, discriminant, pre, defaultCase, post)

	case *TemplateElement:
		return r.ReduceTemplateElement(n)

	case *TemplateExpression:
		tag := red.optional(n.Tag)
		return r.ReduceTemplateExpression(n, tag, visitList(red, KindTemplateExpression, "elements", n.Elements))

	case *ThisExpression:
		return r.ReduceThisExpression(n)

	case *ThrowStatement:
		return r.ReduceThrowStatement(n, red.required(KindThrowStatement, "expression", n.Expression))

	case *TryCatchStatement:
		body := red.required(KindTryCatchStatement, "body", asNode(n.Body))
		return r.ReduceTryCatchStatement(n, body, red.required(KindTryCatchStatement, "catchClause", asNode(n.CatchClause)))

	case *TryFinallyStatement:
		body := red.required(KindTryFinallyStatement, "body", asNode(n.Body))
		catchClause := red.optional(asNode(n.CatchClause))
		return r.ReduceTryFinallyStatement(n, body, catchClause, red.required(KindTryFinallyStatement, "finalizer", asNode(n.Finalizer)))

	case *UnaryExpression:
		if !n.Operator.IsValid() {
			Malformed(KindUnaryExpression, "unknown operator %q", n.Operator)
		}
		return r.ReduceUnaryExpression(n, red.required(KindUnaryExpression, "operand", n.Operand))

	case *UpdateExpression:
		if !n.Operator.IsValid() {
			Malformed(KindUpdateExpression, "unknown operator %q", n.Operator)
		}
		return r.ReduceUpdateExpression(n, red.required(KindUpdateExpression, "operand", n.Operand))

	case *VariableDeclaration:
		if !n.DeclKind.IsValid() {
			Malformed(KindVariableDeclaration, "unknown declaration kind %q", n.DeclKind)
		}
		if len(n.Declarators) == 0 {
			Malformed(KindVariableDeclaration, "no declarators")
		}
		return r.ReduceVariableDeclaration(n, visitList(red, KindVariableDeclaration, "declarators", n.Declarators))

	case *VariableDeclarationStatement:
		return r.ReduceVariableDeclarationStatement(n, red.required(KindVariableDeclarationStatement, "declaration", asNode(n.Declaration)))

	case *VariableDeclarator:
		binding := red.required(KindVariableDeclarator, "binding", n.Binding)
		return r.ReduceVariableDeclarator(n, binding, red.optional(n.Init))

	case *WhileStatement:
		test := red.required(KindWhileStatement, "test", n.Test)
		return r.ReduceWhileStatement(n, test, red.required(KindWhileStatement, "body", n.Body))

	case *WithStatement:
		object := red.required(KindWithStatement, "object", n.Object)
		return r.ReduceWithStatement(n, object, red.required(KindWithStatement, "body", n.Body))

	case *YieldExpression:
		return r.ReduceYieldExpression(n, red.optional(n.Expression))

	case *YieldGeneratorExpression:
		return r.ReduceYieldGeneratorExpression(n, red.required(KindYieldGeneratorExpression, "expression", n.Expression))
	}

	if node == nil {
		panic("Internal error: reduction of a missing node")
	}
	panic(&MalformedError{Kind: node.Kind(), Text: "unsupported node type"})
}
