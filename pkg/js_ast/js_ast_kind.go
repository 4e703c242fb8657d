package js_ast

type Kind uint8

const (
	KindArrayAssignmentTarget Kind = iota
	KindArrayBinding
	KindArrayExpression
	KindArrowExpression
	KindAssignmentExpression
	KindAssignmentTargetIdentifier
	KindAssignmentTargetPropertyIdentifier
	KindAssignmentTargetPropertyProperty
	KindAssignmentTargetWithDefault
	KindAwaitExpression
	KindBinaryExpression
	KindBindingIdentifier
	KindBindingPropertyIdentifier
	KindBindingPropertyProperty
	KindBindingWithDefault
	KindBlock
	KindBlockStatement
	KindBreakStatement
	KindCallExpression
	KindCatchClause
	KindClassDeclaration
	KindClassElement
	KindClassExpression
	KindCompoundAssignmentExpression
	KindComputedMemberAssignmentTarget
	KindComputedMemberExpression
	KindComputedPropertyName
	KindConditionalExpression
	KindContinueStatement
	KindDataProperty
	KindDebuggerStatement
	KindDirective
	KindDoWhileStatement
	KindEmptyStatement
	KindExport
	KindExportAllFrom
	KindExportDefault
	KindExportFrom
	KindExportFromSpecifier
	KindExportLocalSpecifier
	KindExportLocals
	KindExpressionStatement
	KindForInStatement
	KindForOfStatement
	KindForStatement
	KindFormalParameters
	KindFunctionBody
	KindFunctionDeclaration
	KindFunctionExpression
	KindGetter
	KindIdentifierExpression
	KindIfStatement
	KindImport
	KindImportNamespace
	KindImportSpecifier
	KindLabeledStatement
	KindLiteralBooleanExpression
	KindLiteralInfinityExpression
	KindLiteralNullExpression
	KindLiteralNumericExpression
	KindLiteralRegExpExpression
	KindLiteralStringExpression
	KindMethod
	KindModule
	KindNewExpression
	KindNewTargetExpression
	KindObjectAssignmentTarget
	KindObjectBinding
	KindObjectExpression
	KindReturnStatement
	KindScript
	KindSetter
	KindShorthandProperty
	KindSpreadElement
	KindStaticMemberAssignmentTarget
	KindStaticMemberExpression
	KindStaticPropertyName
	KindSuper
	KindSwitchCase
	KindSwitchDefault
	KindSwitchStatement
	KindSwitchStatementWithDefault
	KindTemplateElement
	KindTemplateExpression
	KindThisExpression
	KindThrowStatement
	KindTryCatchStatement
	KindTryFinallyStatement
	KindUnaryExpression
	KindUpdateExpression
	KindVariableDeclaration
	KindVariableDeclarationStatement
	KindVariableDeclarator
	KindWhileStatement
	KindWithStatement
	KindYieldExpression
	KindYieldGeneratorExpression
)

var kindNames = [...]string{
	KindArrayAssignmentTarget:              "ArrayAssignmentTarget",
	KindArrayBinding:                       "ArrayBinding",
	KindArrayExpression:                    "ArrayExpression",
	KindArrowExpression:                    "ArrowExpression",
	KindAssignmentExpression:               "AssignmentExpression",
	KindAssignmentTargetIdentifier:         "AssignmentTargetIdentifier",
	KindAssignmentTargetPropertyIdentifier: "AssignmentTargetPropertyIdentifier",
	KindAssignmentTargetPropertyProperty:   "AssignmentTargetPropertyProperty",
	KindAssignmentTargetWithDefault:        "AssignmentTargetWithDefault",
	KindAwaitExpression:                    "AwaitExpression",
	KindBinaryExpression:                   "BinaryExpression",
	KindBindingIdentifier:                  "BindingIdentifier",
	KindBindingPropertyIdentifier:          "BindingPropertyIdentifier",
	KindBindingPropertyProperty:            "BindingPropertyProperty",
	KindBindingWithDefault:                 "BindingWithDefault",
	KindBlock:                              "Block",
	KindBlockStatement:                     "BlockStatement",
	KindBreakStatement:                     "BreakStatement",
	KindCallExpression:                     "CallExpression",
	KindCatchClause:                        "CatchClause",
	KindClassDeclaration:                   "ClassDeclaration",
	KindClassElement:                       "ClassElement",
	KindClassExpression:                    "ClassExpression",
	KindCompoundAssignmentExpression:       "CompoundAssignmentExpression",
	KindComputedMemberAssignmentTarget:     "ComputedMemberAssignmentTarget",
	KindComputedMemberExpression:           "ComputedMemberExpression",
	KindComputedPropertyName:               "ComputedPropertyName",
	KindConditionalExpression:              "ConditionalExpression",
	KindContinueStatement:                  "ContinueStatement",
	KindDataProperty:                       "DataProperty",
	KindDebuggerStatement:                  "DebuggerStatement",
	KindDirective:                          "Directive",
	KindDoWhileStatement:                   "DoWhileStatement",
	KindEmptyStatement:                     "EmptyStatement",
	KindExport:                             "Export",
	KindExportAllFrom:                      "ExportAllFrom",
	KindExportDefault:                      "ExportDefault",
	KindExportFrom:                         "ExportFrom",
	KindExportFromSpecifier:                "ExportFromSpecifier",
	KindExportLocalSpecifier:               "ExportLocalSpecifier",
	KindExportLocals:                       "ExportLocals",
	KindExpressionStatement:                "ExpressionStatement",
	KindForInStatement:                     "ForInStatement",
	KindForOfStatement:                     "ForOfStatement",
	KindForStatement:                       "ForStatement",
	KindFormalParameters:                   "FormalParameters",
	KindFunctionBody:                       "FunctionBody",
	KindFunctionDeclaration:                "FunctionDeclaration",
	KindFunctionExpression:                 "FunctionExpression",
	KindGetter:                             "Getter",
	KindIdentifierExpression:               "IdentifierExpression",
	KindIfStatement:                        "IfStatement",
	KindImport:                             "Import",
	KindImportNamespace:                    "ImportNamespace",
	KindImportSpecifier:                    "ImportSpecifier",
	KindLabeledStatement:                   "LabeledStatement",
	KindLiteralBooleanExpression:           "LiteralBooleanExpression",
	KindLiteralInfinityExpression:          "LiteralInfinityExpression",
	KindLiteralNullExpression:              "LiteralNullExpression",
	KindLiteralNumericExpression:           "LiteralNumericExpression",
	KindLiteralRegExpExpression:            "LiteralRegExpExpression",
	KindLiteralStringExpression:            "LiteralStringExpression",
	KindMethod:                             "Method",
	KindModule:                             "Module",
	KindNewExpression:                      "NewExpression",
	KindNewTargetExpression:                "NewTargetExpression",
	KindObjectAssignmentTarget:             "ObjectAssignmentTarget",
	KindObjectBinding:                      "ObjectBinding",
	KindObjectExpression:                   "ObjectExpression",
	KindReturnStatement:                    "ReturnStatement",
	KindScript:                             "Script",
	KindSetter:                             "Setter",
	KindShorthandProperty:                  "ShorthandProperty",
	KindSpreadElement:                      "SpreadElement",
	KindStaticMemberAssignmentTarget:       "StaticMemberAssignmentTarget",
	KindStaticMemberExpression:             "StaticMemberExpression",
	KindStaticPropertyName:                 "StaticPropertyName",
	KindSuper:                              "Super",
	KindSwitchCase:                         "SwitchCase",
	KindSwitchDefault:                      "SwitchDefault",
	KindSwitchStatement:                    "SwitchStatement",
	KindSwitchStatementWithDefault:         "SwitchStatementWithDefault",
	KindTemplateElement:                    "TemplateElement",
	KindTemplateExpression:                 "TemplateExpression",
	KindThisExpression:                     "ThisExpression",
	KindThrowStatement:                     "ThrowStatement",
	KindTryCatchStatement:                  "TryCatchStatement",
	KindTryFinallyStatement:                "TryFinallyStatement",
	KindUnaryExpression:                    "UnaryExpression",
	KindUpdateExpression:                   "UpdateExpression",
	KindVariableDeclaration:                "VariableDeclaration",
	KindVariableDeclarationStatement:       "VariableDeclarationStatement",
	KindVariableDeclarator:                 "VariableDeclarator",
	KindWhileStatement:                     "WhileStatement",
	KindWithStatement:                      "WithStatement",
	KindYieldExpression:                    "YieldExpression",
	KindYieldGeneratorExpression:           "YieldGeneratorExpression",
}

// The names match the "type" field of the Shift JSON format
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for i, name := range kindNames {
		m[name] = Kind(i)
	}
	return m
}()

func KindFromString(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Statement-like nodes are the ones that may end in an optional semicolon
func (k Kind) IsStatementLike() bool {
	switch k {
	case KindBreakStatement, KindContinueStatement, KindDebuggerStatement, KindDoWhileStatement,
		KindEmptyStatement, KindExpressionStatement, KindForInStatement, KindForOfStatement,
		KindForStatement, KindIfStatement, KindLabeledStatement, KindReturnStatement,
		KindThrowStatement, KindVariableDeclarationStatement, KindWhileStatement, KindWithStatement,
		KindDirective, KindImport, KindImportNamespace, KindExport, KindExportAllFrom,
		KindExportDefault, KindExportFrom, KindExportLocals, KindSwitchCase, KindSwitchDefault:
		return true
	}
	return false
}

func (*ArrayAssignmentTarget) Kind() Kind              { return KindArrayAssignmentTarget }
func (*ArrayBinding) Kind() Kind                       { return KindArrayBinding }
func (*ArrayExpression) Kind() Kind                    { return KindArrayExpression }
func (*ArrowExpression) Kind() Kind                    { return KindArrowExpression }
func (*AssignmentExpression) Kind() Kind               { return KindAssignmentExpression }
func (*AssignmentTargetIdentifier) Kind() Kind         { return KindAssignmentTargetIdentifier }
func (*AssignmentTargetPropertyIdentifier) Kind() Kind { return KindAssignmentTargetPropertyIdentifier }
func (*AssignmentTargetPropertyProperty) Kind() Kind   { return KindAssignmentTargetPropertyProperty }
func (*AssignmentTargetWithDefault) Kind() Kind        { return KindAssignmentTargetWithDefault }
func (*AwaitExpression) Kind() Kind                    { return KindAwaitExpression }
func (*BinaryExpression) Kind() Kind                   { return KindBinaryExpression }
func (*BindingIdentifier) Kind() Kind                  { return KindBindingIdentifier }
func (*BindingPropertyIdentifier) Kind() Kind          { return KindBindingPropertyIdentifier }
func (*BindingPropertyProperty) Kind() Kind            { return KindBindingPropertyProperty }
func (*BindingWithDefault) Kind() Kind                 { return KindBindingWithDefault }
func (*Block) Kind() Kind                              { return KindBlock }
func (*BlockStatement) Kind() Kind                     { return KindBlockStatement }
func (*BreakStatement) Kind() Kind                     { return KindBreakStatement }
func (*CallExpression) Kind() Kind                     { return KindCallExpression }
func (*CatchClause) Kind() Kind                        { return KindCatchClause }
func (*ClassDeclaration) Kind() Kind                   { return KindClassDeclaration }
func (*ClassElement) Kind() Kind                       { return KindClassElement }
func (*ClassExpression) Kind() Kind                    { return KindClassExpression }
func (*CompoundAssignmentExpression) Kind() Kind       { return KindCompoundAssignmentExpression }
func (*ComputedMemberAssignmentTarget) Kind() Kind     { return KindComputedMemberAssignmentTarget }
func (*ComputedMemberExpression) Kind() Kind           { return KindComputedMemberExpression }
func (*ComputedPropertyName) Kind() Kind               { return KindComputedPropertyName }
func (*ConditionalExpression) Kind() Kind              { return KindConditionalExpression }
func (*ContinueStatement) Kind() Kind                  { return KindContinueStatement }
func (*DataProperty) Kind() Kind                       { return KindDataProperty }
func (*DebuggerStatement) Kind() Kind                  { return KindDebuggerStatement }
func (*Directive) Kind() Kind                          { return KindDirective }
func (*DoWhileStatement) Kind() Kind                   { return KindDoWhileStatement }
func (*EmptyStatement) Kind() Kind                     { return KindEmptyStatement }
func (*Export) Kind() Kind                             { return KindExport }
func (*ExportAllFrom) Kind() Kind                      { return KindExportAllFrom }
func (*ExportDefault) Kind() Kind                      { return KindExportDefault }
func (*ExportFrom) Kind() Kind                         { return KindExportFrom }
func (*ExportFromSpecifier) Kind() Kind                { return KindExportFromSpecifier }
func (*ExportLocalSpecifier) Kind() Kind               { return KindExportLocalSpecifier }
func (*ExportLocals) Kind() Kind                       { return KindExportLocals }
func (*ExpressionStatement) Kind() Kind                { return KindExpressionStatement }
func (*ForInStatement) Kind() Kind                     { return KindForInStatement }
func (*ForOfStatement) Kind() Kind                     { return KindForOfStatement }
func (*ForStatement) Kind() Kind                       { return KindForStatement }
func (*FormalParameters) Kind() Kind                   { return KindFormalParameters }
func (*FunctionBody) Kind() Kind                       { return KindFunctionBody }
func (*FunctionDeclaration) Kind() Kind                { return KindFunctionDeclaration }
func (*FunctionExpression) Kind() Kind                 { return KindFunctionExpression }
func (*Getter) Kind() Kind                             { return KindGetter }
func (*IdentifierExpression) Kind() Kind               { return KindIdentifierExpression }
func (*IfStatement) Kind() Kind                        { return KindIfStatement }
func (*Import) Kind() Kind                             { return KindImport }
func (*ImportNamespace) Kind() Kind                    { return KindImportNamespace }
func (*ImportSpecifier) Kind() Kind                    { return KindImportSpecifier }
func (*LabeledStatement) Kind() Kind                   { return KindLabeledStatement }
func (*LiteralBooleanExpression) Kind() Kind           { return KindLiteralBooleanExpression }
func (*LiteralInfinityExpression) Kind() Kind          { return KindLiteralInfinityExpression }
func (*LiteralNullExpression) Kind() Kind              { return KindLiteralNullExpression }
func (*LiteralNumericExpression) Kind() Kind           { return KindLiteralNumericExpression }
func (*LiteralRegExpExpression) Kind() Kind            { return KindLiteralRegExpExpression }
func (*LiteralStringExpression) Kind() Kind            { return KindLiteralStringExpression }
func (*Method) Kind() Kind                             { return KindMethod }
func (*Module) Kind() Kind                             { return KindModule }
func (*NewExpression) Kind() Kind                      { return KindNewExpression }
func (*NewTargetExpression) Kind() Kind                { return KindNewTargetExpression }
func (*ObjectAssignmentTarget) Kind() Kind             { return KindObjectAssignmentTarget }
func (*ObjectBinding) Kind() Kind                      { return KindObjectBinding }
func (*ObjectExpression) Kind() Kind                   { return KindObjectExpression }
func (*ReturnStatement) Kind() Kind                    { return KindReturnStatement }
func (*Script) Kind() Kind                             { return KindScript }
func (*Setter) Kind() Kind                             { return KindSetter }
func (*ShorthandProperty) Kind() Kind                  { return KindShorthandProperty }
func (*SpreadElement) Kind() Kind                      { return KindSpreadElement }
func (*StaticMemberAssignmentTarget) Kind() Kind       { return KindStaticMemberAssignmentTarget }
func (*StaticMemberExpression) Kind() Kind             { return KindStaticMemberExpression }
func (*StaticPropertyName) Kind() Kind                 { return KindStaticPropertyName }
func (*Super) Kind() Kind                              { return KindSuper }
func (*SwitchCase) Kind() Kind                         { return KindSwitchCase }
func (*SwitchDefault) Kind() Kind                      { return KindSwitchDefault }
func (*SwitchStatement) Kind() Kind                    { return KindSwitchStatement }
func (*SwitchStatementWithDefault) Kind() Kind         { return KindSwitchStatementWithDefault }
func (*TemplateElement) Kind() Kind                    { return KindTemplateElement }
func (*TemplateExpression) Kind() Kind                 { return KindTemplateExpression }
func (*ThisExpression) Kind() Kind                     { return KindThisExpression }
func (*ThrowStatement) Kind() Kind                     { return KindThrowStatement }
func (*TryCatchStatement) Kind() Kind                  { return KindTryCatchStatement }
func (*TryFinallyStatement) Kind() Kind                { return KindTryFinallyStatement }
func (*UnaryExpression) Kind() Kind                    { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind                   { return KindUpdateExpression }
func (*VariableDeclaration) Kind() Kind                { return KindVariableDeclaration }
func (*VariableDeclarationStatement) Kind() Kind       { return KindVariableDeclarationStatement }
func (*VariableDeclarator) Kind() Kind                 { return KindVariableDeclarator }
func (*WhileStatement) Kind() Kind                     { return KindWhileStatement }
func (*WithStatement) Kind() Kind                      { return KindWithStatement }
func (*YieldExpression) Kind() Kind                    { return KindYieldExpression }
func (*YieldGeneratorExpression) Kind() Kind           { return KindYieldGeneratorExpression }
