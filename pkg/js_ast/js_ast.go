package js_ast

// Trees are built by an external parser (or decoded from the Shift JSON
// format, see "js_ast_json.go") and are never mutated by this module. Every
// node is a pointer to a struct so that node identity can be used as a map
// key, which the location tracker relies on.
//
// Optional children are nil. Array holes ("[a, , b]") are nil entries in the
// corresponding slice.

type Node interface {
	Kind() Kind
}

// The interfaces below are never called. Their purpose is to encode variant
// types in Go's type system.

type Expr interface {
	Node
	isExpr()
	isExprOrSpread()
	isExprOrSuper()
}

type Stmt interface {
	Node
	isStmt()
}

// Script and module items
type ModuleItem interface {
	Node
	isModuleItem()
}

// Array elements and call arguments
type ExprOrSpread interface {
	Node
	isExprOrSpread()
}

// Callees and member objects
type ExprOrSuper interface {
	Node
	isExprOrSuper()
}

// "*BindingIdentifier", "*ArrayBinding", or "*ObjectBinding"
type Binding interface {
	Node
	isBinding()
	isParameter()
}

// A binding or a "*BindingWithDefault"
type Parameter interface {
	Node
	isParameter()
}

type AssignmentTarget interface {
	Node
	isAssignmentTarget()
	isAssignmentTargetElement()
	isForInOfLeft()
}

// Targets of update and compound assignment expressions
type SimpleAssignmentTarget interface {
	AssignmentTarget
	isSimpleAssignmentTarget()
}

// An assignment target or a "*AssignmentTargetWithDefault"
type AssignmentTargetElement interface {
	Node
	isAssignmentTargetElement()
}

type PropertyName interface {
	Node
	isPropertyName()
}

type ObjectProperty interface {
	Node
	isObjectProperty()
}

// "*Method", "*Getter", or "*Setter"
type MethodDefinition interface {
	ObjectProperty
	isMethodDefinition()
}

type BindingProperty interface {
	Node
	isBindingProperty()
}

type AssignmentTargetProperty interface {
	Node
	isAssignmentTargetProperty()
}

// "*FunctionBody" or an expression
type ArrowBody interface {
	Node
	isArrowBody()
}

// "*VariableDeclaration" or an expression
type ForInit interface {
	Node
	isForInit()
}

// "*VariableDeclaration" or an assignment target
type ForInOfLeft interface {
	Node
	isForInOfLeft()
}

// "*FunctionDeclaration", "*ClassDeclaration", or an expression
type ExportDefaultBody interface {
	Node
	isExportDefaultBody()
}

// "*FunctionDeclaration", "*ClassDeclaration", or "*VariableDeclaration"
type ExportableDeclaration interface {
	Node
	isExportableDeclaration()
}

// "*TemplateElement" or an expression
type TemplatePart interface {
	Node
	isTemplatePart()
}

// These are embedded to supply the marker methods for a whole category.

type expr struct{}

func (expr) isExpr()              {}
func (expr) isExprOrSpread()      {}
func (expr) isExprOrSuper()       {}
func (expr) isArrowBody()         {}
func (expr) isForInit()           {}
func (expr) isExportDefaultBody() {}
func (expr) isTemplatePart()      {}

type stmt struct{}

func (stmt) isStmt()       {}
func (stmt) isModuleItem() {}

type binding struct{}

func (binding) isBinding()   {}
func (binding) isParameter() {}

type target struct{}

func (target) isAssignmentTarget()        {}
func (target) isAssignmentTargetElement() {}
func (target) isForInOfLeft()             {}

type simpleTarget struct{ target }

func (simpleTarget) isSimpleAssignmentTarget() {}

type method struct{}

func (method) isObjectProperty()   {}
func (method) isMethodDefinition() {}

type VariableDeclarationKind string

const (
	VarKind   VariableDeclarationKind = "var"
	LetKind   VariableDeclarationKind = "let"
	ConstKind VariableDeclarationKind = "const"
)

type BinaryOperator string

const (
	BinOpComma      BinaryOperator = ","
	BinOpLogicalOr  BinaryOperator = "||"
	BinOpLogicalAnd BinaryOperator = "&&"
	BinOpBitwiseOr  BinaryOperator = "|"
	BinOpBitwiseXor BinaryOperator = "^"
	BinOpBitwiseAnd BinaryOperator = "&"
	BinOpLooseEq    BinaryOperator = "=="
	BinOpLooseNe    BinaryOperator = "!="
	BinOpStrictEq   BinaryOperator = "==="
	BinOpStrictNe   BinaryOperator = "!=="
	BinOpLt         BinaryOperator = "<"
	BinOpGt         BinaryOperator = ">"
	BinOpLe         BinaryOperator = "<="
	BinOpGe         BinaryOperator = ">="
	BinOpIn         BinaryOperator = "in"
	BinOpInstanceof BinaryOperator = "instanceof"
	BinOpShl        BinaryOperator = "<<"
	BinOpShr        BinaryOperator = ">>"
	BinOpUShr       BinaryOperator = ">>>"
	BinOpAdd        BinaryOperator = "+"
	BinOpSub        BinaryOperator = "-"
	BinOpMul        BinaryOperator = "*"
	BinOpDiv        BinaryOperator = "/"
	BinOpRem        BinaryOperator = "%"
)

type CompoundAssignmentOperator string

const (
	AssignOpAdd        CompoundAssignmentOperator = "+="
	AssignOpSub        CompoundAssignmentOperator = "-="
	AssignOpMul        CompoundAssignmentOperator = "*="
	AssignOpDiv        CompoundAssignmentOperator = "/="
	AssignOpRem        CompoundAssignmentOperator = "%="
	AssignOpShl        CompoundAssignmentOperator = "<<="
	AssignOpShr        CompoundAssignmentOperator = ">>="
	AssignOpUShr       CompoundAssignmentOperator = ">>>="
	AssignOpBitwiseOr  CompoundAssignmentOperator = "|="
	AssignOpBitwiseXor CompoundAssignmentOperator = "^="
	AssignOpBitwiseAnd CompoundAssignmentOperator = "&="
)

type UnaryOperator string

const (
	UnOpPos    UnaryOperator = "+"
	UnOpNeg    UnaryOperator = "-"
	UnOpNot    UnaryOperator = "!"
	UnOpCpl    UnaryOperator = "~"
	UnOpTypeof UnaryOperator = "typeof"
	UnOpVoid   UnaryOperator = "void"
	UnOpDelete UnaryOperator = "delete"
)

type UpdateOperator string

const (
	UpdateOpInc UpdateOperator = "++"
	UpdateOpDec UpdateOperator = "--"
)

////////////////////////////////////////////////////////////////////////////////
// Program roots and bodies

type Script struct {
	Directives []*Directive
	Statements []Stmt
}

type Module struct {
	Directives []*Directive
	Items      []ModuleItem
}

// The raw value is the text between the quotes, escapes included
type Directive struct {
	RawValue string
}

type Block struct {
	Statements []Stmt
}

type FunctionBody struct {
	Directives []*Directive
	Statements []Stmt
}

type FormalParameters struct {
	Items []Parameter
	Rest  Binding
}

////////////////////////////////////////////////////////////////////////////////
// Bindings

type BindingIdentifier struct {
	binding
	Name string
}

type ArrayBinding struct {
	binding
	Elements []Parameter
	Rest     Binding
}

type ObjectBinding struct {
	binding
	Properties []BindingProperty
}

type BindingPropertyIdentifier struct {
	Binding *BindingIdentifier
	Init    Expr
}

type BindingPropertyProperty struct {
	Name    PropertyName
	Binding Parameter
}

type BindingWithDefault struct {
	Binding Binding
	Init    Expr
}

////////////////////////////////////////////////////////////////////////////////
// Assignment targets

type AssignmentTargetIdentifier struct {
	simpleTarget
	Name string
}

type StaticMemberAssignmentTarget struct {
	simpleTarget
	Object   ExprOrSuper
	Property string
}

type ComputedMemberAssignmentTarget struct {
	simpleTarget
	Object     ExprOrSuper
	Expression Expr
}

type ArrayAssignmentTarget struct {
	target
	Elements []AssignmentTargetElement
	Rest     AssignmentTarget
}

type ObjectAssignmentTarget struct {
	target
	Properties []AssignmentTargetProperty
}

type AssignmentTargetPropertyIdentifier struct {
	Binding *AssignmentTargetIdentifier
	Init    Expr
}

type AssignmentTargetPropertyProperty struct {
	Name    PropertyName
	Binding AssignmentTargetElement
}

type AssignmentTargetWithDefault struct {
	Binding AssignmentTarget
	Init    Expr
}

////////////////////////////////////////////////////////////////////////////////
// Classes and object members

type ClassDeclaration struct {
	stmt
	Name     *BindingIdentifier
	Super    Expr
	Elements []*ClassElement
}

type ClassExpression struct {
	expr
	Name     *BindingIdentifier
	Super    Expr
	Elements []*ClassElement
}

type ClassElement struct {
	IsStatic bool
	Method   MethodDefinition
}

type Method struct {
	method
	IsAsync     bool
	IsGenerator bool
	Name        PropertyName
	Params      *FormalParameters
	Body        *FunctionBody
}

type Getter struct {
	method
	Name PropertyName
	Body *FunctionBody
}

type Setter struct {
	method
	Name  PropertyName
	Param Parameter
	Body  *FunctionBody
}

type DataProperty struct {
	Name       PropertyName
	Expression Expr
}

type ShorthandProperty struct {
	Name *IdentifierExpression
}

type ComputedPropertyName struct {
	Expression Expr
}

type StaticPropertyName struct {
	Value string
}

////////////////////////////////////////////////////////////////////////////////
// Modules

type Import struct {
	DefaultBinding  *BindingIdentifier
	NamedImports    []*ImportSpecifier
	ModuleSpecifier string
}

type ImportNamespace struct {
	DefaultBinding   *BindingIdentifier
	NamespaceBinding *BindingIdentifier
	ModuleSpecifier  string
}

// An empty name means the imported name is the binding's name
type ImportSpecifier struct {
	Name    string
	Binding *BindingIdentifier
}

type ExportAllFrom struct {
	ModuleSpecifier string
}

type ExportFrom struct {
	NamedExports    []*ExportFromSpecifier
	ModuleSpecifier string
}

type ExportLocals struct {
	NamedExports []*ExportLocalSpecifier
}

type Export struct {
	Declaration ExportableDeclaration
}

type ExportDefault struct {
	Body ExportDefaultBody
}

// An empty exported name means the exported name is the local name
type ExportFromSpecifier struct {
	Name         string
	ExportedName string
}

type ExportLocalSpecifier struct {
	Name         *IdentifierExpression
	ExportedName string
}

////////////////////////////////////////////////////////////////////////////////
// Expressions

type LiteralBooleanExpression struct {
	expr
	Value bool
}

type LiteralInfinityExpression struct{ expr }

type LiteralNullExpression struct{ expr }

// The value must be finite and non-negative
type LiteralNumericExpression struct {
	expr
	Value float64
}

type LiteralRegExpExpression struct {
	expr
	Pattern    string
	Global     bool
	IgnoreCase bool
	Multiline  bool
	DotAll     bool
	Unicode    bool
	Sticky     bool
}

// The value is WTF-8 so that lone surrogates survive
type LiteralStringExpression struct {
	expr
	Value string
}

type ArrayExpression struct {
	expr
	Elements []ExprOrSpread
}

type ArrowExpression struct {
	expr
	IsAsync bool
	Params  *FormalParameters
	Body    ArrowBody
}

type AssignmentExpression struct {
	expr
	Binding    AssignmentTarget
	Expression Expr
}

type AwaitExpression struct {
	expr
	Expression Expr
}

type BinaryExpression struct {
	expr
	Left     Expr
	Operator BinaryOperator
	Right    Expr
}

type CallExpression struct {
	expr
	Callee    ExprOrSuper
	Arguments []ExprOrSpread
}

type CompoundAssignmentExpression struct {
	expr
	Binding    SimpleAssignmentTarget
	Operator   CompoundAssignmentOperator
	Expression Expr
}

type ComputedMemberExpression struct {
	expr
	Object     ExprOrSuper
	Expression Expr
}

type ConditionalExpression struct {
	expr
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

type FunctionExpression struct {
	expr
	IsAsync     bool
	IsGenerator bool
	Name        *BindingIdentifier
	Params      *FormalParameters
	Body        *FunctionBody
}

type IdentifierExpression struct {
	expr
	Name string
}

type NewExpression struct {
	expr
	Callee    Expr
	Arguments []ExprOrSpread
}

type NewTargetExpression struct{ expr }

type ObjectExpression struct {
	expr
	Properties []ObjectProperty
}

type StaticMemberExpression struct {
	expr
	Object   ExprOrSuper
	Property string
}

type TemplateExpression struct {
	expr
	Tag      Expr
	Elements []TemplatePart
}

type ThisExpression struct{ expr }

type UnaryExpression struct {
	expr
	Operator UnaryOperator
	Operand  Expr
}

type UpdateExpression struct {
	expr
	IsPrefix bool
	Operator UpdateOperator
	Operand  SimpleAssignmentTarget
}

type YieldExpression struct {
	expr
	Expression Expr
}

type YieldGeneratorExpression struct {
	expr
	Expression Expr
}

type SpreadElement struct {
	Expression Expr
}

type Super struct{}

// The raw value is emitted verbatim between the template delimiters
type TemplateElement struct {
	RawValue string
}

////////////////////////////////////////////////////////////////////////////////
// Statements

type BlockStatement struct {
	stmt
	Block *Block
}

type BreakStatement struct {
	stmt
	Label string
}

type ContinueStatement struct {
	stmt
	Label string
}

type DebuggerStatement struct{ stmt }

type DoWhileStatement struct {
	stmt
	Body Stmt
	Test Expr
}

type EmptyStatement struct{ stmt }

type ExpressionStatement struct {
	stmt
	Expression Expr
}

type ForInStatement struct {
	stmt
	Left  ForInOfLeft
	Right Expr
	Body  Stmt
}

type ForOfStatement struct {
	stmt
	Left  ForInOfLeft
	Right Expr
	Body  Stmt
}

type ForStatement struct {
	stmt
	Init   ForInit
	Test   Expr
	Update Expr
	Body   Stmt
}

type FunctionDeclaration struct {
	stmt
	IsAsync     bool
	IsGenerator bool
	Name        *BindingIdentifier
	Params      *FormalParameters
	Body        *FunctionBody
}

type IfStatement struct {
	stmt
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
}

type LabeledStatement struct {
	stmt
	Label string
	Body  Stmt
}

type ReturnStatement struct {
	stmt
	Expression Expr
}

type SwitchStatement struct {
	stmt
	Discriminant Expr
	Cases        []*SwitchCase
}

type SwitchStatementWithDefault struct {
	stmt
	Discriminant     Expr
	PreDefaultCases  []*SwitchCase
	DefaultCase      *SwitchDefault
	PostDefaultCases []*SwitchCase
}

type SwitchCase struct {
	Test       Expr
	Consequent []Stmt
}

type SwitchDefault struct {
	Consequent []Stmt
}

type ThrowStatement struct {
	stmt
	Expression Expr
}

type TryCatchStatement struct {
	stmt
	Body        *Block
	CatchClause *CatchClause
}

type TryFinallyStatement struct {
	stmt
	Body        *Block
	CatchClause *CatchClause
	Finalizer   *Block
}

type CatchClause struct {
	Binding Binding
	Body    *Block
}

type VariableDeclarationStatement struct {
	stmt
	Declaration *VariableDeclaration
}

type VariableDeclaration struct {
	DeclKind    VariableDeclarationKind
	Declarators []*VariableDeclarator
}

type VariableDeclarator struct {
	Binding Binding
	Init    Expr
}

type WhileStatement struct {
	stmt
	Test Expr
	Body Stmt
}

type WithStatement struct {
	stmt
	Object Expr
	Body   Stmt
}

////////////////////////////////////////////////////////////////////////////////
// Category markers that don't follow from the embedded structs

func (*ImportNamespace) isModuleItem() {}
func (*Import) isModuleItem()          {}
func (*ExportAllFrom) isModuleItem()   {}
func (*ExportFrom) isModuleItem()      {}
func (*ExportLocals) isModuleItem()    {}
func (*Export) isModuleItem()          {}
func (*ExportDefault) isModuleItem()   {}

func (*SpreadElement) isExprOrSpread() {}
func (*Super) isExprOrSuper()          {}

func (*BindingWithDefault) isParameter() {}

func (*AssignmentTargetWithDefault) isAssignmentTargetElement() {}

func (*StaticPropertyName) isPropertyName()   {}
func (*ComputedPropertyName) isPropertyName() {}

func (*DataProperty) isObjectProperty()      {}
func (*ShorthandProperty) isObjectProperty() {}

func (*BindingPropertyIdentifier) isBindingProperty() {}
func (*BindingPropertyProperty) isBindingProperty()   {}

func (*AssignmentTargetPropertyIdentifier) isAssignmentTargetProperty() {}
func (*AssignmentTargetPropertyProperty) isAssignmentTargetProperty()   {}

func (*FunctionBody) isArrowBody() {}

func (*VariableDeclaration) isForInit()               {}
func (*VariableDeclaration) isForInOfLeft()           {}
func (*VariableDeclaration) isExportableDeclaration() {}

func (*FunctionDeclaration) isExportableDeclaration() {}
func (*FunctionDeclaration) isExportDefaultBody()     {}
func (*ClassDeclaration) isExportableDeclaration()    {}
func (*ClassDeclaration) isExportDefaultBody()        {}

func (*TemplateElement) isTemplatePart() {}
