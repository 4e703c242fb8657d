package js_ast

import "fmt"

type L int

const (
	LSequence L = iota
	LAssignment
	LConditional
	LLogicalOr
	LLogicalAnd
	LBitwiseOr
	LBitwiseXor
	LBitwiseAnd
	LEquality
	LRelational
	LShift
	LAdditive
	LMultiplicative
	LPrefix
	LPostfix
	LNew
	LCall
	LTaggedTemplate
	LMember
	LPrimary
)

// Yield expressions share the assignment level and arrow functions share the
// conditional level.
const (
	LYield = LAssignment
	LArrow = LConditional
)

var levelNames = [...]string{
	LSequence:       "Sequence",
	LAssignment:     "Assignment",
	LConditional:    "Conditional",
	LLogicalOr:      "LogicalOR",
	LLogicalAnd:     "LogicalAND",
	LBitwiseOr:      "BitwiseOR",
	LBitwiseXor:     "BitwiseXOR",
	LBitwiseAnd:     "BitwiseAND",
	LEquality:       "Equality",
	LRelational:     "Relational",
	LShift:          "Shift",
	LAdditive:       "Additive",
	LMultiplicative: "Multiplicative",
	LPrefix:         "Prefix",
	LPostfix:        "Postfix",
	LNew:            "New",
	LCall:           "Call",
	LTaggedTemplate: "TaggedTemplate",
	LMember:         "Member",
	LPrimary:        "Primary",
}

func (l L) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("L(%d)", int(l))
}

var BinaryPrecedence = map[BinaryOperator]L{
	BinOpComma:      LSequence,
	BinOpLogicalOr:  LLogicalOr,
	BinOpLogicalAnd: LLogicalAnd,
	BinOpBitwiseOr:  LBitwiseOr,
	BinOpBitwiseXor: LBitwiseXor,
	BinOpBitwiseAnd: LBitwiseAnd,
	BinOpLooseEq:    LEquality,
	BinOpLooseNe:    LEquality,
	BinOpStrictEq:   LEquality,
	BinOpStrictNe:   LEquality,
	BinOpLt:         LRelational,
	BinOpGt:         LRelational,
	BinOpLe:         LRelational,
	BinOpGe:         LRelational,
	BinOpIn:         LRelational,
	BinOpInstanceof: LRelational,
	BinOpShl:        LShift,
	BinOpShr:        LShift,
	BinOpUShr:       LShift,
	BinOpAdd:        LAdditive,
	BinOpSub:        LAdditive,
	BinOpMul:        LMultiplicative,
	BinOpDiv:        LMultiplicative,
	BinOpRem:        LMultiplicative,
}

var compoundAssignmentOperators = map[CompoundAssignmentOperator]bool{
	AssignOpAdd: true, AssignOpSub: true, AssignOpMul: true, AssignOpDiv: true,
	AssignOpRem: true, AssignOpShl: true, AssignOpShr: true, AssignOpUShr: true,
	AssignOpBitwiseOr: true, AssignOpBitwiseXor: true, AssignOpBitwiseAnd: true,
}

var unaryOperators = map[UnaryOperator]bool{
	UnOpPos: true, UnOpNeg: true, UnOpNot: true, UnOpCpl: true,
	UnOpTypeof: true, UnOpVoid: true, UnOpDelete: true,
}

func (op CompoundAssignmentOperator) IsValid() bool { return compoundAssignmentOperators[op] }
func (op UnaryOperator) IsValid() bool              { return unaryOperators[op] }
func (op UpdateOperator) IsValid() bool             { return op == UpdateOpInc || op == UpdateOpDec }

func (k VariableDeclarationKind) IsValid() bool {
	return k == VarKind || k == LetKind || k == ConstKind
}

// MalformedError is the panic value used when a tree can't be generated
// because it doesn't conform to the node definitions. The entry points of the
// code generator recover it and turn it into an ordinary error.
type MalformedError struct {
	Kind Kind
	Text string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Text)
}

func Malformed(kind Kind, format string, args ...interface{}) {
	panic(&MalformedError{Kind: kind, Text: fmt.Sprintf(format, args...)})
}

func PrecedenceOf(node Node) L {
	switch n := node.(type) {
	case *ArrayExpression, *ClassExpression, *FunctionExpression, *IdentifierExpression,
		*LiteralBooleanExpression, *LiteralInfinityExpression, *LiteralNullExpression,
		*LiteralNumericExpression, *LiteralRegExpExpression, *LiteralStringExpression,
		*NewTargetExpression, *ObjectExpression, *ThisExpression, *Super,
		*AssignmentTargetIdentifier, *ArrayAssignmentTarget, *ObjectAssignmentTarget:
		return LPrimary

	case *AssignmentExpression, *CompoundAssignmentExpression, *YieldExpression, *YieldGeneratorExpression:
		return LAssignment

	case *ArrowExpression:
		return LArrow

	case *ConditionalExpression:
		return LConditional

	case *BinaryExpression:
		if level, ok := BinaryPrecedence[n.Operator]; ok {
			return level
		}
		Malformed(KindBinaryExpression, "unknown binary operator %q", n.Operator)

	case *CallExpression:
		return LCall

	case *StaticMemberExpression:
		return objectPrecedence(n.Object)

	case *ComputedMemberExpression:
		return objectPrecedence(n.Object)

	case *StaticMemberAssignmentTarget:
		return objectPrecedence(n.Object)

	case *ComputedMemberAssignmentTarget:
		return objectPrecedence(n.Object)

	case *NewExpression:
		if len(n.Arguments) == 0 {
			return LNew
		}
		return LMember

	case *TemplateExpression:
		if n.Tag == nil {
			return LMember
		}
		return objectPrecedence(n.Tag)

	case *UnaryExpression, *AwaitExpression:
		return LPrefix

	case *UpdateExpression:
		if n.IsPrefix {
			return LPrefix
		}
		return LPostfix
	}

	if node == nil {
		panic("Internal error: precedence of a missing node")
	}
	Malformed(node.Kind(), "node has no expression precedence")
	return LPrimary
}

// Member accesses and tagged templates take on the precedence of a call,
// member, or template object so that "new a().b" stays unparenthesized while
// "(new a).b" keeps its parentheses.
func objectPrecedence(object Node) L {
	switch object.(type) {
	case *CallExpression, *StaticMemberExpression, *ComputedMemberExpression, *TemplateExpression:
		return PrecedenceOf(object)
	}
	return LMember
}
