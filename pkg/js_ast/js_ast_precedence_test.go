package js_ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecedenceOf(t *testing.T) {
	id := &IdentifierExpression{Name: "a"}
	call := &CallExpression{Callee: id}
	newNoArgs := &NewExpression{Callee: id}
	newArgs := &NewExpression{Callee: id, Arguments: []ExprOrSpread{id}}

	tests := []struct {
		node     Node
		expected L
	}{
		{id, LPrimary},
		{&ThisExpression{}, LPrimary},
		{&ObjectExpression{}, LPrimary},
		{&FunctionExpression{}, LPrimary},
		{&AssignmentExpression{}, LAssignment},
		{&YieldExpression{}, LYield},
		{&ArrowExpression{}, LArrow},
		{&ConditionalExpression{}, LConditional},
		{&BinaryExpression{Operator: BinOpComma}, LSequence},
		{&BinaryExpression{Operator: BinOpLogicalOr}, LLogicalOr},
		{&BinaryExpression{Operator: BinOpIn}, LRelational},
		{&BinaryExpression{Operator: BinOpUShr}, LShift},
		{&BinaryExpression{Operator: BinOpRem}, LMultiplicative},
		{&UnaryExpression{Operator: UnOpVoid}, LPrefix},
		{&AwaitExpression{}, LPrefix},
		{&UpdateExpression{IsPrefix: true}, LPrefix},
		{&UpdateExpression{}, LPostfix},
		{newNoArgs, LNew},
		{newArgs, LMember},
		{call, LCall},
		{&StaticMemberExpression{Object: id}, LMember},
		{&StaticMemberExpression{Object: call}, LCall},
		{&StaticMemberExpression{Object: &StaticMemberExpression{Object: call}}, LCall},
		{&ComputedMemberExpression{Object: newNoArgs}, LMember},
		{&StaticMemberAssignmentTarget{Object: call}, LCall},
		{&TemplateExpression{}, LMember},
		{&TemplateExpression{Tag: id}, LMember},
		{&TemplateExpression{Tag: call}, LCall},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PrecedenceOf(tt.node), "%s", tt.node.Kind())
	}
}

func TestPrecedenceOrder(t *testing.T) {
	assert.Less(t, LSequence, LAssignment)
	assert.Less(t, LConditional, LLogicalOr)
	assert.Less(t, LPostfix, LNew)
	assert.Less(t, LNew, LCall)
	assert.Less(t, LCall, LMember)
	assert.Equal(t, "TaggedTemplate", LTaggedTemplate.String())
	assert.Equal(t, "L(99)", L(99).String())
}

func TestPrecedenceOfMalformed(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(*MalformedError)
		if assert.True(t, ok, "unexpected panic: %v", r) {
			assert.Equal(t, KindSpreadElement, err.Kind)
			assert.Equal(t, "SpreadElement: node has no expression precedence", err.Error())
		}
	}()
	PrecedenceOf(&SpreadElement{})
}

func TestPrecedenceOfUnknownOperator(t *testing.T) {
	assert.PanicsWithError(t, "BinaryExpression: unknown binary operator \"**\"", func() {
		PrecedenceOf(&BinaryExpression{Operator: "**"})
	})
}

func TestOperatorValidity(t *testing.T) {
	assert.True(t, AssignOpUShr.IsValid())
	assert.False(t, CompoundAssignmentOperator("**=").IsValid())
	assert.True(t, UnOpDelete.IsValid())
	assert.False(t, UnaryOperator("await").IsValid())
	assert.True(t, UpdateOpDec.IsValid())
	assert.False(t, UpdateOperator("+").IsValid())
	assert.True(t, ConstKind.IsValid())
	assert.False(t, VariableDeclarationKind("using").IsValid())
}
