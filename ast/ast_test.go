package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/skyfront/token"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Struct", KindStruct.String())
	assert.Equal(t, "Unknown", Kind(999).String())
}

func TestSetParentOf(t *testing.T) {
	left := &IntLit{ExprBase: NewExprBase(KindIntLit, token.Token{})}
	right := &IntLit{ExprBase: NewExprBase(KindIntLit, token.Token{})}
	bin := &BinaryOp{ExprBase: NewExprBase(KindBinaryOp, token.Token{}), Op: token.PLUS, Left: left, Right: right}

	SetParentOf(bin, left, right)

	assert.Equal(t, Node(bin), left.Parent())
	assert.Equal(t, Node(bin), right.Parent())
}

func TestExprBaseComputedTypeSlot(t *testing.T) {
	lit := &IntLit{ExprBase: NewExprBase(KindIntLit, token.Token{})}

	bt := &BaseType{Base: NewBase(KindBaseType, token.Token{}), Name: "int64"}
	lit.SetComputedType(bt)
	require.NotNil(t, lit.ComputedType())
	assert.Equal(t, Type(bt), lit.ComputedType())
}
