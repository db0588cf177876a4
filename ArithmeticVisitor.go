package main

import (
	"fmt"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/expr-lang/expr/ast"
)

var arithmeticOperators = map[string]bool{
	"+":  true,
	"-":  true,
	"*":  true,
	"/":  true,
	"**": true,
}

// ArithmeticOnlyVisitor rejects every node except number literals and arithmetic operators.
// Integer literals are patched into floats so expr never does wrapping int64 math.
type ArithmeticOnlyVisitor struct {
	err error
}

func (v *ArithmeticOnlyVisitor) Visit(node *ast.Node) {
	if v.err != nil {
		return
	}

	switch typedNode := (*node).(type) {
	case *ast.IntegerNode:
		ast.Patch(node, &ast.FloatNode{Value: float64(typedNode.Value)})
	case *ast.FloatNode:
	case *ast.UnaryNode:
		if typedNode.Operator != "-" && typedNode.Operator != "+" {
			v.err = fmt.Errorf("unary operator `%s`: %w", typedNode.Operator, contracts.InvalidExpressionError)
		}
	case *ast.BinaryNode:
		if !arithmeticOperators[typedNode.Operator] {
			v.err = fmt.Errorf("operator `%s`: %w", typedNode.Operator, contracts.InvalidExpressionError)
		}
	default:
		v.err = fmt.Errorf("%T is not allowed in arithmetic: %w", typedNode, contracts.InvalidExpressionError)
	}
}
