package generator

import (
	"fmt"
	"strings"

	"github.com/plclang/plc/ast"
)

// renderExpression renders n to its target-language text. Every case here
// mirrors the value-shape half of spec §4.6's formatting rules: literal
// rendering, a single space on each side of a binary operator, and
// resolved-binding jvm_names for Access/Function targets.
func renderExpression(n ast.Expression) (string, error) {
	switch n := n.(type) {
	case *ast.Literal:
		return renderLiteral(n)
	case *ast.Group:
		inner, err := renderExpression(n.Inner)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil
	case *ast.Binary:
		left, err := renderExpression(n.Left)
		if err != nil {
			return "", err
		}
		right, err := renderExpression(n.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", left, n.Op, right), nil
	case *ast.Access:
		return renderAccess(n)
	case *ast.Function:
		return renderCall(n)
	default:
		return "", fmt.Errorf("generator: unreachable expression case %T", n)
	}
}

func renderLiteral(n *ast.Literal) (string, error) {
	switch n.Kind {
	case ast.LiteralNil:
		return "null", nil
	case ast.LiteralBool:
		if n.Bool {
			return "true", nil
		}
		return "false", nil
	case ast.LiteralChar:
		return "'" + string(n.Char) + "'", nil
	case ast.LiteralString:
		return "\"" + n.Str + "\"", nil
	case ast.LiteralInt:
		return n.Int.String(), nil
	case ast.LiteralDecimal:
		return n.Dec.String(), nil
	default:
		return "", fmt.Errorf("generator: unreachable literal case %v", n.Kind)
	}
}

func renderAccess(n *ast.Access) (string, error) {
	if n.HasReceiver {
		receiverText, err := renderExpression(n.Receiver)
		if err != nil {
			return "", err
		}
		return receiverText + "." + n.Resolved.JVMName, nil
	}
	return n.Resolved.JVMName, nil
}

func renderArgs(args []ast.Expression) (string, error) {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		text, err := renderExpression(arg)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func renderCall(n *ast.Function) (string, error) {
	argsText, err := renderArgs(n.Args)
	if err != nil {
		return "", err
	}
	if n.HasReceiver {
		receiverText, err := renderExpression(n.Receiver)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s.%s(%s)", receiverText, n.Resolved.JVMName, argsText), nil
	}
	return fmt.Sprintf("%s(%s)", n.Resolved.JVMName, argsText), nil
}
