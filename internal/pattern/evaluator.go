package pattern

import "fmt"

// Subject is the node view an expression is evaluated against.
type Subject struct {
	ID    string
	Type  string
	Level string
	Name  string
}

func (s Subject) field(name string) (string, bool) {
	switch name {
	case "id":
		return s.ID, true
	case "type":
		return s.Type, true
	case "level":
		return s.Level, true
	case "name":
		return s.Name, true
	}
	return "", false
}

// Evaluate walks the AST and returns true/false or an error.
func Evaluate(expr Expr, s Subject) (bool, error) {
	switch e := expr.(type) {
	case *BinaryExpr:
		left, err := Evaluate(e.Left, s)
		if err != nil {
			return false, err
		}
		switch e.Op {
		case "AND":
			if !left {
				return false, nil
			}
			return Evaluate(e.Right, s)
		case "OR":
			if left {
				return true, nil
			}
			return Evaluate(e.Right, s)
		default:
			return false, fmt.Errorf("unknown binary op %q", e.Op)
		}
	case *NotExpr:
		v, err := Evaluate(e.Expr, s)
		if err != nil {
			return false, err
		}
		return !v, nil
	case *ComparisonExpr:
		left, err := resolveOperand(e.Left, s)
		if err != nil {
			return false, err
		}
		right, err := resolveOperand(e.Right, s)
		if err != nil {
			return false, err
		}
		return compare(e.Op, left, right)
	default:
		return false, fmt.Errorf("unknown expr type %T", expr)
	}
}

func resolveOperand(op Operand, s Subject) (string, error) {
	switch o := op.(type) {
	case *LiteralOperand:
		return o.Value, nil
	case *FieldOperand:
		v, ok := s.field(o.Field)
		if !ok {
			return "", fmt.Errorf("field %q not found", o.Field)
		}
		return v, nil
	default:
		return "", fmt.Errorf("unknown operand type %T", op)
	}
}
