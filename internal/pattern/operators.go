package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Operator represents a string comparison operator.
type Operator string

const (
	OpEq       Operator = "=="
	OpNeq      Operator = "!="
	OpContains Operator = "contains"
	OpMatches  Operator = "matches"
)

// compare applies a binary operator to two strings.
// Matching is plain substring or exact equality; nothing is field-aware.
func compare(op Operator, left, right string) (bool, error) {
	switch op {
	case OpEq:
		return left == right, nil
	case OpNeq:
		return left != right, nil
	case OpContains:
		return strings.Contains(left, right), nil
	case OpMatches:
		re, err := regexp.Compile(right)
		if err != nil {
			return false, fmt.Errorf("matches: invalid regex %q: %w", right, err)
		}
		return re.MatchString(left), nil
	default:
		return false, fmt.Errorf("unknown operator: %s", op)
	}
}
