package repository

import "fmt"

// CompareOp is a comparison operator usable in a status filter. The set is
// closed: adding an operator is a reviewed code change, not configuration.
type CompareOp string

const (
	OpEqual        CompareOp = "="
	OpNotEqual     CompareOp = "!="
	OpLess         CompareOp = "<"
	OpLessEqual    CompareOp = "<="
	OpGreater      CompareOp = ">"
	OpGreaterEqual CompareOp = ">="
)

// ParseCompareOp maps caller input onto the closed operator set. Empty input
// defaults to equality.
func ParseCompareOp(s string) (CompareOp, bool) {
	if s == "" {
		return OpEqual, true
	}
	switch op := CompareOp(s); op {
	case OpEqual, OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual:
		return op, true
	}
	return "", false
}

// sql returns the comparison fragment for the operator. Only enumeration
// members ever reach query text; the compared value is always bound via the
// placeholder, never concatenated.
func (op CompareOp) sql() string {
	switch op {
	case OpEqual:
		return "status = ?"
	case OpNotEqual:
		return "status <> ?"
	case OpLess:
		return "status < ?"
	case OpLessEqual:
		return "status <= ?"
	case OpGreater:
		return "status > ?"
	case OpGreaterEqual:
		return "status >= ?"
	}
	panic(fmt.Sprintf("repository: comparison operator %q outside closed set", string(op)))
}

// StatusFilter is the optional secondary predicate for invoice listing. A nil
// filter means no status predicate at all; a non-nil filter is always fully
// valid, there is no partially-applied state.
type StatusFilter struct {
	Operator CompareOp
	Value    string
}
