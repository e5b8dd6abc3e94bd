package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompareOpAcceptsClosedSet(t *testing.T) {
	for _, s := range []string{"=", "!=", "<", "<=", ">", ">="} {
		op, ok := ParseCompareOp(s)
		require.True(t, ok, "operator %q should parse", s)
		assert.Equal(t, CompareOp(s), op)
	}
}

func TestParseCompareOpDefaultsToEquality(t *testing.T) {
	op, ok := ParseCompareOp("")
	require.True(t, ok)
	assert.Equal(t, OpEqual, op)
}

func TestParseCompareOpRejectsEverythingElse(t *testing.T) {
	rejected := []string{
		"==",
		"<>",
		"LIKE",
		"IN",
		" =",
		"= ",
		"!==",
		"; DROP TABLE invoices; --",
		"=' OR '1'='1",
		"≥",
	}
	for _, s := range rejected {
		_, ok := ParseCompareOp(s)
		assert.False(t, ok, "operator %q should be rejected", s)
	}
}

func TestCompareOpSQLDispatch(t *testing.T) {
	fragments := map[CompareOp]string{
		OpEqual:        "status = ?",
		OpNotEqual:     "status <> ?",
		OpLess:         "status < ?",
		OpLessEqual:    "status <= ?",
		OpGreater:      "status > ?",
		OpGreaterEqual: "status >= ?",
	}
	for op, want := range fragments {
		got := op.sql()
		assert.Equal(t, want, got)
		// the compared value is always bound, never inlined
		assert.Contains(t, got, "?")
	}
}

func TestCompareOpSQLPanicsOutsideEnumeration(t *testing.T) {
	assert.Panics(t, func() {
		CompareOp("OR 1=1").sql()
	})
}
