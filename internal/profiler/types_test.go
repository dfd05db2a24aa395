package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferPrecedence(t *testing.T) {
	cases := []struct {
		value string
		want  DataType
	}{
		{"", TypeEmpty},
		{"   ", TypeEmpty},
		{"\t\n", TypeEmpty},
		{"42", TypeInteger},
		{"+42", TypeInteger},
		{"-7", TypeInteger},
		{"007", TypeInteger},
		{"-0", TypeInteger},
		{"99999999999999999999", TypeInteger}, // beyond int64, still digits
		{"42.0", TypeFloat},
		{"-3.14", TypeFloat},
		{".5", TypeFloat},
		{"5.", TypeFloat},
		{"1e10", TypeFloat},
		{"1E10", TypeFloat},
		{"1e-5", TypeFloat},
		{"2.5e+3", TypeFloat},
		{"42abc", TypeText},
		{"abc", TypeText},
		{"1.2.3", TypeText},
		{"1e", TypeText},
		{"e10", TypeText},
		{".", TypeText},
		{"+", TypeText},
		{"-", TypeText},
		{"--1", TypeText},
		{"1 2", TypeText},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Infer(tc.value), "Infer(%q)", tc.value)
	}
}

func TestInferNonFiniteLiteralsAreText(t *testing.T) {
	// strconv.ParseFloat would accept these, the byte scan must not:
	// a sentinel string should never make a column look numeric.
	for _, v := range []string{"NaN", "nan", "Inf", "-Inf", "Infinity", "+infinity"} {
		assert.Equal(t, TypeText, Infer(v), "Infer(%q)", v)
	}
}

func TestInferTrimsBeforeClassifying(t *testing.T) {
	assert.Equal(t, TypeInteger, Infer("  42  "))
	assert.Equal(t, TypeFloat, Infer("\t42.0"))
}

func TestInferIdempotent(t *testing.T) {
	for _, v := range []string{"", "42", "42.0", "42abc", "  "} {
		assert.Equal(t, Infer(v), Infer(v))
	}
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "empty", TypeEmpty.String())
	assert.Equal(t, "integer", TypeInteger.String())
	assert.Equal(t, "float", TypeFloat.String())
	assert.Equal(t, "text", TypeText.String())
}
