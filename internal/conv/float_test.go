package conv

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsFloat(t *testing.T) {
	var testCases = []struct {
		description string
		input       interface{}
		expect      float64
	}{
		{description: "nil", input: nil, expect: 0},
		{description: "float", input: 2.5, expect: 2.5},
		{description: "int", input: 3, expect: 3},
		{description: "json number", input: json.Number("4.25"), expect: 4.25},
		{description: "decimal string", input: "1500.00", expect: 1500},
		{description: "padded string", input: " 12 ", expect: 12},
		{description: "numeric prefix", input: "12.5abc", expect: 12.5},
		{description: "negative", input: "-3.5", expect: -3.5},
		{description: "garbage", input: "abc", expect: 0},
		{description: "empty", input: "", expect: 0},
		{description: "bool", input: true, expect: 0},
		{description: "nan", input: "NaN", expect: 0},
		{description: "infinity", input: "Infinity", expect: 0},
		{description: "negative inf", input: "-Inf", expect: 0},
		{description: "exponent", input: "1e3", expect: 1000},
		{description: "nan number", input: math.NaN(), expect: 0},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, AsFloat(testCase.input), testCase.description)
	}
}
