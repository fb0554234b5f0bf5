package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "zero", value: 0, expected: "$0.00"},
		{name: "cents", value: 3.5, expected: "$3.50"},
		{name: "grouping", value: 1245.5, expected: "$1,245.50"},
		{name: "millions", value: 1234567.891, expected: "$1,234,567.89"},
		{name: "negative", value: -3, expected: "-$3.00"},
		{name: "negative rounds to zero", value: -0.001, expected: "$0.00"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.value))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "71.4%", Percent(71.42857))
	assert.Equal(t, "0.0%", Percent(0))
}

func TestClassNames(t *testing.T) {
	t.Run("drops empty and false entries", func(t *testing.T) {
		got := ClassNames("px-4 py-2", "", map[string]bool{"border-red-500": false, "border-white": true})
		assert.Equal(t, "px-4 py-2 border-white", got)
	})

	t.Run("collapses duplicates keeping first position", func(t *testing.T) {
		got := ClassNames("rounded card", []string{"card", "shadow"}, "rounded")
		assert.Equal(t, "rounded card shadow", got)
	})

	t.Run("ignores unsupported values", func(t *testing.T) {
		assert.Equal(t, "a", ClassNames(nil, 42, "a"))
	})
}
