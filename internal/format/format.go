// Package format holds the display helpers shared by the API responses:
// currency and percentage strings and conditional class list merging.
package format

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats v as US dollars with digit grouping, e.g. $1,245.50
func Currency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	v = math.Round(v*100) / 100
	if v == 0 {
		sign = ""
	}
	return sign + "$" + printer.Sprintf("%.2f", v)
}

// Percent formats v with one decimal, the way the dashboard shows margins
func Percent(v float64) string {
	return printer.Sprintf("%.1f", v) + "%"
}

// ClassNames merges conditional class lists into a single space separated
// string. Strings are split on whitespace, maps contribute the keys whose
// value is true. Duplicates keep their first position.
func ClassNames(parts ...any) string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		for _, c := range strings.Fields(s) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}

	for _, p := range parts {
		switch v := p.(type) {
		case string:
			add(v)
		case []string:
			for _, s := range v {
				add(s)
			}
		case map[string]bool:
			// map order is random; sort for a stable result
			keys := make([]string, 0, len(v))
			for k, ok := range v {
				if ok {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			for _, k := range keys {
				add(k)
			}
		}
	}
	return strings.Join(out, " ")
}
