package numword

import "strings"

// romanPairs is ordered largest to smallest so the greedy scan below emits
// the canonical subtractive form.
var romanPairs = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman encodes a positive integer as a Roman numeral. Zero and negative
// values encode to the empty string. Values above 3999 keep accumulating "M";
// section positions never get anywhere near that.
func ToRoman(n int) string {
	var b strings.Builder
	for _, p := range romanPairs {
		for n >= p.value {
			b.WriteString(p.symbol)
			n -= p.value
		}
	}
	return b.String()
}
