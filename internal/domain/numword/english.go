package numword

import "strings"

// TooLargeEN is returned for magnitudes of one billion and above; the reader
// only supports up to 999,999,999 and a wrong phrase on a printed quote is
// worse than no phrase.
const TooLargeEN = "Amount is too large for auto-read"

var enOnes = [...]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var enTens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// ReadAmountEN reads an amount as English currency words with a " VND only"
// suffix, e.g. 1080000 -> "one million eighty thousand VND only". Negative
// amounts are prefixed with "Minus ".
func ReadAmountEN(amount int64) string {
	if amount <= -1_000_000_000 {
		return "Minus " + TooLargeEN
	}
	if amount < 0 {
		return "Minus " + ReadAmountEN(-amount)
	}
	if amount == 0 {
		return "Zero VND"
	}
	if amount >= 1_000_000_000 {
		return TooLargeEN
	}

	millions := int(amount / 1_000_000)
	thousands := int(amount % 1_000_000 / 1_000)
	units := int(amount % 1_000)

	parts := make([]string, 0, 3)
	if millions > 0 {
		parts = append(parts, enThreeDigits(millions)+" million")
	}
	if thousands > 0 {
		parts = append(parts, enThreeDigits(thousands)+" thousand")
	}
	if units > 0 {
		parts = append(parts, enThreeDigits(units))
	}
	return strings.Join(parts, " ") + " VND only"
}

func enThreeDigits(n int) string {
	switch {
	case n < 20:
		return enOnes[n]
	case n < 100:
		if n%10 == 0 {
			return enTens[n/10]
		}
		return enTens[n/10] + "-" + enOnes[n%10]
	default:
		s := enOnes[n/100] + " hundred"
		if n%100 != 0 {
			s += " and " + enThreeDigits(n%100)
		}
		return s
	}
}
