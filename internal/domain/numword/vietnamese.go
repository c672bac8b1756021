package numword

import (
	"strconv"
	"strings"
	"unicode"
)

var viDigits = [...]string{"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}

// viScales is indexed by group position counted from the least significant
// group of three digits. Amounts needing more than six groups (10^18 and up)
// are outside the supported range; an int64 total in whole đồng never gets
// there.
var viScales = [...]string{"", "nghìn", "triệu", "tỷ", "nghìn tỷ", "triệu tỷ"}

// ReadAmountVN reads a non-negative amount in whole đồng as Vietnamese words,
// e.g. 1080000 -> "Một triệu không trăm tám mươi nghìn đồng chẵn".
func ReadAmountVN(amount int64) string {
	if amount == 0 {
		return "Không đồng"
	}

	s := strconv.FormatInt(amount, 10)
	for len(s)%3 != 0 {
		s = "0" + s
	}

	groupCount := len(s) / 3
	parts := make([]string, 0, groupCount)
	for i := 0; i < groupCount; i++ {
		group := s[i*3 : i*3+3]
		if group == "000" {
			continue
		}
		read := viThreeDigits(group)
		if len(parts) == 0 {
			read = trimLeadingZeroHundred(read)
		}
		if scale := viScales[groupCount-1-i]; scale != "" {
			read += " " + scale
		}
		parts = append(parts, read)
	}

	out := strings.Join(parts, " ")
	if out == "" {
		return "Không đồng"
	}
	return upperFirst(out) + " đồng chẵn"
}

// viThreeDigits reads one group of exactly three decimal digits. The hundreds
// word is always emitted, even for a zero hundreds digit; interior groups
// need it ("một triệu không trăm lẻ năm nghìn").
func viThreeDigits(group string) string {
	hundreds := int(group[0] - '0')
	tens := int(group[1] - '0')
	units := int(group[2] - '0')

	var b strings.Builder
	b.WriteString(viDigits[hundreds])
	b.WriteString(" trăm")

	switch {
	case tens == 0 && units != 0:
		b.WriteString(" lẻ ")
		b.WriteString(viDigits[units])
	case tens == 1:
		b.WriteString(" mười")
		switch units {
		case 0:
		case 1:
			b.WriteString(" một")
		case 5:
			b.WriteString(" lăm")
		default:
			b.WriteString(" ")
			b.WriteString(viDigits[units])
		}
	case tens > 1:
		b.WriteString(" ")
		b.WriteString(viDigits[tens])
		b.WriteString(" mươi")
		switch units {
		case 0:
		case 1:
			b.WriteString(" mốt")
		case 4:
			b.WriteString(" tư")
		case 5:
			b.WriteString(" lăm")
		default:
			b.WriteString(" ")
			b.WriteString(viDigits[units])
		}
	}
	return b.String()
}

// trimLeadingZeroHundred drops the spurious "không trăm" (and a following
// "lẻ") from the most significant rendered group, so 54 reads
// "năm mươi tư" rather than "không trăm năm mươi tư".
func trimLeadingZeroHundred(read string) string {
	rest, ok := strings.CutPrefix(read, "không trăm")
	if !ok {
		return read
	}
	rest = strings.TrimSpace(rest)
	return strings.TrimSpace(strings.TrimPrefix(rest, "lẻ "))
}

func upperFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
