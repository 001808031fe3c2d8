package timer

import (
	"fmt"
	"math"
	"strings"
)

// maxField is the largest magnitude ParseField returns. It fits a 32-bit int.
const maxField = math.MaxInt32

// FormatTime converts a number of seconds into a mm:ss string format.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", (sec/60)%100, sec%60)
}

// ParseField reads the leading integer of a free-text form field. Surrounding
// whitespace and an optional sign are accepted; digits stop at the first
// non-digit, so "5.9" is 5. Input with no leading digits is 0. Values whose
// magnitude exceeds math.MaxInt32 saturate at that bound.
func ParseField(text string) int {
	s := strings.TrimSpace(text)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
		if n > maxField {
			n = maxField
		}
	}
	if neg {
		n = -n
	}
	return int(n)
}
