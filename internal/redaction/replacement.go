package redaction

import (
	"hash/fnv"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Replacement builds the deterministic mask for a custom term. The mask
// has exactly the rune length of the original, starts with the
// upper-cased label stem, and is padded with hash-derived hex digits,
// so the same (label, value) pair always masks identically while
// staying visually synthetic.
func Replacement(label, value string) string {
	n := utf8.RuneCountInString(value)
	if n == 0 {
		return ""
	}

	h := fnv.New64a()
	h.Write([]byte(label))
	h.Write([]byte{0})
	h.Write([]byte(value))
	pad := []rune(strconv.FormatUint(h.Sum64(), 16))

	mask := append([]rune(labelStem(label)), '.')
	for len(mask) < n {
		mask = append(mask, pad...)
	}

	return string(mask[:n])
}

// labelStem keeps the label's letters and digits, upper-cased.
func labelStem(label string) string {
	var out []rune
	for _, r := range strings.ToUpper(label) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return "X"
	}

	return string(out)
}
