package validators

import "strings"

// Elfproef reports whether value passes the Dutch 11-test for citizen
// service numbers. Spaces, dots, and hyphens are stripped before the
// check; an 8-digit number is treated as 9 digits with a leading zero,
// matching how the Belastingdienst prints older BSNs.
//
// The test multiplies the nine digits by the weights 9,8,7,6,5,4,3,2,-1
// and accepts when the sum is divisible by 11. A failing value is not
// necessarily wrong in the source document, so callers surface this as
// a warning, never as a hard rejection.
func Elfproef(value string) bool {
	cleaned := strings.NewReplacer(" ", "", ".", "", "-", "").Replace(value)

	if len(cleaned) == 8 {
		cleaned = "0" + cleaned
	}
	if len(cleaned) != 9 {
		return false
	}

	sum := 0
	for i, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		weight := 9 - i
		if i == 8 {
			weight = -1
		}
		sum += digit * weight
	}

	return sum%11 == 0
}
