package validators

import (
	"strings"
	"unicode"
)

const (
	PhoneMinDigits = 10
	PhoneMaxDigits = 15
)

// NormalizePhone keeps only the digits of a phone number.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	digits := NormalizePhone(phone)
	return len(digits) >= PhoneMinDigits && len(digits) <= PhoneMaxDigits
}
