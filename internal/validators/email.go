package validators

import (
	"net/mail"
	"strings"
)

// NormalizeEmail trims surrounding whitespace only; uniqueness and login
// compare the stored address exactly.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func IsEmailValid(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	if addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1 && strings.Contains(email[at+1:], ".")
}
