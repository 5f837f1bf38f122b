package domain

import "strings"

// NormalizePhone оставляет в номере только цифры
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsNotifiablePhone returns true if the phone has enough digits to receive a message
func IsNotifiablePhone(phone string) bool {
	return len(NormalizePhone(phone)) >= MinPhoneDigits
}
