package shipper

import "strings"

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidPhone формат E.164: плюс и от 7 до 15 цифр.
func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	digits := phone[1:]
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return false
	}
	for _, char := range digits {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
