package wallet

import (
	"strings"
	"unicode"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// isValidBankAccount "<bank code>:<account number>", номер только из цифр.
func isValidBankAccount(account string) bool {
	bank, number, ok := strings.Cut(strings.TrimSpace(account), ":")
	if !ok || bank == "" || len(number) < 6 || len(number) > 20 {
		return false
	}
	for _, r := range number {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
