package payment

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"fulfillment/internal/entities"
)

const (
	correlationTagPrefix = "FD"
	maxCorrelationTagLen = 25
)

// CorrelationTag метка для назначения перевода. Банки режут и портят спецсимволы в
// назначении платежа, поэтому в метке только латиница и цифры в верхнем регистре.
func CorrelationTag(orderID string) string {
	var b strings.Builder
	b.WriteString(correlationTagPrefix)
	for _, r := range strings.ToUpper(orderID) {
		if b.Len() >= maxCorrelationTagLen {
			break
		}
		if r <= unicode.MaxASCII && (unicode.IsDigit(r) || unicode.IsLetter(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// matchTransfer первый перевод с точно совпадающей суммой и меткой в назначении.
func matchTransfer(transfers []entities.Transfer, amount int64, tag string) (entities.Transfer, bool) {
	tag = strings.ToUpper(tag)
	for _, t := range transfers {
		if t.Amount != amount {
			continue
		}
		if strings.Contains(strings.ToUpper(t.Memo), tag) {
			return t, true
		}
	}
	return entities.Transfer{}, false
}

// qrImageURL ссылка на картинку QR для перевода с суммой и меткой в назначении.
func qrImageURL(cfg Config, amount int64, tag string) string {
	query := url.Values{}
	query.Set("acc", cfg.AccountNumber)
	query.Set("bank", cfg.BankCode)
	query.Set("amount", fmt.Sprintf("%d", amount))
	query.Set("des", tag)

	return strings.TrimRight(cfg.QRBaseURL, "/") + "?" + query.Encode()
}
