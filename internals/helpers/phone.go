package helper

import "strings"

// NormalizePhone menormalkan nomor HP ke format internasional Indonesia:
// buang semua non-digit, lalu prefix trunk diganti kode negara.
// "081234567890" → "6281234567890"; nomor yang sudah 62xx dibiarkan.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" || strings.HasPrefix(digits, "62") {
		return digits
	}
	if strings.HasPrefix(digits, "0") || strings.HasPrefix(digits, "8") {
		return "62" + digits[1:]
	}
	return digits
}
