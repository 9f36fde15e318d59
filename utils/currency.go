package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var viPrinter = message.NewPrinter(language.Vietnamese)

// RoundAmount làm tròn tổng tiền về số nguyên (VietQR chỉ nhận amount nguyên)
func RoundAmount(total float64) int64 {
	return decimal.NewFromFloat(total).Round(0).IntPart()
}

// FormatVND hiển thị số tiền theo định dạng vi-VN, ví dụ 150000 -> "150.000 ₫".
// VND has no minor unit; the separator before ₫ is a non-breaking space.
func FormatVND(amount float64) string {
	return viPrinter.Sprintf("%d", RoundAmount(amount)) + "\u00a0₫"
}
