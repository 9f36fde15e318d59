package utils

import (
	"fmt"
	"strconv"
	"strings"
	"vietqr_checkout/constants"
	"vietqr_checkout/model"
)

const VietQRImageBaseURL = "https://img.vietqr.io/image"

// BuildVietQRImageURL dựng URL ảnh QR của img.vietqr.io:
// {base}/{bankId}-{accountNumber}-{template}.png?amount=&addInfo=&accountName=
func BuildVietQRImageURL(v model.VietQRSnapshot) string {
	template := v.Template
	if template == "" {
		template = constants.TEMPLATE_COMPACT
	}
	return fmt.Sprintf("%s/%s-%s-%s.png?amount=%s&addInfo=%s&accountName=%s",
		VietQRImageBaseURL,
		v.BankId,
		v.AccountNumber,
		template,
		strconv.FormatInt(v.Amount, 10),
		EncodeURIComponent(v.Description),
		EncodeURIComponent(v.AccountName),
	)
}

// EncodeURIComponent escapes s the way browsers' encodeURIComponent does:
// spaces become %20 and A-Z a-z 0-9 - _ . ! ~ * ' ( ) are left as is.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isURIComponentSafe(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[ch>>4])
		b.WriteByte(hex[ch&0x0F])
	}
	return b.String()
}

func isURIComponentSafe(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	switch ch {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
