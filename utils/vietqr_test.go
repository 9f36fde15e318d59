package utils

import (
	"strings"
	"testing"
	"vietqr_checkout/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildVietQRImageURL(t *testing.T) {
	url := BuildVietQRImageURL(model.VietQRSnapshot{
		BankId:        "VCB",
		AccountNumber: "0123456789",
		AccountName:   "NGUYEN VAN A",
		Template:      "print",
		Amount:        150000,
		Description:   "Payment for order ORD-1",
	})

	assert.Equal(t,
		"https://img.vietqr.io/image/VCB-0123456789-print.png?amount=150000&addInfo=Payment%20for%20order%20ORD-1&accountName=NGUYEN%20VAN%20A",
		url)
}

func TestBuildVietQRImageURL_DefaultsTemplate(t *testing.T) {
	url := BuildVietQRImageURL(model.VietQRSnapshot{
		BankId:        "MB",
		AccountNumber: "999",
		Amount:        1000,
	})

	assert.True(t, strings.HasPrefix(url, "https://img.vietqr.io/image/MB-999-compact.png?"))
	assert.True(t, strings.HasSuffix(url, "?amount=1000&addInfo=&accountName="))
}

func TestEncodeURIComponent(t *testing.T) {
	cases := map[string]string{
		"":                     "",
		"abc-XYZ_0.9":          "abc-XYZ_0.9",
		"a b":                  "a%20b",
		"!~*'()":               "!~*'()",
		"a&b=c?d/e#f+g":        "a%26b%3Dc%3Fd%2Fe%23f%2Bg",
		"Nguyễn":               "Nguy%E1%BB%85n",
		"Thanh toán đơn #1":    "Thanh%20to%C3%A1n%20%C4%91%C6%A1n%20%231",
	}
	for in, want := range cases {
		assert.Equal(t, want, EncodeURIComponent(in), in)
	}
}
