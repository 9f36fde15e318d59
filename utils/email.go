package utils

import (
	"bytes"
	"html/template"
	"log"
	"vietqr_checkout/config"
	"vietqr_checkout/templates"

	"gopkg.in/gomail.v2"
)

// PaymentPendingEmailData dữ liệu cho email "chờ thanh toán"
type PaymentPendingEmailData struct {
	OrderId         string
	CustomerName    string
	AmountDisplay   string
	QRCodeUrl       string
	BankId          string
	AccountNumber   string
	AccountName     string
	Description     string
	PaymentPageLink string
}

type DailyDigestEmailData struct {
	Day          string
	Count        int64
	Pending      int64
	TotalDisplay string
}

func MailEnabled() bool {
	return config.Config("SMTP_HOST") != ""
}

func RenderEmail(tmpl *template.Template, data any) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// SendPaymentPendingEmail gửi email hướng dẫn chuyển khoản (async)
func SendPaymentPendingEmail(to string, data PaymentPendingEmailData) {
	if to == "" || !MailEnabled() {
		return
	}
	go func() { // Async để không delay response
		body, err := RenderEmail(templates.PaymentPendingEmail, data)
		if err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}
		if err := SendMail(to, "Awaiting payment - Order #"+data.OrderId, body); err != nil {
			log.Printf("Lỗi gửi email cho %s: %v", to, err)
			return
		}
		log.Printf("Đã gửi email chờ thanh toán đơn %s đến %s", data.OrderId, to)
	}()
}

func SendMail(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.ConfigDefault("SMTP_FROM", config.Config("SMTP_USERNAME")))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		config.Config("SMTP_HOST"),
		config.Int("SMTP_PORT", 587),
		config.Config("SMTP_USERNAME"),
		config.Config("SMTP_PASSWORD"),
	)
	return d.DialAndSend(m)
}
