package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

var (
	PaymentPage         = template.Must(template.ParseFS(files, "layout.html", "vietqr_payment.html"))
	OrderConfirmation   = template.Must(template.ParseFS(files, "layout.html", "order_confirmation.html"))
	PaymentPendingEmail = template.Must(template.ParseFS(files, "payment_pending_email.html"))
	DailyDigestEmail    = template.Must(template.ParseFS(files, "daily_digest_email.html"))
)
