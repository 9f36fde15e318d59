package handler

import (
	"bytes"
	"html/template"
	"log"
	"time"
	"vietqr_checkout/constants"
	"vietqr_checkout/database"
	"vietqr_checkout/helper"
	"vietqr_checkout/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Options gom các phụ thuộc bên ngoài của handler, khởi tạo một lần trong main
type Options struct {
	OrderLookup    helper.OrderLookup
	CompletionHook helper.PaymentCompletionHook
	LookupTimeout  time.Duration
	Deduper        helper.CheckoutDeduper
	Redis          *redis.Client
	Cloudinary     *cloudinary.Cloudinary
}

var opts = Options{
	CompletionHook: helper.LogCompletionHook{},
	LookupTimeout:  10 * time.Second,
}

func Init(o Options) {
	if o.CompletionHook == nil {
		o.CompletionHook = helper.LogCompletionHook{}
	}
	if o.LookupTimeout <= 0 {
		o.LookupTimeout = 10 * time.Second
	}
	opts = o
}

// orderLookup mặc định đọc thẳng DB khi không cấu hình ORDERS_API_URL
func orderLookup() helper.OrderLookup {
	if opts.OrderLookup != nil {
		return opts.OrderLookup
	}
	return helper.DBOrderLookup{DB: database.DB}
}

// renderHTML render vào buffer trước để lỗi template không để lại trang dở dang
func renderHTML(c *fiber.Ctx, tmpl *template.Template, status int, data any) error {
	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		log.Printf("Lỗi render template: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(body.Bytes())
}
