package handler

import (
	"context"
	"errors"
	"log"
	"net/url"
	"vietqr_checkout/helper"
	"vietqr_checkout/model"
	"vietqr_checkout/templates"

	"github.com/gofiber/fiber/v2"
)

var paymentInstructions = []string{
	"Open your banking app",
	`Select "Scan QR" or "Transfer"`,
	"Scan the QR code above",
	"Verify the amount and transfer content",
	"Complete the payment",
	`Click "I've Completed Payment" button below`,
}

type paymentPageView struct {
	Page         model.PaymentPage
	Instructions []string
}

func loadPaymentPage(c *fiber.Ctx) model.PaymentPage {
	ctx, cancel := context.WithTimeout(c.UserContext(), opts.LookupTimeout)
	defer cancel()
	return helper.LoadPaymentPage(ctx, orderLookup(), c.Params("sessionId"))
}

func paymentPageStatus(page model.PaymentPage) int {
	err := helper.PageErrorToErr(page.Error)
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, helper.ErrOrderNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, helper.ErrMissingPaymentMetadata):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusBadGateway
	}
}

// VietQRPaymentPage GET /payment/vietqr/:sessionId
func VietQRPaymentPage(c *fiber.Ctx) error {
	page := loadPaymentPage(c)
	return renderHTML(c, templates.PaymentPage, paymentPageStatus(page), paymentPageView{
		Page:         page,
		Instructions: paymentInstructions,
	})
}

// VietQRPaymentPageJSON trả cùng view model cho client tự render
func VietQRPaymentPageJSON(c *fiber.Ctx) error {
	page := loadPaymentPage(c)
	return c.Status(paymentPageStatus(page)).JSON(page)
}

// CompleteVietQRPayment khách báo đã chuyển khoản. Đơn không bị đổi trạng thái.
func CompleteVietQRPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), opts.LookupTimeout)
	defer cancel()

	sessionId := c.Params("sessionId")
	orders, err := orderLookup().FindBySession(ctx, sessionId)
	if err != nil || len(orders) == 0 {
		page := helper.BuildPaymentPage(sessionId, orders, err)
		return renderHTML(c, templates.PaymentPage, paymentPageStatus(page), paymentPageView{
			Page:         page,
			Instructions: paymentInstructions,
		})
	}
	order := orders[0]

	if err := opts.CompletionHook.PaymentReported(ctx, order); err != nil {
		// hook lỗi không chặn khách
		log.Printf("Lỗi completion hook orderId=%s: %v", order.OrderId, err)
	}

	return c.Redirect("/order-confirmation?orderId="+url.QueryEscape(order.OrderId), fiber.StatusSeeOther)
}
