package handler

import (
	"context"
	"errors"
	"log"
	"strings"
	"vietqr_checkout/config"
	"vietqr_checkout/constants"
	"vietqr_checkout/database"
	"vietqr_checkout/helper"
	"vietqr_checkout/model"
	"vietqr_checkout/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VietQRCheckout tạo đơn pending kèm snapshot VietQR và trả {redirectUrl}
func VietQRCheckout(c *fiber.Ctx) error {
	input, ok := c.Locals("checkoutInput").(model.CheckoutInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse checkout input fail"))
	}
	ctx := c.UserContext()
	db := database.DB.WithContext(ctx)

	// client chỉ gửi id cấu hình thanh toán → lấy providers đã lưu
	if len(input.Payment.Providers) == 0 && input.Payment.Id > 0 {
		var paymentConfig model.PaymentProviderConfig
		err := db.First(&paymentConfig, input.Payment.Id).Error
		switch {
		case err == nil:
			input.Payment.Providers = paymentConfig.Providers
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Printf("Không tìm thấy cấu hình thanh toán id=%d, dùng giá trị mặc định", input.Payment.Id)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	idemKey := strings.TrimSpace(c.Get("Idempotency-Key"))
	if idemKey != "" && opts.Deduper != nil {
		redirectUrl, reserved, err := opts.Deduper.Reserve(ctx, idemKey)
		switch {
		case errors.Is(err, helper.ErrCheckoutInProgress):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_CHECKOUT, err)
		case err != nil:
			// redis lỗi thì xử lý như không có key
			log.Printf("Lỗi idempotency store key=%s: %v", idemKey, err)
			idemKey = ""
		case !reserved:
			return c.JSON(model.CheckoutResult{RedirectUrl: redirectUrl})
		}
	}

	result, err := helper.ComposeVietQRCheckout(db, input)
	if err != nil {
		log.Printf("Lỗi tạo đơn VietQR: %v", err)
		if idemKey != "" && opts.Deduper != nil {
			if relErr := opts.Deduper.Release(context.Background(), idemKey); relErr != nil {
				log.Printf("Lỗi giải phóng idempotency key=%s: %v", idemKey, relErr)
			}
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	if idemKey != "" && opts.Deduper != nil {
		if err := opts.Deduper.Complete(ctx, idemKey, result.RedirectUrl); err != nil {
			log.Printf("Lỗi lưu idempotency key=%s: %v", idemKey, err)
		}
	}

	log.Printf("Tạo đơn VietQR thành công: orderId=%s sessionId=%s", input.OrderId, result.SessionId)
	notifyAwaitingPayment(input, result, appBaseURL(c))

	return c.JSON(result)
}

// appBaseURL ưu tiên APP_URL, không có thì lấy scheme+host của request
func appBaseURL(c *fiber.Ctx) string {
	return strings.TrimRight(config.ConfigDefault("APP_URL", c.BaseURL()), "/")
}

func notifyAwaitingPayment(input model.CheckoutInput, result model.CheckoutResult, baseURL string) {
	data, ok := pendingEmailData(input, result, baseURL)
	if !ok {
		return
	}
	utils.SendPaymentPendingEmail(input.Customer.Email, data)
}

func pendingEmailData(input model.CheckoutInput, result model.CheckoutResult, baseURL string) (utils.PaymentPendingEmailData, bool) {
	vietqr := result.Order.Metadata.Data().VietQR
	if vietqr == nil {
		return utils.PaymentPendingEmailData{}, false
	}
	return utils.PaymentPendingEmailData{
		OrderId:         input.OrderId,
		CustomerName:    strings.TrimSpace(input.Customer.FirstName + " " + input.Customer.LastName),
		AmountDisplay:   utils.FormatVND(result.Order.TotalAmount),
		QRCodeUrl:       utils.BuildVietQRImageURL(*vietqr),
		BankId:          vietqr.BankId,
		AccountNumber:   vietqr.AccountNumber,
		AccountName:     vietqr.AccountName,
		Description:     vietqr.Description,
		PaymentPageLink: baseURL + result.RedirectUrl,
	}, true
}
