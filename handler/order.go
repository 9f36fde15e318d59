package handler

import (
	"errors"
	"html/template"
	"log"
	"vietqr_checkout/constants"
	"vietqr_checkout/database"
	"vietqr_checkout/helper"
	"vietqr_checkout/model"
	"vietqr_checkout/templates"
	"vietqr_checkout/utils"

	"github.com/gofiber/fiber/v2"
)

// GetOrders trả thẳng {docs, totalDocs, limit}, không bọc trong SuccessResponse
func GetOrders(c *fiber.Ctx) error {
	query, ok := c.Locals("orderQuery").(model.OrderQuery)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse order query fail"))
	}

	docs, err := helper.FindOrders(database.DB.WithContext(c.UserContext()), query)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(docs)
}

type orderConfirmationView struct {
	OrderId       string
	PaymentStatus string
	AmountDisplay string
	QRCode        template.URL
}

// OrderConfirmation trang sau khi khách bấm "I've Completed Payment".
// The QR here only encodes the orderId for lookup at the counter.
func OrderConfirmation(c *fiber.Ctx) error {
	orderId := c.Query("orderId")
	if orderId == "" {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	docs, err := helper.FindOrders(database.DB.WithContext(c.UserContext()), model.OrderQuery{OrderId: orderId, Limit: 1})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(docs.Docs) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MSG_ORDER_NOT_FOUND, helper.ErrOrderNotFound)
	}
	order := docs.Docs[0]

	view := orderConfirmationView{
		OrderId:       order.OrderId,
		PaymentStatus: order.PaymentStatus,
		AmountDisplay: utils.FormatVND(order.TotalAmount),
	}
	qr, err := utils.QRCodeDataURL(order.OrderId, 256)
	if err != nil {
		log.Printf("Lỗi tạo QR cho đơn %s: %v", order.OrderId, err)
	} else {
		view.QRCode = template.URL(qr)
	}

	return renderHTML(c, templates.OrderConfirmation, fiber.StatusOK, view)
}
