package validate

import (
	"errors"
	"strconv"
	"vietqr_checkout/constants"
	"vietqr_checkout/helper"
	"vietqr_checkout/model"
	"vietqr_checkout/utils"

	"github.com/gofiber/fiber/v2"
)

func VietQRCheckout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("checkoutInput", input)
		return c.Next()
	}
}

// OrderQuery đọc where[sessionId][equals], where[orderId][equals] và limit.
// Khách không đăng nhập chỉ được tra theo sessionId.
func OrderQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := model.OrderQuery{
			SessionId: c.Query("where[sessionId][equals]"),
			OrderId:   c.Query("where[orderId][equals]"),
		}

		if raw := c.Query("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err, "limit")
			}
			query.Limit = limit
		}

		// orderId dễ đoán nên chỉ admin được lọc theo orderId hoặc không lọc
		claim, ok := helper.GetInfoAccountFromToken(c)
		isAdmin := ok && claim.Role == constants.ROLE_ADMIN
		if !isAdmin {
			if query.OrderId != "" {
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("orderId filter requires admin"))
			}
			if query.SessionId == "" {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_ORDER_FILTER, errors.New("sessionId filter is required"))
			}
		}

		c.Locals("orderQuery", query)
		return c.Next()
	}
}
