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

func CreatePaymentConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentConfigInput

		// Parse JSON từ request body vào struct
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		providers, err := helper.NormalizeProviders(input.Providers)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "providers")
		}

		c.Locals("inputCreatePayment", input)
		c.Locals("providers", providers)
		return c.Next()
	}
}

func UpdatePaymentConfig(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdatePaymentConfigInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// providers = nil nghĩa là giữ nguyên, [] nghĩa là xoá hết
		if input.Providers != nil {
			providers, err := helper.NormalizeProviders(*input.Providers)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "providers")
			}
			c.Locals("providers", providers)
		}

		c.Locals("paymentId", uint(id))
		c.Locals("inputUpdatePayment", input)
		return c.Next()
	}
}
