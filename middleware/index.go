package middleware

import (
	"errors"
	"strings"
	"vietqr_checkout/constants"
	"vietqr_checkout/helper"
	"vietqr_checkout/utils"

	"github.com/gofiber/fiber/v2"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		// check header Authorization: Bearer xxx
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// OptionalJWT gắn token vào Locals nếu hợp lệ, khách vãng lai vẫn đi tiếp
func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Next()
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return c.Next()
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RequireAdmin phải đứng sau Protected
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := helper.GetInfoAccountFromToken(c)
		if !ok || claim.Role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}
		return c.Next()
	}
}
