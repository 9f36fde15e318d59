package handler

import (
	"context"
	"time"
	"vietqr_checkout/database"

	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.Map{"database": "ok"}
	code := fiber.StatusOK

	sqlDB, err := database.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		status["database"] = err.Error()
		code = fiber.StatusServiceUnavailable
	}

	if opts.Redis != nil {
		status["redis"] = "ok"
		if err := opts.Redis.Ping(ctx).Err(); err != nil {
			status["redis"] = err.Error()
			code = fiber.StatusServiceUnavailable
		}
	}

	if code == fiber.StatusOK {
		status["status"] = "ok"
	} else {
		status["status"] = "degraded"
	}
	return c.Status(code).JSON(status)
}
