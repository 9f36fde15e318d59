package router

import (
	"vietqr_checkout/handler"
	"vietqr_checkout/middleware"
	"vietqr_checkout/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", handler.Health)

	api := app.Group("/api", logger.New())

	// storefront (public)
	api.Get("/payments", handler.GetPaymentConfigs)
	api.Get("/payments/:slug", handler.GetPaymentConfigBySlug)
	api.Post("/orders/vietqr-checkout", validate.VietQRCheckout(), handler.VietQRCheckout)
	api.Get("/orders", middleware.OptionalJWT(), validate.OrderQuery(), handler.GetOrders)
	api.Get("/payment/vietqr/:sessionId", handler.VietQRPaymentPageJSON)

	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)

	payment := v1.Group("/payments", middleware.Protected(), middleware.RequireAdmin())
	payment.Get("/", handler.AdminGetPaymentConfigs)
	payment.Post("/", validate.CreatePaymentConfig(), handler.CreatePaymentConfig)
	payment.Post("/image-signature", handler.SignPaymentImage)
	payment.Put("/:paymentId", validate.UpdatePaymentConfig("paymentId"), handler.UpdatePaymentConfig)
	payment.Delete("/:paymentId", validate.GetById("paymentId"), handler.DeletePaymentConfig)

	// trang HTML cho khách, không nằm dưới /api
	pageLogger := logger.New()
	app.Get("/payment/vietqr/:sessionId", pageLogger, handler.VietQRPaymentPage)
	app.Post("/payment/vietqr/:sessionId/complete", pageLogger, handler.CompleteVietQRPayment)
	app.Get("/order-confirmation", pageLogger, handler.OrderConfirmation)
}
