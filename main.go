package main

import (
	"log"
	"net/http"
	"time"
	"vietqr_checkout/config"
	"vietqr_checkout/database"
	"vietqr_checkout/handler"
	"vietqr_checkout/helper"
	"vietqr_checkout/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, Idempotency-Key",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	lookupTimeout := config.Duration("PAYMENT_LOOKUP_TIMEOUT", 10*time.Second)
	opts := handler.Options{
		CompletionHook: helper.LogCompletionHook{},
		LookupTimeout:  lookupTimeout,
	}

	// storefront và API có thể chạy tách nhau
	if apiURL := config.Config("ORDERS_API_URL"); apiURL != "" {
		opts.OrderLookup = helper.HTTPOrderLookup{
			BaseURL: apiURL,
			Client:  &http.Client{Timeout: lookupTimeout},
		}
		log.Printf("Tra cứu đơn qua %s", apiURL)
	}

	if rdb := helper.NewRedisClient(); rdb != nil {
		opts.Redis = rdb
		opts.Deduper = helper.NewRedisCheckoutDeduper(rdb,
			config.Duration("IDEMPOTENCY_TTL", 24*time.Hour),
			config.Duration("IDEMPOTENCY_LOCK_TTL", helper.DefaultCheckoutLockTTL),
		)
		defer rdb.Close()
	}

	if cld, err := helper.InitCloudinary(); err != nil {
		log.Printf("Cloudinary chưa cấu hình: %v", err)
	} else {
		opts.Cloudinary = cld
	}

	handler.Init(opts)

	helper.StartPendingOrderMonitor(database.DB)
	helper.StartDailyDigestScheduler(database.DB)
	defer helper.StopSchedulers()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigDefault("APP_PORT", "8002")))
}
