package database

import (
	"log"
	"vietqr_checkout/config"
	"vietqr_checkout/constants"
	"vietqr_checkout/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	seedAdmin(db)
	seedVietQRConfig(db)
}

func seedAdmin(db *gorm.DB) {
	username := config.ConfigDefault("ADMIN_USERNAME", "Administration")
	password := config.Config("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD chưa được cấu hình, bỏ qua tạo tài khoản admin")
		return
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}
	account := model.Account{Username: username, Password: string(bytes), Active: true, Role: constants.ROLE_ADMIN}

	// Tạo mới nếu không tồn tại
	if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
		log.Println("failed to seed data for account:", account.Username, "error:", err)
	}
}

// seedVietQRConfig tạo cấu hình VietQR mặc định từ biến môi trường (nếu có)
func seedVietQRConfig(db *gorm.DB) {
	bankId := config.Config("VIETQR_BANK_ID")
	accountNumber := config.Config("VIETQR_ACCOUNT_NUMBER")
	if bankId == "" || accountNumber == "" {
		return
	}

	name := config.ConfigDefault("VIETQR_CONFIG_NAME", "VietQR")
	cfg := model.PaymentProviderConfig{
		Name:    name,
		Slug:    slug.Make(name),
		Enabled: true,
		Providers: datatypes.JSONSlice[model.ProviderBlock]{{
			BlockType:     constants.BLOCK_VIETQR,
			BankId:        bankId,
			AccountNumber: accountNumber,
			AccountName:   config.Config("VIETQR_ACCOUNT_NAME"),
			Template:      config.ConfigDefault("VIETQR_TEMPLATE", constants.TEMPLATE_COMPACT),
			Instructions:  constants.DEFAULT_VIETQR_INSTRUCTIONS,
		}},
	}
	if err := db.Where(model.PaymentProviderConfig{Slug: cfg.Slug}).FirstOrCreate(&cfg).Error; err != nil {
		log.Println("failed to seed VietQR payment config:", err)
	}
}
