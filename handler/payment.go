package handler

import (
	"errors"
	"time"
	"vietqr_checkout/constants"
	"vietqr_checkout/database"
	"vietqr_checkout/helper"
	"vietqr_checkout/model"
	"vietqr_checkout/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func listPaymentConfigs(c *fiber.Ctx, publicOnly bool) error {
	filterInput := new(model.FilterPaymentConfig)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.PaymentProviderConfig{})
	if publicOnly {
		query = query.Where("enabled = ?", true)
	} else if filterInput.Enabled != nil {
		query = query.Where("enabled = ?", *filterInput.Enabled)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	configs := []model.PaymentProviderConfig{}
	query = utils.ApplyPagination(query.Order("id asc"), filterInput.Limit, filterInput.Page)
	if err := query.Find(&configs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if publicOnly {
		for i := range configs {
			configs[i].Providers = helper.PublicProviders(configs[i].Providers)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       configs,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

// GetPaymentConfigs danh sách phương thức thanh toán đang bật (public)
func GetPaymentConfigs(c *fiber.Ctx) error {
	return listPaymentConfigs(c, true)
}

func AdminGetPaymentConfigs(c *fiber.Ctx) error {
	return listPaymentConfigs(c, false)
}

func GetPaymentConfigBySlug(c *fiber.Ctx) error {
	var config model.PaymentProviderConfig
	err := database.DB.Where("slug = ? AND enabled = ?", c.Params("slug"), true).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_CONFIG_NOT_FOUND, err)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	config.Providers = helper.PublicProviders(config.Providers)
	return utils.SuccessResponse(c, fiber.StatusOK, config)
}

func CreatePaymentConfig(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreatePayment").(model.CreatePaymentConfigInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse payment input fail"))
	}
	providers, _ := c.Locals("providers").([]model.ProviderBlock)

	newConfig := new(model.PaymentProviderConfig)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := copier.Copy(newConfig, &input); err != nil {
			return err
		}
		newConfig.Enabled = input.Enabled == nil || *input.Enabled
		newConfig.Providers = providers
		slug, err := helper.GenerateUniquePaymentSlug(tx, input.Name, 0)
		if err != nil {
			return err
		}
		newConfig.Slug = slug
		return tx.Create(newConfig).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newConfig)
}

func UpdatePaymentConfig(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdatePayment").(model.UpdatePaymentConfigInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse payment input fail"))
	}
	paymentId := c.Locals("paymentId").(uint)

	var config model.PaymentProviderConfig
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&config, paymentId).Error; err != nil {
			return err
		}

		if input.Name != nil && *input.Name != config.Name {
			config.Name = *input.Name
			slug, err := helper.GenerateUniquePaymentSlug(tx, config.Name, config.ID)
			if err != nil {
				return err
			}
			config.Slug = slug
		}
		if input.Enabled != nil {
			config.Enabled = *input.Enabled
		}
		if input.ImageUrl != nil {
			config.ImageUrl = utils.StringPtr(*input.ImageUrl)
		}
		if providers, ok := c.Locals("providers").([]model.ProviderBlock); ok {
			config.Providers = providers
		}

		return tx.Save(&config).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_CONFIG_NOT_FOUND, err)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config)
}

// DeletePaymentConfig xoá mềm; đơn cũ vẫn giữ snapshot VietQR của mình
func DeletePaymentConfig(c *fiber.Ctx) error {
	paymentId := c.Locals("inputId").(uint)

	result := database.DB.Delete(&model.PaymentProviderConfig{}, paymentId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_CONFIG_NOT_FOUND, gorm.ErrRecordNotFound)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": paymentId})
}

// SignPaymentImage trả tham số đã ký để admin upload icon thẳng lên Cloudinary
func SignPaymentImage(c *fiber.Ctx) error {
	type signInput struct {
		PublicId string `json:"publicId"`
	}
	var input signInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
	}

	signature, err := helper.SignPaymentImageUpload(opts.Cloudinary, input.PublicId, time.Now())
	if errors.Is(err, helper.ErrCloudinaryNotConfigured) {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, signature)
}
