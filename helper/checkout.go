package helper

import (
	"fmt"
	"vietqr_checkout/constants"
	"vietqr_checkout/model"
	"vietqr_checkout/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewSessionId trả về "VQRSID-<uuid v4>". Không kiểm tra trùng trong DB.
func NewSessionId() string {
	return constants.SESSION_ID_PREFIX + uuid.NewString()
}

func PaymentPagePath(sessionId string) string {
	return "/payment/vietqr/" + sessionId
}

func PaymentDescription(orderId string) string {
	return fmt.Sprintf(constants.MSG_PAYMENT_DESCRIPTION_FM, orderId)
}

// BuildVietQRSnapshot chụp lại thông tin VietQR tại thời điểm tạo đơn
func BuildVietQRSnapshot(provider model.VietQRProvider, total float64, orderId string) model.VietQRSnapshot {
	return model.VietQRSnapshot{
		BankId:        provider.BankId,
		AccountNumber: provider.AccountNumber,
		AccountName:   provider.AccountName,
		Template:      provider.Template,
		Amount:        utils.RoundAmount(total),
		Description:   PaymentDescription(orderId),
	}
}

func snapshotItems(items []model.CheckoutItem) []model.OrderItemSnapshot {
	out := make([]model.OrderItemSnapshot, 0, len(items))
	for _, item := range items {
		// giá hiện tại (đã giảm) được ưu tiên hơn giá niêm yết
		price := item.Price
		if item.CurrentPrice != 0 {
			price = item.CurrentPrice
		}
		out = append(out, model.OrderItemSnapshot{
			ProductId: item.Id,
			VariantId: item.VariantId,
			Name:      item.Name,
			Price:     price,
			Quantity:  item.Quantity,
			Sku:       item.Sku,
		})
	}
	return out
}

// ComposeVietQRCheckout tạo đúng một đơn hàng pending có nhúng snapshot VietQR
// và trả về đường dẫn tương đối tới trang thanh toán.
// A persistence failure is returned as is; nothing is retried or cleaned up.
func ComposeVietQRCheckout(db *gorm.DB, input model.CheckoutInput) (model.CheckoutResult, error) {
	sessionId := NewSessionId()
	provider := DecodeVietQRProvider(input.Payment.Providers)
	vietqr := BuildVietQRSnapshot(provider, input.Total, input.OrderId)

	taxAmount := 0.0
	if input.TaxAmount != nil {
		taxAmount = *input.TaxAmount
	}

	order := model.Order{
		OrderId:         input.OrderId,
		SessionId:       sessionId,
		Currency:        constants.CURRENCY_VND,
		OrderStatus:     constants.ORDER_STATUS_PENDING,
		PaymentStatus:   constants.PAYMENT_STATUS_PENDING,
		PaymentMethod:   constants.PAYMENT_METHOD_VIETQR,
		TotalAmount:     input.Total,
		ShippingAddress: datatypes.JSON(input.ShippingAddress),
		BillingAddress:  datatypes.JSON(input.BillingAddress),
		Metadata: datatypes.NewJSONType(model.OrderMetadata{
			Items:        snapshotItems(input.Items),
			Subtotal:     input.Subtotal,
			ShippingCost: input.ShippingCost,
			TaxAmount:    taxAmount,
			Customer: model.CustomerSnapshot{
				Email:     input.Customer.Email,
				FirstName: input.Customer.FirstName,
				LastName:  input.Customer.LastName,
				Phone:     input.Customer.Phone,
			},
			VietQR: &vietqr,
		}),
	}
	if input.Payment.Id > 0 {
		order.PaymentId = utils.Ptr(input.Payment.Id)
	}
	if input.Shipping != nil && input.Shipping.Id > 0 {
		order.ShippingId = utils.Ptr(input.Shipping.Id)
	}

	if err := db.Create(&order).Error; err != nil {
		return model.CheckoutResult{}, fmt.Errorf("create vietqr order %s: %w", input.OrderId, err)
	}

	return model.CheckoutResult{
		RedirectUrl: PaymentPagePath(sessionId),
		SessionId:   sessionId,
		Order:       order,
	}, nil
}
