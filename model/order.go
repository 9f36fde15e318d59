package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Order struct {
	DTO
	OrderId         string                            `gorm:"size:64;index;not null" json:"orderId"`
	SessionId       string                            `gorm:"size:64;uniqueIndex" json:"sessionId"`
	Currency        string                            `gorm:"size:8;not null" json:"currency"`
	OrderStatus     string                            `gorm:"size:20;not null;default:'pending'" json:"orderStatus"`
	PaymentStatus   string                            `gorm:"size:20;not null;default:'pending'" json:"paymentStatus"`
	PaymentMethod   string                            `gorm:"size:20" json:"paymentMethod"`
	PaymentId       *uint                             `json:"payment,omitempty"`
	ShippingId      *uint                             `json:"shipping,omitempty"`
	TotalAmount     float64                           `json:"totalAmount"`
	ShippingAddress datatypes.JSON                    `json:"shippingAddress"`
	BillingAddress  datatypes.JSON                    `json:"billingAddress"`
	Metadata        datatypes.JSONType[OrderMetadata] `json:"metadata"`
}

// OrderMetadata là snapshot tại thời điểm tạo đơn, không đổi theo catalog/khách hàng
type OrderMetadata struct {
	Items        []OrderItemSnapshot `json:"items"`
	Subtotal     float64             `json:"subtotal"`
	ShippingCost float64             `json:"shippingCost"`
	TaxAmount    float64             `json:"taxAmount"`
	Customer     CustomerSnapshot    `json:"customer"`
	VietQR       *VietQRSnapshot     `json:"vietqr,omitempty"`
}

type OrderItemSnapshot struct {
	ProductId string  `json:"productId"`
	VariantId string  `json:"variantId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Sku       string  `json:"sku,omitempty"`
}

type CustomerSnapshot struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type VietQRSnapshot struct {
	BankId        string `json:"bankId"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Template      string `json:"template"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
}

// CheckoutInput là payload của POST /api/orders/vietqr-checkout
type CheckoutInput struct {
	Customer        CheckoutCustomer `json:"customer"`
	Payment         CheckoutPayment  `json:"payment"`
	Shipping        *CheckoutRef     `json:"shipping"`
	Total           float64          `json:"total" validate:"gte=0"`
	Subtotal        float64          `json:"subtotal" validate:"gte=0"`
	ShippingCost    float64          `json:"shippingCost" validate:"gte=0"`
	TaxAmount       *float64         `json:"taxAmount" validate:"omitempty,gte=0"`
	OrderId         string           `json:"orderId" validate:"required,max=64"`
	Items           []CheckoutItem   `json:"items" validate:"dive"`
	ShippingAddress json.RawMessage  `json:"shippingAddress"`
	BillingAddress  json.RawMessage  `json:"billingAddress"`
}

type CheckoutCustomer struct {
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type CheckoutPayment struct {
	Id        uint            `json:"id"`
	Providers []ProviderBlock `json:"providers"`
}

type CheckoutRef struct {
	Id uint `json:"id"`
}

type CheckoutItem struct {
	Id           string  `json:"id" validate:"required"`
	VariantId    string  `json:"variantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price" validate:"gte=0"`
	CurrentPrice float64 `json:"currentPrice" validate:"gte=0"`
	Quantity     int     `json:"quantity" validate:"gte=1"`
	Sku          string  `json:"sku"`
}

type CheckoutResult struct {
	RedirectUrl string `json:"redirectUrl"`
	SessionId   string `json:"-"`
	Order       Order  `json:"-"`
}

// OrderQuery là bộ lọc where[field][equals] của GET /api/orders
type OrderQuery struct {
	SessionId string
	OrderId   string
	Limit     int
}

type OrderDocs struct {
	Docs      []Order `json:"docs"`
	TotalDocs int64   `json:"totalDocs"`
	Limit     int     `json:"limit"`
}
