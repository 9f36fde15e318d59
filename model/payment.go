package model

import "gorm.io/datatypes"

// PaymentProviderConfig là cấu hình phương thức thanh toán của shop (collection "payments")
type PaymentProviderConfig struct {
	DTO
	Name      string                             `gorm:"size:100;not null" json:"name"`
	Slug      string                             `gorm:"size:120;uniqueIndex" json:"slug"`
	Enabled   bool                               `gorm:"not null;default:true" json:"enabled"`
	ImageUrl  *string                            `json:"imageUrl"`
	Providers datatypes.JSONSlice[ProviderBlock] `json:"providers"`
}

func (PaymentProviderConfig) TableName() string { return "payments" }

// ProviderBlock is one variant of the providers union, tagged by BlockType.
// Manual fields and VietQR fields never appear together in a normalized block.
type ProviderBlock struct {
	BlockType string `json:"blockType"`

	// manual
	MethodType string         `json:"methodType,omitempty"`
	Details    []ManualDetail `json:"details,omitempty"`

	// vietqr
	BankId        string `json:"bankId,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	Template      string `json:"template,omitempty"`

	Instructions string `json:"instructions,omitempty"`
}

type ManualDetail struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// VietQRProvider is the fully-defaulted VietQR view of a provider block.
type VietQRProvider struct {
	BankId        string `json:"bankId"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Template      string `json:"template"`
}

type ProviderBlockInput struct {
	BlockType     string         `json:"blockType" validate:"required,oneof=manual vietqr"`
	MethodType    string         `json:"methodType" validate:"omitempty,oneof=cod bankTransfer inStore other"`
	Instructions  string         `json:"instructions"`
	Details       []ManualDetail `json:"details" validate:"omitempty,dive"`
	BankId        string         `json:"bankId"`
	AccountNumber string         `json:"accountNumber"`
	AccountName   string         `json:"accountName"`
	Template      string         `json:"template" validate:"omitempty,oneof=compact compact2 qr_only print"`
}

// Providers đi qua helper.NormalizeProviders, không copy thẳng
type CreatePaymentConfigInput struct {
	Name      string               `json:"name" validate:"required,min=2,max=100"`
	Enabled   *bool                `json:"enabled" copier:"-"`
	ImageUrl  *string              `json:"imageUrl" validate:"omitempty,url"`
	Providers []ProviderBlockInput `json:"providers" validate:"max=1,dive" copier:"-"`
}

type UpdatePaymentConfigInput struct {
	Name      *string               `json:"name" validate:"omitempty,min=2,max=100"`
	Enabled   *bool                 `json:"enabled"`
	ImageUrl  *string               `json:"imageUrl" validate:"omitempty,url"`
	Providers *[]ProviderBlockInput `json:"providers" validate:"omitempty,max=1,dive"`
}

type FilterPaymentConfig struct {
	Pagination
	Enabled *bool `query:"enabled"`
}
