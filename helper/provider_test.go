package helper

import (
	"testing"
	"vietqr_checkout/constants"
	"vietqr_checkout/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVietQRProvider(t *testing.T) {
	t.Run("no providers", func(t *testing.T) {
		got := DecodeVietQRProvider(nil)
		assert.Equal(t, model.VietQRProvider{Template: "compact"}, got)
	})

	t.Run("first block is manual", func(t *testing.T) {
		got := DecodeVietQRProvider([]model.ProviderBlock{
			{BlockType: constants.BLOCK_MANUAL, MethodType: constants.METHOD_COD, Instructions: "Pay on delivery"},
			{BlockType: constants.BLOCK_VIETQR, BankId: "VCB", AccountNumber: "1", AccountName: "A"},
		})
		assert.Equal(t, model.VietQRProvider{Template: "compact"}, got)
	})

	t.Run("vietqr without template", func(t *testing.T) {
		got := DecodeVietQRProvider([]model.ProviderBlock{
			{BlockType: constants.BLOCK_VIETQR, BankId: "VCB", AccountNumber: "0123456789", AccountName: "NGUYEN VAN A"},
		})
		assert.Equal(t, model.VietQRProvider{
			BankId:        "VCB",
			AccountNumber: "0123456789",
			AccountName:   "NGUYEN VAN A",
			Template:      "compact",
		}, got)
	})

	t.Run("vietqr with template", func(t *testing.T) {
		got := DecodeVietQRProvider([]model.ProviderBlock{
			{BlockType: constants.BLOCK_VIETQR, BankId: "TCB", AccountNumber: "99", AccountName: "B", Template: "qr_only"},
		})
		assert.Equal(t, "qr_only", got.Template)
		assert.Equal(t, "TCB", got.BankId)
	})
}

func TestNormalizeProviders(t *testing.T) {
	t.Run("at most one block", func(t *testing.T) {
		_, err := NormalizeProviders([]model.ProviderBlockInput{
			{BlockType: constants.BLOCK_MANUAL, MethodType: constants.METHOD_COD, Instructions: "x"},
			{BlockType: constants.BLOCK_MANUAL, MethodType: constants.METHOD_COD, Instructions: "y"},
		})
		assert.ErrorIs(t, err, ErrInvalidProvider)
	})

	t.Run("manual requires methodType and instructions", func(t *testing.T) {
		_, err := NormalizeProviders([]model.ProviderBlockInput{{BlockType: constants.BLOCK_MANUAL, Instructions: "x"}})
		assert.ErrorIs(t, err, ErrInvalidProvider)

		_, err = NormalizeProviders([]model.ProviderBlockInput{{BlockType: constants.BLOCK_MANUAL, MethodType: constants.METHOD_COD, Instructions: "  "}})
		assert.ErrorIs(t, err, ErrInvalidProvider)
	})

	t.Run("vietqr requires bank fields", func(t *testing.T) {
		_, err := NormalizeProviders([]model.ProviderBlockInput{{BlockType: constants.BLOCK_VIETQR, BankId: "VCB"}})
		assert.ErrorIs(t, err, ErrInvalidProvider)
	})

	t.Run("vietqr defaults", func(t *testing.T) {
		blocks, err := NormalizeProviders([]model.ProviderBlockInput{{
			BlockType:     constants.BLOCK_VIETQR,
			BankId:        " VCB ",
			AccountNumber: "0123456789",
			AccountName:   "NGUYEN VAN A",
			MethodType:    constants.METHOD_COD,
		}})
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, model.ProviderBlock{
			BlockType:     constants.BLOCK_VIETQR,
			BankId:        "VCB",
			AccountNumber: "0123456789",
			AccountName:   "NGUYEN VAN A",
			Template:      constants.TEMPLATE_COMPACT,
			Instructions:  constants.DEFAULT_VIETQR_INSTRUCTIONS,
		}, blocks[0])
	})

	t.Run("unknown blockType", func(t *testing.T) {
		_, err := NormalizeProviders([]model.ProviderBlockInput{{BlockType: "crypto"}})
		assert.ErrorIs(t, err, ErrInvalidProvider)
	})

	t.Run("empty list", func(t *testing.T) {
		blocks, err := NormalizeProviders(nil)
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}

func TestPublicProviders(t *testing.T) {
	details := []model.ManualDetail{{Label: "Bank", Value: "VCB"}}
	blocks := []model.ProviderBlock{
		{BlockType: constants.BLOCK_MANUAL, MethodType: constants.METHOD_COD, Details: details},
	}

	public := PublicProviders(blocks)
	assert.Nil(t, public[0].Details)
	// bản gốc không bị sửa
	assert.Equal(t, details, blocks[0].Details)

	blocks[0].MethodType = constants.METHOD_BANK_TRANSFER
	assert.Equal(t, details, PublicProviders(blocks)[0].Details)
}
