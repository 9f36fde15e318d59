package helper

import (
	"errors"
	"fmt"
	"strings"
	"vietqr_checkout/constants"
	"vietqr_checkout/model"
)

var ErrInvalidProvider = errors.New("invalid payment provider")

// DecodeVietQRProvider lấy provider đầu tiên (tối đa 1) và trả về bản VietQR đầy đủ giá trị mặc định.
// A missing block or a non-VietQR block degrades to empty bank fields and the
// compact template; it never fails.
func DecodeVietQRProvider(providers []model.ProviderBlock) model.VietQRProvider {
	decoded := model.VietQRProvider{Template: constants.TEMPLATE_COMPACT}
	if len(providers) == 0 {
		return decoded
	}

	first := providers[0]
	if first.BlockType != constants.BLOCK_VIETQR {
		return decoded
	}

	decoded.BankId = first.BankId
	decoded.AccountNumber = first.AccountNumber
	decoded.AccountName = first.AccountName
	if first.Template != "" {
		decoded.Template = first.Template
	}
	return decoded
}

// NormalizeProviders kiểm tra và chuẩn hoá input providers trước khi lưu
func NormalizeProviders(inputs []model.ProviderBlockInput) ([]model.ProviderBlock, error) {
	if len(inputs) > 1 {
		return nil, fmt.Errorf("%w: at most one provider is allowed", ErrInvalidProvider)
	}

	blocks := make([]model.ProviderBlock, 0, len(inputs))
	for _, in := range inputs {
		switch in.BlockType {
		case constants.BLOCK_MANUAL:
			if in.MethodType == "" {
				return nil, fmt.Errorf("%w: methodType is required", ErrInvalidProvider)
			}
			if strings.TrimSpace(in.Instructions) == "" {
				return nil, fmt.Errorf("%w: instructions are required", ErrInvalidProvider)
			}
			// details chỉ hiển thị khi methodType = bankTransfer, nhưng vẫn được lưu nguyên
			blocks = append(blocks, model.ProviderBlock{
				BlockType:    constants.BLOCK_MANUAL,
				MethodType:   in.MethodType,
				Instructions: in.Instructions,
				Details:      in.Details,
			})
		case constants.BLOCK_VIETQR:
			if in.BankId == "" || in.AccountNumber == "" || in.AccountName == "" {
				return nil, fmt.Errorf("%w: bankId, accountNumber and accountName are required", ErrInvalidProvider)
			}
			block := model.ProviderBlock{
				BlockType:     constants.BLOCK_VIETQR,
				BankId:        strings.TrimSpace(in.BankId),
				AccountNumber: strings.TrimSpace(in.AccountNumber),
				AccountName:   strings.TrimSpace(in.AccountName),
				Template:      in.Template,
				Instructions:  in.Instructions,
			}
			if block.Template == "" {
				block.Template = constants.TEMPLATE_COMPACT
			}
			if block.Instructions == "" {
				block.Instructions = constants.DEFAULT_VIETQR_INSTRUCTIONS
			}
			blocks = append(blocks, block)
		default:
			return nil, fmt.Errorf("%w: unknown blockType %q", ErrInvalidProvider, in.BlockType)
		}
	}
	return blocks, nil
}

// PublicProviders hides manual details unless the method is a bank transfer.
func PublicProviders(blocks []model.ProviderBlock) []model.ProviderBlock {
	out := make([]model.ProviderBlock, len(blocks))
	for i, b := range blocks {
		if b.BlockType == constants.BLOCK_MANUAL && b.MethodType != constants.METHOD_BANK_TRANSFER {
			b.Details = nil
		}
		out[i] = b
	}
	return out
}
