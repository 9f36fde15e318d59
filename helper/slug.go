package helper

import (
	"fmt"
	"vietqr_checkout/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniquePaymentSlug sinh slug duy nhất cho cấu hình thanh toán.
// excludeId bỏ qua chính bản ghi đang được sửa (0 khi tạo mới).
func GenerateUniquePaymentSlug(tx *gorm.DB, name string, excludeId uint) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "payment"
	}
	result := base
	i := 1

	for {
		var count int64
		q := tx.Unscoped().Model(&model.PaymentProviderConfig{}).Where("slug = ?", result)
		if excludeId > 0 {
			q = q.Where("id <> ?", excludeId)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", fmt.Errorf("check payment slug %q: %w", result, err)
		}

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result, nil
}
