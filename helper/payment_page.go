package helper

import (
	"context"
	"errors"
	"log"
	"vietqr_checkout/constants"
	"vietqr_checkout/model"
	"vietqr_checkout/utils"
)

type lookupResult struct {
	orders []model.Order
	err    error
}

// LoadPaymentPage chạy máy trạng thái Loading -> Ready | Error của trang thanh toán.
// The lookup is bounded by ctx: if ctx expires first the page fails with a
// transport error even when the lookup itself ignores cancellation.
func LoadPaymentPage(ctx context.Context, lookup OrderLookup, sessionId string) model.PaymentPage {
	done := make(chan lookupResult, 1)
	go func() {
		orders, err := lookup.FindBySession(ctx, sessionId)
		done <- lookupResult{orders: orders, err: err}
	}()

	var res lookupResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res = lookupResult{err: &LookupError{Message: constants.MSG_LOOKUP_TIMEOUT, Err: ctx.Err()}}
	}
	return BuildPaymentPage(sessionId, res.orders, res.err)
}

// BuildPaymentPage dựng trang từ kết quả tra cứu đã có sẵn, không tra lại
func BuildPaymentPage(sessionId string, orders []model.Order, err error) model.PaymentPage {
	page := model.PaymentPage{State: model.PageStateLoading, SessionId: sessionId}

	if err != nil {
		log.Printf("Lỗi tải đơn hàng sessionId=%s: %v", sessionId, err)
		return failPage(page, lookupFailure(err))
	}
	if len(orders) == 0 {
		log.Printf("Không tìm thấy đơn hàng sessionId=%s", sessionId)
		return failPage(page, model.PageError{Kind: model.ErrKindNotFound, Message: constants.MSG_ORDER_NOT_FOUND})
	}

	order := orders[0]
	page.OrderId = order.OrderId
	page.TotalAmount = order.TotalAmount
	page.AmountDisplay = utils.FormatVND(order.TotalAmount)

	vietqr := order.Metadata.Data().VietQR
	if vietqr == nil {
		log.Printf("Đơn %s không có metadata VietQR", order.OrderId)
		return failPage(page, model.PageError{Kind: model.ErrKindMissingPaymentMetadata, Message: constants.MSG_VIETQR_INFO_NOT_FOUND})
	}

	page.VietQR = vietqr
	page.QRCodeUrl = utils.BuildVietQRImageURL(*vietqr)
	page.CompleteUrl = PaymentPagePath(sessionId) + "/complete"
	page.State = model.PageStateReady
	return page
}

func failPage(page model.PaymentPage, pageErr model.PageError) model.PaymentPage {
	page.State = model.PageStateError
	page.Error = &pageErr
	page.QRCodeUrl = ""
	page.VietQR = nil
	return page
}

func lookupFailure(err error) model.PageError {
	var le *LookupError
	if errors.As(err, &le) && le.Message != "" {
		return model.PageError{Kind: model.ErrKindTransport, Message: le.Message}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return model.PageError{Kind: model.ErrKindTransport, Message: constants.MSG_LOOKUP_TIMEOUT}
	}
	return model.PageError{Kind: model.ErrKindTransport, Message: constants.MSG_LOAD_FAILED}
}

// PageErrorToErr chuyển trạng thái lỗi của trang thành sentinel error tương ứng
func PageErrorToErr(pageErr *model.PageError) error {
	if pageErr == nil {
		return nil
	}
	switch pageErr.Kind {
	case model.ErrKindNotFound:
		return ErrOrderNotFound
	case model.ErrKindMissingPaymentMetadata:
		return ErrMissingPaymentMetadata
	default:
		return ErrLookupFailed
	}
}
