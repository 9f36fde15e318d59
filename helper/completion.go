package helper

import (
	"context"
	"log"
	"vietqr_checkout/model"
)

// PaymentCompletionHook được gọi khi khách bấm "I've Completed Payment".
// Implementations may notify staff or start a bank-statement check; the default
// one only logs. The order record is never changed here.
type PaymentCompletionHook interface {
	PaymentReported(ctx context.Context, order model.Order) error
}

type LogCompletionHook struct{}

func (LogCompletionHook) PaymentReported(_ context.Context, order model.Order) error {
	log.Printf("Khách báo đã thanh toán: orderId=%s sessionId=%s amount=%.0f", order.OrderId, order.SessionId, order.TotalAmount)
	return nil
}
