package model

// PageState is what the customer sees on the VietQR payment page.
// It is independent of Order.PaymentStatus, which this service never changes.
type PageState string

const (
	PageStateLoading PageState = "loading"
	PageStateReady   PageState = "ready"
	PageStateError   PageState = "error"
)

type PageErrorKind string

const (
	ErrKindNotFound               PageErrorKind = "not_found"
	ErrKindTransport              PageErrorKind = "transport"
	ErrKindMissingPaymentMetadata PageErrorKind = "missing_payment_metadata"
)

type PageError struct {
	Kind    PageErrorKind `json:"kind"`
	Message string        `json:"message"`
}

type PaymentPage struct {
	State         PageState       `json:"state"`
	SessionId     string          `json:"sessionId"`
	OrderId       string          `json:"orderId,omitempty"`
	TotalAmount   float64         `json:"totalAmount,omitempty"`
	AmountDisplay string          `json:"amountDisplay,omitempty"`
	VietQR        *VietQRSnapshot `json:"vietqr,omitempty"`
	QRCodeUrl     string          `json:"qrCodeUrl"`
	CompleteUrl   string          `json:"completeUrl,omitempty"`
	Error         *PageError      `json:"error,omitempty"`
}
