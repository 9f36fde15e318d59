package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"vietqr_checkout/constants"
	"vietqr_checkout/model"

	"gorm.io/gorm"
)

const (
	DefaultOrderLimit = 10
	MaxOrderLimit     = 100
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrLookupFailed           = errors.New("order lookup failed")
	ErrMissingPaymentMetadata = errors.New("vietqr payment metadata missing")
)

// LookupError là lỗi transport khi tra cứu đơn hàng.
// Message, when set, is the specific text shown to the customer.
type LookupError struct {
	Message string
	Err     error
}

func (e *LookupError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = ErrLookupFailed.Error()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool { return target == ErrLookupFailed }

// OrderLookup tìm đơn theo sessionId (tối đa 1 kết quả)
type OrderLookup interface {
	FindBySession(ctx context.Context, sessionId string) ([]model.Order, error)
}

// FindOrders thực thi bộ lọc where[field][equals] của GET /api/orders
func FindOrders(db *gorm.DB, q model.OrderQuery) (model.OrderDocs, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultOrderLimit
	}
	if limit > MaxOrderLimit {
		limit = MaxOrderLimit
	}

	query := db.Model(&model.Order{})
	if q.SessionId != "" {
		query = query.Where("session_id = ?", q.SessionId)
	}
	if q.OrderId != "" {
		query = query.Where("order_id = ?", q.OrderId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return model.OrderDocs{}, err
	}

	orders := []model.Order{}
	if err := query.Order("created_at desc").Limit(limit).Find(&orders).Error; err != nil {
		return model.OrderDocs{}, err
	}

	return model.OrderDocs{Docs: orders, TotalDocs: total, Limit: limit}, nil
}

type DBOrderLookup struct {
	DB *gorm.DB
}

func (l DBOrderLookup) FindBySession(ctx context.Context, sessionId string) ([]model.Order, error) {
	docs, err := FindOrders(l.DB.WithContext(ctx), model.OrderQuery{SessionId: sessionId, Limit: 1})
	if err != nil {
		return nil, &LookupError{Err: err}
	}
	return docs.Docs, nil
}

// HTTPOrderLookup gọi GET {BaseURL}/api/orders khi storefront chạy tách khỏi API
type HTTPOrderLookup struct {
	BaseURL string
	Client  *http.Client
}

func (l HTTPOrderLookup) FindBySession(ctx context.Context, sessionId string) ([]model.Order, error) {
	params := url.Values{}
	params.Set("where[sessionId][equals]", sessionId)
	params.Set("limit", strconv.Itoa(1))
	endpoint := strings.TrimRight(l.BaseURL, "/") + "/api/orders?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &LookupError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &LookupError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LookupError{
			Message: constants.MSG_FETCH_FAILED,
			Err:     fmt.Errorf("orders api responded %d", resp.StatusCode),
		}
	}

	var docs model.OrderDocs
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, &LookupError{Err: fmt.Errorf("decode orders response: %w", err)}
	}
	return docs.Docs, nil
}
