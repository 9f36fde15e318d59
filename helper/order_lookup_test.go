package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"vietqr_checkout/constants"
	"vietqr_checkout/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrders(t *testing.T) {
	db := newTestDB(t)
	var sessions []string
	for i := 0; i < 12; i++ {
		input := vietqrCheckoutInput()
		input.OrderId = fmt.Sprintf("ORD-%d", i)
		result, err := ComposeVietQRCheckout(db, input)
		require.NoError(t, err)
		sessions = append(sessions, result.SessionId)
	}

	t.Run("by session", func(t *testing.T) {
		docs, err := FindOrders(db, model.OrderQuery{SessionId: sessions[3], Limit: 1})
		require.NoError(t, err)
		require.Len(t, docs.Docs, 1)
		assert.Equal(t, "ORD-3", docs.Docs[0].OrderId)
		assert.Equal(t, int64(1), docs.TotalDocs)
		assert.Equal(t, 1, docs.Limit)
	})

	t.Run("by orderId", func(t *testing.T) {
		docs, err := FindOrders(db, model.OrderQuery{OrderId: "ORD-5"})
		require.NoError(t, err)
		require.Len(t, docs.Docs, 1)
		assert.Equal(t, sessions[5], docs.Docs[0].SessionId)
	})

	t.Run("unknown session", func(t *testing.T) {
		docs, err := FindOrders(db, model.OrderQuery{SessionId: "VQRSID-nope", Limit: 1})
		require.NoError(t, err)
		assert.Empty(t, docs.Docs)
		assert.NotNil(t, docs.Docs)
	})

	t.Run("default and max limit", func(t *testing.T) {
		docs, err := FindOrders(db, model.OrderQuery{})
		require.NoError(t, err)
		assert.Len(t, docs.Docs, DefaultOrderLimit)
		assert.Equal(t, int64(12), docs.TotalDocs)

		docs, err = FindOrders(db, model.OrderQuery{Limit: 1000})
		require.NoError(t, err)
		assert.Equal(t, MaxOrderLimit, docs.Limit)
		assert.Len(t, docs.Docs, 12)
	})
}

func TestDBOrderLookup(t *testing.T) {
	db := newTestDB(t)
	result, err := ComposeVietQRCheckout(db, vietqrCheckoutInput())
	require.NoError(t, err)

	lookup := DBOrderLookup{DB: db}
	orders, err := lookup.FindBySession(context.Background(), result.SessionId)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(150000), orders[0].Metadata.Data().VietQR.Amount)

	page := LoadPaymentPage(context.Background(), lookup, result.SessionId)
	assert.Equal(t, model.PageStateReady, page.State)
}

func TestHTTPOrderLookup(t *testing.T) {
	order := vietqrOrder()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		docs := model.OrderDocs{Docs: []model.Order{}, Limit: 1}
		if r.URL.Query().Get("where[sessionId][equals]") == order.SessionId {
			docs.Docs = append(docs.Docs, order)
			docs.TotalDocs = 1
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(docs)
	}))
	defer srv.Close()

	lookup := HTTPOrderLookup{BaseURL: srv.URL + "/", Client: srv.Client()}

	orders, err := lookup.FindBySession(context.Background(), order.SessionId)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1", orders[0].OrderId)
	require.NotNil(t, orders[0].Metadata.Data().VietQR)
	assert.Equal(t, "VCB", orders[0].Metadata.Data().VietQR.BankId)

	orders, err = lookup.FindBySession(context.Background(), "VQRSID-other")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestHTTPOrderLookup_Failures(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := HTTPOrderLookup{BaseURL: srv.URL}.FindBySession(context.Background(), "VQRSID-abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLookupFailed)

		var lookupErr *LookupError
		require.True(t, errors.As(err, &lookupErr))
		assert.Equal(t, constants.MSG_FETCH_FAILED, lookupErr.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}))
		defer srv.Close()

		_, err := HTTPOrderLookup{BaseURL: srv.URL}.FindBySession(context.Background(), "VQRSID-abc")
		assert.ErrorIs(t, err, ErrLookupFailed)
	})

	t.Run("server unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		page := LoadPaymentPage(context.Background(), HTTPOrderLookup{BaseURL: url}, "VQRSID-abc")
		require.NotNil(t, page.Error)
		assert.Equal(t, model.ErrKindTransport, page.Error.Kind)
		assert.Equal(t, constants.MSG_LOAD_FAILED, page.Error.Message)
	})
}
