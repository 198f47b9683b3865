package buybackclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/realToken/prices", r.URL.Path)
		assert.Equal(t, "0xabc", r.URL.Query().Get("address"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"fundamentalPrice":53.27,"buyBackPrice":51.9}}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	prices, err := c.TokenPrices(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, 53.27, prices.FundamentalPrice)
	assert.Equal(t, 51.9, prices.BuyBackPrice)
}

func TestClientDecodesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"name":"NotFoundError","message":"strategy not found"}}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Strategy(context.Background(), "0xdead", false)
	require.Error(t, err)

	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NotFoundError", apiErr.Name)
	assert.Equal(t, "strategy not found", apiErr.Message)
}

func TestClientRejectsBadURL(t *testing.T) {
	_, err := NewClient("not-a-url")
	assert.Error(t, err)
}

func TestClientStaleGuard(t *testing.T) {
	started := make(chan struct{})
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-block
		w.Write([]byte(`{"data":{"price":1.0}}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := c.LatestPrice(context.Background(), "0xusdc")
		done <- err
	}()

	// 等第一次请求打到服务端，再用第二次请求把它挤掉
	<-started
	c.guard.Begin("latestPrice:0xusdc")
	close(block)

	err = <-done
	assert.ErrorIs(t, err, ErrStale)
}
