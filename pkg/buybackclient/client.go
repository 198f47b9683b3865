package buybackclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"buyback/internal/model"
	"buyback/pkg/latest"
	"buyback/pkg/response"
	"github.com/goccy/go-json"
)

// buyback服务的Go客户端。错误信封里有error字段就短路，
// 价格类的查询走latest守卫，旧请求晚到不会覆盖新数据。

type Client struct {
	baseURL    string
	httpClient *http.Client
	guard      *latest.Guard
}

// ApiError 服务端信封里的错误
type ApiError struct {
	Name    string
	Message string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func NewClient(rawUrl string) (*Client, error) {
	parsedUrl, err := url.Parse(rawUrl)
	if err != nil || parsedUrl.Scheme == "" || parsedUrl.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", rawUrl)
	}
	if len(parsedUrl.Path) > 0 && parsedUrl.Path[len(parsedUrl.Path)-1:] == "/" {
		parsedUrl.Path = parsedUrl.Path[:len(parsedUrl.Path)-1]
	}
	return &Client{
		baseURL:    parsedUrl.String(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		guard:      latest.NewGuard(),
	}, nil
}

// doRequest 带重试的请求。网络错误和429走指数退避，其他状态码直接返回
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body interface{}, result interface{}) error {
	var reqBodyJSON []byte
	if body != nil {
		var err error
		reqBodyJSON, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	const maxRetries = 3
	const backoffBase = time.Second
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// 请求体每轮重建，io.Reader读完就不能重用
		var reader io.Reader
		if reqBodyJSON != nil {
			reader = bytes.NewBuffer(reqBodyJSON)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return fmt.Errorf("failed to create new request: %w", err)
		}
		if reqBodyJSON != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("failed to execute request: %w", err)
		} else {
			retry, err := c.decode(resp, result)
			if !retry {
				return err
			}
			lastErr = err
		}

		if attempt == maxRetries-1 {
			return fmt.Errorf("request failed after %d retries. Last error: %w", maxRetries, lastErr)
		}
		waitTime := backoffBase * time.Duration(1<<attempt)
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("unexpected exit from retry loop")
}

// decode 解析响应信封。返回retry=true表示值得重试
func (c *Client) decode(resp *http.Response, result interface{}) (retry bool, err error) {
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return true, fmt.Errorf("received 429 Too Many Requests")
	}

	byteData, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope response.ApiResponse
	envelope.Data = result
	if err := json.Unmarshal(byteData, &envelope); err != nil {
		return false, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if envelope.Error != nil {
		return false, &ApiError{Name: envelope.Error.Name, Message: envelope.Error.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("received non-OK HTTP status: %s", resp.Status)
	}
	return false, nil
}

// AssetListRWA 可交易的rwa token
func (c *Client) AssetListRWA(ctx context.Context, search string) ([]model.Asset, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var assets []model.Asset
	if err := c.doRequest(ctx, http.MethodGet, "/asset/rwa", q, nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// AssetListStablecoins 买方可用的稳定币
func (c *Client) AssetListStablecoins(ctx context.Context) ([]model.Asset, error) {
	var assets []model.Asset
	if err := c.doRequest(ctx, http.MethodGet, "/asset/stablecoins", nil, nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// TokenPrices token的基本面价/回购价。同一个token并发查询时只有
// 最后一次发起的结果有效，旧请求晚到返回ErrStale。
func (c *Client) TokenPrices(ctx context.Context, address string) (model.TokenPrices, error) {
	key := "tokenPrices:" + address
	gen := c.guard.Begin(key)

	q := url.Values{}
	q.Set("address", address)
	var prices model.TokenPrices
	if err := c.doRequest(ctx, http.MethodGet, "/realToken/prices", q, nil, &prices); err != nil {
		return model.TokenPrices{}, err
	}
	if !c.guard.Latest(key, gen) {
		return model.TokenPrices{}, ErrStale
	}
	return prices, nil
}

// LatestPrice 稳定币的美元价，同样走latest守卫
func (c *Client) LatestPrice(ctx context.Context, address string) (float64, error) {
	key := "latestPrice:" + address
	gen := c.guard.Begin(key)

	q := url.Values{}
	q.Set("address", address)
	var res struct {
		Price float64 `json:"price"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/crypto-market/latest-price", q, nil, &res); err != nil {
		return 0, err
	}
	if !c.guard.Latest(key, gen) {
		return 0, ErrStale
	}
	return res.Price, nil
}

// Strategy 策略详情
func (c *Client) Strategy(ctx context.Context, address string, logo bool) (model.StrategyDetailRes, error) {
	q := url.Values{}
	q.Set("address", address)
	if logo {
		q.Set("logo", "true")
	}
	var res model.StrategyDetailRes
	if err := c.doRequest(ctx, http.MethodGet, "/main/strategy", q, nil, &res); err != nil {
		return model.StrategyDetailRes{}, err
	}
	return res, nil
}

// Strategies 策略列表带汇总KPI
func (c *Client) Strategies(ctx context.Context) (model.StrategyListRes, error) {
	var res model.StrategyListRes
	if err := c.doRequest(ctx, http.MethodGet, "/main/strategies", nil, nil, &res); err != nil {
		return model.StrategyListRes{}, err
	}
	return res, nil
}

// ActiveSellOrders 用户在某个token上的活跃卖单
func (c *Client) ActiveSellOrders(ctx context.Context, userAddress, offerAsset string) ([]model.Order, error) {
	q := url.Values{}
	q.Set("userAddress", userAddress)
	q.Set("offerAsset", offerAsset)
	var orders []model.Order
	if err := c.doRequest(ctx, http.MethodGet, "/order/active-sell", q, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Quote 下单前报价
func (c *Client) Quote(ctx context.Context, req model.OrderQuoteReq) (model.OrderQuoteRes, error) {
	q := url.Values{}
	q.Set("offerAsset", req.OfferAsset)
	q.Set("amount", req.Amount)
	if req.Stablecoin != "" {
		q.Set("stablecoin", req.Stablecoin)
	}
	var res model.OrderQuoteRes
	if err := c.doRequest(ctx, http.MethodGet, "/order/quote", q, nil, &res); err != nil {
		return model.OrderQuoteRes{}, err
	}
	return res, nil
}

// CreateOrder 创建卖单
func (c *Client) CreateOrder(ctx context.Context, req model.OrderCreateReq) (model.Order, error) {
	var res model.Order
	if err := c.doRequest(ctx, http.MethodPost, "/order/create-order", nil, req, &res); err != nil {
		return model.Order{}, err
	}
	return res, nil
}

// UpdateOrder 改单，只允许加量
func (c *Client) UpdateOrder(ctx context.Context, req model.OrderUpdateReq) (model.Order, error) {
	var res model.Order
	if err := c.doRequest(ctx, http.MethodPut, "/order/update-order", nil, req, &res); err != nil {
		return model.Order{}, err
	}
	return res, nil
}

// CancelOrder 取消卖单
func (c *Client) CancelOrder(ctx context.Context, req model.OrderCancelReq) error {
	return c.doRequest(ctx, http.MethodPatch, "/order/cancel-order", nil, req, nil)
}
