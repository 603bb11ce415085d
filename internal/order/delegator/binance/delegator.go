package binance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/archie1710/TRADING-BOT/internal/adapter"
	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/archie1710/TRADING-BOT/pkg/exception"
	"github.com/bytedance/sonic"
	"github.com/yanun0323/errors"
)

const (
	_binanceFuturesBaseUrl        = "https://fapi.binance.com"
	_binanceFuturesBaseUrlTestnet = "https://testnet.binancefuture.com"

	_pathOrder = "/fapi/v1/order"
	_pathPing  = "/fapi/v1/ping"

	_headerAPIKey = "X-MBX-APIKEY"

	_defaultTimeout    = 15 * time.Second
	_defaultRecvWindow = 5 * time.Second
	_maxErrorBody      = 4 << 10
)

// Config is fixed for the lifetime of a Delegator.
type Config struct {
	Token       adapter.Token
	Environment enum.Environment
	// BaseURL overrides the endpoint picked by Environment.
	BaseURL    string
	RecvWindow time.Duration
	Timeout    time.Duration
	Client     *http.Client
}

// BaseURL returns the REST root for env.
func BaseURL(env enum.Environment) string {
	if env == enum.EnvironmentTestnet {
		return _binanceFuturesBaseUrlTestnet
	}
	return _binanceFuturesBaseUrl
}

// Delegator talks to the USDⓈ-M futures REST API.
type Delegator struct {
	client     *http.Client
	token      adapter.Token
	baseURL    string
	recvWindow time.Duration
	timeout    time.Duration
	now        func() time.Time
}

func NewDelegator(cfg Config) (*Delegator, error) {
	if cfg.Token.IsEmpty() {
		return nil, exception.ErrConfigMissingCredentials
	}

	if !cfg.Environment.IsAvailable() {
		return nil, errors.Errorf("%s: environment %d", exception.ErrInvalidArgument, cfg.Environment)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if len(baseURL) == 0 {
		baseURL = BaseURL(cfg.Environment)
	}

	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}

	recvWindow := cfg.RecvWindow
	if recvWindow <= 0 {
		recvWindow = _defaultRecvWindow
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = _defaultTimeout
	}

	return &Delegator{
		client:     client,
		token:      cfg.Token,
		baseURL:    baseURL,
		recvWindow: recvWindow,
		timeout:    timeout,
		now:        time.Now,
	}, nil
}

func (d *Delegator) BaseURL() string {
	return d.baseURL
}

// Ping checks connectivity without credentials.
func (d *Delegator) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+_pathPing, nil)
	if err != nil {
		return errors.Wrap(err, exception.ErrConnectionRequest.Error())
	}

	resp, err := d.client.Do(r)
	if err != nil {
		return errors.Wrap(err, exception.ErrConnectionPing.Error()).With("url", d.baseURL)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("%s, status: %d, url: %s", exception.ErrConnectionPing, resp.StatusCode, d.baseURL)
	}

	return nil
}

// CreateFuturesOrder sends POST /fapi/v1/order once.
func (d *Delegator) CreateFuturesOrder(ctx context.Context, params adapter.OrderParams) (adapter.OrderAck, error) {
	var ack adapter.OrderAck

	body := d.sign(orderValues(params))

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	r, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.baseURL+_pathOrder,
		strings.NewReader(body),
	)
	if err != nil {
		return ack, errors.Wrap(err, exception.ErrConnectionRequest.Error())
	}
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set(_headerAPIKey, d.token.Key)

	resp, err := d.client.Do(r)
	if err != nil {
		return ack, errors.Wrap(err, exception.ErrConnectionSend.Error()).With("symbol", params.Symbol)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return ack, decodeError(resp)
	}

	var data OrderResponse
	if err := sonic.ConfigFastest.NewDecoder(resp.Body).Decode(&data); err != nil {
		return ack, errors.Wrap(err, exception.ErrOrderDecodeResponseBody.Error())
	}

	if data.OrderID == 0 {
		return ack, exception.ErrOrderEmptyResponseOrderID
	}

	return data.Ack(), nil
}

func orderValues(params adapter.OrderParams) url.Values {
	values := url.Values{}
	values.Set("symbol", params.Symbol)
	values.Set("side", params.Side.String())
	values.Set("type", params.Type.String())
	values.Set("quantity", params.Quantity.String())
	if params.TimeInForce.IsAvailable() {
		values.Set("timeInForce", params.TimeInForce.String())
	}
	if params.Price.Valid {
		values.Set("price", params.Price.Decimal.String())
	}
	if params.StopPrice.Valid {
		values.Set("stopPrice", params.StopPrice.Decimal.String())
	}
	return values
}

// sign appends recvWindow, timestamp and the HMAC-SHA256 signature of the
// encoded query. The returned string is sent verbatim.
func (d *Delegator) sign(values url.Values) string {
	values.Set("recvWindow", strconv.FormatInt(d.recvWindow.Milliseconds(), 10))
	values.Set("timestamp", strconv.FormatInt(d.now().UnixMilli(), 10))
	payload := values.Encode()

	mac := hmac.New(sha256.New, []byte(d.token.Secret))
	mac.Write([]byte(payload))
	return payload + "&signature=" + hex.EncodeToString(mac.Sum(nil))
}

func decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, _maxErrorBody))
	if err != nil {
		return errors.Wrap(err, "read error body").With("status", resp.StatusCode)
	}

	var data ErrorResponse
	if err := sonic.Unmarshal(raw, &data); err != nil || (data.Code == 0 && len(data.Msg) == 0) {
		return &adapter.APIError{
			HTTPStatus: resp.StatusCode,
			Message:    "invalid JSON error message from exchange: " + strings.TrimSpace(string(raw)),
		}
	}

	return &adapter.APIError{
		HTTPStatus: resp.StatusCode,
		Code:       data.Code,
		Message:    data.Msg,
	}
}
